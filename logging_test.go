package main

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	var stderr strings.Builder
	log, closer, err := newLogger(&stderr, false, "")
	require.NoError(t, err)
	log.Debug("hidden")
	log.Warn("shown", "n", 1)
	require.NoError(t, closer.Close())
	assert.NotContains(t, stderr.String(), "hidden")
	assert.Contains(t, stderr.String(), "level=WARN msg=shown n=1")

	stderr.Reset()
	log, _, err = newLogger(&stderr, true, "")
	require.NoError(t, err)
	log.Debug("exec", "ip", 3)
	assert.Contains(t, stderr.String(), "level=DEBUG msg=exec ip=3")
}

func TestNewLogger_traceFile(t *testing.T) {
	var stderr strings.Builder
	path := filepath.Join(t.TempDir(), "trace.jsonl")
	log, closer, err := newLogger(&stderr, false, path)
	require.NoError(t, err)

	vm := New(WithLogger(log.With("prog", "count")))
	require.NoError(t, vm.Run(context.Background(), ParseProgram("count", lines(
		"DECL n NATURAL",
		"LABEL L",
		"ADD n n 1",
		"JLT L n 2",
	))))
	require.NoError(t, closer.Close())
	assert.Empty(t, stderr.String(), "debug records stay out of stderr")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var execs []float64
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var rec struct {
			Msg  string  `json:"msg"`
			Prog string  `json:"prog"`
			IP   float64 `json:"ip"`
		}
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec), "must decode %s", sc.Bytes())
		assert.Equal(t, "count", rec.Prog)
		if rec.Msg == "exec" {
			execs = append(execs, rec.IP)
		}
	}
	require.NoError(t, sc.Err())
	assert.Equal(t, []float64{0, 1, 2, 3, 2, 3}, execs, "expected executed line indices")
}
