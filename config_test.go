package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "flatscript.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "must write config")
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
timeout = "1m30s"
labels = "prescan"
trace = true
trace-file = "trace.jsonl"

[quirks]
sub-adds = true

[aliases]
TOSTR = "CONVERT"
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, cfg.Timeout.Duration)
	assert.Equal(t, "prescan", cfg.Labels)
	assert.True(t, cfg.Trace)
	assert.Equal(t, "trace.jsonl", cfg.TraceFile)
	assert.Equal(t, Quirks{SubAdds: true}, cfg.Quirks)
	assert.Equal(t, map[string]string{"TOSTR": "CONVERT"}, cfg.Aliases)

	opts, err := cfg.Options()
	require.NoError(t, err)
	vm := New(opts...)
	assert.Equal(t, PrescanLabels, vm.labelMode)
	assert.Equal(t, Quirks{SubAdds: true}, vm.quirks)
	assert.Equal(t, map[string]opcode{"TOSTR": codeConvert}, vm.aliases)
}

func TestLoadConfig_empty(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)

	opts, err := cfg.Options()
	require.NoError(t, err)
	vm := New(opts...)
	assert.Equal(t, LazyLabels, vm.labelMode)
	assert.Equal(t, Quirks{}, vm.quirks)
	assert.Nil(t, vm.aliases)
}

func TestLoadConfig_errors(t *testing.T) {
	for _, tc := range []struct {
		name    string
		content string
		want    string
	}{
		{"unknown keys", "labels = \"lazy\"\nspeed = 9\n[quirks]\nfast = true\n", "unknown keys quirks.fast, speed"},
		{"label mode", `labels = "eager"`, `invalid label mode "eager", want lazy or prescan`},
		{"shadowing alias", "[aliases]\nSET = \"CONVERT\"\n", "alias SET shadows a builtin mnemonic"},
		{"bad timeout", `timeout = "soon"`, "soon"},
		{"negative timeout", `timeout = "-1s"`, "negative timeout -1s"},
		{"syntax", `labels = `, "cannot load config"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tc.content))
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tc.want)
			}
		})
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err, "expected a missing file to fail")
}
