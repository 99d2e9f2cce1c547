package panicerr_test

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/jcorbin/flatscript/internal/panicerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBang = errors.New("bang")

func TestRecover(t *testing.T) {
	for _, tc := range []struct {
		name      string
		err       string
		wraps     error
		fun       func() error
		haveStack bool
		exit      bool
	}{
		{
			name: "normal",
			fun:  func() error { return nil },
		},
		{
			name: "normal err",
			err:  "bang",
			fun:  func() error { return errBang },
		},
		{
			name:      "panic err",
			err:       "panic err panicked: bang",
			wraps:     errBang,
			haveStack: true,
			fun:       func() error { panic(errBang) },
		},
		{
			name:      "hello panic",
			err:       "hello panic panicked: hello",
			haveStack: true,
			fun:       func() error { panic("hello") },
		},
		{
			name: "exit",
			err:  "exit called runtime.Goexit",
			exit: true,
			fun:  func() error { runtime.Goexit(); return nil },
		},
		{
			name:      "index panic",
			err:       "index panic panicked: runtime error: index out of range [1] with length 0",
			haveStack: true,
			fun:       func() error { _ = ([]int)(nil)[1]; return nil },
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := panicerr.Recover(tc.name, tc.fun)
			if tc.err == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tc.err)
			if tc.wraps != nil {
				assert.True(t, errors.Is(err, tc.wraps), "expected panic(error) value to be wrapped")
			}
			assert.Equal(t, tc.haveStack, panicerr.IsPanic(err), "expected IsPanic")
			assert.Equal(t, tc.exit, panicerr.IsExit(err), "expected IsExit")
			stack := panicerr.PanicStack(err)
			if tc.haveStack {
				assert.NotEqual(t, "", stack, "expected a stack trace")
			} else {
				assert.Equal(t, "", stack, "expected no stack trace")
			}
		})
	}
}

func TestRecover_stacktrace(t *testing.T) {
	err := panicerr.Recover("", func() error {
		panic("nope")
	})
	require.Error(t, err, "must have an error")
	assert.EqualError(t, err, "panicked: nope")
	assert.True(t,
		strings.HasSuffix(fmt.Sprintf("%+v", err), panicerr.PanicStack(err)),
		"expected verbose format to end with a stack trace")
}
