package main

import (
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// newLogger builds the command's logger: warnings and errors as text on
// stderr, raised to every trace record when trace is set, fanned out with a
// JSON record stream into traceFile when it is not empty.
func newLogger(stderr io.Writer, trace bool, traceFile string) (*slog.Logger, io.Closer, error) {
	level := slog.LevelWarn
	if trace {
		level = slog.LevelDebug
	}
	handlers := []slog.Handler{
		slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}),
	}

	var closer io.Closer = nopCloser{}
	if traceFile != "" {
		f, err := os.Create(traceFile)
		if err != nil {
			return nil, nil, err
		}
		closer = f
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
