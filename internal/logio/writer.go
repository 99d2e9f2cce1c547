package logio

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Writer is an io.Writer that hands each complete line written to Logf, like
// testing.T.Logf. This routes line oriented output, such as a
// slog.TextHandler or a VM dump, into a test log or another logger.
type Writer struct {
	Logf func(string, ...any)

	mu      sync.Mutex
	pending []byte
}

// SlogWriter returns a Writer that logs each line as one record at level.
func SlogWriter(log *slog.Logger, level slog.Level) *Writer {
	return &Writer{Logf: func(mess string, args ...any) {
		log.Log(context.Background(), level, fmt.Sprintf(mess, args...))
	}}
}

// Write logs every line completed by p; any trailing partial line is held
// until a later Write or Close completes it. Safe for concurrent use.
func (lw *Writer) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.pending = append(lw.pending, p...)
	for {
		i := bytes.IndexByte(lw.pending, '\n')
		if i < 0 {
			break
		}
		lw.Logf("%s", lw.pending[:i])
		lw.pending = lw.pending[i+1:]
	}
	return len(p), nil
}

// Close logs any partial line left over.
func (lw *Writer) Close() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	if len(lw.pending) > 0 {
		lw.Logf("%s", lw.pending)
		lw.pending = nil
	}
	return nil
}
