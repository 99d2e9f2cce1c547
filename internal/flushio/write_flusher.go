// Package flushio provides writers that buffer until flushed, for output that
// must be visible before a program blocks on input or exits.
package flushio

import (
	"bufio"
	"io"
)

// WriteFlusher is an io.Writer with a Flush method, like *bufio.Writer.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

// inMemory matches buffers like *bytes.Buffer and *strings.Builder, which
// gain nothing from buffering.
type inMemory interface {
	Len() int
	Cap() int
	Grow(n int)
	Reset()
}

// NewWriteFlusher returns w itself if it already is a WriteFlusher; io.Discard
// and in memory buffers get a Flush that does nothing; any other writer is
// wrapped in a bufio.Writer.
func NewWriteFlusher(w io.Writer) WriteFlusher {
	switch impl := w.(type) {
	case WriteFlusher:
		return impl
	case inMemory:
		return passThrough{w}
	}
	if w == io.Discard {
		return passThrough{w}
	}
	return bufio.NewWriter(w)
}

type passThrough struct{ io.Writer }

func (passThrough) Flush() error { return nil }
