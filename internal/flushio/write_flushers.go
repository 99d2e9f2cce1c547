package flushio

import (
	"errors"
	"io"
)

// Tee returns a WriteFlusher that writes into wf and a flushable form of each
// copy, in order. Flush flushes all of them, even after a failure.
func Tee(wf WriteFlusher, copies ...io.Writer) WriteFlusher {
	tee := teeFlusher{wf}
	for _, w := range copies {
		if w != nil {
			tee = append(tee, NewWriteFlusher(w))
		}
	}
	if len(tee) == 1 {
		return wf
	}
	return tee
}

type teeFlusher []WriteFlusher

func (tee teeFlusher) Write(p []byte) (int, error) {
	for _, wf := range tee {
		n, err := wf.Write(p)
		if err == nil && n < len(p) {
			err = io.ErrShortWrite
		}
		if err != nil {
			return n, err
		}
	}
	return len(p), nil
}

func (tee teeFlusher) Flush() error {
	var errs []error
	for _, wf := range tee {
		if err := wf.Flush(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
