package panicerr

import (
	"errors"
	"fmt"
	"runtime/debug"
)

func recoverPanicError(name string, errch chan<- error) {
	e := recover()
	if e == nil {
		return
	}
	pe := &panicError{name: name, value: e, stack: string(debug.Stack())}
	select {
	case errch <- pe:
	default:
	}
}

// panicError carries a recovered panic value and the stack it was raised on.
type panicError struct {
	name  string
	value any
	stack string
}

func (pe *panicError) Error() string {
	if pe.name == "" {
		return fmt.Sprintf("panicked: %v", pe.value)
	}
	return fmt.Sprintf("%v panicked: %v", pe.name, pe.value)
}

// Format adds the panic stack under %+v.
func (pe *panicError) Format(f fmt.State, c rune) {
	fmt.Fprint(f, pe.Error())
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "\nPanic stack: %s", pe.stack)
	}
}

// Unwrap returns the panic value if it was an error.
func (pe *panicError) Unwrap() error {
	err, _ := pe.value.(error)
	return err
}

func asPanic(err error) (*panicError, bool) {
	var pe *panicError
	return pe, errors.As(err, &pe)
}

// IsPanic returns true if err indicates a recovered goroutine panic.
func IsPanic(err error) bool {
	_, is := asPanic(err)
	return is
}

// PanicStack returns the stack trace of a recovered goroutine panic, or ""
// if err is not one.
func PanicStack(err error) string {
	if pe, is := asPanic(err); is {
		return pe.stack
	}
	return ""
}
