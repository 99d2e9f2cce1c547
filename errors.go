package main

import (
	"errors"
	"fmt"

	"github.com/jcorbin/flatscript/internal/lineinput"
)

// Every way a script can fail; all of them end the run.
var (
	ErrUndeclared      = errors.New("undeclared name")
	ErrUnresolvedLabel = errors.New("unresolved label")
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrParse           = errors.New("invalid literal")
	ErrRange           = errors.New("out of range")
	ErrArity           = errors.New("missing operands")
	ErrConversion      = errors.New("unsupported conversion")
	ErrInput           = errors.New("input failed")
)

// LineError locates a fatal script error at the line that caused it.
type LineError struct {
	lineinput.Location
	Text string
	Err  error
}

func (le LineError) Error() string {
	return fmt.Sprintf("%v: %v (%q)", le.Location, le.Err, le.Text)
}

func (le LineError) Unwrap() error { return le.Err }

type haltError struct{ error }

func (err haltError) Error() string {
	if err.error != nil {
		return fmt.Sprintf("halted: %v", err.error)
	}
	return "halted"
}

func (err haltError) Unwrap() error { return err.error }

func typeMismatch(what string, want, got VarType) error {
	return fmt.Errorf("%w: %v wants %v, got %v", ErrTypeMismatch, what, want, got)
}
