package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"

	"github.com/jcorbin/flatscript/internal/panicerr"
)

// New creates a VM; it reads INPUT lines from an empty stream and discards
// PRINT output unless options say otherwise.
func New(opts ...VMOption) *VM {
	var vm VM
	VMOptions(defaultOptions, VMOptions(opts...)).apply(&vm)
	return &vm
}

// Run executes prog from its first line until the instruction pointer runs
// past its last line, or until a fatal error. Every run starts over with no
// variables and no labels.
//
// The returned error is a LineError wrapping one of the Err* values, a
// context error if ctx was done between two steps, or an output error.
// Go runtime panics are returned too, with their stack under %+v.
func (vm *VM) Run(ctx context.Context, prog Program) error {
	vm.reset(prog)
	err := panicerr.Recover("VM", func() error {
		vm.run(ctx)
		return vm.out.Flush()
	})
	var halt haltError
	if errors.As(err, &halt) {
		err = halt.error
	}
	return err
}

// Lookup returns the current value of a variable.
func (vm *VM) Lookup(name string) (Value, bool) {
	v, declared := vm.vars[name]
	if declared {
		v = Copy(v)
	}
	return v, declared
}

// IP returns the instruction pointer, a 0-based line index. After a run that
// completed it is the number of lines; after a fatal error it is the failing
// line.
func (vm *VM) IP() int { return vm.ip }

// Names returns the names of all declared variables, sorted.
func (vm *VM) Names() []string {
	names := make([]string, 0, len(vm.vars))
	for name := range vm.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WithInput sets the stream INPUT reads lines from.
func WithInput(r io.Reader) VMOption { return withInput(r) }

// WithOutput sets the stream PRINT writes to; it is flushed before INPUT
// blocks and when the run ends.
func WithOutput(w io.Writer) VMOption { return withOutput(w) }

// WithTee copies all output to w, in addition to the output stream. If w is
// an io.Closer, VM.Close closes it.
func WithTee(w io.Writer) VMOption { return withTee(w) }

// WithLogger sets a logger for trace records at slog.LevelDebug.
func WithLogger(log *slog.Logger) VMOption { return withLogger(log) }

// WithLabelMode selects when labels become jump targets.
func WithLabelMode(mode LabelMode) VMOption { return withLabelMode(mode) }

// WithQuirks enables behaviors of earlier interpreters.
func WithQuirks(q Quirks) VMOption { return withQuirks(q) }

// WithAliases adds mnemonics for builtin operations, like TOSTR for
// CONVERT. Aliases may not shadow builtin mnemonics.
func WithAliases(aliases map[string]string) (VMOption, error) {
	ops, err := parseAliases(aliases)
	if err != nil {
		return nil, err
	}
	return withAliases(ops), nil
}
