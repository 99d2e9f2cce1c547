package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/jcorbin/flatscript/internal/flushio"
	"github.com/jcorbin/flatscript/internal/lineinput"
)

type ioCore struct {
	in     lineinput.Input
	out    flushio.WriteFlusher
	logger *slog.Logger

	closers []io.Closer
}

// Close closes any resources held by options, like a tee writer, in reverse
// order.
func (ioc *ioCore) Close() (err error) {
	for i := len(ioc.closers) - 1; i >= 0; i-- {
		if cerr := ioc.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	ioc.closers = nil
	return err
}

// Name    Operands    Function
// PRINT   var         write the STR variable's text to output, as is
func (vm *VM) print(name string) {
	s, ok := vm.lookup(name).(String)
	if !ok {
		vm.halt(typeMismatch("PRINT", TypeString, vm.lookup(name).Type()))
	}
	if _, err := io.WriteString(vm.out, string(s)); err != nil {
		vm.halt(err)
	}
}

// Name    Operands    Function
// INPUT   dest        dest = the next line of input, without its line ending
func (vm *VM) input(dst *Value) error {
	if _, ok := (*dst).(String); !ok {
		return typeMismatch("INPUT", TypeString, (*dst).Type())
	}
	// the user must see any prompt before we block
	if err := vm.out.Flush(); err != nil {
		return err
	}
	line, err := vm.in.ReadLine()
	if err == io.EOF {
		return fmt.Errorf("%w: end of input", ErrInput)
	} else if err != nil {
		return fmt.Errorf("%w: %v", ErrInput, err)
	}
	*dst = String(line)
	return nil
}
