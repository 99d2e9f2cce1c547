package main

import (
	"bytes"
	"io"
	"log/slog"

	"github.com/jcorbin/flatscript/internal/flushio"
	"github.com/jcorbin/flatscript/internal/lineinput"
)

// VMOption configures a VM; see the With* functions.
type VMOption interface{ apply(vm *VM) }

var defaultOptions = VMOptions(
	withInput(bytes.NewReader(nil)),
	withOutput(io.Discard),
	withLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
)

// VMOptions combines any number of options into one, applied in order.
func VMOptions(opts ...VMOption) VMOption {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, impl)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}

type options []VMOption

func (opts options) apply(vm *VM) {
	for _, opt := range opts {
		opt.apply(vm)
	}
}

type inputOption struct{ io.Reader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type loggerOption struct{ *slog.Logger }
type labelModeOption LabelMode
type quirksOption Quirks
type aliasesOption map[string]opcode

func withInput(r io.Reader) inputOption             { return inputOption{r} }
func withOutput(w io.Writer) outputOption           { return outputOption{w} }
func withTee(w io.Writer) teeOption                 { return teeOption{w} }
func withLogger(log *slog.Logger) loggerOption      { return loggerOption{log} }
func withLabelMode(m LabelMode) labelModeOption     { return labelModeOption(m) }
func withQuirks(q Quirks) quirksOption              { return quirksOption(q) }
func withAliases(a map[string]opcode) aliasesOption { return aliasesOption(a) }

func (i inputOption) apply(vm *VM) {
	vm.in = lineinput.Input{Queue: []io.Reader{i.Reader}}
}

func (o outputOption) apply(vm *VM) {
	if vm.out != nil {
		vm.out.Flush()
	}
	vm.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(vm *VM) {
	vm.out = flushio.Tee(vm.out, o.Writer)
	if cl, ok := o.Writer.(io.Closer); ok {
		vm.closers = append(vm.closers, cl)
	}
}

func (o loggerOption) apply(vm *VM)    { vm.logger = o.Logger }
func (m labelModeOption) apply(vm *VM) { vm.labelMode = LabelMode(m) }
func (q quirksOption) apply(vm *VM)    { vm.quirks = Quirks(q) }

func (a aliasesOption) apply(vm *VM) {
	if len(a) == 0 {
		return
	}
	if vm.aliases == nil {
		vm.aliases = make(map[string]opcode, len(a))
	}
	for alias, op := range a {
		vm.aliases[alias] = op
	}
}
