package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jcorbin/flatscript/internal/lineinput"
)

// VM is the execution environment for one script: it owns the variable
// table, the label table, and the instruction pointer, and runs each line
// in turn through decode, operand resolution, and the operation engine.
type VM struct {
	ioCore

	prog Program
	ip   int // instruction pointer, an index into prog.Lines

	// All named data lives in one flat table, for the whole run.
	vars map[string]Value

	// Labels map to the index of the line declaring them.
	labels labelTable

	labelMode LabelMode
	quirks    Quirks
	aliases   map[string]opcode
}

// LabelMode selects when LABEL lines become jump targets.
type LabelMode uint8

const (
	// LazyLabels registers each label as its LABEL line executes, so jumps
	// may only target labels that execution has already passed.
	LazyLabels LabelMode = iota

	// PrescanLabels registers every label before the first line runs, so
	// forward jumps work too.
	PrescanLabels
)

func (mode LabelMode) String() string {
	switch mode {
	case LazyLabels:
		return "lazy"
	case PrescanLabels:
		return "prescan"
	}
	return fmt.Sprintf("LabelMode(%d)", uint8(mode))
}

// ParseLabelMode parses "lazy" or "prescan"; empty means lazy.
func ParseLabelMode(s string) (LabelMode, error) {
	switch s {
	case "", "lazy":
		return LazyLabels, nil
	case "prescan":
		return PrescanLabels, nil
	}
	return 0, fmt.Errorf("invalid label mode %q, want lazy or prescan", s)
}

// Quirks re-enable behaviors of earlier interpreters of the language.
type Quirks struct {
	// SubAdds makes SUB compute a sum.
	SubAdds bool `toml:"sub-adds" yaml:"sub-adds"`

	// JLTEquals makes JLT jump on equality, like JEQ.
	JLTEquals bool `toml:"jlt-equals" yaml:"jlt-equals"`
}

func (vm *VM) reset(prog Program) {
	vm.prog = prog
	if vm.prog.Name == "" {
		vm.prog.Name = "<script>"
	}
	vm.ip = 0
	vm.vars = make(map[string]Value)
	vm.labels = make(labelTable)
}

func (vm *VM) run(ctx context.Context) {
	vm.logger.Debug("run", "prog", vm.prog.Name, "lines", len(vm.prog.Lines), "labels", vm.labelMode)
	if vm.labelMode == PrescanLabels {
		vm.prescan()
	}
	for vm.ip < len(vm.prog.Lines) {
		vm.haltif(ctx.Err())
		vm.step()
	}
	vm.logger.Debug("halt", "ip", vm.ip)
}

// prescan registers every well formed LABEL line.
func (vm *VM) prescan() {
	for i, line := range vm.prog.Lines {
		if inst, err := decodeLine(line, vm.aliases); err == nil && inst.op == codeLabel {
			vm.labels.define(inst.args[0], i)
		}
	}
}

// step executes the line under the instruction pointer, then advances it.
// After a jump the pointer rests on the label's own line, so execution
// resumes on the line after it.
func (vm *VM) step() {
	inst, err := decodeLine(vm.prog.Lines[vm.ip], vm.aliases)
	vm.haltif(err)
	if inst.op != codeNone {
		if vm.logger.Enabled(context.Background(), slog.LevelDebug) {
			vm.logger.Debug("exec", "ip", vm.ip, "op", inst.op, "args", inst.args)
		}
		vm.apply(vm.dispatch(inst))
	}
	vm.ip++
}

func (vm *VM) dispatch(inst instruction) control {
	args := inst.args
	switch inst.op {
	case codeAdd:
		vm.binary(args, opAdd)
	case codeSub:
		if vm.quirks.SubAdds {
			vm.binary(args, opSubAdds)
		} else {
			vm.binary(args, opSub)
		}
	case codeMul:
		vm.binary(args, opMul)
	case codeDiv:
		vm.binary(args, opDiv)
	case codeMod:
		vm.binary(args, opMod)
	case codeRound:
		vm.unary(args, opRound)
	case codeFloor:
		vm.unary(args, opFloor)
	case codeCeil:
		vm.unary(args, opCeil)

	case codeAnd:
		vm.binary(args, opAnd)
	case codeOr:
		vm.binary(args, opOr)
	case codeXor:
		vm.binary(args, opXor)
	case codeNot:
		vm.unary(args, opNot)

	case codeDecl:
		ctl, err := opDecl(args[0], args[1])
		vm.haltif(err)
		return ctl
	case codeSet:
		vm.unary(args, opSet)
	case codeFree:
		return opFree(args[0])

	case codeLabel:
		return opLabel(args[0])
	case codeJmp:
		return opJmp(args[0])
	case codeJeq:
		return opJeq(args[0], vm.resolve(args[1]), vm.resolve(args[2]))
	case codeJne:
		return opJne(args[0], vm.resolve(args[1]), vm.resolve(args[2]))
	case codeJgt:
		return opJgt(args[0], vm.resolve(args[1]), vm.resolve(args[2]))
	case codeJlt:
		if vm.quirks.JLTEquals {
			return opJeq(args[0], vm.resolve(args[1]), vm.resolve(args[2]))
		}
		return opJlt(args[0], vm.resolve(args[1]), vm.resolve(args[2]))

	case codePrint:
		vm.print(args[0])
	case codeInput:
		vm.update(args[0], vm.input)
	case codeConvert:
		vm.unary(args, opConvert)

	case codeSlice:
		vm.update(args[0], func(dst *Value) error {
			return opSlice(dst, vm.resolve(args[1]), vm.resolve(args[2]), vm.resolve(args[3]))
		})
	case codeIndex:
		vm.binary(args, opIndex)
	case codeLen:
		vm.unary(args, opLen)
	case codeInsert:
		vm.binary(args, opInsert)

	default:
		vm.halt(fmt.Errorf("invalid %v", inst.op))
	}
	return control{}
}

// apply carries out a control returned by an operation.
func (vm *VM) apply(ctl control) {
	switch ctl.kind {
	case ctlNone:
	case ctlDeclare:
		vm.vars[ctl.name] = ctl.typ.Zero()
	case ctlFree:
		if _, declared := vm.vars[ctl.name]; !declared {
			vm.halt(fmt.Errorf("%w: cannot FREE %q", ErrUndeclared, ctl.name))
		}
		delete(vm.vars, ctl.name)
	case ctlLabel:
		vm.labels.define(ctl.name, vm.ip)
	case ctlJump:
		at, defined := vm.labels[ctl.name]
		if !defined {
			vm.halt(fmt.Errorf("%w %q", ErrUnresolvedLabel, ctl.name))
		}
		vm.logger.Debug("jump", "label", ctl.name, "to", at)
		vm.ip = at
	default:
		vm.halt(fmt.Errorf("invalid control kind %v", ctl.kind))
	}
}

// binary runs an operation on args[0] as its destination, with args[1] and
// args[2] resolved as operands.
func (vm *VM) binary(args []string, op func(dst *Value, a, b Value) error) {
	vm.update(args[0], func(dst *Value) error {
		return op(dst, vm.resolve(args[1]), vm.resolve(args[2]))
	})
}

// unary runs an operation on args[0] as its destination, with args[1]
// resolved as its operand.
func (vm *VM) unary(args []string, op func(dst *Value, a Value) error) {
	vm.update(args[0], func(dst *Value) error {
		return op(dst, vm.resolve(args[1]))
	})
}

// update runs f with a copy of the named variable, storing the result back
// if f succeeds.
func (vm *VM) update(name string, f func(dst *Value) error) {
	dst := vm.lookup(name)
	vm.haltif(f(&dst))
	vm.vars[name] = dst
}

func (vm *VM) lookup(name string) Value {
	v, declared := vm.vars[name]
	if !declared {
		vm.halt(fmt.Errorf("%w %q", ErrUndeclared, name))
	}
	return v
}

func (vm *VM) lookupVar(name string) (Value, bool) {
	v, declared := vm.vars[name]
	return v, declared
}

// resolve turns an operand token into a value: a copy of the variable it
// names, or else the literal it spells.
func (vm *VM) resolve(token string) Value {
	v, err := parseLiteral(vm, token)
	vm.haltif(err)
	return v
}

// halt ends the run with err, located at the current line.
func (vm *VM) halt(err error) {
	if ferr := vm.out.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		loc := lineinput.Location{Name: vm.prog.Name, Line: vm.ip + 1}
		var text string
		if vm.ip < len(vm.prog.Lines) {
			text = vm.prog.Lines[vm.ip]
		}
		err = LineError{Location: loc, Text: text, Err: err}
		vm.logger.Debug("halt", "error", err)
	}
	panic(haltError{err})
}

func (vm *VM) haltif(err error) {
	if err != nil {
		vm.halt(err)
	}
}
