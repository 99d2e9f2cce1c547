package main

import (
	"fmt"
	"math"
)

// The operation engine. Each operation works on operand values that have
// already been resolved, and a pointer to a copy of the destination
// variable's value, which the caller stores back on success. Operations
// that affect the environment rather than a variable return a control.

// control is a request from an operation to the environment.
type control struct {
	kind controlKind
	name string
	typ  VarType
}

type controlKind uint8

const (
	ctlNone controlKind = iota
	ctlDeclare
	ctlFree
	ctlLabel
	ctlJump
)

//// Arithmetic

// Name    Operands      Function
// ADD     dest a b      dest = a + b; concatenates into a List or String dest
// SUB     dest a b      dest = a - b
// MUL     dest a b      dest = a * b
// DIV     dest a b      dest = a / b
// MOD     dest a b      dest = a % b, truncated remainder
//
// Operands are numbers, computed on as 32-bit floats; the result is cast
// into dest's type by castNumeric.

func opAdd(dst *Value, a, b Value) error {
	switch (*dst).(type) {
	case List:
		var list List
		for _, v := range [2]Value{a, b} {
			if l, ok := v.(List); ok {
				list = append(list, Copy(l).(List)...)
			} else {
				list = append(list, Copy(v))
			}
		}
		if list == nil {
			list = List{}
		}
		*dst = list
		return nil
	case String:
		*dst = String(a.String() + b.String())
		return nil
	}
	return arith(dst, a, b, func(x, y float32) float32 { return x + y })
}

func opSub(dst *Value, a, b Value) error {
	return arith(dst, a, b, func(x, y float32) float32 { return x - y })
}

// opSubAdds is SUB as some older interpreters implemented it: a sum.
func opSubAdds(dst *Value, a, b Value) error {
	return arith(dst, a, b, func(x, y float32) float32 { return x + y })
}

func opMul(dst *Value, a, b Value) error {
	return arith(dst, a, b, func(x, y float32) float32 { return x * y })
}

func opDiv(dst *Value, a, b Value) error {
	return arith(dst, a, b, func(x, y float32) float32 { return x / y })
}

func opMod(dst *Value, a, b Value) error {
	return arith(dst, a, b, func(x, y float32) float32 {
		return float32(math.Mod(float64(x), float64(y)))
	})
}

func arith(dst *Value, a, b Value, f func(x, y float32) float32) error {
	x, err := numeric(a)
	if err != nil {
		return err
	}
	y, err := numeric(b)
	if err != nil {
		return err
	}
	return storeNumber(dst, f(x, y))
}

func storeNumber(dst *Value, r float32) error {
	v, err := castNumeric((*dst).Type(), r)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

//// Rounding

// Name    Operands      Function
// ROUND   dest x        dest = x rounded half away from zero
// FLOOR   dest x        dest = x rounded down
// CEIL    dest x        dest = x rounded up

func opRound(dst *Value, x Value) error { return rounding(dst, x, math.Round) }
func opFloor(dst *Value, x Value) error { return rounding(dst, x, math.Floor) }
func opCeil(dst *Value, x Value) error  { return rounding(dst, x, math.Ceil) }

func rounding(dst *Value, x Value, f func(float64) float64) error {
	n, err := numeric(x)
	if err != nil {
		return err
	}
	return storeNumber(dst, float32(f(float64(n))))
}

//// Logic

// Name    Operands      Function
// AND     dest a b      dest = a and b
// OR      dest a b      dest = a or b
// XOR     dest a b      dest = a != b
// NOT     dest a        dest = not a
//
// dest and all operands must be Boolean.

func opAnd(dst *Value, a, b Value) error {
	return logic(dst, a, b, func(x, y bool) bool { return x && y })
}

func opOr(dst *Value, a, b Value) error {
	return logic(dst, a, b, func(x, y bool) bool { return x || y })
}

func opXor(dst *Value, a, b Value) error {
	return logic(dst, a, b, func(x, y bool) bool { return x != y })
}

func opNot(dst *Value, a Value) error {
	return logic(dst, a, Boolean(false), func(x, _ bool) bool { return !x })
}

func logic(dst *Value, a, b Value, f func(x, y bool) bool) error {
	if _, ok := (*dst).(Boolean); !ok {
		return typeMismatch("logic destination", TypeBoolean, (*dst).Type())
	}
	x, ok := a.(Boolean)
	if !ok {
		return typeMismatch("logic operand", TypeBoolean, a.Type())
	}
	y, ok := b.(Boolean)
	if !ok {
		return typeMismatch("logic operand", TypeBoolean, b.Type())
	}
	*dst = Boolean(f(bool(x), bool(y)))
	return nil
}

//// Variables

// Name    Operands      Function
// DECL    name type     declare name with the zero value of type
// SET     dest value    dest = value; both must have the same type
// FREE    name          forget name

func opDecl(name, typeName string) (control, error) {
	t, err := ParseVarType(typeName)
	if err != nil {
		return control{}, err
	}
	return control{kind: ctlDeclare, name: name, typ: t}, nil
}

func opSet(dst *Value, v Value) error {
	if want, got := (*dst).Type(), v.Type(); want != got {
		return typeMismatch("SET", want, got)
	}
	*dst = Copy(v)
	return nil
}

func opFree(name string) control {
	return control{kind: ctlFree, name: name}
}

//// Control flow

// Name    Operands      Function
// LABEL   name          mark this line as name
// JMP     label         continue after label's line
// JEQ     label a b     JMP if a equals b
// JNE     label a b     JMP unless a equals b
// JGT     label a b     JMP if a is greater than b
// JLT     label a b     JMP if a is less than b
//
// Values of different types are never equal, and never ordered.

func opLabel(name string) control { return control{kind: ctlLabel, name: name} }
func opJmp(label string) control  { return control{kind: ctlJump, name: label} }

func opJeq(label string, a, b Value) control { return jumpIf(label, Equal(a, b)) }
func opJne(label string, a, b Value) control { return jumpIf(label, !Equal(a, b)) }

func opJgt(label string, a, b Value) control {
	c, ok := Compare(a, b)
	return jumpIf(label, ok && c > 0)
}

func opJlt(label string, a, b Value) control {
	c, ok := Compare(a, b)
	return jumpIf(label, ok && c < 0)
}

func jumpIf(label string, cond bool) control {
	if cond {
		return opJmp(label)
	}
	return control{}
}

//// Lists

// Name    Operands          Function
// SLICE   dest list i j     dest = list[i:j]
// INDEX   dest list i       dest = list[i]; same type rule as SET
// LEN     dest list         dest = number of elements in list
// INSERT  list i item       insert item before list[i]; i == len appends

func opSlice(dst *Value, list, start, end Value) error {
	if _, ok := (*dst).(List); !ok {
		return typeMismatch("SLICE destination", TypeList, (*dst).Type())
	}
	l, err := asList(list)
	if err != nil {
		return err
	}
	i, err := asIndex(start)
	if err != nil {
		return err
	}
	j, err := asIndex(end)
	if err != nil {
		return err
	}
	if i > j || j > len(l) {
		return fmt.Errorf("%w: slice [%v:%v] of %v elements", ErrRange, i, j, len(l))
	}
	*dst = Copy(l[i:j])
	return nil
}

func opIndex(dst *Value, list, index Value) error {
	l, err := asList(list)
	if err != nil {
		return err
	}
	i, err := asIndex(index)
	if err != nil {
		return err
	}
	if i >= len(l) {
		return fmt.Errorf("%w: index %v of %v elements", ErrRange, i, len(l))
	}
	return opSet(dst, l[i])
}

func opLen(dst *Value, list Value) error {
	l, err := asList(list)
	if err != nil {
		return err
	}
	if !(*dst).Type().isNumeric() {
		return fmt.Errorf("%w: LEN into %v", ErrTypeMismatch, (*dst).Type())
	}
	return storeNumber(dst, float32(len(l)))
}

func opInsert(dst *Value, index, item Value) error {
	l, err := asList(*dst)
	if err != nil {
		return err
	}
	i, err := asIndex(index)
	if err != nil {
		return err
	}
	if i > len(l) {
		return fmt.Errorf("%w: insert at %v of %v elements", ErrRange, i, len(l))
	}
	l = append(l, nil)
	copy(l[i+1:], l[i:])
	l[i] = Copy(item)
	*dst = l
	return nil
}

func asList(v Value) (List, error) {
	l, ok := v.(List)
	if !ok {
		return nil, typeMismatch("list operand", TypeList, v.Type())
	}
	return l, nil
}

// asIndex converts a list position operand: any non-negative integral
// number.
func asIndex(v Value) (int, error) {
	switch n := v.(type) {
	case Natural:
		return int(n), nil
	case Integer:
		if n >= 0 {
			return int(n), nil
		}
	case Float:
		if n >= 0 && float32(math.Trunc(float64(n))) == float32(n) && n <= math.MaxInt32 {
			return int(n), nil
		}
	default:
		return 0, fmt.Errorf("%w: %v %q is not an index", ErrTypeMismatch, v.Type(), v)
	}
	return 0, fmt.Errorf("%w: invalid index %v", ErrRange, v)
}
