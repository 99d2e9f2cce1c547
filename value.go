package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Value is the closed set of runtime values a variable may hold: one of
// Natural, Integer, Float, Character, Boolean, String, or List.
type Value interface {
	Type() VarType
	String() string
	value()
}

type (
	// Natural is an unsigned 32-bit integer.
	Natural uint32

	// Integer is a signed 32-bit integer.
	Integer int32

	// Float is a 32-bit floating point number.
	Float float32

	// Character is a single unicode code point.
	Character rune

	// Boolean is TRUE or FALSE.
	Boolean bool

	// String is a run of text.
	String string

	// List is an ordered sequence of any values; elements need not share a
	// type.
	List []Value
)

func (Natural) value()   {}
func (Integer) value()   {}
func (Float) value()     {}
func (Character) value() {}
func (Boolean) value()   {}
func (String) value()    {}
func (List) value()      {}

func (Natural) Type() VarType   { return TypeNatural }
func (Integer) Type() VarType   { return TypeInteger }
func (Float) Type() VarType     { return TypeFloat }
func (Character) Type() VarType { return TypeCharacter }
func (Boolean) Type() VarType   { return TypeBoolean }
func (String) Type() VarType    { return TypeString }
func (List) Type() VarType      { return TypeList }

func (n Natural) String() string   { return strconv.FormatUint(uint64(n), 10) }
func (i Integer) String() string   { return strconv.FormatInt(int64(i), 10) }
func (f Float) String() string     { return strconv.FormatFloat(float64(f), 'f', -1, 32) }
func (c Character) String() string { return string(rune(c)) }
func (s String) String() string    { return string(s) }

func (b Boolean) String() string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

// String renders the list as its element display forms separated by spaces
// within brackets, e.g. "[1 2 x]".
func (l List) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range l {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(v.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// VarType names the type of a variable, fixed when it is declared.
type VarType uint8

// Variable types, in their DECL spelling order.
const (
	TypeNatural VarType = iota
	TypeInteger
	TypeFloat
	TypeCharacter
	TypeBoolean
	TypeString
	TypeList
)

var varTypeNames = [...]string{
	TypeNatural:   "NATURAL",
	TypeInteger:   "INTEGER",
	TypeFloat:     "FLOAT",
	TypeCharacter: "CHARACTER",
	TypeBoolean:   "BOOLEAN",
	TypeString:    "STR",
	TypeList:      "LIST",
}

func (t VarType) String() string {
	if int(t) < len(varTypeNames) {
		return varTypeNames[t]
	}
	return fmt.Sprintf("VarType(%d)", uint8(t))
}

// ParseVarType parses a DECL type name.
func ParseVarType(name string) (VarType, error) {
	for t, n := range varTypeNames {
		if n == name {
			return VarType(t), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown type %q", ErrParse, name)
}

// Zero returns the initial value of a freshly declared variable of type t.
func (t VarType) Zero() Value {
	switch t {
	case TypeNatural:
		return Natural(0)
	case TypeInteger:
		return Integer(0)
	case TypeFloat:
		return Float(0)
	case TypeCharacter:
		return Character(0)
	case TypeBoolean:
		return Boolean(false)
	case TypeString:
		return String("")
	case TypeList:
		return List{}
	}
	panic(fmt.Sprintf("invalid %v", t))
}

// isNumeric reports whether values of type t have a numeric projection.
func (t VarType) isNumeric() bool {
	return t == TypeNatural || t == TypeInteger || t == TypeFloat
}

// Copy returns a deep copy of v; lists are never shared between variables.
func Copy(v Value) Value {
	if l, ok := v.(List); ok {
		c := make(List, len(l))
		for i, e := range l {
			c[i] = Copy(e)
		}
		return c
	}
	return v
}

// numeric projects a Natural, Integer, or Float onto a float32.
func numeric(v Value) (float32, error) {
	switch n := v.(type) {
	case Natural:
		return float32(n), nil
	case Integer:
		return float32(n), nil
	case Float:
		return float32(n), nil
	}
	return 0, fmt.Errorf("%w: %v %q is not a number", ErrTypeMismatch, v.Type(), v)
}

// castNumeric converts an arithmetic result into a value of type t:
// Natural takes the magnitude of the rounded result, Integer the rounded
// result, and Float the result unchanged. Integral results saturate at the
// bounds of their type; NaN becomes 0.
func castNumeric(t VarType, r float32) (Value, error) {
	switch t {
	case TypeNatural:
		f := math.Abs(math.Round(float64(r)))
		switch {
		case math.IsNaN(f):
			return Natural(0), nil
		case f >= math.MaxUint32:
			return Natural(math.MaxUint32), nil
		}
		return Natural(f), nil

	case TypeInteger:
		f := math.Round(float64(r))
		switch {
		case math.IsNaN(f):
			return Integer(0), nil
		case f >= math.MaxInt32:
			return Integer(math.MaxInt32), nil
		case f <= math.MinInt32:
			return Integer(math.MinInt32), nil
		}
		return Integer(f), nil

	case TypeFloat:
		return Float(r), nil
	}
	return nil, fmt.Errorf("%w: cannot store a number into %v", ErrTypeMismatch, t)
}

// Equal reports whether a and b are the same variant holding the same value.
func Equal(a, b Value) bool {
	if la, ok := a.(List); ok {
		lb, ok := b.(List)
		if !ok || len(la) != len(lb) {
			return false
		}
		for i := range la {
			if !Equal(la[i], lb[i]) {
				return false
			}
		}
		return true
	}
	return a == b
}

// Compare orders a relative to b, returning -1, 0, or +1. The second return
// is false when a and b are not ordered: different variants, or a NaN.
func Compare(a, b Value) (int, bool) {
	switch x := a.(type) {
	case Natural:
		if y, ok := b.(Natural); ok {
			return cmpOrdered(x, y), true
		}
	case Integer:
		if y, ok := b.(Integer); ok {
			return cmpOrdered(x, y), true
		}
	case Float:
		if y, ok := b.(Float); ok {
			if x != x || y != y {
				return 0, false
			}
			return cmpOrdered(x, y), true
		}
	case Character:
		if y, ok := b.(Character); ok {
			return cmpOrdered(x, y), true
		}
	case String:
		if y, ok := b.(String); ok {
			return strings.Compare(string(x), string(y)), true
		}
	case Boolean:
		if y, ok := b.(Boolean); ok {
			return cmpOrdered(boolInt(bool(x)), boolInt(bool(y))), true
		}
	case List:
		if y, ok := b.(List); ok {
			for i := 0; i < len(x) && i < len(y); i++ {
				if c, ok := Compare(x[i], y[i]); !ok {
					return 0, false
				} else if c != 0 {
					return c, true
				}
			}
			return cmpOrdered(len(x), len(y)), true
		}
	}
	return 0, false
}

type ordered interface {
	~uint32 | ~int32 | ~float32 | ~int
}

func cmpOrdered[T ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
