package main

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_String(t *testing.T) {
	for _, tc := range []struct {
		v    Value
		want string
	}{
		{Natural(42), "42"},
		{Integer(-7), "-7"},
		{Float(3.5), "3.5"},
		{Float(-3.7), "-3.7"},
		{Float(0.1), "0.1"},
		{Character('x'), "x"},
		{Boolean(true), "TRUE"},
		{Boolean(false), "FALSE"},
		{String("raw text"), "raw text"},
		{List{}, "[]"},
		{List{Natural(1), Natural(2), Character('x')}, "[1 2 x]"},
		{List{List{Integer(-1)}, String("a")}, "[[-1] a]"},
	} {
		assert.Equal(t, tc.want, tc.v.String(), "display of %#v", tc.v)
	}
}

func TestParseVarType(t *testing.T) {
	for _, name := range []string{"NATURAL", "INTEGER", "FLOAT", "CHARACTER", "BOOLEAN", "STR", "LIST"} {
		vt, err := ParseVarType(name)
		if assert.NoError(t, err, "must parse %v", name) {
			assert.Equal(t, name, vt.String())
			assert.Equal(t, vt, vt.Zero().Type(), "zero value of %v", name)
		}
	}
	for _, name := range []string{"", "natural", "STRING", "LST"} {
		_, err := ParseVarType(name)
		assert.True(t, errors.Is(err, ErrParse), "expected %q to fail, got %v", name, err)
	}
}

func TestCopy(t *testing.T) {
	orig := List{Natural(1), List{Natural(2)}}
	dup := Copy(orig).(List)
	dup[0] = Natural(9)
	dup[1].(List)[0] = Natural(9)
	assert.Equal(t, List{Natural(1), List{Natural(2)}}, orig, "copy must not alias")
}

func TestCastNumeric(t *testing.T) {
	for _, tc := range []struct {
		name string
		t    VarType
		r    float32
		want Value
	}{
		{"natural rounds magnitude", TypeNatural, -3.7, Natural(4)},
		{"natural rounds half away", TypeNatural, 2.5, Natural(3)},
		{"natural saturates", TypeNatural, 1e12, Natural(math.MaxUint32)},
		{"natural nan", TypeNatural, float32(math.NaN()), Natural(0)},
		{"integer rounds", TypeInteger, -3.5, Integer(-4)},
		{"integer saturates high", TypeInteger, 1e12, Integer(math.MaxInt32)},
		{"integer saturates low", TypeInteger, -1e12, Integer(math.MinInt32)},
		{"float as is", TypeFloat, 0.25, Float(0.25)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			v, err := castNumeric(tc.t, tc.r)
			require.NoError(t, err)
			assert.Equal(t, tc.want, v)
		})
	}

	for _, vt := range []VarType{TypeCharacter, TypeBoolean, TypeString, TypeList} {
		_, err := castNumeric(vt, 1)
		assert.True(t, errors.Is(err, ErrTypeMismatch), "expected no numeric cast into %v, got %v", vt, err)
	}
}

func TestNumeric(t *testing.T) {
	n, err := numeric(Integer(-2))
	require.NoError(t, err)
	assert.Equal(t, float32(-2), n)

	for _, v := range []Value{Character('1'), Boolean(true), String("1"), List{Natural(1)}} {
		_, err := numeric(v)
		assert.True(t, errors.Is(err, ErrTypeMismatch), "expected %v to not be numeric, got %v", v.Type(), err)
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(Natural(1), Natural(1)))
	assert.False(t, Equal(Natural(1), Integer(1)), "different variants")
	assert.False(t, Equal(Natural(1), Float(1)), "different variants")
	assert.True(t, Equal(String("a"), String("a")))
	assert.True(t, Equal(List{Natural(1), List{}}, List{Natural(1), List{}}))
	assert.False(t, Equal(List{Natural(1)}, List{Integer(1)}))
	assert.False(t, Equal(List{Natural(1)}, List{Natural(1), Natural(1)}))
	assert.False(t, Equal(List{}, String("")))
	nan := Float(math.NaN())
	assert.False(t, Equal(nan, nan), "NaN is never equal")
}

func TestCompare(t *testing.T) {
	for _, tc := range []struct {
		a, b Value
		want int
		ok   bool
	}{
		{Natural(1), Natural(2), -1, true},
		{Integer(-1), Integer(-2), 1, true},
		{Float(0.5), Float(0.5), 0, true},
		{Character('a'), Character('b'), -1, true},
		{String("b"), String("ab"), 1, true},
		{Boolean(false), Boolean(true), -1, true},
		{List{Natural(1), Natural(2)}, List{Natural(1), Natural(3)}, -1, true},
		{List{Natural(1)}, List{Natural(1), Natural(0)}, -1, true},
		{List{Natural(1)}, List{Integer(1)}, 0, false},
		{Natural(1), Integer(1), 0, false},
		{Float(float32(math.NaN())), Float(1), 0, false},
	} {
		c, ok := Compare(tc.a, tc.b)
		assert.Equal(t, tc.ok, ok, "ordered %v %v", tc.a, tc.b)
		assert.Equal(t, tc.want, c, "compare %v %v", tc.a, tc.b)
	}
}
