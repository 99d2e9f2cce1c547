package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testScope map[string]Value

func (sc testScope) lookupVar(name string) (Value, bool) {
	v, ok := sc[name]
	return v, ok
}

func TestParseLiteral(t *testing.T) {
	sc := testScope{
		"n":    Natural(5),
		"l":    List{Natural(1)},
		"TRUE": String("shadowed"),
	}

	for _, tc := range []struct {
		token string
		want  Value
	}{
		{"0", Natural(0)},
		{"4294967295", Natural(4294967295)},
		{"-12", Integer(-12)},
		{"+12", Integer(12)},
		{`"text`, String("text")},
		{`"`, String("")},
		{"\"x\u00a0", String("x\u00a0")},
		{"[ 1 ,\"\u00a0]", List{Natural(1), String("\u00a0")}},
		{`"quoted"`, String(`quoted"`)},
		{"FALSE", Boolean(false)},
		{"'c'", Character('c')},
		{`'\n'`, Character('\n')},
		{`'\x00'`, Character(0)},
		{"[]", List{}},
		{"[1,2", List{Natural(1), Natural(2)}},
		{"[1,,2,]", List{Natural(1), Natural(2)}},
		{"[[1,2],[3]]", List{List{Natural(1), Natural(2)}, List{Natural(3)}}},
		{`[-1,"s,'x']`, List{Integer(-1), String("s"), Character('x')}},
		{"n", Natural(5)},
		{"[n,l]", List{Natural(5), List{Natural(1)}}},
		{"TRUE", String("shadowed")},
	} {
		v, err := parseLiteral(sc, tc.token)
		if assert.NoError(t, err, "must parse %q", tc.token) {
			assert.Equal(t, tc.want, v, "parse %q", tc.token)
		}
	}

	for _, token := range []string{
		"",
		"x",
		"true",
		"12abc",
		"4294967296",
		"-",
		"+x",
		"-2147483649",
		"'ab'",
		"'c",
		"[1,x]",
		"[[1]",
		"[1]]",
		"3.5",
	} {
		_, err := parseLiteral(sc, token)
		assert.True(t, errors.Is(err, ErrParse), "expected %q to fail parsing, got %v", token, err)
	}
}

func TestParseLiteral_copiesVariables(t *testing.T) {
	sc := testScope{"l": List{Natural(1)}}
	v, err := parseLiteral(sc, "l")
	if assert.NoError(t, err) {
		v.(List)[0] = Natural(2)
		assert.Equal(t, List{Natural(1)}, sc["l"], "operand must not alias its variable")
	}
}
