package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jcorbin/flatscript/internal/runeio"
)

// scope looks up the current value of a variable.
type scope interface {
	lookupVar(name string) (Value, bool)
}

// parseLiteral turns one operand token into a value. A token naming a
// declared variable yields a copy of that variable's value, so any literal
// operand may also be a variable reference.
//
// Otherwise the token's leading character selects its form:
//
//	-12 +12   Integer
//	"text     String; the rest of the token, there is no closing quote
//	TRUE      Boolean, also FALSE
//	[1,2,[3]] List of comma separated literals, nesting allowed
//	'c'       Character, Go escapes like '\n' allowed
//	12        Natural
func parseLiteral(sc scope, token string) (Value, error) {
	token = strings.TrimFunc(token, isASCIISpace)
	if sc != nil {
		if v, ok := sc.lookupVar(token); ok {
			return Copy(v), nil
		}
	}

	if token == "" {
		return nil, fmt.Errorf("%w: empty token", ErrParse)
	}

	switch token[0] {
	case '-', '+':
		if len(token) < 2 || !isDigits(token[1:]) {
			return nil, fmt.Errorf("%w: bad integer %q", ErrParse, token)
		}
		n, err := strconv.ParseInt(token, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		return Integer(n), nil

	case '"':
		return String(token[1:]), nil

	case '[':
		return parseList(sc, token)

	case '\'':
		r, err := runeio.UnquoteRune(token)
		if err != nil {
			return nil, fmt.Errorf("%w: bad character %s: %v", ErrParse, token, err)
		}
		return Character(r), nil
	}

	switch token {
	case "TRUE":
		return Boolean(true), nil
	case "FALSE":
		return Boolean(false), nil
	}

	if !isDigits(token) {
		return nil, fmt.Errorf("%w: %q", ErrParse, token)
	}
	n, err := strconv.ParseUint(token, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return Natural(n), nil
}

func parseList(sc scope, token string) (Value, error) {
	body := strings.TrimPrefix(token, "[")
	if strings.HasSuffix(body, "]") {
		body = body[:len(body)-1]
	}
	pieces, err := splitElements(body)
	if err != nil {
		return nil, fmt.Errorf("%w: list %s: %v", ErrParse, token, err)
	}
	list := make(List, 0, len(pieces))
	for _, piece := range pieces {
		v, err := parseLiteral(sc, piece)
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, nil
}

// splitElements splits a list body on the commas that are not nested inside
// a sub-list; empty elements are dropped.
func splitElements(body string) (pieces []string, err error) {
	depth, start := 0, 0
	emit := func(end int) {
		if piece := strings.TrimFunc(body[start:end], isASCIISpace); piece != "" {
			pieces = append(pieces, piece)
		}
		start = end + 1
	}
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '[':
			depth++
		case ']':
			if depth--; depth < 0 {
				return nil, fmt.Errorf("unbalanced ] at %v", i)
			}
		case ',':
			if depth == 0 {
				emit(i)
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("unclosed [")
	}
	emit(len(body))
	return pieces, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
