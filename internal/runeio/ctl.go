package runeio

import (
	"errors"
	"strconv"
)

// ControlRune represents a named control unicode codepoint.
type ControlRune struct {
	N string
	R rune
}

// C0Ctls contains the classic ASCII control characters.
var C0Ctls = [32]ControlRune{
	{"NUL", 0x00}, {"SOH", 0x01}, {"STX", 0x02}, {"ETX", 0x03},
	{"EOT", 0x04}, {"ENQ", 0x05}, {"ACK", 0x06}, {"BEL", 0x07},
	{"BS", 0x08}, {"HT", 0x09}, {"NL", 0x0A}, {"VT", 0x0B},
	{"NP", 0x0C}, {"CR", 0x0D}, {"SO", 0x0E}, {"SI", 0x0F},
	{"DLE", 0x10}, {"DC1", 0x11}, {"DC2", 0x12}, {"DC3", 0x13},
	{"DC4", 0x14}, {"NAK", 0x15}, {"SYN", 0x16}, {"ETB", 0x17},
	{"CAN", 0x18}, {"EM", 0x19}, {"SUB", 0x1A}, {"ESC", 0x1B},
	{"FS", 0x1C}, {"GS", 0x1D}, {"RS", 0x1E}, {"US", 0x1F},
}

// ControlName returns a "<NAME>" mnemonic for C0 controls, space and
// delete, or "" for any other rune.
func ControlName(r rune) string {
	switch {
	case 0 <= r && r < 0x20:
		return "<" + C0Ctls[r].N + ">"
	case r == 0x20:
		return "<SP>"
	case r == 0x7f:
		return "<DEL>"
	}
	return ""
}

// ErrInvalidRune is returned by UnquoteRune for malformed character tokens.
var ErrInvalidRune = errors.New(`character literal must look like 'x'`)

// UnquoteRune parses a single quoted character token like 'x', including the
// Go escape forms like '\n' or '\x00' between the quotes.
func UnquoteRune(token string) (rune, error) {
	if len(token) < 3 || token[0] != '\'' || token[len(token)-1] != '\'' {
		return 0, ErrInvalidRune
	}
	value, _, tail, err := strconv.UnquoteChar(token[1:len(token)-1], '\'')
	if err != nil {
		return 0, err
	}
	if tail != "" {
		return 0, ErrInvalidRune
	}
	return value, nil
}
