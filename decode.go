package main

import (
	"fmt"
	"strings"
)

type opcode uint8

const (
	codeNone opcode = iota

	codeAdd
	codeSub
	codeMul
	codeDiv
	codeMod
	codeRound
	codeFloor
	codeCeil

	codeAnd
	codeOr
	codeXor
	codeNot

	codeDecl
	codeSet
	codeFree

	codeLabel
	codeJmp
	codeJeq
	codeJgt
	codeJlt
	codeJne

	codePrint
	codeInput
	codeConvert

	codeSlice
	codeIndex
	codeLen
	codeInsert

	numCodes
)

// opcodeTable gives each opcode its mnemonic and operand count.
var opcodeTable = [numCodes]struct {
	name  string
	arity int
}{
	codeNone: {"", 0},

	codeAdd:   {"ADD", 3},
	codeSub:   {"SUB", 3},
	codeMul:   {"MUL", 3},
	codeDiv:   {"DIV", 3},
	codeMod:   {"MOD", 3},
	codeRound: {"ROUND", 2},
	codeFloor: {"FLOOR", 2},
	codeCeil:  {"CEIL", 2},

	codeAnd: {"AND", 3},
	codeOr:  {"OR", 3},
	codeXor: {"XOR", 3},
	codeNot: {"NOT", 2},

	codeDecl: {"DECL", 2},
	codeSet:  {"SET", 2},
	codeFree: {"FREE", 1},

	codeLabel: {"LABEL", 1},
	codeJmp:   {"JMP", 1},
	codeJeq:   {"JEQ", 3},
	codeJgt:   {"JGT", 3},
	codeJlt:   {"JLT", 3},
	codeJne:   {"JNE", 3},

	codePrint:   {"PRINT", 1},
	codeInput:   {"INPUT", 1},
	codeConvert: {"CONVERT", 2},

	codeSlice:  {"SLICE", 4},
	codeIndex:  {"INDEX", 3},
	codeLen:    {"LEN", 2},
	codeInsert: {"INSERT", 3},
}

var mnemonics = make(map[string]opcode, numCodes)

func init() {
	for op := codeNone + 1; op < numCodes; op++ {
		mnemonics[opcodeTable[op].name] = op
	}
}

func (op opcode) String() string {
	if op < numCodes {
		if op == codeNone {
			return "NOP"
		}
		return opcodeTable[op].name
	}
	return fmt.Sprintf("opcode(%d)", uint8(op))
}

func (op opcode) arity() int { return opcodeTable[op].arity }

// lookupMnemonic resolves a case-insensitive mnemonic, consulting aliases
// after the builtin table.
func lookupMnemonic(word string, aliases map[string]opcode) (opcode, bool) {
	word = strings.ToUpper(word)
	if op, ok := mnemonics[word]; ok {
		return op, true
	}
	op, ok := aliases[word]
	return op, ok
}

// instruction is one decoded line: an opcode and exactly arity operand
// tokens.
type instruction struct {
	op   opcode
	args []string
}

// decodeLine splits a line into its opcode and operands. Lines that do not
// start with a known mnemonic, blank lines included, decode to codeNone.
// Operands beyond the opcode's arity are ignored.
func decodeLine(line string, aliases map[string]opcode) (instruction, error) {
	fields := strings.FieldsFunc(line, isASCIISpace)
	if len(fields) == 0 {
		return instruction{}, nil
	}
	op, ok := lookupMnemonic(fields[0], aliases)
	if !ok {
		return instruction{}, nil
	}
	args, n := fields[1:], op.arity()
	if len(args) < n {
		return instruction{op: op}, fmt.Errorf("%w: %v takes %v operands, have %v",
			ErrArity, op, n, len(args))
	}
	return instruction{op: op, args: args[:n]}, nil
}

// parseAliases validates a mnemonic alias map, like the one from a config
// file, into opcode form. Aliases may not shadow builtin mnemonics.
func parseAliases(aliases map[string]string) (map[string]opcode, error) {
	if len(aliases) == 0 {
		return nil, nil
	}
	ops := make(map[string]opcode, len(aliases))
	for alias, target := range aliases {
		alias = strings.ToUpper(alias)
		if _, builtin := mnemonics[alias]; builtin {
			return nil, fmt.Errorf("alias %v shadows a builtin mnemonic", alias)
		}
		op, ok := mnemonics[strings.ToUpper(target)]
		if !ok {
			return nil, fmt.Errorf("alias %v targets unknown mnemonic %q", alias, target)
		}
		ops[alias] = op
	}
	return ops, nil
}

// isASCIISpace matches the separators between tokens; other unicode spaces,
// like NBSP, stay inside a token.
func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
