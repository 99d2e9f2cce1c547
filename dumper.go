package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jcorbin/flatscript/internal/runeio"
)

type vmDumper struct {
	vm  *VM
	out io.Writer

	nameWidth int
}

// dump writes the VM state in a stable, line oriented form:
//
//	# VM Dump
//	  prog: name.fs
//	  ip: 6
//	# Variables
//	  s STR  "hi"
//	  x NATURAL  8
//	# Labels
//	  LOOP @2
//
// Label positions are 1-based line numbers.
func (dump vmDumper) dump() {
	fmt.Fprintf(dump.out, "# VM Dump\n")
	fmt.Fprintf(dump.out, "  prog: %v\n", dump.vm.prog.Name)
	fmt.Fprintf(dump.out, "  ip: %v\n", dump.vm.ip)
	dump.dumpVars()
	dump.dumpLabels()
}

func (dump *vmDumper) dumpVars() {
	names := dump.vm.Names()
	if len(names) == 0 {
		return
	}
	if dump.nameWidth == 0 {
		for _, name := range names {
			if len(name) > dump.nameWidth {
				dump.nameWidth = len(name)
			}
		}
	}

	var buf strings.Builder
	fmt.Fprintf(dump.out, "# Variables\n")
	for _, name := range names {
		v := dump.vm.vars[name]
		fmt.Fprintf(&buf, "  %-*v %v  ", dump.nameWidth, name, v.Type())
		formatValue(&buf, v)
		buf.WriteByte('\n')
		io.WriteString(dump.out, buf.String())
		buf.Reset()
	}
}

func (dump *vmDumper) dumpLabels() {
	names := dump.vm.labels.names()
	if len(names) == 0 {
		return
	}
	fmt.Fprintf(dump.out, "# Labels\n")
	for _, name := range names {
		fmt.Fprintf(dump.out, "  %v @%v\n", name, dump.vm.labels[name]+1)
	}
}

// formatValue writes an unambiguous rendering of v: strings are quoted,
// control characters are named.
func formatValue(buf *strings.Builder, v Value) {
	switch v := v.(type) {
	case String:
		buf.WriteString(strconv.Quote(string(v)))
	case Character:
		if name := runeio.ControlName(rune(v)); name != "" {
			buf.WriteString(name)
		} else {
			buf.WriteString(strconv.QuoteRune(rune(v)))
		}
	case List:
		buf.WriteByte('[')
		for i, e := range v {
			if i > 0 {
				buf.WriteByte(' ')
			}
			formatValue(buf, e)
		}
		buf.WriteByte(']')
	default:
		buf.WriteString(v.String())
	}
}
