package main

import (
	"io"
	"strings"

	"github.com/jcorbin/flatscript/internal/lineinput"
)

// Program is a script: a name for error locations, and its lines.
type Program struct {
	Name  string
	Lines []string
}

// ReadProgram reads every line of r as a program. The program is named after
// r, if it has a Name method like *os.File does.
func ReadProgram(r io.Reader) (Program, error) {
	in := lineinput.Input{Queue: []io.Reader{r}}
	lines, err := in.ReadAll()
	return Program{Name: lineinput.NameOf(r), Lines: lines}, err
}

// ParseProgram splits source text into a program.
func ParseProgram(name, src string) Program {
	prog, _ := ReadProgram(lineinput.NamedReader(name, strings.NewReader(src)))
	return prog
}
