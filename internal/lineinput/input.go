package lineinput

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Location names a line in an Input stream.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Input implements sequential line reading through a Queue of one or more
// input streams. The location of the last returned line is kept in Last.
type Input struct {
	r     io.Reader
	br    *bufio.Reader
	Queue []io.Reader
	Last  Location
	scan  Location
}

// ReadLine returns the next line, without its line terminator, moving on to
// the next queued stream when the current one is exhausted. A final line
// without a terminator is still returned; io.EOF is only returned once every
// stream has been consumed.
func (in *Input) ReadLine() (string, error) {
	for {
		if in.br == nil && !in.nextIn() {
			return "", io.EOF
		}

		line, err := in.br.ReadString('\n')
		if err == nil || (err == io.EOF && line != "") {
			in.scan.Line++
			in.Last = in.scan
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if err == io.EOF {
				in.closeIn()
			}
			return line, nil
		}
		if err != io.EOF {
			return "", err
		}
		in.closeIn()
	}
}

// ReadAll returns every remaining line.
func (in *Input) ReadAll() (lines []string, err error) {
	for {
		line, err := in.ReadLine()
		if err == io.EOF {
			return lines, nil
		} else if err != nil {
			return lines, err
		}
		lines = append(lines, line)
	}
}

func (in *Input) closeIn() {
	if cl, ok := in.r.(io.Closer); ok {
		cl.Close()
	}
	in.r, in.br = nil, nil
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	r := in.Queue[0]
	in.Queue = in.Queue[1:]
	in.r = r
	in.br = bufferOf(r)
	in.scan = Location{Name: NameOf(r)}
	return true
}

// bufferOf reuses any bufio.Reader already wrapping r, so that a stream shared
// by several Inputs does not lose read-ahead data between them.
func bufferOf(r io.Reader) *bufio.Reader {
	if nr, ok := r.(namedReader); ok {
		r = nr.Reader
	}
	if br, ok := r.(*bufio.Reader); ok {
		return br
	}
	return bufio.NewReader(r)
}

// NameOf returns the result of any Name() method on obj, like *os.File has,
// or a placeholder naming its type.
func NameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}

// NamedReader attaches a name to r, to be reported in Locations.
func NamedReader(name string, r io.Reader) io.Reader {
	return namedReader{r, name}
}

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }
