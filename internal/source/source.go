package source

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"
	sitter "github.com/smacker/go-tree-sitter"
)

// ErrInvalidUTF8 is returned when the input is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("source is not valid UTF-8")

// Line is a single source line without its trailing newline.
type Line struct {
	Text  string
	Start uint32 // byte offset of the first character
}

// Info bundles a parsed source file with its line index.
// Rules receive a single Info per file and share it read-only.
type Info struct {
	Filename string
	Code     []byte
	Tree     *sitter.Tree
	Lines    []Line
}

// New builds an Info from already-parsed source. The content must be
// valid UTF-8; line endings are preserved as-is.
func New(filename string, code []byte, tree *sitter.Tree) (*Info, error) {
	if !utf8.Valid(code) {
		return nil, ErrInvalidUTF8
	}
	return &Info{
		Filename: filename,
		Code:     code,
		Tree:     tree,
		Lines:    ScanLines(code),
	}, nil
}

// MustNew is New but panics on invalid input.
func MustNew(filename string, code []byte, tree *sitter.Tree) *Info {
	info, err := New(filename, code, tree)
	if err != nil {
		panic(fmt.Errorf("source %q: %w", filename, err))
	}
	return info
}

// ScanLines splits content on '\n'. A trailing newline does not
// produce an empty final line. Carriage returns stay in Line.Text.
func ScanLines(code []byte) []Line {
	lines := make([]Line, 0, 64)
	start := 0
	for i, b := range code {
		if b == '\n' {
			lines = append(lines, Line{Text: string(code[start:i]), Start: mustU32(start)})
			start = i + 1
		}
	}
	if start < len(code) {
		lines = append(lines, Line{Text: string(code[start:]), Start: mustU32(start)})
	}
	return lines
}

// LineCount returns the number of indexed lines.
func (inf *Info) LineCount() int {
	return len(inf.Lines)
}

// Line returns the line with the given zero-based row.
func (inf *Info) Line(row int) Line {
	return inf.Lines[row]
}

// lineFor returns the index of the line containing the byte offset.
func (inf *Info) lineFor(off uint32) int {
	// binary search: largest i with Lines[i].Start <= off
	lo, hi := 0, len(inf.Lines)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		if inf.Lines[mid].Start <= off {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	if hi < 0 {
		return 0
	}
	return hi
}

func mustU32(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("offset overflow: %w", err))
	}
	return v
}
