package source

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

// Pos is a position in a source file. Row is zero-based; Col is the
// display width of the line prefix before the position, so a tab or a
// wide rune advances it by more than one.
type Pos struct {
	Row int
	Col int
}

// Range is a half-open byte interval [StartByte, EndByte) together
// with the positions of both endpoints.
type Range struct {
	StartByte uint32
	EndByte   uint32
	Start     Pos
	End       Pos
}

func (r Range) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", r.Start.Row+1, r.Start.Col+1, r.End.Row+1, r.End.Col+1)
}

// Pos resolves a byte offset to its row and display column. Offsets
// past the end of a line clamp to the line's width.
func (inf *Info) Pos(off uint32) Pos {
	if len(inf.Lines) == 0 {
		return Pos{}
	}
	row := inf.lineFor(off)
	line := inf.Lines[row]
	rel := int(off - line.Start)
	if rel > len(line.Text) {
		rel = len(line.Text)
	}
	return Pos{Row: row, Col: DisplayWidth(line.Text[:rel])}
}

// Range resolves a byte interval to a full Range.
func (inf *Info) Range(lo, hi uint32) Range {
	return Range{
		StartByte: lo,
		EndByte:   hi,
		Start:     inf.Pos(lo),
		End:       inf.Pos(hi),
	}
}

// NodeRange resolves the extent of a syntax node.
func (inf *Info) NodeRange(n *sitter.Node) Range {
	return inf.Range(n.StartByte(), n.EndByte())
}
