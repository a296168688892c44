package rules

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kdkasad/westwood/internal/diag"
	"github.com/kdkasad/westwood/internal/query"
	"github.com/kdkasad/westwood/internal/source"
)

// Amount that wrapped lines must be indented, in columns.
const wrappedLineIndent = 2

// LineLength (Rule II:A) checks that lines fit within 80 display
// columns and that the continuation lines of wrapped constructs are
// indented at least two columns past the first line.
type LineLength struct{}

var lineLengthDesc = &diag.RuleDescription{
	Group:       2,
	Letter:      'A',
	Name:        "LineLength",
	Description: "lines must be 80 columns wide or less",
}

// Splittable constructs: places where breaking a long line is
// allowed. The for loop and macro definitions need separate begin and
// end captures because one capture can only bind one node.
const lineLengthQuery = `
; If statement condition
(if_statement
    condition: (_) @splittable)

; Switch statement condition
(switch_statement
    condition: (_) @splittable)

; Case expression
(case_statement
    value: (_) @splittable)

; While loop condition
(while_statement
    condition: (_) @splittable)

; Do-while loop condition
(do_statement
    condition: (_) @splittable)

; For loop parentheses
(for_statement
    "(" @splittable.begin
    _
    ")" @splittable.end)

; Expression statement
(expression_statement) @splittable

; Return statement
(return_statement) @splittable

; Break statement
(break_statement) @splittable

; Continue statement
(continue_statement) @splittable

; Goto statement
(goto_statement) @splittable

; Macro definitions
(preproc_function_def
    "#define" @splittable.begin
    value: (_) @splittable.end)

; Variable initialization
(declaration
    declarator: (init_declarator)) @splittable
`

// columnOffset returns the byte index of the first character at or
// past the target display column, along with the column it actually
// starts on. Tabs and wide runes can make the two differ.
func columnOffset(line string, target int) (off, col int) {
	for i, r := range line {
		if col >= target {
			return i, col
		}
		if r == '\t' {
			col += source.TabWidth
		} else {
			col += source.DisplayWidth(string(r))
		}
	}
	return len(line), col
}

func (r *LineLength) Describe() *diag.RuleDescription {
	return lineLengthDesc
}

func (r *LineLength) Check(src *source.Info) []diag.Diagnostic {
	var diagnostics []diag.Diagnostic

	// Check for lines over 80 columns
	for i, line := range src.Lines {
		width := source.DisplayWidth(line.Text)
		if width <= 80 {
			continue
		}
		off, col := columnOffset(line.Text, 80)
		r := source.Range{
			StartByte: line.Start + uint32(off),
			EndByte:   line.Start + uint32(len(line.Text)),
			Start:     source.Pos{Row: i, Col: col},
			End:       source.Pos{Row: i, Col: width},
		}
		diagnostics = append(diagnostics,
			diag.New(lineLengthDesc, "Line length exceeds 80 columns.").
				WithViolation(src.Filename, r, ""))
	}

	// Check indentation of wrapped constructs
	h := query.New(lineLengthQuery, src.Tree, src.Code)
	wholeI := h.CaptureIndex("splittable")
	beginI := h.CaptureIndex("splittable.begin")
	endI := h.CaptureIndex("splittable.end")
	h.ForEachMatch(func(m *sitter.QueryMatch) {
		var startRow, endRow int
		switch len(m.Captures) {
		case 1:
			n := h.NodeFor(m, wholeI)
			startRow = int(n.StartPoint().Row)
			endRow = int(n.EndPoint().Row)
		case 2:
			startRow = int(h.NodeFor(m, beginI).StartPoint().Row)
			endRow = int(h.NodeFor(m, endI).EndPoint().Row)
		default:
			panic(fmt.Errorf("expected 1 or 2 captures, got %d", len(m.Captures)))
		}

		// Constructs on a single line have nothing to check
		if startRow == endRow {
			return
		}

		first := src.Lines[startRow]
		firstIndent := source.Indentation(first.Text)
		firstWidth := source.DisplayWidth(firstIndent)
		expected := firstWidth + wrappedLineIndent

		var violations []diag.Span
		for row := startRow + 1; row <= endRow && row < len(src.Lines); row++ {
			line := src.Lines[row]
			indent := source.Indentation(line.Text)
			width := source.DisplayWidth(indent)
			if width >= expected {
				continue
			}
			violations = append(violations, diag.Span{
				Filename: src.Filename,
				Range: source.Range{
					StartByte: line.Start,
					EndByte:   line.Start + uint32(len(indent)),
					Start:     source.Pos{Row: row},
					End:       source.Pos{Row: row, Col: width},
				},
				Label: fmt.Sprintf("Expected >=%d columns of indentation on continuing line", expected),
			})
		}
		if len(violations) == 0 {
			return
		}

		d := diag.New(lineLengthDesc, fmt.Sprintf(
			"Wrapped expressions/statements must be indented by at least %d spaces",
			wrappedLineIndent))
		d.Violations = violations
		d = d.WithReference(src.Filename, source.Range{
			StartByte: first.Start,
			EndByte:   first.Start + uint32(len(firstIndent)),
			Start:     source.Pos{Row: startRow},
			End:       source.Pos{Row: startRow, Col: firstWidth},
		}, fmt.Sprintf("Found indentation of %d columns on initial line", firstWidth))
		diagnostics = append(diagnostics, d)
	})

	return diagnostics
}
