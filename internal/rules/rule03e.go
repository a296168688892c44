package rules

import (
	"strings"

	"github.com/kdkasad/westwood/internal/diag"
	"github.com/kdkasad/westwood/internal/source"
)

// TrailingWhitespace (Rule III:E) flags whitespace between the last
// visible character of a line and the line ending.
type TrailingWhitespace struct{}

var trailingWhitespaceDesc = &diag.RuleDescription{
	Group:       3,
	Letter:      'E',
	Name:        "TrailingWhitespace",
	Description: "lines must not end with whitespace",
}

func (r *TrailingWhitespace) Describe() *diag.RuleDescription {
	return trailingWhitespaceDesc
}

func (r *TrailingWhitespace) Check(src *source.Info) []diag.Diagnostic {
	var diagnostics []diag.Diagnostic
	for _, line := range src.Lines {
		trimmed := strings.TrimRight(line.Text, " \t\r\v\f")
		if len(trimmed) == len(line.Text) {
			continue
		}
		lo := line.Start + uint32(len(trimmed))
		hi := line.Start + uint32(len(line.Text))
		diagnostics = append(diagnostics,
			diag.New(trailingWhitespaceDesc, "Line contains trailing whitespace").
				WithViolation(src.Filename, src.Range(lo, hi), ""))
	}
	return diagnostics
}
