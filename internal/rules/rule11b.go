package rules

import (
	"fmt"
	"strings"

	"github.com/kdkasad/westwood/internal/diag"
	"github.com/kdkasad/westwood/internal/source"
)

// NoCRLF (Rule XI:B) flags DOS-style (CRLF) line endings. Like tabbed
// indentation these usually affect every line of a file, so Max caps
// the output.
type NoCRLF struct {
	// Max is the number of diagnostics to emit before suppressing the
	// rest. Zero or negative means unlimited.
	Max int
}

var noCRLFDesc = &diag.RuleDescription{
	Group:       11,
	Letter:      'B',
	Name:        "NoCRLF",
	Description: "lines must use Unix-style (LF) endings",
}

func (r *NoCRLF) Describe() *diag.RuleDescription {
	return noCRLFDesc
}

func (r *NoCRLF) Check(src *source.Info) []diag.Diagnostic {
	var diagnostics []diag.Diagnostic
	for i, line := range src.Lines {
		if !strings.HasSuffix(line.Text, "\r") {
			continue
		}
		if r.Max > 0 && len(diagnostics) == r.Max {
			remaining := 0
			for _, rest := range src.Lines[i:] {
				if strings.HasSuffix(rest.Text, "\r") {
					remaining++
				}
			}
			last := &diagnostics[len(diagnostics)-1]
			last.Notes = append(last.Notes, fmt.Sprintf(
				"%d more lines contain DOS endings, but those warnings are suppressed to avoid noise.",
				remaining))
			break
		}
		crPos := line.Start + uint32(len(line.Text)) - 1
		diagnostics = append(diagnostics,
			diag.New(noCRLFDesc, "Line contains DOS-style ending").
				WithViolation(src.Filename, src.Range(crPos, crPos+1), "").
				WithNote("Use the `fileformat' option in Vim to fix this"))
	}
	return diagnostics
}
