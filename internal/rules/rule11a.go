package rules

import (
	"fmt"
	"strings"

	"github.com/kdkasad/westwood/internal/diag"
	"github.com/kdkasad/westwood/internal/source"
)

// NoTabs (Rule XI:A) forbids tab characters in indentation. A line
// indented purely with tabs produces one diagnostic spanning the whole
// indent. A line mixing spaces and tabs gets a diagnostic with one
// span per tab so each offending character is pointed out.
//
// Tabbed indentation tends to affect whole files, so Max caps the
// number of diagnostics to avoid drowning out everything else.
type NoTabs struct {
	// Max is the number of diagnostics to emit before suppressing the
	// rest. Zero or negative means unlimited.
	Max int
}

var noTabsDesc = &diag.RuleDescription{
	Group:       11,
	Letter:      'A',
	Name:        "NoTabs",
	Description: "indentation must use spaces, not tabs",
}

func (r *NoTabs) Describe() *diag.RuleDescription {
	return noTabsDesc
}

func (r *NoTabs) Check(src *source.Info) []diag.Diagnostic {
	var diagnostics []diag.Diagnostic
	suppressed := 0
	for _, line := range src.Lines {
		indent := source.Indentation(line.Text)
		if !strings.ContainsRune(indent, '\t') {
			continue
		}
		if r.Max > 0 && len(diagnostics) >= r.Max {
			suppressed++
			continue
		}
		d := diag.New(noTabsDesc, "Use spaces instead of tabs for indentation")
		if strings.Trim(indent, "\t") == "" {
			// Indentation is all tabs
			d = d.WithViolation(src.Filename,
				src.Range(line.Start, line.Start+uint32(len(indent))),
				"Indentation uses tabs")
		} else {
			for i, c := range []byte(indent) {
				if c != '\t' {
					continue
				}
				off := line.Start + uint32(i)
				d = d.WithViolation(src.Filename, src.Range(off, off+1),
					"Tab character found here")
			}
			d = d.WithNote("Line mixes spaces and tabs")
		}
		diagnostics = append(diagnostics, d)
	}
	if suppressed > 0 {
		last := &diagnostics[len(diagnostics)-1]
		last.Notes = append(last.Notes, fmt.Sprintf(
			"%d more lines contain tabs, but those warnings are suppressed to avoid noise.",
			suppressed))
	}
	return diagnostics
}
