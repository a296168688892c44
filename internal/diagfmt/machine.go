package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/kdkasad/westwood/internal/diag"
)

// Machine writes diagnostics in a line-oriented format meant for
// scripts and graders. Each diagnostic takes one or two lines:
//
//	WARNING: [I:A] Variable name must be in lower snake case
//	         at main.c from line 3 column 5 to line 3 column 10
//
// The location line is indented to align under the message, uses
// 1-indexed lines and columns, and covers only the first violation
// span. Diagnostics without a violation span get no location line,
// and diagnostics without a rule omit the bracketed code.
func Machine(w io.Writer, diagnostics []diag.Diagnostic) {
	for _, d := range diagnostics {
		sev := d.Severity.String()
		code := ""
		if d.Rule != nil {
			code = "[" + d.Rule.Code() + "] "
		}
		fmt.Fprintf(w, "%s: %s%s\n", sev, code, d.Message)
		if len(d.Violations) == 0 {
			continue
		}
		s := d.Violations[0]
		indent := strings.Repeat(" ", len(sev)+2)
		fmt.Fprintf(w, "%sat %s from line %d column %d to line %d column %d\n",
			indent, s.Filename,
			s.Range.Start.Row+1, s.Range.Start.Col+1,
			s.Range.End.Row+1, s.Range.End.Col+1)
	}
}
