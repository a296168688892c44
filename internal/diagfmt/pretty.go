package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"github.com/kdkasad/westwood/internal/diag"
	"github.com/kdkasad/westwood/internal/source"
)

// palette holds the styles used by the pretty renderer. Styles are
// disabled per-object so output stays deterministic regardless of the
// global color state.
type palette struct {
	severity map[diag.Severity]*color.Color
	location *color.Color
	gutter   *color.Color
	caret    *color.Color
	dash     *color.Color
}

func newPalette(enabled bool) *palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return &palette{
		severity: map[diag.Severity]*color.Color{
			diag.SevInfo:    mk(color.FgCyan, color.Bold),
			diag.SevWarning: mk(color.FgYellow, color.Bold),
			diag.SevError:   mk(color.FgRed, color.Bold),
		},
		location: mk(color.FgBlue, color.Bold),
		gutter:   mk(color.FgBlue),
		caret:    mk(color.FgRed, color.Bold),
		dash:     mk(color.FgCyan),
	}
}

// Pretty renders diagnostics with source context, caret underlines,
// notes, and suggestions. code must be the text the diagnostics were
// produced from.
func Pretty(w io.Writer, diagnostics []diag.Diagnostic, code []byte, opts PrettyOpts) {
	lines := source.ScanLines(code)
	pal := newPalette(opts.Color)
	for i := range diagnostics {
		if i > 0 {
			fmt.Fprintln(w)
		}
		renderDiagnostic(w, &diagnostics[i], lines, pal)
	}
}

func renderDiagnostic(w io.Writer, d *diag.Diagnostic, lines []source.Line, pal *palette) {
	sev := pal.severity[d.Severity]
	header := d.Severity.String() + ":"
	if d.Rule != nil {
		header += " [" + d.Rule.Code() + "]"
	}
	fmt.Fprintf(w, "%s %s\n", sev.Sprint(header), d.Message)

	gutter := gutterWidth(d, lines)
	pad := strings.Repeat(" ", gutter)

	if len(d.Violations) > 0 {
		s := d.Violations[0]
		fmt.Fprintf(w, "%s%s %s:%d:%d\n", pad,
			pal.location.Sprint("-->"),
			s.Filename, s.Range.Start.Row+1, s.Range.Start.Col+1)
	}

	for _, s := range d.Violations {
		renderSpan(w, s, lines, gutter, '^', pal.caret, pal)
	}
	for _, s := range d.References {
		renderSpan(w, s, lines, gutter, '-', pal.dash, pal)
	}

	for _, note := range d.Notes {
		fmt.Fprintf(w, "%s %s note: %s\n", pad, pal.gutter.Sprint("="), note)
	}

	if d.Suggestion != "" {
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Render(fmt.Sprintf("Perhaps you meant `%s'", d.Suggestion))
		for line := range strings.Lines(box) {
			fmt.Fprintf(w, "%s %s\n", pad, strings.TrimSuffix(line, "\n"))
		}
	}
}

// renderSpan prints the source lines a span covers with an underline
// row beneath each one. The underline and any label use the marker
// style.
func renderSpan(w io.Writer, s diag.Span, lines []source.Line, gutter int, marker byte, style *color.Color, pal *palette) {
	fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", gutter), pal.gutter.Sprint(" |"))
	for row := s.Range.Start.Row; row <= s.Range.End.Row && row < len(lines); row++ {
		text := expandTabs(strings.TrimSuffix(lines[row].Text, "\r"))
		fmt.Fprintf(w, "%s%s %s\n",
			pal.gutter.Sprintf("%*d", gutter, row+1),
			pal.gutter.Sprint(" |"), text)

		ulStart := 0
		if row == s.Range.Start.Row {
			ulStart = s.Range.Start.Col
		}
		ulEnd := source.DisplayWidth(text)
		if row == s.Range.End.Row {
			ulEnd = s.Range.End.Col
		}
		if ulEnd <= ulStart {
			// Zero-width spans still deserve a visible marker
			ulEnd = ulStart + 1
		}
		underline := strings.Repeat(" ", ulStart) + strings.Repeat(string(marker), ulEnd-ulStart)
		label := ""
		if row == s.Range.End.Row && s.Label != "" {
			label = " " + s.Label
		}
		fmt.Fprintf(w, "%s%s %s\n",
			strings.Repeat(" ", gutter),
			pal.gutter.Sprint(" |"),
			style.Sprint(underline+label))
	}
}

// gutterWidth returns the width of the line-number column, sized for
// the largest line number any span touches.
func gutterWidth(d *diag.Diagnostic, lines []source.Line) int {
	maxLine := 1
	note := func(spans []diag.Span) {
		for _, s := range spans {
			if n := s.Range.End.Row + 1; n > maxLine && n <= len(lines) {
				maxLine = n
			}
		}
	}
	note(d.Violations)
	note(d.References)
	return len(fmt.Sprint(maxLine))
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", source.TabWidth))
}
