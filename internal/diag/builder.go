package diag

import "github.com/kdkasad/westwood/internal/source"

// New starts a warning diagnostic for the given rule.
func New(rule *RuleDescription, msg string) Diagnostic {
	return Diagnostic{
		Rule:     rule,
		Severity: SevWarning,
		Message:  msg,
	}
}

func (d Diagnostic) WithSeverity(sev Severity) Diagnostic {
	d.Severity = sev
	return d
}

// WithViolation appends a primary span pointing at offending source.
func (d Diagnostic) WithViolation(filename string, r source.Range, label string) Diagnostic {
	d.Violations = append(d.Violations, Span{Filename: filename, Range: r, Label: label})
	return d
}

// WithReference appends a secondary span pointing at related context.
func (d Diagnostic) WithReference(filename string, r source.Range, label string) Diagnostic {
	d.References = append(d.References, Span{Filename: filename, Range: r, Label: label})
	return d
}

func (d Diagnostic) WithNote(msg string) Diagnostic {
	d.Notes = append(d.Notes, msg)
	return d
}

// WithSuggestion attaches replacement text rendered as a fix hint.
func (d Diagnostic) WithSuggestion(text string) Diagnostic {
	d.Suggestion = text
	return d
}
