package diag

import (
	"github.com/kdkasad/westwood/internal/source"
)

// Span is a labeled region of a source file.
type Span struct {
	Filename string
	Range    source.Range
	Label    string
}

// RuleDescription identifies a rule of the code standard.
type RuleDescription struct {
	// Group is the roman-numeral section of the standard, e.g. 3 for III.
	Group int
	// Letter is the rule letter within the group, e.g. 'A'.
	Letter byte
	// Name is a short identifier, e.g. "LineLength".
	Name string
	// Description is a human-readable summary of what the rule checks.
	Description string
}

// Diagnostic is a single reported violation of a rule.
//
// Violations point at the offending source; References point at
// related context (e.g. the first function when a declaration must
// precede it). A diagnostic carries at least one violation span
// unless it is purely advisory.
type Diagnostic struct {
	Rule       *RuleDescription
	Severity   Severity
	Message    string
	Violations []Span
	References []Span
	Notes      []string
	Suggestion string
}
