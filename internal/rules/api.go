// Package rules implements the catalog of code standard checks.
package rules

import (
	"github.com/kdkasad/westwood/internal/diag"
	"github.com/kdkasad/westwood/internal/source"
)

// Rule is a single check from the code standard. Rules are stateless
// with respect to input: Check may be called any number of times, for
// any files, in any order.
type Rule interface {
	// Describe returns static metadata about the rule. The returned
	// pointer is stable for the lifetime of the process.
	Describe() *diag.RuleDescription

	// Check inspects one source file and returns its violations.
	Check(src *source.Info) []diag.Diagnostic
}
