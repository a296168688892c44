package rules

import "github.com/kdkasad/westwood/internal/diag"

// Options configures rule construction.
type Options struct {
	// MaxLineDiagnostics caps the number of diagnostics emitted by
	// the per-line rules (XI:A and XI:B). Zero means no limit.
	MaxLineDiagnostics int

	// Disabled lists rule codes (e.g. "XI:E") to exclude from the
	// catalog.
	Disabled []string
}

// All returns the full rule catalog in output order.
func All(opts Options) []Rule {
	catalog := []Rule{
		&NamingConvention{},
		&MeaningfulNames{},
		&DefinedConstants{},
		&GlobalVariables{},
		&LineLength{},
		&FunctionLength{},
		&FlowControlSpacing{},
		&OperatorSpacing{},
		&DelimiterSpacing{},
		&DefinePlacement{},
		&TrailingWhitespace{},
		&FunctionParenthesis{},
		&NoTabs{Max: opts.MaxLineDiagnostics},
		&NoCRLF{Max: opts.MaxLineDiagnostics},
		&NoGoto{},
		&MultipleDefinitions{},
	}
	if len(opts.Disabled) == 0 {
		return catalog
	}
	disabled := make(map[string]bool, len(opts.Disabled))
	for _, code := range opts.Disabled {
		disabled[code] = true
	}
	kept := catalog[:0]
	for _, r := range catalog {
		if !disabled[r.Describe().Code()] {
			kept = append(kept, r)
		}
	}
	return kept
}

// Default returns the catalog with default options.
func Default() []Rule {
	return All(Options{})
}

// DescriptionByCode resolves a rule code to its description, or nil
// when no rule carries that code.
func DescriptionByCode(code string) *diag.RuleDescription {
	for _, r := range Default() {
		if rd := r.Describe(); rd.Code() == code {
			return rd
		}
	}
	return nil
}
