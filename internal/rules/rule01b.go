package rules

import (
	"github.com/kdkasad/westwood/internal/diag"
	"github.com/kdkasad/westwood/internal/source"
)

// MeaningfulNames (Rule I:B) requires descriptive, meaningful names.
// That is nearly impossible to check programmatically, so this rule
// emits nothing. It exists in the catalog for completeness.
type MeaningfulNames struct{}

var meaningfulNamesDesc = &diag.RuleDescription{
	Group:       1,
	Letter:      'B',
	Name:        "MeaningfulNames",
	Description: "variable names must be descriptive and meaningful",
}

func (r *MeaningfulNames) Describe() *diag.RuleDescription {
	return meaningfulNamesDesc
}

func (r *MeaningfulNames) Check(src *source.Info) []diag.Diagnostic {
	return nil
}
