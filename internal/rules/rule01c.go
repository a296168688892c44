package rules

import (
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kdkasad/westwood/internal/diag"
	"github.com/kdkasad/westwood/internal/query"
	"github.com/kdkasad/westwood/internal/source"
)

// DefinedConstants (Rule I:C) checks #define constants: names must
// have at least 2 characters, must be upper snake case, and plain
// numeric values must be wrapped in parentheses.
//
// Values containing constant expressions with operators are not
// checked for parentheses, because the grammar treats a #define value
// as literal text; `#define ABC 3` gets flagged but `#define ABC 1 + 2`
// does not.
type DefinedConstants struct{}

var definedConstantsDesc = &diag.RuleDescription{
	Group:       1,
	Letter:      'C',
	Name:        "DefinedConstants",
	Description: "constants must be named in upper snake case with parenthesized values",
}

const definedConstantsQuery = `
(
    (preproc_def name: (identifier) @constant.name.short)
    (#match? @constant.name.short "^.$")
)
(
    (preproc_def name: (identifier) @constant.name.contains_lower)
    (#match? @constant.name.contains_lower "[a-z]")
)
(
    (preproc_def value: (preproc_arg) @constant.value.unwrapped_number)
    (#match? @constant.value.unwrapped_number "^[0-9]+$")
)
`

func (r *DefinedConstants) Describe() *diag.RuleDescription {
	return definedConstantsDesc
}

func (r *DefinedConstants) Check(src *source.Info) []diag.Diagnostic {
	var diagnostics []diag.Diagnostic
	h := query.New(definedConstantsQuery, src.Tree, src.Code)
	h.ForEachCapture(func(name string, cap sitter.QueryCapture) {
		text := cap.Node.Content(src.Code)
		var message, label, fix string
		switch name {
		case "constant.name.short":
			message = "Constant name must contain at least 2 characters"
			label = "Constant defined here"
		case "constant.name.contains_lower":
			message = "Constant name must use upper snake case"
			label = "Constant defined here"
			fix = strings.ToUpper(text)
		case "constant.value.unwrapped_number":
			message = "Numeric constant value must be wrapped in parentheses"
			label = "Value defined here"
			fix = fmt.Sprintf("(%s)", text)
		default:
			panic(fmt.Errorf("unexpected capture %q", name))
		}
		d := diag.New(definedConstantsDesc, message).
			WithViolation(src.Filename, src.NodeRange(cap.Node), label)
		if fix != "" {
			d = d.WithSuggestion(fix)
		}
		diagnostics = append(diagnostics, d)
	})
	return diagnostics
}
