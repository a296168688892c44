package rules

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kdkasad/westwood/internal/diag"
	"github.com/kdkasad/westwood/internal/query"
	"github.com/kdkasad/westwood/internal/source"
)

// FunctionParenthesis (Rule III:F) requires the opening parenthesis of
// a parameter or argument list to hug the function name.
type FunctionParenthesis struct{}

var functionParenthesisDesc = &diag.RuleDescription{
	Group:       3,
	Letter:      'F',
	Name:        "FunctionParenthesis",
	Description: "function calls and definitions must have no space before the parenthesis",
}

const functionParenthesisQuery = `
(function_declarator
    declarator: _ @function
    parameters: (parameter_list . "(" @paren))
(call_expression
    function: _ @function
    arguments: (argument_list . "(" @paren))
(preproc_function_def
    name: _ @function
    parameters: (preproc_params . "(" @paren))
`

func (r *FunctionParenthesis) Describe() *diag.RuleDescription {
	return functionParenthesisDesc
}

func (r *FunctionParenthesis) Check(src *source.Info) []diag.Diagnostic {
	var diagnostics []diag.Diagnostic
	h := query.New(functionParenthesisQuery, src.Tree, src.Code)
	fnIdx := h.CaptureIndex("function")
	parenIdx := h.CaptureIndex("paren")
	h.ForEachMatch(func(m *sitter.QueryMatch) {
		if len(m.Captures) != 2 {
			panic(fmt.Errorf("expected 2 captures, got %d", len(m.Captures)))
		}
		function := h.NodeFor(m, fnIdx)
		paren := h.NodeFor(m, parenIdx)
		if function.EndByte() == paren.StartByte() {
			return
		}
		diagnostics = append(diagnostics,
			diag.New(functionParenthesisDesc,
				"Expected no space between function and parenthesis").
				WithViolation(src.Filename,
					src.Range(function.EndByte(), paren.StartByte()), ""))
	})
	return diagnostics
}
