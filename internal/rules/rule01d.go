package rules

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kdkasad/westwood/internal/diag"
	"github.com/kdkasad/westwood/internal/query"
	"github.com/kdkasad/westwood/internal/source"
)

// GlobalVariables (Rule I:D) checks that global variables carry the
// "g_" prefix and that all top-level declarations come before the
// first function definition. The standard only says declarations
// "should be at the top of the file", which is read here as covering
// every top-level declaration, not just globals.
type GlobalVariables struct{}

var globalVariablesDesc = &diag.RuleDescription{
	Group:       1,
	Letter:      'D',
	Name:        "GlobalVariables",
	Description: "global variables must be prefixed with g_ and declared at the top of the file",
}

const globalVariablesQuery = `
(
    (_ declarator: (identifier) @global.no_g_prefix)
    (#not-match? @global.no_g_prefix "^g_")
    (#not-has-parent? @global.no_g_prefix function_declarator)
    (#not-has-ancestor? @global.no_g_prefix function_definition)
)

(translation_unit (function_definition) @function)
(translation_unit
    [
        (declaration) @declaration.top_level
        (type_specifier) @declaration.top_level
        (type_definition) @declaration.top_level
    ]
)
`

func (r *GlobalVariables) Describe() *diag.RuleDescription {
	return globalVariablesDesc
}

func (r *GlobalVariables) Check(src *source.Info) []diag.Diagnostic {
	var diagnostics []diag.Diagnostic

	var firstFunc *sitter.Node
	var unprefixed []*sitter.Node
	var topLevel []*sitter.Node

	h := query.New(globalVariablesQuery, src.Tree, src.Code)
	h.ForEachCapture(func(name string, cap sitter.QueryCapture) {
		switch name {
		case "function":
			// captures arrive in source order
			if firstFunc == nil {
				firstFunc = cap.Node
			}
		case "global.no_g_prefix":
			unprefixed = append(unprefixed, cap.Node)
		case "declaration.top_level":
			topLevel = append(topLevel, cap.Node)
		}
	})

	for _, n := range unprefixed {
		diagnostics = append(diagnostics,
			diag.New(globalVariablesDesc, `Global variables must be prefixed with "g_"`).
				WithViolation(src.Filename, src.NodeRange(n), "Declared here"))
	}

	for _, n := range topLevel {
		if firstFunc == nil || n.StartByte() < firstFunc.StartByte() {
			continue
		}
		diagnostics = append(diagnostics,
			diag.New(globalVariablesDesc,
				"All top-level declarations must come before function definitions").
				WithViolation(src.Filename, src.NodeRange(n), "Declaration found here").
				WithReference(src.Filename, src.NodeRange(firstFunc), "First function defined here"))
	}

	return diagnostics
}
