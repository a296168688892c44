package rules

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kdkasad/westwood/internal/diag"
	"github.com/kdkasad/westwood/internal/query"
	"github.com/kdkasad/westwood/internal/source"
	"github.com/kdkasad/westwood/internal/treeutil"
)

// MultipleDefinitions (Rule XII:A) flags declarations that define more
// than one variable, like `int a, b;`. Function prototypes are left
// alone, as are top-level extern declarations.
type MultipleDefinitions struct{}

var multipleDefinitionsDesc = &diag.RuleDescription{
	Group:       12,
	Letter:      'A',
	Name:        "MultipleDefinitions",
	Description: "each variable must be defined on its own line",
}

const multipleDefinitionsQuery = `
((declaration) @declaration
    (#has-ancestor? @declaration "function_definition"))
((declaration . _ @first-child) @declaration
    (#not-has-ancestor? @declaration "function_definition")
    (#not-eq? @first-child "extern"))
`

func (r *MultipleDefinitions) Describe() *diag.RuleDescription {
	return multipleDefinitionsDesc
}

func (r *MultipleDefinitions) Check(src *source.Info) []diag.Diagnostic {
	var diagnostics []diag.Diagnostic
	h := query.New(multipleDefinitionsQuery, src.Tree, src.Code)
	declIdx := h.CaptureIndex("declaration")
	h.ForEachMatch(func(m *sitter.QueryMatch) {
		decl := h.NodeFor(m, declIdx)
		if treeutil.IsFunctionDeclaration(decl) {
			return
		}
		var declarators []*sitter.Node
		for i := 0; i < int(decl.ChildCount()); i++ {
			if decl.FieldNameForChild(i) == "declarator" {
				declarators = append(declarators, decl.Child(i))
			}
		}
		if len(declarators) <= 1 {
			return
		}
		d := diag.New(multipleDefinitionsDesc,
			"No more than one variable may be defined on a single line.").
			WithReference(src.Filename, src.NodeRange(declarators[0]),
				"First definition here")
		for _, extra := range declarators[1:] {
			d = d.WithViolation(src.Filename, src.NodeRange(extra),
				"Additional definition here")
		}
		diagnostics = append(diagnostics, d)
	})
	return diagnostics
}
