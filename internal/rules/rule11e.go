package rules

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kdkasad/westwood/internal/diag"
	"github.com/kdkasad/westwood/internal/query"
	"github.com/kdkasad/westwood/internal/source"
)

// NoGoto (Rule XI:E) forbids goto statements.
type NoGoto struct{}

var noGotoDesc = &diag.RuleDescription{
	Group:       11,
	Letter:      'E',
	Name:        "NoGoto",
	Description: "goto must not be used",
}

func (r *NoGoto) Describe() *diag.RuleDescription {
	return noGotoDesc
}

func (r *NoGoto) Check(src *source.Info) []diag.Diagnostic {
	var diagnostics []diag.Diagnostic
	h := query.New(`(goto_statement) @goto`, src.Tree, src.Code)
	h.ForEachCapture(func(name string, cap sitter.QueryCapture) {
		diagnostics = append(diagnostics,
			diag.New(noGotoDesc, "Do not use `goto'").
				WithViolation(src.Filename, src.NodeRange(cap.Node), ""))
	})
	return diagnostics
}
