package rules

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kdkasad/westwood/internal/diag"
	"github.com/kdkasad/westwood/internal/query"
	"github.com/kdkasad/westwood/internal/source"
	"github.com/kdkasad/westwood/internal/treeutil"
)

const (
	// Number of lines per page
	pageSize = 61
	// Maximum number of pages a function definition may span
	maxPagesPerFunction = 2
)

// FunctionLength (Rule II:B) flags function definitions spanning more
// than two 61-line pages.
type FunctionLength struct{}

var functionLengthDesc = &diag.RuleDescription{
	Group:       2,
	Letter:      'B',
	Name:        "FunctionLength",
	Description: "functions must be kept reasonably small",
}

const functionLengthQuery = `
(function_definition) @function
`

func (r *FunctionLength) Describe() *diag.RuleDescription {
	return functionLengthDesc
}

func (r *FunctionLength) Check(src *source.Info) []diag.Diagnostic {
	var diagnostics []diag.Diagnostic
	h := query.New(functionLengthQuery, src.Tree, src.Code)
	h.ForEachCapture(func(name string, cap sitter.QueryCapture) {
		length := int(cap.Node.EndPoint().Row) - int(cap.Node.StartPoint().Row) + 1
		if length <= maxPagesPerFunction*pageSize {
			return
		}
		message := fmt.Sprintf(
			"Functions must fit on %d pages, i.e. be no longer than %d lines",
			maxPagesPerFunction, maxPagesPerFunction*pageSize)
		label := fmt.Sprintf("Function `%s()' is %d lines long",
			treeutil.FunctionName(cap.Node, src.Code), length)
		diagnostics = append(diagnostics,
			diag.New(functionLengthDesc, message).
				WithViolation(src.Filename, src.NodeRange(cap.Node), label))
	})
	return diagnostics
}
