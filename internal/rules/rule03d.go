package rules

import (
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kdkasad/westwood/internal/diag"
	"github.com/kdkasad/westwood/internal/query"
	"github.com/kdkasad/westwood/internal/source"
	"github.com/kdkasad/westwood/internal/treeutil"
)

// DefinePlacement (Rule III:D) checks that #define statements are
// grouped together, that top-level groups come before all functions,
// and that every group has a blank line above and below.
//
// It does not yet check that macros defined in a function are
// undefined at the end of the function.
type DefinePlacement struct{}

var definePlacementDesc = &diag.RuleDescription{
	Group:       3,
	Letter:      'D',
	Name:        "DefinePlacement",
	Description: "#define statements must be grouped and placed at the top of the file",
}

const definePlacementQuery = `
(preproc_def) @define
(preproc_function_def) @define
(function_definition
    body: (_) @function.body) @function.definition
([(preproc_def) (preproc_function_def)] @define.global
    (#not-has-ancestor? @define.global "function_definition"))
`

func (r *DefinePlacement) Describe() *diag.RuleDescription {
	return definePlacementDesc
}

func (r *DefinePlacement) Check(src *source.Info) []diag.Diagnostic {
	var diagnostics []diag.Diagnostic

	var functionBodies []*sitter.Node
	var defines []sitter.Range
	var globalDefines []sitter.Range
	var firstFunc *sitter.Node

	h := query.New(definePlacementQuery, src.Tree, src.Code)
	h.ForEachCapture(func(name string, cap sitter.QueryCapture) {
		switch name {
		case "function.body":
			functionBodies = append(functionBodies, cap.Node)
		case "define":
			defines = append(defines, treeutil.NodeRange(cap.Node))
		case "function.definition":
			if firstFunc == nil {
				firstFunc = cap.Node
			}
		case "define.global":
			globalDefines = append(globalDefines, treeutil.NodeRange(cap.Node))
		default:
			panic(fmt.Errorf("unexpected capture %q", name))
		}
	})

	// Global #define statements must come before all functions
	globalGroups := treeutil.CollapseRanges(globalDefines)
	for _, group := range globalGroups {
		if firstFunc != nil && firstFunc.EndByte() < group.StartByte {
			diagnostics = append(diagnostics,
				diag.New(definePlacementDesc,
					"Global preprocessor definitions must be placed at the top of the file, before all functions").
					WithViolation(src.Filename, trimmedRange(src, group.StartByte, group.EndByte),
						"Macro(s) defined here").
					WithReference(src.Filename, src.NodeRange(firstFunc),
						"First function defined here"))
		}
	}

	// Global #define statements must form a single group
	if len(globalGroups) > 1 {
		d := diag.New(definePlacementDesc,
			"All top-level #define statements must be grouped together")
		for i, group := range globalGroups {
			r := trimmedRange(src, group.StartByte, group.EndByte)
			if i == 0 {
				d = d.WithReference(src.Filename, r, "First group of #define statements found here")
			} else {
				d = d.WithViolation(src.Filename, r, "More #define statements found here")
			}
		}
		diagnostics = append(diagnostics, d)
	}

	// All #define statements within one function must form one group
	defineGroups := treeutil.CollapseRanges(defines)
	for _, body := range functionBodies {
		var inFunction []sitter.Range
		for _, group := range defineGroups {
			if group.StartByte >= body.StartByte() && group.EndByte <= body.EndByte() {
				inFunction = append(inFunction, group)
			}
		}
		if len(inFunction) <= 1 {
			continue
		}
		functionName := treeutil.FunctionName(body.Parent(), src.Code)
		d := diag.New(definePlacementDesc,
			"All #define statements in each function must be grouped together").
			WithNote(fmt.Sprintf("In function `%s()'", functionName))
		for i, group := range inFunction {
			r := trimmedRange(src, group.StartByte, group.EndByte)
			if i == 0 {
				d = d.WithReference(src.Filename, r, "First group of #define statements found here")
			} else {
				d = d.WithViolation(src.Filename, r, "More #define statements found here")
			}
		}
		diagnostics = append(diagnostics, d)
	}

	// Every group of #define statements needs a blank line before and
	// after. No line at all counts as blank, so a #define on the first
	// or last line of a file is fine.
	for _, group := range defineGroups {
		printRange := trimmedRange(src, group.StartByte, group.EndByte)

		startRow := int(group.StartPoint.Row)
		hasBlankBefore := startRow == 0 || isBlankLine(src.Lines[startRow-1].Text)
		if !hasBlankBefore {
			diagnostics = append(diagnostics,
				diag.New(definePlacementDesc, "Expected blank line before #define statement(s)").
					WithViolation(src.Filename, printRange, ""))
		}

		// If the #define does not end at the start of a line, take the
		// next line
		endRow := int(group.EndPoint.Row)
		if group.EndPoint.Column != 0 {
			endRow++
		}
		hasBlankAfter := endRow >= len(src.Lines) || isBlankLine(src.Lines[endRow].Text)
		if !hasBlankAfter {
			diagnostics = append(diagnostics,
				diag.New(definePlacementDesc, "Expected blank line after #define statement(s)").
					WithViolation(src.Filename, printRange, ""))
		}
	}

	return diagnostics
}

// isBlankLine treats a line holding only a carriage return as blank,
// matching how CRLF files look when split on '\n'.
func isBlankLine(text string) bool {
	return strings.TrimSuffix(text, "\r") == ""
}
