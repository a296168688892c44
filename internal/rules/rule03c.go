package rules

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kdkasad/westwood/internal/diag"
	"github.com/kdkasad/westwood/internal/query"
	"github.com/kdkasad/westwood/internal/source"
)

// DelimiterSpacing (Rule III:C) checks that internal commas and
// semicolons are followed by exactly one space when the next token is
// on the same line.
type DelimiterSpacing struct{}

var delimiterSpacingDesc = &diag.RuleDescription{
	Group:       3,
	Letter:      'C',
	Name:        "DelimiterSpacing",
	Description: "internal commas and semicolons must be followed by one space",
}

const delimiterSpacingQuery = `
; The grammar for for_statement is split into two cases
(for_statement
    initializer: (declaration ";" @delim .)
    .
    _ @next)
(for_statement ";" @delim . _ @next)

; Struct declaration body
(field_declaration_list
    (field_declaration ";" @delim .)
    .
    _ @next)

(argument_list "," @delim . _ @next) ; Function/macro call & attribute arguments
(parameter_list "," @delim . _ @next) ; Function declaration parameters
(comma_expression "," @delim . _ @next) ; Comma expressions
(initializer_list "," @delim . _ @next) ; Initializer lists
(enumerator_list "," @delim . _ @next) ; Enum lists
(preproc_params "," @delim . _ @next) ; Macro parameters
(declaration "," @delim . _ @next) ; Comma-separated declarations
(type_definition "," @delim . _ @next) ; Comma-separated typedefs
(attribute_declaration "," @delim . _ @next) ; Attribute lists
`

func (r *DelimiterSpacing) Describe() *diag.RuleDescription {
	return delimiterSpacingDesc
}

func (r *DelimiterSpacing) Check(src *source.Info) []diag.Diagnostic {
	var diagnostics []diag.Diagnostic
	h := query.New(delimiterSpacingQuery, src.Tree, src.Code)
	delimI := h.CaptureIndex("delim")
	nextI := h.CaptureIndex("next")
	h.ForEachMatch(func(m *sitter.QueryMatch) {
		delim := h.NodeFor(m, delimI)
		next := h.NodeFor(m, nextI)

		// Tokens on different lines are the line length rule's business
		if delim.EndPoint().Row != next.StartPoint().Row {
			return
		}

		if !isSingleSpaceBetween(src, delim, next) {
			diagnostics = append(diagnostics,
				diag.New(delimiterSpacingDesc,
					"Expected one space after internal commas and semicolons").
					WithViolation(src.Filename, src.Range(delim.StartByte(), next.StartByte()), ""))
		}
	})
	return diagnostics
}
