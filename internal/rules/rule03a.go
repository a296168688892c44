package rules

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kdkasad/westwood/internal/diag"
	"github.com/kdkasad/westwood/internal/query"
	"github.com/kdkasad/westwood/internal/source"
)

// FlowControlSpacing (Rule III:A) checks for a single space between
// a control flow keyword and its parenthesis, and between the closing
// parenthesis and the opening brace.
type FlowControlSpacing struct{}

var flowControlSpacingDesc = &diag.RuleDescription{
	Group:       3,
	Letter:      'A',
	Name:        "FlowControlSpacing",
	Description: "one space must be placed between flow control constructs",
}

// The do statement has no parenthesis/brace pair, so its two patterns
// capture only a keyword and the token standing in for the opening
// parenthesis. Those matches carry 2 captures instead of 4 and skip
// the brace check below.
const flowControlSpacingQuery = `
(if_statement
    .
    "if" @keyword
    .
    condition: (parenthesized_expression . "(" @lparen ")" @rparen .)
    consequence: (compound_statement . "{" @lbrace))

(for_statement
    .
    "for" @keyword
    .
    "(" @lparen
    ")" @rparen
    body: (compound_statement . "{" @lbrace)
    .)

(while_statement
    "while" @keyword
    .
    condition: (parenthesized_expression . "(" @lparen ")" @rparen .)
    body: (compound_statement . "{" @lbrace))

(switch_statement
    .
    "switch" @keyword
    .
    condition: (parenthesized_expression . "(" @lparen ")" @rparen .)
    body: (compound_statement . "{" @lbrace))

(do_statement
    .
    "do" @keyword
    .
    body: (compound_statement . "{" @lparen))

(do_statement
    body: (_)
    .
    "while" @keyword
    .
    condition: (parenthesized_expression . "(" @lparen))
`

func (r *FlowControlSpacing) Describe() *diag.RuleDescription {
	return flowControlSpacingDesc
}

func (r *FlowControlSpacing) Check(src *source.Info) []diag.Diagnostic {
	var diagnostics []diag.Diagnostic
	h := query.New(flowControlSpacingQuery, src.Tree, src.Code)
	keywordI := h.CaptureIndex("keyword")
	lparenI := h.CaptureIndex("lparen")
	rparenI := h.CaptureIndex("rparen")
	lbraceI := h.CaptureIndex("lbrace")
	h.ForEachMatch(func(m *sitter.QueryMatch) {
		if len(m.Captures) == 4 {
			rparen := h.NodeFor(m, rparenI)
			lbrace := h.NodeFor(m, lbraceI)
			msg := "Expected a single space between the closing parenthesis and the opening brace"
			if d, bad := checkSingleSpaceBetween(flowControlSpacingDesc, src, rparen, lbrace, msg); bad {
				diagnostics = append(diagnostics, d)
			}
		} else if len(m.Captures) != 2 {
			panic(fmt.Errorf("expected 2 or 4 captures, got %d", len(m.Captures)))
		}

		keyword := h.NodeFor(m, keywordI)
		lparen := h.NodeFor(m, lparenI)
		msg := fmt.Sprintf("Expected a single space after `%s'", keyword.Content(src.Code))
		if d, bad := checkSingleSpaceBetween(flowControlSpacingDesc, src, keyword, lparen, msg); bad {
			diagnostics = append(diagnostics, d)
		}
	})
	return diagnostics
}
