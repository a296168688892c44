package rules

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kdkasad/westwood/internal/diag"
	"github.com/kdkasad/westwood/internal/query"
	"github.com/kdkasad/westwood/internal/source"
)

// OperatorSpacing (Rule III:B) checks spacing around operators:
// one space on each side of binary operators, none after unary and
// pointer operators, none before array subscripts, and none around
// field access operators.
type OperatorSpacing struct{}

var operatorSpacingDesc = &diag.RuleDescription{
	Group:       3,
	Letter:      'B',
	Name:        "OperatorSpacing",
	Description: "operators must be spaced consistently",
}

const operatorSpacingBinaryQuery = `
(binary_expression
    left: _ @prev
    operator: _ @binary-operator
    right: _ @next)
`

const operatorSpacingUnaryQuery = `
(unary_expression
    operator: _ @unary-operator
    argument: _ @next)
(pointer_expression
    operator: _ @unary-operator
    argument: _ @next)
(pointer_declarator
    "*" @unary-operator
    .
    ; Grab the next child, since type specifiers can appear before the declarator
    _ @next)
`

const operatorSpacingArrayQuery = `
(array_declarator
    declarator: _ @prev
    "[" @array-bracket-left)
(subscript_expression
    argument: _ @prev
    "[" @array-bracket-left)
`

const operatorSpacingFieldQuery = `
(field_expression
    argument: _ @prev
    operator: _ @field-operator
    field: _ @next)
`

func (r *OperatorSpacing) Describe() *diag.RuleDescription {
	return operatorSpacingDesc
}

func (r *OperatorSpacing) Check(src *source.Info) []diag.Diagnostic {
	var diagnostics []diag.Diagnostic

	// Binary expressions
	h := query.New(operatorSpacingBinaryQuery, src.Tree, src.Code)
	prevI := h.CaptureIndex("prev")
	opI := h.CaptureIndex("binary-operator")
	nextI := h.CaptureIndex("next")
	h.ForEachMatch(func(m *sitter.QueryMatch) {
		prev := h.NodeFor(m, prevI)
		op := h.NodeFor(m, opI)
		next := h.NodeFor(m, nextI)
		if d, bad := checkBinaryOpSpacing(src, op, prev, next); bad {
			diagnostics = append(diagnostics, d)
		}
	})

	// Unary and pointer expressions
	h = query.New(operatorSpacingUnaryQuery, src.Tree, src.Code)
	opI = h.CaptureIndex("unary-operator")
	nextI = h.CaptureIndex("next")
	h.ForEachMatch(func(m *sitter.QueryMatch) {
		op := h.NodeFor(m, opI)
		next := h.NodeFor(m, nextI)
		if op.EndByte() != next.StartByte() {
			diagnostics = append(diagnostics,
				diag.New(operatorSpacingDesc, "Expected no space after unary operator").
					WithViolation(src.Filename, src.Range(op.EndByte(), next.StartByte()), ""))
		}
	})

	// Array expressions and declarations
	h = query.New(operatorSpacingArrayQuery, src.Tree, src.Code)
	prevI = h.CaptureIndex("prev")
	lbrackI := h.CaptureIndex("array-bracket-left")
	h.ForEachMatch(func(m *sitter.QueryMatch) {
		prev := h.NodeFor(m, prevI)
		lbrack := h.NodeFor(m, lbrackI)
		if prev.EndByte() != lbrack.StartByte() {
			diagnostics = append(diagnostics,
				diag.New(operatorSpacingDesc, "Expected no space before array subscript").
					WithViolation(src.Filename, src.Range(prev.EndByte(), lbrack.StartByte()), ""))
		}
	})

	// Field access expressions
	h = query.New(operatorSpacingFieldQuery, src.Tree, src.Code)
	prevI = h.CaptureIndex("prev")
	opI = h.CaptureIndex("field-operator")
	nextI = h.CaptureIndex("next")
	h.ForEachMatch(func(m *sitter.QueryMatch) {
		prev := h.NodeFor(m, prevI)
		op := h.NodeFor(m, opI)
		next := h.NodeFor(m, nextI)
		if d, bad := checkFieldOpSpacing(src, op, prev, next); bad {
			diagnostics = append(diagnostics, d)
		}
	})

	return diagnostics
}

// checkBinaryOpSpacing checks for a single space on each side of a
// binary operator. When an operand sits on a different line than the
// operator, that side is skipped; indentation of wrapped expressions
// belongs to the line length rule.
func checkBinaryOpSpacing(src *source.Info, op, left, right *sitter.Node) (diag.Diagnostic, bool) {
	leftBad := left.EndPoint().Row == op.StartPoint().Row &&
		!isSingleSpaceBetween(src, left, op)
	rightBad := op.EndPoint().Row == right.StartPoint().Row &&
		!isSingleSpaceBetween(src, op, right)

	var message string
	var lo, hi uint32
	switch {
	case leftBad && rightBad:
		message = "Expected a single space on each side of binary operator"
		lo, hi = left.EndByte(), right.StartByte()
	case leftBad:
		message = "Expected a single space before binary operator"
		lo, hi = left.EndByte(), op.EndByte()
	case rightBad:
		message = "Expected a single space after binary operator"
		lo, hi = op.StartByte(), right.StartByte()
	default:
		return diag.Diagnostic{}, false
	}
	d := diag.New(operatorSpacingDesc, message).
		WithViolation(src.Filename, src.Range(lo, hi), "")
	return d, true
}

// checkFieldOpSpacing requires the operands of `.` and `->` to be
// flush against the operator.
func checkFieldOpSpacing(src *source.Info, op, left, right *sitter.Node) (diag.Diagnostic, bool) {
	leftBad := left.EndByte() != op.StartByte()
	rightBad := op.EndByte() != right.StartByte()

	var message string
	var lo, hi uint32
	switch {
	case leftBad && rightBad:
		message = "Expected no space around field access operator"
		lo, hi = left.EndByte(), right.StartByte()
	case leftBad:
		message = "Expected no space before field access operator"
		lo, hi = left.EndByte(), op.StartByte()
	case rightBad:
		message = "Expected no space after field access operator"
		lo, hi = op.EndByte(), right.StartByte()
	default:
		return diag.Diagnostic{}, false
	}
	d := diag.New(operatorSpacingDesc, message).
		WithViolation(src.Filename, src.Range(lo, hi), "")
	return d, true
}
