package query

import (
	"fmt"
	"os"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// checkCustomPredicates evaluates the predicates the tree-sitter
// runtime does not know about. Prefixing a predicate name with "not-"
// negates it. A match is kept only when every predicate holds.
func (h *Helper) checkCustomPredicates(m *sitter.QueryMatch) bool {
	for _, steps := range h.q.PredicatesForPattern(uint32(m.PatternIndex)) {
		// Each slice ends with a Done sentinel step.
		if n := len(steps); n > 0 && steps[n-1].Type == sitter.QueryPredicateStepTypeDone {
			steps = steps[:n-1]
		}
		if len(steps) == 0 || steps[0].Type != sitter.QueryPredicateStepTypeString {
			continue
		}
		op := h.q.StringValueForId(steps[0].ValueId)
		switch op {
		case "eq?", "not-eq?", "match?", "not-match?":
			// already applied by FilterPredicates
			continue
		}

		name := strings.TrimPrefix(op, "not-")
		negate := name != op

		var result bool
		switch name {
		case "has-ancestor?":
			result = h.hasAncestor(m, steps, false)
		case "has-parent?":
			result = h.hasAncestor(m, steps, true)
		default:
			fmt.Fprintf(os.Stderr, "WARNING: Ignoring unknown query predicate `%s'\n", op)
			result = false
		}
		if result == negate {
			return false
		}
	}
	return true
}

// hasAncestor implements `#has-ancestor? @capture kind` by walking
// parent links up from the captured node. With parentOnly set, only
// the immediate parent is inspected.
func (h *Helper) hasAncestor(m *sitter.QueryMatch, steps []sitter.QueryPredicateStep, parentOnly bool) bool {
	if len(steps) != 3 ||
		steps[1].Type != sitter.QueryPredicateStepTypeCapture ||
		steps[2].Type != sitter.QueryPredicateStepTypeString {
		panic(fmt.Errorf("has-ancestor predicate expects a capture and a node kind"))
	}
	node := h.NodeFor(m, steps[1].ValueId)
	kind := h.q.StringValueForId(steps[2].ValueId)
	for p := node.Parent(); p != nil; p = p.Parent() {
		if p.Type() == kind {
			return true
		}
		if parentOnly {
			break
		}
	}
	return false
}
