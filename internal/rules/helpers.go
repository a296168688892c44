package rules

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kdkasad/westwood/internal/diag"
	"github.com/kdkasad/westwood/internal/source"
	"github.com/kdkasad/westwood/internal/treeutil"
)

// isSingleSpaceBetween reports whether left and right are separated by
// exactly one ASCII space.
func isSingleSpaceBetween(src *source.Info, left, right *sitter.Node) bool {
	return left.EndByte()+1 == right.StartByte() && src.Code[left.EndByte()] == ' '
}

// checkSingleSpaceBetween produces a diagnostic spanning from left to
// right when the two nodes are not separated by exactly one space.
func checkSingleSpaceBetween(rd *diag.RuleDescription, src *source.Info, left, right *sitter.Node, msg string) (diag.Diagnostic, bool) {
	if isSingleSpaceBetween(src, left, right) {
		return diag.Diagnostic{}, false
	}
	d := diag.New(rd, msg).
		WithViolation(src.Filename, src.Range(left.StartByte(), right.EndByte()), "")
	return d, true
}

// trimmedRange resolves a byte interval with any trailing newline
// removed, so labels do not underline the line break.
func trimmedRange(src *source.Info, lo, hi uint32) source.Range {
	lo, hi = treeutil.TrimTrailingEOL(lo, hi, src.Code)
	return src.Range(lo, hi)
}
