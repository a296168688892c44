// Package treeutil provides small helpers for walking tree-sitter
// syntax trees of C source.
package treeutil

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

// FunctionName returns the name of the function defined by a
// function_definition node. It descends the declarator field through
// pointer and function declarators until it reaches the identifier.
// Panics when the node is not a function definition or the chain is
// broken.
func FunctionName(node *sitter.Node, code []byte) string {
	if node.Type() != "function_definition" {
		panic(fmt.Errorf("expected function_definition, got %s", node.Type()))
	}
	n := node
	for n.Type() != "identifier" {
		d := n.ChildByFieldName("declarator")
		if d == nil {
			panic(fmt.Errorf("node %s has no declarator field", n.Type()))
		}
		n = d
	}
	return n.Content(code)
}

// IsFunctionDeclaration reports whether a declaration node declares a
// function (prototype) rather than a variable. It follows the
// declarator field chain looking for a function_declarator, so
// function pointers wrapped in parenthesized declarators do not
// count.
func IsFunctionDeclaration(decl *sitter.Node) bool {
	for n := decl.ChildByFieldName("declarator"); n != nil; n = n.ChildByFieldName("declarator") {
		if n.Type() == "function_declarator" {
			return true
		}
	}
	return false
}

// CollapseRanges merges runs of adjacent ranges into groups. Two
// ranges belong to the same group when the end position of the prior
// one equals the start position of the next. Preprocessor definition
// nodes include their trailing newline, so consecutive #define lines
// collapse into one group. Input must be sorted by start byte.
func CollapseRanges(ranges []sitter.Range) []sitter.Range {
	if len(ranges) == 0 {
		return nil
	}
	out := make([]sitter.Range, 0, len(ranges))
	cur := ranges[0]
	for _, r := range ranges[1:] {
		if cur.EndPoint == r.StartPoint {
			cur.EndByte = r.EndByte
			cur.EndPoint = r.EndPoint
			continue
		}
		out = append(out, cur)
		cur = r
	}
	return append(out, cur)
}

// NodeRange returns the byte and point extent of a node.
func NodeRange(n *sitter.Node) sitter.Range {
	return sitter.Range{
		StartByte:  n.StartByte(),
		EndByte:    n.EndByte(),
		StartPoint: n.StartPoint(),
		EndPoint:   n.EndPoint(),
	}
}

// TrimTrailingEOL shortens a byte range to exclude a trailing LF or
// CRLF sequence, if present.
func TrimTrailingEOL(lo, hi uint32, code []byte) (uint32, uint32) {
	if hi >= 1 && hi <= uint32(len(code)) && code[hi-1] == '\n' {
		hi--
		if hi >= 1 && code[hi-1] == '\r' {
			hi--
		}
	}
	return lo, hi
}
