package query

import (
	"fmt"
	"sort"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"
)

// Helper wraps a compiled tree-sitter query over one parsed file.
// Patterns are compiled against the C grammar; a malformed pattern is
// a programmer error and panics.
type Helper struct {
	q    *sitter.Query
	tree *sitter.Tree
	code []byte
}

func New(pattern string, tree *sitter.Tree, code []byte) *Helper {
	q, err := sitter.NewQuery([]byte(pattern), c.GetLanguage())
	if err != nil {
		panic(fmt.Errorf("invalid query pattern: %w", err))
	}
	return &Helper{q: q, tree: tree, code: code}
}

// CaptureIndex returns the index of the named capture. The capture
// must exist in the pattern.
func (h *Helper) CaptureIndex(name string) uint32 {
	for i := uint32(0); i < h.q.CaptureCount(); i++ {
		if h.q.CaptureNameForId(i) == name {
			return i
		}
	}
	panic(fmt.Errorf("query has no capture named %q", name))
}

// CaptureName returns the name of the capture with the given index.
func (h *Helper) CaptureName(index uint32) string {
	return h.q.CaptureNameForId(index)
}

// matches runs the query and returns every match that passes both the
// built-in and the custom predicates, ordered by the start byte of
// the first capture. Cursor iteration order depends on tree internals,
// so matches are sorted before delivery.
func (h *Helper) matches() []*sitter.QueryMatch {
	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(h.q, h.tree.RootNode())

	var out []*sitter.QueryMatch
	for {
		m, ok := qc.NextMatch()
		if !ok {
			break
		}
		m = qc.FilterPredicates(m, h.code)
		if len(m.Captures) == 0 {
			continue
		}
		if !h.checkCustomPredicates(m) {
			continue
		}
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Captures[0].Node.StartByte() < out[j].Captures[0].Node.StartByte()
	})
	return out
}

// ForEachMatch calls fn once per passing match, in source order.
func (h *Helper) ForEachMatch(fn func(m *sitter.QueryMatch)) {
	for _, m := range h.matches() {
		fn(m)
	}
}

// ForEachCapture calls fn for every capture of every passing match,
// ordered by capture extent (start byte, then end byte).
func (h *Helper) ForEachCapture(fn func(name string, c sitter.QueryCapture)) {
	var caps []sitter.QueryCapture
	for _, m := range h.matches() {
		caps = append(caps, m.Captures...)
	}
	sort.SliceStable(caps, func(i, j int) bool {
		a, b := caps[i].Node, caps[j].Node
		if a.StartByte() != b.StartByte() {
			return a.StartByte() < b.StartByte()
		}
		return a.EndByte() < b.EndByte()
	})
	for _, cap := range caps {
		fn(h.q.CaptureNameForId(cap.Index), cap)
	}
}

// FindNode returns the node captured at the given index in the match,
// or nil when the capture matched nothing. Several nodes under one
// capture index is a programmer error.
func (h *Helper) FindNode(m *sitter.QueryMatch, captureIndex uint32) *sitter.Node {
	var found *sitter.Node
	for _, cap := range m.Captures {
		if cap.Index == captureIndex {
			if found != nil {
				panic(fmt.Errorf("capture %q matched more than one node",
					h.q.CaptureNameForId(captureIndex)))
			}
			found = cap.Node
		}
	}
	return found
}

// NodeFor is FindNode but requires exactly one captured node.
func (h *Helper) NodeFor(m *sitter.QueryMatch, captureIndex uint32) *sitter.Node {
	found := h.FindNode(m, captureIndex)
	if found == nil {
		panic(fmt.Errorf("capture %q matched no node", h.q.CaptureNameForId(captureIndex)))
	}
	return found
}
