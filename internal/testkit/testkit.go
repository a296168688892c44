// Package testkit provides shared helpers for rule and query tests.
package testkit

import (
	"context"
	"strings"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"

	"github.com/kdkasad/westwood/internal/query"
	"github.com/kdkasad/westwood/internal/source"
)

// Parse parses C code and wraps it in a source.Info named "test.c".
func Parse(tb testing.TB, code string) *source.Info {
	tb.Helper()
	parser := sitter.NewParser()
	parser.SetLanguage(c.GetLanguage())
	tree, err := parser.ParseCtx(context.Background(), nil, []byte(code))
	if err != nil {
		tb.Fatalf("parse failed: %v", err)
	}
	return source.MustNew("test.c", []byte(code), tree)
}

type point struct {
	row, col int
}

// CheckCaptures runs a query against annotated C code and verifies
// its captures.
//
// The input is C code interspersed with capture comments. A capture
// comment is a line beginning (after indentation) with "//!?"
// followed by one or more capture names. Each names a capture
// expected to start on the last preceding code line, at the column
// where the comment itself starts:
//
//	int main() {
//	//!? function
//	    return 0;
//	    //!? return
//	           //!? number
//	}
//
// Every expected capture must be produced and every produced capture
// must be expected, otherwise the test fails.
func CheckCaptures(tb testing.TB, querySrc, input string) {
	tb.Helper()

	var codeLines []string
	want := make(map[point]map[string]bool)
	for line := range strings.Lines(input) {
		line = strings.TrimSuffix(line, "\n")
		trimmed := strings.TrimLeft(line, " \t")
		if labels, ok := strings.CutPrefix(trimmed, "//!?"); ok {
			p := point{row: len(codeLines) - 1, col: len(line) - len(trimmed)}
			if want[p] == nil {
				want[p] = make(map[string]bool)
			}
			for _, label := range strings.Fields(labels) {
				want[p][label] = true
			}
		} else {
			codeLines = append(codeLines, line)
		}
	}

	info := Parse(tb, strings.Join(codeLines, "\n"))
	h := query.New(querySrc, info.Tree, info.Code)
	h.ForEachCapture(func(label string, cap sitter.QueryCapture) {
		start := cap.Node.StartPoint()
		p := point{row: int(start.Row), col: int(start.Column)}
		set := want[p]
		if set == nil || !set[label] {
			tb.Fatalf("unexpected capture @%s at row %d column %d", label, p.row, p.col)
		}
		delete(set, label)
		if len(set) == 0 {
			delete(want, p)
		}
	})
	for p, set := range want {
		for label := range set {
			tb.Errorf("expected capture @%s at row %d column %d", label, p.row, p.col)
		}
	}
}
