package query_test

import (
	"testing"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kdkasad/westwood/internal/query"
	"github.com/kdkasad/westwood/internal/testkit"
)

func TestHasAncestorPredicate(t *testing.T) {
	input := `int a;
    //!? outfunc
int b = 0;
    //!? outfunc
int func() {
    //!? infunc
    int c;
        //!? infunc
    if (a == b) {
        //!? infunc inif
             //!? infunc inif
        int d;
            //!? infunc inif
        return d;
               //!? infunc inif
    }
}
`
	query := `
((identifier) @infunc
    (#has-ancestor? @infunc function_definition))
((identifier) @outfunc
    (#not-has-ancestor? @outfunc function_definition))
((identifier) @inif
    (#has-ancestor? @inif if_statement))
`
	testkit.CheckCaptures(t, query, input)
}

func TestHasParentPredicate(t *testing.T) {
	input := `int a = 0;
//!? toplevel
        //!? number

int main() {
//!? toplevel
    //!? funcdeclname
    return 0;
}
`
	query := `
((_) @toplevel
    (#has-parent? @toplevel translation_unit))
((_ declarator: (identifier) @funcdeclname)
    (#has-parent? @funcdeclname function_declarator))
((number_literal) @number
    (#not-has-parent? @number return_statement))
`
	testkit.CheckCaptures(t, query, input)
}

// A well-formed two-argument predicate must run cleanly even though
// the runtime appends a Done sentinel to every predicate step slice.
func TestHasAncestorArgumentShape(t *testing.T) {
	info := testkit.Parse(t, "int main() {\n    int x;\n    return x;\n}\n")

	h := query.New(`((identifier) @id
    (#has-ancestor? @id "function_definition"))`, info.Tree, info.Code)
	matched := 0
	h.ForEachMatch(func(m *sitter.QueryMatch) { matched++ })
	if matched == 0 {
		t.Error("expected matches inside the function body")
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic for predicate missing its node kind")
		}
	}()
	bad := query.New(`((identifier) @id (#has-ancestor? @id))`, info.Tree, info.Code)
	bad.ForEachMatch(func(m *sitter.QueryMatch) {})
}
