package rules_test

import (
	"testing"

	"github.com/kdkasad/westwood/internal/rules"
)

func inMain(body string) string {
	return "int main() {\n    " + body + "\n}\n"
}

func TestOperatorSpacingBinary(t *testing.T) {
	cases := []struct {
		name string
		code string
		msg  string
	}{
		{"no spaces", "int x = 1+2;", "Expected a single space on each side of binary operator"},
		{"missing before", "int x = 1+ 2;", "Expected a single space before binary operator"},
		{"missing after", "int x = 1 +2;", "Expected a single space after binary operator"},
		{"double space", "int x = 1  +  2;", "Expected a single space on each side of binary operator"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ds := check(t, &rules.OperatorSpacing{}, inMain(tc.code))
			wantCount(t, ds, 1)
			wantMessage(t, ds, tc.msg)
		})
	}

	wantCount(t, check(t, &rules.OperatorSpacing{}, inMain("int x = 1 + 2;")), 0)
}

// Operands on another line are the line length rule's business.
func TestOperatorSpacingWrappedBinary(t *testing.T) {
	code := "int main() {\n    int x = 1 +\n        2;\n}\n"
	wantCount(t, check(t, &rules.OperatorSpacing{}, code), 0)
}

func TestOperatorSpacingUnary(t *testing.T) {
	r := &rules.OperatorSpacing{}

	ds := check(t, r, inMain("int x = - 1;"))
	wantCount(t, ds, 1)
	wantMessage(t, ds, "Expected no space after unary operator")

	wantCount(t, check(t, r, inMain("int x = -1;")), 0)
}

func TestOperatorSpacingPointer(t *testing.T) {
	r := &rules.OperatorSpacing{}

	ds := check(t, r, inMain("int *p = 0;\n    int y = * p;"))
	wantCount(t, ds, 1)
	wantMessage(t, ds, "Expected no space after unary operator")

	ds = check(t, r, inMain("int * p = 0;"))
	wantCount(t, ds, 1)
	wantMessage(t, ds, "Expected no space after unary operator")
}

func TestOperatorSpacingArray(t *testing.T) {
	r := &rules.OperatorSpacing{}

	ds := check(t, r, inMain("int a[3];\n    int x = a [0];"))
	wantCount(t, ds, 1)
	wantMessage(t, ds, "Expected no space before array subscript")

	wantCount(t, check(t, r, inMain("int a[3];\n    int x = a[0];")), 0)
}

func TestOperatorSpacingField(t *testing.T) {
	r := &rules.OperatorSpacing{}
	code := "struct point { int x; };\n" +
		"int get(struct point p) {\n" +
		"    return p . x;\n" +
		"}\n"
	ds := check(t, r, code)
	wantCount(t, ds, 1)
	wantMessage(t, ds, "Expected no space around field access operator")

	clean := "struct point { int x; };\n" +
		"int get(struct point p) {\n" +
		"    return p.x;\n" +
		"}\n"
	wantCount(t, check(t, r, clean), 0)
}
