package rules_test

import (
	"testing"

	"github.com/kdkasad/westwood/internal/rules"
)

func TestNamingConventionVariables(t *testing.T) {
	r := &rules.NamingConvention{}

	ds := check(t, r, "int myVar = 0;\n")
	wantCount(t, ds, 1)
	wantMessage(t, ds, "Variable name must be in lower snake case")
	if ds[0].Suggestion != "my_var" {
		t.Errorf("suggestion = %q, want %q", ds[0].Suggestion, "my_var")
	}
	if ds[0].Violations[0].Label != "Variable `myVar' declared here" {
		t.Errorf("label = %q", ds[0].Violations[0].Label)
	}

	wantCount(t, check(t, r, "int my_var = 0;\n"), 0)
}

func TestNamingConventionFunctions(t *testing.T) {
	r := &rules.NamingConvention{}
	ds := check(t, r, "void doThing(void) {}\n")
	wantCount(t, ds, 1)
	wantMessage(t, ds, "Function name must be in lower snake case")
	if ds[0].Suggestion != "do_thing" {
		t.Errorf("suggestion = %q", ds[0].Suggestion)
	}
	wantCount(t, check(t, r, "void do_thing(void) {}\n"), 0)
}

func TestNamingConventionTypes(t *testing.T) {
	r := &rules.NamingConvention{}

	ds := check(t, r, "typedef int MyInt;\n")
	wantCount(t, ds, 1)
	wantMessage(t, ds, "Type name must be in lower snake case")

	ds = check(t, r, "struct BadStruct { int x; };\n")
	wantCount(t, ds, 1)
	wantMessage(t, ds, "Struct name must be in lower snake case")

	ds = check(t, r, "union BadUnion { int x; };\n")
	wantCount(t, ds, 1)
	wantMessage(t, ds, "Union name must be in lower snake case")

	ds = check(t, r, "enum BadEnum { ONE };\n")
	wantCount(t, ds, 1)
	wantMessage(t, ds, "Enum name must be in lower snake case")
}

// Forward declarations carry no body and stay unflagged.
func TestNamingConventionForwardDeclaration(t *testing.T) {
	r := &rules.NamingConvention{}
	wantCount(t, check(t, r, "struct BadStruct;\n"), 0)
}

func TestNamingConventionFields(t *testing.T) {
	r := &rules.NamingConvention{}
	ds := check(t, r, "struct s { int badField; };\n")
	wantCount(t, ds, 1)
	wantMessage(t, ds, "Variable name must be in lower snake case")
}

func TestNamingConventionParameters(t *testing.T) {
	r := &rules.NamingConvention{}
	ds := check(t, r, "void f(int badParam) {}\n")
	wantCount(t, ds, 1)
	if ds[0].Suggestion != "bad_param" {
		t.Errorf("suggestion = %q", ds[0].Suggestion)
	}
}

func TestLowerSnakeSuggestions(t *testing.T) {
	r := &rules.NamingConvention{}
	cases := []struct {
		code string
		want string
	}{
		{"int camelCase;\n", "camel_case"},
		{"int PascalCase;\n", "pascal_case"},
		{"int ALLCAPS;\n", "allcaps"},
		{"int mixed_Case;\n", "mixed_case"},
	}
	for _, tc := range cases {
		ds := check(t, r, tc.code)
		wantCount(t, ds, 1)
		if ds[0].Suggestion != tc.want {
			t.Errorf("%q: suggestion = %q, want %q", tc.code, ds[0].Suggestion, tc.want)
		}
	}
}
