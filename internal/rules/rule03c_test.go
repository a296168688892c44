package rules_test

import (
	"testing"

	"github.com/kdkasad/westwood/internal/rules"
)

func TestDelimiterSpacingArguments(t *testing.T) {
	r := &rules.DelimiterSpacing{}

	ds := check(t, r, "int add(int a,int b) {\n    return add(a,b);\n}\n")
	wantCount(t, ds, 2)
	wantMessage(t, ds, "Expected one space after internal commas and semicolons")

	wantCount(t, check(t, r, "int add(int a, int b) {\n    return add(a, b);\n}\n"), 0)
}

func TestDelimiterSpacingForLoop(t *testing.T) {
	r := &rules.DelimiterSpacing{}

	ds := check(t, r, "int main() {\n    for (int i = 0;i < 10;i = i + 1) {\n    }\n}\n")
	wantCount(t, ds, 2)

	wantCount(t, check(t, r, "int main() {\n    for (int i = 0; i < 10; i = i + 1) {\n    }\n}\n"), 0)
}

func TestDelimiterSpacingInitializerList(t *testing.T) {
	r := &rules.DelimiterSpacing{}
	ds := check(t, r, "int g_nums[] = {1,2, 3};\n")
	wantCount(t, ds, 1)
}

// Delimiters at the end of a line have nothing following to space.
func TestDelimiterSpacingLineBreak(t *testing.T) {
	r := &rules.DelimiterSpacing{}
	wantCount(t, check(t, r, "int add(int a,\n        int b) {\n    return 0;\n}\n"), 0)
}
