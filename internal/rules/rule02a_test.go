package rules_test

import (
	"strings"
	"testing"

	"github.com/kdkasad/westwood/internal/rules"
)

func TestLineLengthBoundary(t *testing.T) {
	r := &rules.LineLength{}

	// A comment line is the easiest way to control exact width
	line80 := "//" + strings.Repeat("x", 78)
	wantCount(t, check(t, r, line80+"\n"), 0)

	line81 := "//" + strings.Repeat("x", 79)
	ds := check(t, r, line81+"\n")
	wantCount(t, ds, 1)
	wantMessage(t, ds, "Line length exceeds 80 columns.")

	v := ds[0].Violations[0]
	if v.Range.Start.Col != 80 || v.Range.End.Col != 81 {
		t.Errorf("violation columns = %d..%d, want 80..81", v.Range.Start.Col, v.Range.End.Col)
	}
}

// A tab counts as 8 columns, so 10 tabs and a character pass 80.
func TestLineLengthCountsDisplayColumns(t *testing.T) {
	r := &rules.LineLength{}
	code := strings.Repeat("\t", 10) + "//x\n"
	ds := check(t, r, code)
	wantCount(t, ds, 1)
}

func TestWrappedIndentation(t *testing.T) {
	r := &rules.LineLength{}

	// Continuation indented by only 1 column relative to the first line
	bad := "int main() {\n" +
		"    int x = 1 +\n" +
		"     2;\n" +
		"}\n"
	ds := check(t, r, bad)
	wantCount(t, ds, 1)
	wantMessage(t, ds, "Wrapped expressions/statements must be indented by at least 2 spaces")
	if len(ds[0].References) != 1 {
		t.Fatalf("references = %+v", ds[0].References)
	}
	if ds[0].References[0].Label != "Found indentation of 4 columns on initial line" {
		t.Errorf("reference label = %q", ds[0].References[0].Label)
	}
	if ds[0].Violations[0].Label != "Expected >=6 columns of indentation on continuing line" {
		t.Errorf("violation label = %q", ds[0].Violations[0].Label)
	}

	good := "int main() {\n" +
		"    int x = 1 +\n" +
		"        2;\n" +
		"}\n"
	wantCount(t, check(t, r, good), 0)
}

func TestWrappedIndentationSingleLine(t *testing.T) {
	r := &rules.LineLength{}
	wantCount(t, check(t, r, "int main() {\n    int x = 1 + 2;\n    return x;\n}\n"), 0)
}
