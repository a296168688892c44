package rules_test

import (
	"testing"

	"github.com/kdkasad/westwood/internal/rules"
)

func TestDefinePlacementCleanFile(t *testing.T) {
	r := &rules.DefinePlacement{}
	code := "#define ONE (1)\n" +
		"#define TWO (2)\n" +
		"\n" +
		"int main() {\n" +
		"    return ONE;\n" +
		"}\n"
	wantCount(t, check(t, r, code), 0)
}

func TestDefinePlacementAfterFunction(t *testing.T) {
	r := &rules.DefinePlacement{}
	code := "int main() {\n" +
		"    return 0;\n" +
		"}\n" +
		"\n" +
		"#define LATE (1)\n"
	ds := check(t, r, code)
	wantCount(t, ds, 1)
	wantMessage(t, ds,
		"Global preprocessor definitions must be placed at the top of the file, before all functions")
	if ds[0].Violations[0].Label != "Macro(s) defined here" {
		t.Errorf("violation label = %q", ds[0].Violations[0].Label)
	}
	if len(ds[0].References) != 1 || ds[0].References[0].Label != "First function defined here" {
		t.Errorf("references = %+v", ds[0].References)
	}
}

func TestDefinePlacementGrouping(t *testing.T) {
	r := &rules.DefinePlacement{}
	code := "#define ONE (1)\n" +
		"\n" +
		"#define TWO (2)\n" +
		"\n" +
		"int main() {\n" +
		"    return 0;\n" +
		"}\n"
	ds := check(t, r, code)
	wantCount(t, ds, 1)
	wantMessage(t, ds, "All top-level #define statements must be grouped together")
	if len(ds[0].References) != 1 || len(ds[0].Violations) != 1 {
		t.Errorf("spans = %+v / %+v", ds[0].References, ds[0].Violations)
	}
}

func TestDefinePlacementGroupingInFunction(t *testing.T) {
	r := &rules.DefinePlacement{}
	code := "int main() {\n" +
		"\n" +
		"#define ONE (1)\n" +
		"\n" +
		"    int x = 0;\n" +
		"\n" +
		"#define TWO (2)\n" +
		"\n" +
		"    return x;\n" +
		"}\n"
	ds := check(t, r, code)
	wantCount(t, ds, 1)
	wantMessage(t, ds, "All #define statements in each function must be grouped together")
	if len(ds[0].Notes) != 1 || ds[0].Notes[0] != "In function `main()'" {
		t.Errorf("notes = %+v", ds[0].Notes)
	}
}

func TestDefinePlacementBlankLines(t *testing.T) {
	r := &rules.DefinePlacement{}

	before := "int g_x = 0;\n" +
		"#define ONE (1)\n" +
		"\n" +
		"int main() {\n" +
		"    return 0;\n" +
		"}\n"
	ds := check(t, r, before)
	wantCount(t, ds, 1)
	wantMessage(t, ds, "Expected blank line before #define statement(s)")

	after := "#define ONE (1)\n" +
		"int g_x = 0;\n"
	ds = check(t, r, after)
	wantCount(t, ds, 1)
	wantMessage(t, ds, "Expected blank line after #define statement(s)")
}

// The start and end of the file count as blank.
func TestDefinePlacementFileBoundaries(t *testing.T) {
	r := &rules.DefinePlacement{}
	wantCount(t, check(t, r, "#define ONLY (1)\n"), 0)
}

// Consecutive #define lines form one group and need no blank lines
// between each other.
func TestDefinePlacementAdjacentDefines(t *testing.T) {
	r := &rules.DefinePlacement{}
	code := "#define ONE (1)\n" +
		"#define TWO (2)\n" +
		"#define THREE (3)\n"
	wantCount(t, check(t, r, code), 0)
}
