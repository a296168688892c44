package diag

import (
	"testing"

	"github.com/kdkasad/westwood/internal/source"
)

var testRule = &RuleDescription{
	Group:       3,
	Letter:      'E',
	Name:        "TrailingWhitespace",
	Description: "lines must not end with whitespace",
}

func TestRuleCode(t *testing.T) {
	cases := []struct {
		group  int
		letter byte
		want   string
	}{
		{1, 'A', "I:A"},
		{2, 'B', "II:B"},
		{3, 'F', "III:F"},
		{11, 'E', "XI:E"},
		{12, 'A', "XII:A"},
	}
	for _, tc := range cases {
		rd := &RuleDescription{Group: tc.group, Letter: tc.letter}
		if got := rd.Code(); got != tc.want {
			t.Errorf("Code(%d, %c) = %q, want %q", tc.group, tc.letter, got, tc.want)
		}
	}
}

func TestBuilder(t *testing.T) {
	r := source.Range{StartByte: 0, EndByte: 3}
	d := New(testRule, "message").
		WithSeverity(SevError).
		WithViolation("a.c", r, "here").
		WithReference("a.c", r, "context").
		WithNote("a note").
		WithSuggestion("fix")

	if d.Rule != testRule {
		t.Error("rule not set")
	}
	if d.Severity != SevError {
		t.Errorf("severity = %v, want %v", d.Severity, SevError)
	}
	if d.Message != "message" {
		t.Errorf("message = %q", d.Message)
	}
	if len(d.Violations) != 1 || d.Violations[0].Label != "here" {
		t.Errorf("violations = %+v", d.Violations)
	}
	if len(d.References) != 1 || d.References[0].Label != "context" {
		t.Errorf("references = %+v", d.References)
	}
	if len(d.Notes) != 1 || d.Notes[0] != "a note" {
		t.Errorf("notes = %+v", d.Notes)
	}
	if d.Suggestion != "fix" {
		t.Errorf("suggestion = %q", d.Suggestion)
	}
}

func TestBuilderDefaultSeverity(t *testing.T) {
	d := New(testRule, "m")
	if d.Severity != SevWarning {
		t.Errorf("default severity = %v, want %v", d.Severity, SevWarning)
	}
}

func TestBagPreservesOrder(t *testing.T) {
	bag := NewBag()
	bag.Add(New(testRule, "first"))
	bag.AddAll([]Diagnostic{New(testRule, "second"), New(testRule, "third")})
	items := bag.Items()
	if len(items) != 3 {
		t.Fatalf("len = %d, want 3", len(items))
	}
	for i, want := range []string{"first", "second", "third"} {
		if items[i].Message != want {
			t.Errorf("items[%d].Message = %q, want %q", i, items[i].Message, want)
		}
	}
}

func TestBagSeverityFlags(t *testing.T) {
	bag := NewBag()
	if bag.HasErrors() || bag.HasWarnings() {
		t.Error("empty bag should have no errors or warnings")
	}
	bag.Add(New(testRule, "w"))
	if !bag.HasWarnings() {
		t.Error("expected HasWarnings after adding a warning")
	}
	if bag.HasErrors() {
		t.Error("warning must not count as error")
	}
	bag.Add(New(testRule, "e").WithSeverity(SevError))
	if !bag.HasErrors() {
		t.Error("expected HasErrors after adding an error")
	}
}
