package source

import "testing"

func TestScanLines(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []Line
	}{
		{"empty", "", nil},
		{"single no newline", "abc", []Line{{"abc", 0}}},
		{"single with newline", "abc\n", []Line{{"abc", 0}}},
		{"two lines", "abc\ndef\n", []Line{{"abc", 0}, {"def", 4}}},
		{"blank middle line", "a\n\nb", []Line{{"a", 0}, {"", 2}, {"b", 3}}},
		{"crlf retained", "a\r\nb\r\n", []Line{{"a\r", 0}, {"b\r", 3}}},
		{"only newline", "\n", []Line{{"", 0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ScanLines([]byte(tc.input))
			if len(got) != len(tc.want) {
				t.Fatalf("got %d lines, want %d: %v", len(got), len(tc.want), got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("line %d: got %+v, want %+v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

// Joining the scanned lines with newlines must reproduce the input,
// modulo a single trailing newline.
func TestScanLinesRoundTrip(t *testing.T) {
	inputs := []string{
		"int main() {\n  return 0;\n}\n",
		"no trailing newline",
		"crlf\r\nlines\r\n",
		"\n\n\n",
	}
	for _, input := range inputs {
		lines := ScanLines([]byte(input))
		joined := ""
		for i, l := range lines {
			if i > 0 {
				joined += "\n"
			}
			joined += l.Text
		}
		trimmed := input
		if n := len(trimmed); n > 0 && trimmed[n-1] == '\n' {
			trimmed = trimmed[:n-1]
		}
		if joined != trimmed {
			t.Errorf("round trip of %q: got %q, want %q", input, joined, trimmed)
		}
	}
}

func TestLineStartOffsets(t *testing.T) {
	lines := ScanLines([]byte("ab\ncdef\n\ng"))
	wantStarts := []uint32{0, 3, 8, 9}
	if len(lines) != len(wantStarts) {
		t.Fatalf("got %d lines, want %d", len(lines), len(wantStarts))
	}
	for i, want := range wantStarts {
		if lines[i].Start != want {
			t.Errorf("line %d start: got %d, want %d", i, lines[i].Start, want)
		}
	}
}

func TestNewRejectsInvalidUTF8(t *testing.T) {
	_, err := New("bad.c", []byte{0xff, 0xfe}, nil)
	if err == nil {
		t.Fatal("expected error for invalid UTF-8")
	}
}
