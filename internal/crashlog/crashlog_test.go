package crashlog

import (
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestWriteReport(t *testing.T) {
	report := &Report{
		Meta: Metadata{
			Package: "Westwood",
			Binary:  "westwood",
			Version: "0.1.0",
		},
		Message:   "something broke",
		Location:  "main.go:42",
		Timestamp: time.Date(2026, 8, 30, 12, 0, 0, 123456000, time.UTC),
		Backtrace: []byte("goroutine 1 [running]:\nmain.main()\n"),
	}
	path, err := WriteReport(report)
	if err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}
	t.Cleanup(func() { os.Remove(path) })

	base := filepath.Base(path)
	if ok, _ := regexp.MatchString(`^[0-9a-f]{16}\.txt$`, base); !ok {
		t.Errorf("report name %q is not a 16-hex-digit token", base)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(content)
	for _, want := range []string{
		"Package: Westwood\n",
		"Binary: westwood\n",
		"Version: 0.1.0\n",
		"Architecture: " + runtime.GOARCH + "\n",
		"Operating system: " + runtime.GOOS + "\n",
		"Timestamp: 2026-08-30 12:00:00.123456 UTC\n",
		"Message: something broke\n",
		"Source location: main.go:42\n",
		"goroutine 1 [running]:",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q:\n%s", want, text)
		}
	}

	// Header, environment, and failure sections are separated by
	// blank lines
	if !strings.Contains(text, "Version: 0.1.0\n\nArchitecture:") {
		t.Error("missing blank line after header section")
	}
	if !strings.Contains(text, "UTC\n\nMessage:") {
		t.Error("missing blank line after environment section")
	}
	if !strings.Contains(text, "main.go:42\n\ngoroutine") {
		t.Error("missing blank line before backtrace")
	}
}

func TestWriteReportUniqueNames(t *testing.T) {
	report := &Report{Timestamp: time.Now().UTC()}
	a, err := WriteReport(report)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Remove(a) })
	b, err := WriteReport(report)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Remove(b) })
	if a == b {
		t.Error("two reports share a file name")
	}
}
