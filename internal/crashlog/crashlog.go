// Package crashlog writes panic reports to a file in the temp
// directory so users can attach them to bug reports instead of
// copying a backtrace off their terminal.
package crashlog

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Metadata identifies the crashing program in the report header.
type Metadata struct {
	Package string
	Binary  string
	Version string
}

// Report holds everything that goes into a crash report file.
type Report struct {
	Meta      Metadata
	Message   string
	Location  string // file:line of the panic site, best effort
	Timestamp time.Time
	Backtrace []byte
}

// Handle is meant to be deferred at the top of main. On panic it
// writes a crash report and prints a short notice. If the report file
// cannot be created, the panic is re-raised so the runtime's default
// handler still prints the backtrace.
func Handle(meta Metadata) {
	r := recover()
	if r == nil {
		return
	}
	report := &Report{
		Meta:      meta,
		Message:   fmt.Sprint(r),
		Location:  panicSite(),
		Timestamp: time.Now().UTC(),
		Backtrace: debug.Stack(),
	}
	path, err := WriteReport(report)
	if err != nil {
		panic(r)
	}

	notice := color.New(color.FgRed, color.Bold)
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		notice.DisableColor()
	}
	notice.Fprintf(os.Stderr, "%s crashed unexpectedly.\n", meta.Binary)
	fmt.Fprintf(os.Stderr, "A crash report has been written to %s\n", path)
	fmt.Fprintln(os.Stderr, "Please attach it when filing a bug report.")
	os.Exit(2)
}

// WriteReport writes the report to a fresh file in the OS temp
// directory and returns its path. The file name is a random 16-digit
// hex token with a .txt suffix.
func WriteReport(report *Report) (string, error) {
	var token [8]byte
	if _, err := rand.Read(token[:]); err != nil {
		return "", err
	}
	path := filepath.Join(os.TempDir(), hex.EncodeToString(token[:])+".txt")
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", err
	}
	werr := formatReport(f, report)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return "", werr
	}
	return path, nil
}

func formatReport(w io.Writer, report *Report) error {
	_, err := fmt.Fprintf(w,
		"Package: %s\nBinary: %s\nVersion: %s\n\nArchitecture: %s\nOperating system: %s\nTimestamp: %s\n\nMessage: %s\nSource location: %s\n\n%s",
		report.Meta.Package,
		report.Meta.Binary,
		report.Meta.Version,
		runtime.GOARCH,
		runtime.GOOS,
		report.Timestamp.Format("2006-01-02 15:04:05.000000 UTC"),
		report.Message,
		report.Location,
		report.Backtrace)
	return err
}

// panicSite walks the stack for the first frame outside the runtime
// and this package, which is the panicking line in the common case.
func panicSite() string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if frame.File != "" &&
			!isRuntimeFrame(frame.Function) &&
			filepath.Base(filepath.Dir(frame.File)) != "crashlog" {
			return fmt.Sprintf("%s:%d", frame.File, frame.Line)
		}
		if !more {
			return "unknown"
		}
	}
}

func isRuntimeFrame(fn string) bool {
	return len(fn) >= 8 && fn[:8] == "runtime."
}
