// Package diagfmt renders diagnostics for people and for tools.
package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	// Color enables ANSI styling. The machine format never uses
	// color regardless of this setting.
	Color bool
}
