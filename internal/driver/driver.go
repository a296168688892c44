// Package driver ties parsing and rule execution together. It owns
// the syntax-error gate and the on-disk result cache.
package driver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"

	"github.com/kdkasad/westwood/internal/diag"
	"github.com/kdkasad/westwood/internal/rules"
	"github.com/kdkasad/westwood/internal/source"
)

// ErrSyntax is returned when the input contains syntax errors. Style
// checks on a broken tree would mostly be noise, so no diagnostics are
// produced in that case.
var ErrSyntax = errors.New("input contains syntax errors")

// Options configures a lint run.
type Options struct {
	// Rules configures which rules run and how.
	Rules rules.Options

	// Cache, when non-nil, is consulted before parsing and updated
	// after a successful run.
	Cache *DiskCache
}

// Lint parses code as C and runs the rule catalog over it, returning
// diagnostics in rule order. filename is used only for labeling
// diagnostics.
func Lint(ctx context.Context, filename string, code []byte, opts Options) ([]diag.Diagnostic, error) {
	if !utf8.Valid(code) {
		return nil, source.ErrInvalidUTF8
	}

	key := cacheKey(code, opts.Rules)
	if cached, ok := opts.Cache.get(filename, key); ok {
		return cached, nil
	}

	parser := sitter.NewParser()
	parser.SetLanguage(c.GetLanguage())
	tree, err := parser.ParseCtx(ctx, nil, code)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	if hasSyntaxError(tree.RootNode()) {
		return nil, ErrSyntax
	}

	src, err := source.New(filename, code, tree)
	if err != nil {
		return nil, err
	}

	bag := diag.NewBag()
	for _, rule := range rules.All(opts.Rules) {
		bag.AddAll(rule.Check(src))
	}

	diagnostics := bag.Items()
	if err := opts.Cache.put(key, diagnostics); err != nil {
		// A broken cache must not fail the run
		fmt.Fprintln(os.Stderr, "warning: failed to write result cache:", err)
	}
	return diagnostics, nil
}

// hasSyntaxError reports whether the subtree contains an ERROR or
// MISSING node. The walk is explicit because MISSING nodes are
// inserted by error recovery and never appear in query results.
func hasSyntaxError(n *sitter.Node) bool {
	if n.IsMissing() || n.Type() == "ERROR" {
		return true
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if hasSyntaxError(n.Child(i)) {
			return true
		}
	}
	return false
}
