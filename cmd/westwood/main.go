package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kdkasad/westwood/internal/crashlog"
	"github.com/kdkasad/westwood/internal/diagfmt"
	"github.com/kdkasad/westwood/internal/driver"
	"github.com/kdkasad/westwood/internal/project"
	"github.com/kdkasad/westwood/internal/version"
)

var (
	flagFormat string
	flagColor  string
	flagCache  bool
)

var rootCmd = &cobra.Command{
	Use:   "westwood [flags] <file.c>",
	Short: "Style checker for C source following the CS240 code standard",
	Long: `Westwood checks a C source file against the CS240 code standard
and reports style violations. It exits with status 0 whenever the
check itself succeeds, even if violations were found.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.Flags().StringVar(&flagFormat, "format", "pretty", "output format (pretty|machine)")
	rootCmd.Flags().StringVar(&flagColor, "color", "auto", "colorize output (never|auto|always)")
	rootCmd.Flags().BoolVar(&flagCache, "cache", false, "cache lint results on disk")
}

func main() {
	defer crashlog.Handle(crashlog.Metadata{
		Package: "Westwood",
		Binary:  "westwood",
		Version: version.Version,
	})
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	colorEnabled, err := resolveColor(flagColor)
	if err != nil {
		return err
	}
	color.NoColor = !colorEnabled

	switch flagFormat {
	case "pretty", "machine":
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or machine)", flagFormat)
	}

	filename, code, err := readInput(args[0])
	if err != nil {
		return err
	}

	configDir := "."
	if args[0] != "-" {
		configDir = filepath.Dir(args[0])
	}
	cfg, err := project.Discover(configDir)
	if err != nil {
		return err
	}

	opts := driver.Options{Rules: cfg.RuleOptions()}
	if flagCache {
		// The cache is an optimization, so failure to open it just
		// means a full run.
		if cache, cacheErr := driver.OpenDiskCache("westwood"); cacheErr == nil {
			opts.Cache = cache
		}
	}

	diagnostics, err := driver.Lint(cmd.Context(), filename, code, opts)
	if err != nil {
		if errors.Is(err, driver.ErrSyntax) {
			return fmt.Errorf("%s: %w", filename, err)
		}
		return err
	}

	switch flagFormat {
	case "machine":
		diagfmt.Machine(os.Stdout, diagnostics)
	default:
		diagfmt.Pretty(os.Stdout, diagnostics, code, diagfmt.PrettyOpts{Color: colorEnabled})
	}
	return nil
}

// readInput loads the file to check. "-" means standard input.
func readInput(arg string) (filename string, code []byte, err error) {
	if arg == "-" {
		code, err = io.ReadAll(os.Stdin)
		if err != nil {
			return "", nil, fmt.Errorf("failed to read standard input: %w", err)
		}
		return "<stdin>", code, nil
	}
	code, err = os.ReadFile(arg)
	if err != nil {
		return "", nil, err
	}
	return arg, code, nil
}

func resolveColor(mode string) (bool, error) {
	switch mode {
	case "never":
		return false, nil
	case "always":
		return true, nil
	case "auto":
		return term.IsTerminal(int(os.Stdout.Fd())), nil
	default:
		return false, fmt.Errorf("unsupported color mode %q (must be never, auto, or always)", mode)
	}
}
