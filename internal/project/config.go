// Package project locates and loads westwood.toml, the per-project
// configuration file.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/kdkasad/westwood/internal/rules"
)

// ConfigName is the file name searched for in the checked file's
// directory and its ancestors.
const ConfigName = "westwood.toml"

// Config mirrors the westwood.toml schema.
type Config struct {
	Rules struct {
		// Disabled lists rule codes (e.g. "XI:E") to skip.
		Disabled []string `toml:"disabled"`

		// MaxLineDiagnostics caps per-line rules. Zero means
		// unlimited.
		MaxLineDiagnostics int `toml:"max-line-diagnostics"`
	} `toml:"rules"`
}

// FindConfig walks up from startDir to locate westwood.toml.
func FindConfig(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ConfigName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// LoadConfig parses a westwood.toml file. Unknown keys are rejected
// so typos surface instead of being silently ignored.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	return &cfg, nil
}

// RuleOptions converts loaded configuration into rule options. A nil
// config runs every rule uncapped.
func (c *Config) RuleOptions() rules.Options {
	if c == nil {
		return rules.Options{}
	}
	return rules.Options{
		MaxLineDiagnostics: c.Rules.MaxLineDiagnostics,
		Disabled:           c.Rules.Disabled,
	}
}

// Discover finds and loads the nearest config above startDir. Missing
// config is not an error; the returned config is nil in that case.
func Discover(startDir string) (*Config, error) {
	path, ok, err := FindConfig(startDir)
	if err != nil || !ok {
		return nil, err
	}
	return LoadConfig(path)
}
