// Package config holds runtime configuration: defaults, CLI flag parsing,
// and validation.
package config

import (
	"strings"

	"gitlab.com/NebulousLabs/errors"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Target directory (set from the positional arg).
	RootDir string

	// Behavior flags.
	DryRun       bool
	Recursive    bool // Default: true. Cleared by --no-recursive.
	IncludeFiles bool // Default: true. Cleared by --no-files.
	IncludeDirs  bool // Default: true. Cleared by --no-dirs.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults applied. Used as the base
// before [ParseFlags] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		DryRun:       false,
		Recursive:    true,
		IncludeFiles: true,
		IncludeDirs:  true,
		Verbose:      false,
		ColorMode:    ColorAuto,
		CheckOnly:    false,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an
// empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum fields and flag combinations. When not in CheckOnly
// mode it also requires a non-empty target directory.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if !c.IncludeFiles && !c.IncludeDirs {
		return errors.New("--no-files and --no-dirs together leave nothing to rename")
	}

	if c.CheckOnly {
		return nil
	}
	if c.RootDir == "" {
		return errors.New("need exactly one target directory")
	}
	return nil
}
