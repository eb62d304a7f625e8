package config

// This file implements CLI flag parsing and help text.
// Negated flags (e.g. --no-recursive) are applied after Parse so Config
// defaults hold unless the user passes the flag.

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and
// exits. On error it returns non-nil (e.g. unknown flag, missing positional
// arg).
func ParseFlags(cfg *Config, version string) error {
	fs := flag.NewFlagSet("capfirst", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs, version) }

	var negated negatedFlags

	defineBehaviorFlags(fs, cfg, &negated)
	defineDisplayFlags(fs, cfg, &negated)
	defineUtilityFlags(fs, &negated)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	applyNegatedFlags(cfg, &negated)

	if negated.showHelp {
		printUsage(fs, version)
		os.Exit(0)
	}
	if negated.showVersion {
		fmt.Fprintln(os.Stdout, "capfirst v"+version)
		os.Exit(0)
	}

	return parsePositionalArgs(fs, cfg)
}

// negatedFlags holds boolean flags that are applied after Parse.
// These either invert a default (e.g. noRecursive -> Recursive=false) or
// trigger exit (showHelp, showVersion).
type negatedFlags struct {
	noRecursive bool
	noFiles     bool
	noDirs      bool
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineBehaviorFlags registers dry-run, recursion, and entry-kind filters.
func defineBehaviorFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Preview only; do not rename anything")
	fs.BoolVar(&cfg.DryRun, "d", false, "Same as --dry-run")
	fs.BoolVar(&n.noRecursive, "no-recursive", false, "Only rename immediate children of the target")
	fs.BoolVar(&n.noFiles, "no-files", false, "Leave file names untouched (folders only)")
	fs.BoolVar(&n.noDirs, "no-dirs", false, "Leave folder names untouched (files only)")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run filesystem diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, n *negatedFlags) {
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyNegatedFlags copies negated flag values into cfg
// (e.g. noRecursive -> Recursive=false).
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noRecursive {
		cfg.Recursive = false
	}
	if n.noFiles {
		cfg.IncludeFiles = false
	}
	if n.noDirs {
		cfg.IncludeDirs = false
	}
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets RootDir from the positional arg. In CheckOnly
// mode the arg is optional and defaults to the current directory.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if cfg.CheckOnly {
		if len(args) == 1 {
			cfg.RootDir = NormalizeDirArg(args[0])
		} else if len(args) == 0 {
			cfg.RootDir = "."
		} else {
			return fmt.Errorf("--check takes at most one directory")
		}
		return nil
	}
	if len(args) != 1 {
		return fmt.Errorf("need exactly one target directory")
	}
	cfg.RootDir = NormalizeDirArg(args[0])
	return nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet, version string) {
	const col1 = 24 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "capfirst v" + version + " - capitalize the first letter of every file and folder name"},
		{"", ""},
		{"  capfirst [OPTIONS] <target_dir>", ""},
		{"", ""},
		{"Behavior", ""},
		{"  -d, --dry-run", "Preview only; do not rename anything"},
		{"  --no-recursive", "Only rename immediate children of the target"},
		{"  --no-files", "Leave file names untouched (folders only)"},
		{"  --no-dirs", "Leave folder names untouched (files only)"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "Filesystem diagnostics (case sensitivity, write access)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
