// Command capfirst renames every file and folder under a target directory
// so its name begins with an uppercase letter.
//
// It parses flags, validates configuration and the target path, and either
// runs filesystem diagnostics (--check) or the rename pipeline.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/backmassage/capfirst/internal/check"
	"github.com/backmassage/capfirst/internal/config"
	"github.com/backmassage/capfirst/internal/display"
	"github.com/backmassage/capfirst/internal/logging"
	"github.com/backmassage/capfirst/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build" these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output goes
	// through the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "capfirst: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "capfirst: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "capfirst: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available.
	display.PrintBanner()

	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, log) {
			return 1
		}
		return 0
	}

	// Resolve the target and fail fast if it is missing, not a directory,
	// or not writable. Nothing is renamed past this point unless the whole
	// plan can at least be formed.
	rootAbs, err := absPath(cfg.RootDir)
	if err != nil {
		log.Error("Target not found: %s", cfg.RootDir)
		return 1
	}
	cfg.RootDir = rootAbs

	if err := check.Preflight(cfg.RootDir); err != nil {
		log.Error("%v", err)
		return 1
	}

	log.Info("=== capfirst v%s (%s) ===", version, commit)
	log.Info("Target: %s", cfg.RootDir)
	if cfg.DryRun {
		log.Warn("DRY RUN: nothing will be renamed")
	}
	log.Info("")

	// Phase 3: Signal handling. Cancel the context on SIGINT/SIGTERM so the
	// pipeline stops between entries without leaving a half-applied rename.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing current entry")
		cancel()
	}()

	// Phase 4: Run the pipeline (walk, plan, apply, report).
	rep, err := pipeline.Run(ctx, &cfg, log)
	if err != nil {
		log.Error("%v", err)
		return 1
	}

	if rep.Stats.Failed > 0 {
		return 1
	}
	return 0
}

// absPath returns the absolute path with symlinks resolved, so log output
// and collision checks always see one canonical form of the target.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
