// Package pipeline orchestrates entry discovery, plan construction,
// sequential rename application, and batch summary reporting.
package pipeline

import (
	"context"

	"gitlab.com/NebulousLabs/errors"

	"github.com/backmassage/capfirst/internal/config"
	"github.com/backmassage/capfirst/internal/display"
	"github.com/backmassage/capfirst/internal/fsops"
	"github.com/backmassage/capfirst/internal/logging"
	"github.com/backmassage/capfirst/internal/planner"
	"github.com/backmassage/capfirst/internal/scan"
)

// Run is the top-level batch entry point: walk the target, build the plan,
// apply it deepest-first, and return the report. Per-entry failures are
// recorded and the batch continues; the returned error is non-nil only when
// the target directory itself cannot be enumerated, before any rename.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) (Report, error) {
	var rep Report

	entries, err := scan.Walk(cfg.RootDir, cfg.Recursive)
	if err != nil {
		return rep, errors.AddContext(err, "can't enumerate target")
	}

	plan := planner.Build(entries, cfg.IncludeFiles, cfg.IncludeDirs)
	rep.Stats.Total = len(plan.Ops) + plan.Unchanged
	rep.Stats.Unchanged = plan.Unchanged

	logBatchHeader(cfg, log, &rep.Stats, len(plan.Ops))

	for i, op := range plan.Ops {
		rep.Stats.Current = i + 1

		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}

		applyOp(cfg, log, op, len(plan.Ops), &rep)
	}

	logSummary(cfg, log, &rep)
	return rep, nil
}

// applyOp handles one planned rename: dry-run short-circuit, apply, record
// the outcome.
func applyOp(cfg *config.Config, log *logging.Logger, op planner.Op, opCount int, rep *Report) {
	arrow := display.FormatArrow(op.OldName, op.NewName)
	log.Info("[%d/%d] %s: %s", rep.Stats.Current, opCount, display.FormatKind(op.IsDir), arrow)

	if cfg.DryRun {
		log.Success("  [DRY] Would rename")
		rep.Stats.Renamed++
		rep.Renamed = append(rep.Renamed, op)
		return
	}

	if err := fsops.Apply(op); err != nil {
		log.Error("  %s: %v", op.OldPath, err)
		rep.Stats.Failed++
		rep.Failures = append(rep.Failures, Failure{Op: op, Err: err})
		return
	}

	if op.CaseOnly {
		log.Debug("  Case-only change, renamed via intermediate")
	}
	log.Success("  Renamed")
	rep.Stats.Renamed++
	rep.Renamed = append(rep.Renamed, op)
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, log *logging.Logger, stats *RunStats, opCount int) {
	log.Info("Found %s, %s to rename",
		display.FormatCount(stats.Total, "entry", "entries"),
		display.FormatCount(opCount, "entry", "entries"))

	if !cfg.Recursive {
		log.Info("Scope: immediate children only")
	}
	switch {
	case !cfg.IncludeFiles:
		log.Info("Kinds: folders only")
	case !cfg.IncludeDirs:
		log.Info("Kinds: files only")
	}
	log.Info("")
}

func logSummary(cfg *config.Config, log *logging.Logger, rep *Report) {
	log.Info("==============================")
	if cfg.DryRun {
		log.Info("Done (dry run): %d would be renamed, %d already capitalized",
			rep.Stats.Renamed, rep.Stats.Unchanged)
		return
	}

	log.Info("Done: %d renamed, %d already capitalized, %d failed",
		rep.Stats.Renamed, rep.Stats.Unchanged, rep.Stats.Failed)

	if len(rep.Failures) == 0 {
		return
	}
	log.Warn("Failures:")
	for _, f := range rep.Failures {
		log.Warn("  %s: %v", f.Op.OldPath, f.Err)
	}
}
