// Package fsops applies rename operations to disk, including the two-step
// rename that forces case-only changes through on case-insensitive
// filesystems.
package fsops

import (
	"encoding/hex"
	"os"
	"path/filepath"

	"gitlab.com/NebulousLabs/errors"
	"gitlab.com/NebulousLabs/fastrand"

	"github.com/backmassage/capfirst/internal/planner"
)

// tempPrefix marks the intermediate names used by two-step renames. The dot
// keeps half-finished entries out of casual directory listings.
const tempPrefix = ".capfirst-"

// Apply performs one rename operation. The source is never touched when the
// target path is already occupied by a distinct entry. Errors are classified
// into the package sentinels; callers keep processing the rest of the plan.
func Apply(op planner.Op) error {
	src, err := os.Lstat(op.OldPath)
	if err != nil {
		return Classify(err)
	}

	// On a case-insensitive filesystem a case-only target resolves to the
	// source itself; that is not a collision. Anything else occupying the
	// target is.
	if dst, err := os.Lstat(op.NewPath); err == nil && !os.SameFile(src, dst) {
		return errors.Compose(ErrNameCollision, errors.New("'"+op.NewName+"' already exists"))
	}

	if op.CaseOnly {
		return applyTwoStep(op)
	}
	return Classify(os.Rename(op.OldPath, op.NewPath))
}

// applyTwoStep renames via a unique intermediate so the filesystem registers
// a case-only change even where 'file' and 'File' are the same path. A
// failed second step renames the intermediate back, so no partial state is
// visible to the rest of the plan.
func applyTwoStep(op planner.Op) error {
	tmp := tempPath(filepath.Dir(op.OldPath))
	if err := os.Rename(op.OldPath, tmp); err != nil {
		return Classify(err)
	}
	if err := os.Rename(tmp, op.NewPath); err != nil {
		if rbErr := os.Rename(tmp, op.OldPath); rbErr != nil {
			return Classify(errors.Compose(err, rbErr))
		}
		return Classify(err)
	}
	return nil
}

// tempPath returns an intermediate path inside dir that cannot collide with
// sibling entries short of a 64-bit random tie.
func tempPath(dir string) string {
	return filepath.Join(dir, tempPrefix+hex.EncodeToString(fastrand.Bytes(8)))
}
