package fsops

import (
	"os"

	"gitlab.com/NebulousLabs/errors"
)

// Sentinel errors describing why a rename operation failed. Callers test
// for them with errors.Contains.
var (
	ErrPathNotFound     = errors.New("entry no longer exists")
	ErrPermissionDenied = errors.New("permission denied")
	ErrNameCollision    = errors.New("target name already taken by a different entry")
	ErrRenameFailed     = errors.New("rename failed")
)

// Classify maps an OS-level error onto one of the sentinel kinds, keeping
// the original error attached for diagnostics.
func Classify(err error) error {
	switch {
	case err == nil:
		return nil
	case os.IsNotExist(err):
		return errors.Compose(ErrPathNotFound, err)
	case os.IsPermission(err):
		return errors.Compose(ErrPermissionDenied, err)
	case os.IsExist(err):
		return errors.Compose(ErrNameCollision, err)
	default:
		return errors.Compose(ErrRenameFailed, err)
	}
}
