// Package check provides filesystem diagnostics (--check mode) and pre-run
// validation of the target directory.
package check

import (
	"os"
	"path/filepath"
	"strings"

	"gitlab.com/NebulousLabs/errors"

	"github.com/backmassage/capfirst/internal/config"
)

// Sentinel errors returned by Preflight when the target directory is unusable.
var (
	ErrRootNotFound    = errors.New("target directory not found")
	ErrNotADirectory   = errors.New("target path is not a directory")
	ErrRootNotWritable = errors.New("target directory is not writable")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck runs the interactive --check flow: target directory access and
// filesystem case sensitivity. Returns false when the target is unusable.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== Filesystem Check ===")

	root := cfg.RootDir
	if root == "" {
		root = "."
	}

	ok := true
	if err := Preflight(root); err != nil {
		log.Error("Target: %v", err)
		ok = false
	} else {
		log.Success("Target: %s (readable, writable)", root)
	}

	if !ok {
		return false
	}

	insensitive, err := CaseInsensitiveFS(root)
	switch {
	case err != nil:
		log.Warn("Case-sensitivity probe failed: %v", err)
	case insensitive:
		log.Info("Filesystem: case-insensitive (case-only renames use the two-step path)")
	default:
		log.Info("Filesystem: case-sensitive")
	}
	return true
}

// Preflight is the pre-run validation: the target must exist, be a
// directory, and accept writes. Returns a sentinel error on failure.
func Preflight(root string) error {
	fi, err := os.Stat(root)
	if os.IsNotExist(err) {
		return errors.Compose(ErrRootNotFound, err)
	}
	if err != nil {
		return errors.AddContext(err, "can't stat target directory")
	}
	if !fi.IsDir() {
		return ErrNotADirectory
	}

	probe, err := os.CreateTemp(root, ".capfirst-preflight-*")
	if err != nil {
		return errors.Compose(ErrRootNotWritable, err)
	}
	name := probe.Name()
	if err := probe.Close(); err != nil {
		return errors.AddContext(err, "can't close preflight probe")
	}
	return os.Remove(name)
}

// CaseInsensitiveFS reports whether the filesystem holding dir treats names
// that differ only by case as the same path. It creates a short-lived probe
// file and stats its upper-cased variant.
func CaseInsensitiveFS(dir string) (bool, error) {
	probe, err := os.CreateTemp(dir, ".capfirst-case-*")
	if err != nil {
		return false, errors.AddContext(err, "can't create case probe")
	}
	name := probe.Name()
	defer os.Remove(name)
	if err := probe.Close(); err != nil {
		return false, errors.AddContext(err, "can't close case probe")
	}

	upper := filepath.Join(dir, strings.ToUpper(filepath.Base(name)))
	_, err = os.Lstat(upper)
	return err == nil, nil
}
