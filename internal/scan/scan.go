// Package scan enumerates directory entries and orders them bottom-up.
package scan

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gitlab.com/NebulousLabs/errors"
)

// Entry is one file or folder found under the target directory.
type Entry struct {
	Path  string // Full path to the entry.
	Name  string // Last path segment.
	Depth int    // 1 for immediate children of the root.
	IsDir bool
}

// Walk lists every entry under root (root itself excluded) and returns the
// list sorted depth-descending, lexicographic within a depth. Deepest-first
// ordering means a folder is always renamed after everything inside it, so
// no previously computed path ever goes stale.
//
// An unreadable root is the only fatal condition; unreadable subtrees are
// skipped and their contents simply don't appear in the result. When
// recursive is false only immediate children are listed.
func Walk(root string, recursive bool) ([]Entry, error) {
	var entries []Entry
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil
		}
		if path == root {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		entries = append(entries, Entry{
			Path:  path,
			Name:  d.Name(),
			Depth: strings.Count(rel, string(filepath.Separator)) + 1,
			IsDir: d.IsDir(),
		})
		if d.IsDir() && !recursive {
			return filepath.SkipDir
		}
		return nil
	})
	if walkErr != nil {
		return nil, errors.AddContext(walkErr, "can't read target directory")
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Depth != entries[j].Depth {
			return entries[i].Depth > entries[j].Depth
		}
		return entries[i].Path < entries[j].Path
	})
	return entries, nil
}
