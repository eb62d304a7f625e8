// Package planner builds the rename plan from scanned entries.
//
// The whole plan is computed before any mutation happens; applying it in
// slice order preserves the bottom-up ordering established by scan.
package planner

import (
	"path/filepath"
	"strings"

	"github.com/backmassage/capfirst/internal/caps"
	"github.com/backmassage/capfirst/internal/scan"
)

// Op is one planned rename. NewName differs from OldName only in the casing
// of the first rune.
type Op struct {
	OldPath string
	NewPath string
	OldName string
	NewName string
	IsDir   bool

	// CaseOnly marks ops whose old and new names collapse to the same path
	// on a case-insensitive filesystem. These go through the two-step
	// rename.
	CaseOnly bool
}

// Plan is the full set of renames for one run plus the count of entries
// that were already capitalized (or caseless) and need no work.
type Plan struct {
	Ops       []Op
	Unchanged int
}

// Build computes the plan for entries, honoring the file/folder filters.
// Entries whose capitalized name equals the original are counted as
// unchanged, never treated as errors.
func Build(entries []scan.Entry, includeFiles, includeDirs bool) Plan {
	var p Plan
	for _, e := range entries {
		if e.IsDir && !includeDirs {
			continue
		}
		if !e.IsDir && !includeFiles {
			continue
		}

		newName := caps.Capitalize(e.Name)
		if newName == e.Name {
			p.Unchanged++
			continue
		}

		p.Ops = append(p.Ops, Op{
			OldPath:  e.Path,
			NewPath:  filepath.Join(filepath.Dir(e.Path), newName),
			OldName:  e.Name,
			NewName:  newName,
			IsDir:    e.IsDir,
			CaseOnly: strings.EqualFold(e.Name, newName),
		})
	}
	return p
}
