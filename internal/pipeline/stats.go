package pipeline

import "github.com/backmassage/capfirst/internal/planner"

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	Total     int // Entries considered (planned + unchanged).
	Current   int // Index of the op being applied, 1-based.
	Renamed   int
	Unchanged int
	Failed    int
}

// Failure records one entry that could not be renamed, with the classified
// reason.
type Failure struct {
	Op  planner.Op
	Err error
}

// Report is the outcome of a run, returned to the caller for display:
// the entries that were renamed and the per-entry failures with reasons.
type Report struct {
	Stats    RunStats
	Renamed  []planner.Op
	Failures []Failure
}
