package pipeline

import "fmt"

// RunStats tracks aggregate counters across one run. In dry-run mode
// Deleted and BytesReclaimed count what would have been removed.
type RunStats struct {
	Scanned        int
	Blacklisted    int
	Ignored        int // No known extension or version.
	Packages       int
	Kept           int
	Deleted        int
	Failed         int
	BytesReclaimed int64
	Failures       []*DeleteError
}

// DeleteError reports a removal that failed. It is never fatal to a run.
type DeleteError struct {
	Path string
	Err  error
}

func (e *DeleteError) Error() string {
	return fmt.Sprintf("delete %s: %v", e.Path, e.Err)
}

func (e *DeleteError) Unwrap() error { return e.Err }
