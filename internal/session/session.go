package session

import "context"

// Occurrence is one located span of Chinese text in a source file.
// Line and Column are 1-based; Column counts characters, not bytes.
// FilePath is whatever the scanner emitted and is used verbatim as the
// grouping key.
type Occurrence struct {
	FilePath string
	Line     int
	Column   int
	Text     string
}

// Request captures the inputs of one scan at trigger time. Later edits
// to the session's path or exclude patterns do not affect a request
// already handed to a scanner.
type Request struct {
	Path    string
	Exclude string // raw comma-separated patterns, semantics owned by the scanner
}

// Scanner is the external scan operation. It delivers the whole result
// list at once; occurrence order is whatever the scanner chooses.
type Scanner interface {
	Scan(ctx context.Context, req Request) ([]Occurrence, error)
}

// Status is the lifecycle state of a scan session.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}
