package session

import (
	"context"
	"errors"
)

var (
	// ErrEmptyPath rejects a scan triggered without a directory.
	ErrEmptyPath = errors.New("no scan directory selected")

	// ErrScanInFlight rejects a second trigger while a scan is running.
	ErrScanInFlight = errors.New("scan already in progress")
)

// Controller owns the lifecycle of a scan session: it validates and
// captures the trigger inputs, tracks the idle/running/succeeded/failed
// status, and on success re-derives the grouping and expansion state
// from the flat results.
//
// The controller is not safe for concurrent use; it is meant to live on
// a single event loop where Begin, Resolve and Reject are never
// interleaved within one state transition.
type Controller struct {
	// ScanPath and ExcludePatterns are user-editable at any time,
	// including while a scan runs. Begin snapshots them; edits only
	// affect the next trigger.
	ScanPath        string
	ExcludePatterns string

	status    Status
	results   []Occurrence
	errMsg    string
	grouping  Grouping
	expansion *Expansion
}

func NewController() *Controller {
	return &Controller{expansion: NewExpansion()}
}

// Begin validates the inputs and moves the session to running,
// clearing the previous results, error and expansion state. It returns
// the captured request the caller must hand to the scanner.
//
// ErrEmptyPath leaves the session in its current status. While running,
// a second Begin returns ErrScanInFlight and changes nothing.
func (c *Controller) Begin() (Request, error) {
	if c.status == StatusRunning {
		return Request{}, ErrScanInFlight
	}
	if c.ScanPath == "" {
		return Request{}, ErrEmptyPath
	}

	c.status = StatusRunning
	c.results = nil
	c.errMsg = ""
	c.grouping = Grouping{}
	c.expansion = NewExpansion()

	return Request{Path: c.ScanPath, Exclude: c.ExcludePatterns}, nil
}

// Resolve completes the running scan with its results: the flat list is
// stored, grouped, and every file group starts expanded. Callers on the
// event loop never observe a succeeded status with stale grouping or
// expansion. A resolve without a running scan is ignored.
func (c *Controller) Resolve(occs []Occurrence) {
	if c.status != StatusRunning {
		return
	}
	c.results = occs
	c.grouping = Group(occs)
	c.expansion.ExpandAll(c.grouping.Files())
	c.status = StatusSucceeded
}

// Reject completes the running scan with a failure. Results, grouping
// and expansion stay empty; the message is kept verbatim for display.
func (c *Controller) Reject(err error) {
	if c.status != StatusRunning {
		return
	}
	c.errMsg = err.Error()
	c.status = StatusFailed
}

// Run drives one full scan synchronously: Begin, invoke the scanner,
// then Resolve or Reject. Scanner failures are returned after the
// session has transitioned to failed.
func (c *Controller) Run(ctx context.Context, s Scanner) error {
	req, err := c.Begin()
	if err != nil {
		return err
	}
	occs, err := s.Scan(ctx, req)
	if err != nil {
		c.Reject(err)
		return err
	}
	c.Resolve(occs)
	return nil
}

func (c *Controller) Status() Status {
	return c.status
}

// Results is the flat occurrence list of the last successful scan.
func (c *Controller) Results() []Occurrence {
	return c.results
}

func (c *Controller) Grouping() Grouping {
	return c.grouping
}

func (c *Controller) Expansion() *Expansion {
	return c.expansion
}

// ErrorMessage is the display message of the last failed scan, empty
// otherwise.
func (c *Controller) ErrorMessage() string {
	return c.errMsg
}
