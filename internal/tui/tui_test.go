package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/zhscan/zhscan/internal/session"
)

type fakeScanner struct {
	occs  []session.Occurrence
	err   error
	calls int
}

func (f *fakeScanner) Scan(_ context.Context, _ session.Request) ([]session.Occurrence, error) {
	f.calls++
	return f.occs, f.err
}

func TestFlattenRows(t *testing.T) {
	occs := []session.Occurrence{
		{FilePath: "a.ts", Line: 1, Column: 1, Text: "你好"},
		{FilePath: "a.ts", Line: 5, Column: 3, Text: "测试"},
		{FilePath: "b.ts", Line: 2, Column: 1, Text: "世界"},
	}
	g := session.Group(occs)
	e := session.NewExpansion()
	e.Toggle("a.ts") // a.ts expanded, b.ts collapsed

	rows := flattenRows(session.Project(g, e))

	// a.ts header + 2 occurrences + b.ts header
	want := []row{{0, -1}, {0, 0}, {0, 1}, {1, -1}}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows %v, want %d", len(rows), rows, len(want))
	}
	for i, w := range want {
		if rows[i] != w {
			t.Errorf("rows[%d] = %v, want %v", i, rows[i], w)
		}
	}
}

func TestStartScanRequiresPath(t *testing.T) {
	m := initialModel(&fakeScanner{}, "", "")

	cmd := m.startScan()
	if cmd != nil {
		t.Fatal("startScan with empty path should not produce a command")
	}
	if m.notice != msgSelectDirectory {
		t.Errorf("notice = %q, want %q", m.notice, msgSelectDirectory)
	}
	if m.ctrl.Status() != session.StatusIdle {
		t.Errorf("status = %v, want idle", m.ctrl.Status())
	}
}

func TestScanFlowSuccess(t *testing.T) {
	scanner := &fakeScanner{occs: []session.Occurrence{
		{FilePath: "a.ts", Line: 1, Column: 1, Text: "你好"},
		{FilePath: "b.ts", Line: 2, Column: 1, Text: "世界"},
	}}
	m := initialModel(scanner, "/src", "")

	cmd := m.startScan()
	if cmd == nil {
		t.Fatal("startScan should produce a scan command")
	}
	if m.ctrl.Status() != session.StatusRunning {
		t.Fatalf("status = %v, want running", m.ctrl.Status())
	}

	msg, ok := cmd().(scanDoneMsg)
	if !ok {
		t.Fatal("scan command should yield a scanDoneMsg")
	}
	updated, _ := m.Update(msg)
	m = updated.(model)

	if m.ctrl.Status() != session.StatusSucceeded {
		t.Fatalf("status = %v, want succeeded", m.ctrl.Status())
	}
	// both groups default to expanded: 2 headers + 2 occurrence rows
	if len(m.rows) != 4 {
		t.Errorf("got %d rows, want 4", len(m.rows))
	}
	if m.focus != focusResults {
		t.Error("focus should move to the results panel on success")
	}
}

func TestScanFlowFailure(t *testing.T) {
	scanner := &fakeScanner{err: errors.New("disk read error")}
	m := initialModel(scanner, "/src", "")

	cmd := m.startScan()
	updated, _ := m.Update(cmd())
	m = updated.(model)

	if m.ctrl.Status() != session.StatusFailed {
		t.Fatalf("status = %v, want failed", m.ctrl.Status())
	}
	if len(m.rows) != 0 {
		t.Errorf("failed scan left %d rows, want none", len(m.rows))
	}
	if m.ctrl.ErrorMessage() != "disk read error" {
		t.Errorf("ErrorMessage() = %q, want the scanner message verbatim", m.ctrl.ErrorMessage())
	}
}

func TestSecondTriggerWhileRunningIsNoOp(t *testing.T) {
	scanner := &fakeScanner{occs: []session.Occurrence{
		{FilePath: "a.ts", Line: 1, Column: 1, Text: "你好"},
	}}
	m := initialModel(scanner, "/src", "")

	first := m.startScan()
	if second := m.startScan(); second != nil {
		t.Fatal("second trigger while running should be a no-op")
	}
	if m.ctrl.Status() != session.StatusRunning {
		t.Fatalf("status = %v, want still running", m.ctrl.Status())
	}

	// the first scan still resolves normally
	updated, _ := m.Update(first())
	m = updated.(model)
	if m.ctrl.Status() != session.StatusSucceeded || m.ctrl.Grouping().Len() != 1 {
		t.Error("original in-flight scan should populate the session")
	}
}
