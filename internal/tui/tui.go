package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zhscan/zhscan/internal/open"
	"github.com/zhscan/zhscan/internal/session"
)

// msgSelectDirectory is shown when a scan is triggered without a path.
const msgSelectDirectory = "Please select a directory to scan."

type focusArea int

const (
	focusPath focusArea = iota
	focusExclude
	focusResults
)

// message types

type scanDoneMsg struct {
	results []session.Occurrence
	err     error
}

type autoScanMsg struct{}

// model

type model struct {
	ctrl    *session.Controller
	scanner session.Scanner

	pathInput textinput.Model
	exclInput textinput.Model
	focus     focusArea

	// groups and rows are the current projection, flattened to one
	// terminal row per header/occurrence; recomputed after every
	// state-affecting operation.
	groups []session.FileGroup
	rows   []row
	cursor int
	offset int

	width    int
	height   int
	ready    bool
	quitting bool
	notice   string // transient feedback (copied, validation, ...)

	openOcc *session.Occurrence
}

func initialModel(scanner session.Scanner, path, exclude string) model {
	pi := textinput.New()
	pi.Placeholder = "directory to scan"
	pi.Focus()
	pi.SetValue(path)
	pi.Prompt = "> "
	pi.PromptStyle = styleInputPrompt
	pi.TextStyle = styleInput
	pi.CharLimit = 512

	ei := textinput.New()
	ei.Placeholder = "exclude patterns, comma-separated"
	ei.SetValue(exclude)
	ei.Prompt = "> "
	ei.PromptStyle = styleInputPrompt
	ei.TextStyle = styleInput
	ei.CharLimit = 512

	return model{
		ctrl:      session.NewController(),
		scanner:   scanner,
		pathInput: pi,
		exclInput: ei,
	}
}

// Run starts the TUI and blocks until it exits. If the user chose to
// open an occurrence, the editor is launched after the terminal is
// restored.
func Run(scanner session.Scanner, path, exclude string) error {
	m := initialModel(scanner, path, exclude)
	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	fm := finalModel.(model)
	if fm.openOcc != nil {
		return open.Occurrence(*fm.openOcc)
	}
	return nil
}

// Init triggers the initial scan when a path was given on the command line.
func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if strings.TrimSpace(m.pathInput.Value()) != "" {
		cmds = append(cmds, func() tea.Msg { return autoScanMsg{} })
	}
	return tea.Batch(cmds...)
}

// Update handles messages.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.adjustScroll()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case autoScanMsg:
		cmd := m.startScan()
		return m, cmd

	case scanDoneMsg:
		if msg.err != nil {
			m.ctrl.Reject(msg.err)
		} else {
			m.ctrl.Resolve(msg.results)
		}
		m.notice = ""
		m.reproject()
		m.cursor = 0
		m.offset = 0
		if m.ctrl.Status() == session.StatusSucceeded && len(m.rows) > 0 {
			m.focus = focusResults
			m.pathInput.Blur()
			m.exclInput.Blur()
		}
		return m, nil
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.NextField):
		m.cycleFocus()
		return m, nil
	}

	if m.focus == focusResults {
		return m.handleResultsKey(msg)
	}

	// Enter on either input triggers the scan.
	if msg.Type == tea.KeyEnter {
		cmd := m.startScan()
		return m, cmd
	}

	var tiCmd tea.Cmd
	switch m.focus {
	case focusPath:
		m.pathInput, tiCmd = m.pathInput.Update(msg)
	case focusExclude:
		m.exclInput, tiCmd = m.exclInput.Update(msg)
	}

	// Keep the session's editable inputs in sync; they only affect the
	// next trigger, never a scan already in flight.
	m.ctrl.ScanPath = strings.TrimSpace(m.pathInput.Value())
	m.ctrl.ExcludePatterns = m.exclInput.Value()

	return m, tiCmd
}

func (m model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.adjustScroll()
		}

	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
			m.adjustScroll()
		}

	case key.Matches(msg, keys.Toggle):
		if r, ok := m.currentRow(); ok {
			path := m.groups[r.group].FilePath
			m.ctrl.Expansion().Toggle(path)
			m.reproject()
			m.moveCursorToHeader(path)
		}

	case key.Matches(msg, keys.ExpandAll):
		m.ctrl.Expansion().ExpandAll(m.ctrl.Grouping().Files())
		m.reproject()

	case key.Matches(msg, keys.CollapseAll):
		var path string
		if r, ok := m.currentRow(); ok {
			path = m.groups[r.group].FilePath
		}
		m.ctrl.Expansion().CollapseAll()
		m.reproject()
		m.moveCursorToHeader(path)

	case key.Matches(msg, keys.Yank):
		if r, ok := m.currentRow(); ok {
			loc := m.groups[r.group].FilePath
			if r.occ >= 0 {
				o := m.groups[r.group].Occurrences[r.occ]
				loc = fmt.Sprintf("%s:%d:%d", o.FilePath, o.Line, o.Column)
			}
			if err := clipboard.WriteAll(loc); err != nil {
				m.notice = "Clipboard unavailable."
			} else {
				m.notice = "Copied " + loc
			}
		}

	case key.Matches(msg, keys.Open):
		if r, ok := m.currentRow(); ok && r.occ >= 0 {
			o := m.groups[r.group].Occurrences[r.occ]
			m.openOcc = &o
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *model) cycleFocus() {
	m.pathInput.Blur()
	m.exclInput.Blur()
	switch m.focus {
	case focusPath:
		m.focus = focusExclude
		m.exclInput.Focus()
	case focusExclude:
		if len(m.rows) > 0 {
			m.focus = focusResults
		} else {
			m.focus = focusPath
			m.pathInput.Focus()
		}
	case focusResults:
		m.focus = focusPath
		m.pathInput.Focus()
	}
}

// startScan validates and triggers the scan through the controller. A
// trigger while running is a silent no-op; a missing path surfaces a
// validation message without any state transition.
func (m *model) startScan() tea.Cmd {
	m.ctrl.ScanPath = strings.TrimSpace(m.pathInput.Value())
	m.ctrl.ExcludePatterns = m.exclInput.Value()

	req, err := m.ctrl.Begin()
	switch {
	case errors.Is(err, session.ErrScanInFlight):
		return nil
	case errors.Is(err, session.ErrEmptyPath):
		m.notice = msgSelectDirectory
		return nil
	}

	m.notice = ""
	m.reproject()
	m.cursor = 0
	m.offset = 0

	scanner := m.scanner
	return func() tea.Msg {
		results, err := scanner.Scan(context.Background(), req)
		return scanDoneMsg{results: results, err: err}
	}
}

// reproject recomputes the renderable view from the session's grouping
// and expansion state.
func (m *model) reproject() {
	m.groups = session.Project(m.ctrl.Grouping(), m.ctrl.Expansion())
	m.rows = flattenRows(m.groups)
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.adjustScroll()
	if len(m.rows) == 0 && m.focus == focusResults {
		m.focus = focusPath
		m.pathInput.Focus()
	}
}

func (m model) currentRow() (row, bool) {
	if len(m.rows) == 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

// moveCursorToHeader pins the cursor to a file's header row, keeping it
// sensible after a fold removed the row it sat on.
func (m *model) moveCursorToHeader(path string) {
	for i, r := range m.rows {
		if r.occ == -1 && m.groups[r.group].FilePath == path {
			m.cursor = i
			m.adjustScroll()
			return
		}
	}
}

// View renders the full TUI.
func (m model) View() string {
	if m.quitting || !m.ready {
		return ""
	}

	pathRow := lipgloss.JoinHorizontal(lipgloss.Top, styleLabel.Render("Path"), m.pathInput.View())
	exclRow := lipgloss.JoinHorizontal(lipgloss.Top, styleLabel.Render("Exclude"), m.exclInput.View())

	panelW := m.panelWidth()
	panelH := m.panelHeight()

	border := stylePanelBorder
	if m.focus == focusResults {
		border = styleActiveBorder
	}
	resultsPanel := border.
		Width(panelW).
		Height(panelH).
		Render(m.renderResults(panelW, panelH))

	status := m.statusBar()

	return lipgloss.JoinVertical(lipgloss.Left, pathRow, exclRow, resultsPanel, status)
}

func (m model) panelWidth() int {
	if m.width <= 0 {
		return 80
	}
	w := m.width - 2
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) panelHeight() int {
	if m.height <= 0 {
		return 20
	}
	// Subtract input rows (2) + status bar (1) + borders (2)
	h := m.height - 5
	if h < 5 {
		h = 5
	}
	return h
}

func (m model) statusBar() string {
	var parts []string

	switch m.ctrl.Status() {
	case session.StatusRunning:
		parts = append(parts, "Scanning...")
	case session.StatusFailed:
		parts = append(parts, styleError.Render("Scan failed: "+m.ctrl.ErrorMessage()))
	case session.StatusSucceeded:
		parts = append(parts, fmt.Sprintf("%d occurrences in %d files", len(m.ctrl.Results()), m.ctrl.Grouping().Len()))
	default:
		parts = append(parts, "enter scan")
	}

	if m.notice != "" {
		parts = append(parts, m.notice)
	}

	if m.focus == focusResults {
		parts = append(parts, "enter fold", "E/C all", "y copy", "o open")
	} else {
		parts = append(parts, "tab next field")
	}
	parts = append(parts, "esc quit")

	return styleStatusBar.Render(strings.Join(parts, " | "))
}
