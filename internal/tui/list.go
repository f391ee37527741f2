package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/zhscan/zhscan/internal/session"
)

// row addresses one terminal line of the results panel: a file group
// header (occ == -1) or one occurrence within that group.
type row struct {
	group int
	occ   int
}

// flattenRows turns a projection into the visible row sequence: every
// header, then the occurrences of expanded groups.
func flattenRows(groups []session.FileGroup) []row {
	var rows []row
	for gi, fg := range groups {
		rows = append(rows, row{group: gi, occ: -1})
		for oi := range fg.Occurrences {
			rows = append(rows, row{group: gi, occ: oi})
		}
	}
	return rows
}

// renderResults renders the results panel with scrolling.
func (m model) renderResults(width, height int) string {
	if len(m.rows) == 0 {
		var text string
		switch m.ctrl.Status() {
		case session.StatusRunning:
			text = "Scanning..."
		case session.StatusSucceeded:
			text = "No Chinese text found"
		case session.StatusFailed:
			text = styleError.Render("Scan failed")
		default:
			text = "No results yet"
		}
		return lipgloss.NewStyle().
			Foreground(colorDim).
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(text)
	}

	var lines []string
	for i := m.offset; i < len(m.rows) && len(lines) < height; i++ {
		lines = append(lines, m.formatRow(m.rows[i], width, i == m.cursor))
	}

	// Pad remaining lines
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}

	return strings.Join(lines, "\n")
}

// formatRow formats a single row:
//
//	header:     [>] ▾ path (count)
//	occurrence: [>]     line:col  text
func (m model) formatRow(r row, width int, selected bool) string {
	fg := m.groups[r.group]

	prefix := "  "
	if selected {
		prefix = styleSelected.Render("> ")
	}

	if r.occ == -1 {
		marker := "▸"
		if fg.Expanded {
			marker = "▾"
		}
		path := fg.FilePath
		pathMax := width - 2 - 2 - len(fmt.Sprint(fg.Count)) - 4
		if pathMax < 0 {
			pathMax = 0
		}
		if runewidth.StringWidth(path) > pathMax {
			path = runewidth.Truncate(path, pathMax, "…")
		}
		return prefix + marker + " " + styleFileHeader.Render(path) + " (" + styleCount.Render(fmt.Sprint(fg.Count)) + ")"
	}

	o := fg.Occurrences[r.occ]
	loc := fmt.Sprintf("%d:%d", o.Line, o.Column)

	text := strings.ReplaceAll(o.Text, "\n", " ")
	textMax := width - 4 - len(loc) - 2
	if textMax < 0 {
		textMax = 0
	}
	if runewidth.StringWidth(text) > textMax {
		text = runewidth.Truncate(text, textMax, "…")
	}

	return prefix + "  " + styleLoc.Render(loc) + "  " + styleOccText.Render(text)
}

// adjustScroll keeps the cursor visible within the results panel.
func (m *model) adjustScroll() {
	visible := m.panelHeight()
	if visible < 1 {
		visible = 1
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}
