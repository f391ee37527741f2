package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorPrimary   = lipgloss.Color("12")  // bright blue
	colorSecondary = lipgloss.Color("10")  // bright green
	colorDim       = lipgloss.Color("240") // gray
	colorHighlight = lipgloss.Color("11")  // bright yellow
	colorError     = lipgloss.Color("9")   // bright red
	colorBorder    = lipgloss.Color("238") // dark gray

	// Input area
	styleInput = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleLabel = lipgloss.NewStyle().
			Foreground(colorDim).
			Width(9)

	// File group headers
	styleFileHeader = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleCount = lipgloss.NewStyle().
			Foreground(colorSecondary)

	// Occurrence rows
	styleLoc = lipgloss.NewStyle().
			Foreground(colorDim)

	styleOccText = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	styleSelected = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true)

	// Panels
	stylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorBorder)

	styleActiveBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary)

	// Status bar
	styleStatusBar = lipgloss.NewStyle().
			Foreground(colorDim).
			Padding(0, 1)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)
)
