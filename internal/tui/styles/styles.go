// Package styles provides Lip Gloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for selected items
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#C084FC"}

	// Special colors
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
)

// Base styles
var (
	// App is the base style for the entire application
	App = lipgloss.NewStyle().
		Padding(1, 2)

	// Title is the style for section titles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// Subtitle is for secondary headings
	Subtitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle)
)

// Board grid styles
var (
	// BoardCell is the base style for a board cell in the grid
	BoardCell = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Subtle).
			Padding(0, 1)

	// BoardCellCursor is for the cell under the cursor
	BoardCellCursor = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Bold(true).
			Padding(0, 1)

	// BoardCellActive marks the currently selected board
	BoardCellActive = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(SuccessColor).
			Padding(0, 1)

	// BoardCount is for the image count inside a cell
	BoardCount = lipgloss.NewStyle().
			Foreground(Subtle)
)

// System board button styles
var (
	SystemButton = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(Subtle).
			Padding(0, 2)

	SystemButtonActive = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(Highlight).
				Bold(true).
				Foreground(Highlight).
				Padding(0, 2)
)

// Dialog styles
var (
	// Dialog is for modal overlays
	Dialog = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Highlight).
		Padding(1, 2)

	// InputLabel is for input field labels
	InputLabel = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle)

	// DialogWarning is for destructive confirmations
	DialogWarning = lipgloss.NewStyle().
			Bold(true).
			Foreground(ErrorColor)
)

// Help styles
var (
	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Subtle)
)

// Status bar styles
var (
	StatusBar = lipgloss.NewStyle().
			Foreground(Subtle)

	StatusBarError = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	StatusBarSuccess = lipgloss.NewStyle().
				Foreground(SuccessColor)
)

// Spinner is the style for the loading spinner
var Spinner = lipgloss.NewStyle().
	Foreground(Highlight)
