package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors.
	colorPurple = lipgloss.Color("#A855F7")
	colorRed    = lipgloss.Color("#EF4444")
	colorDim    = lipgloss.Color("#6B7280")
	colorWhite  = lipgloss.Color("#F9FAFB")

	// Status bar.
	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	statusSessionStyle = lipgloss.NewStyle().
				Foreground(colorPurple).
				Bold(true)

	// Error display.
	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	// Transcript chrome.
	sessionLabelStyle = lipgloss.NewStyle().
				Foreground(colorWhite).
				Bold(true)

	noSessionStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)
