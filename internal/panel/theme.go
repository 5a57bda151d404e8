package panel

import "github.com/charmbracelet/lipgloss"

var (
	// Colors.
	colorGreen = lipgloss.Color("#22C55E")
	colorBlue  = lipgloss.Color("#3B82F6")
	colorDim   = lipgloss.Color("#6B7280")
	colorWhite = lipgloss.Color("#F9FAFB")

	// Header line.
	headerStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	// Clear-control hint next to the header.
	clearHintStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	// Item lines by status.
	notStartedStyle = lipgloss.NewStyle().Foreground(colorDim)
	inProgressStyle = lipgloss.NewStyle().Foreground(colorBlue)
	completedStyle  = lipgloss.NewStyle().Foreground(colorGreen)
)
