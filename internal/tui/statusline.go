package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderStatusBar renders the single status line at the bottom of the
// screen: active session and panel state on the left, key hints on the
// right. Errors replace the whole line until the next operation.
func (m model) renderStatusBar() string {
	if m.lastErr != "" {
		return errorStyle.Render("Error: " + m.lastErr)
	}

	session := "no session"
	if m.current >= 0 {
		session = m.sessions[m.current]
	}
	state := "expanded"
	if !m.panel.Expanded() {
		state = "collapsed"
	}

	left := statusSessionStyle.Render(session) +
		statusBarStyle.Render(" · todos "+state)
	hints := statusBarStyle.Render("tab session · t toggle · c clear · q quit")

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(hints)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + hints
}
