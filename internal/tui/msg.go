package tui

// SelectSessionMsg asks the model to bind the panel to a session. An empty
// ID detaches the panel from all sessions.
type SelectSessionMsg struct {
	ID string
}
