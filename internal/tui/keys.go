package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the host's key bindings. Toggle shares its transition
// with the mouse click on the panel header; both call panel.Toggle.
type keyMap struct {
	NextSession key.Binding
	PrevSession key.Binding
	Detach      key.Binding
	Toggle      key.Binding
	Clear       key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextSession: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next session"),
		),
		PrevSession: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous session"),
		),
		Detach: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "no session"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("t", "enter"),
			key.WithHelp("t", "expand/collapse todos"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear todos"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
