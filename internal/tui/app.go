// Package tui implements the interactive terminal UI hosting the todo
// panel using Bubble Tea.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"golang.org/x/term"

	"todopanel/internal/store"
)

// AppConfig bundles everything the TUI needs from main.go.
type AppConfig struct {
	Store    store.Store
	Sessions []string
	Version  string
}

// App is the top-level TUI application. main.go creates it and calls Run.
type App struct {
	cfg AppConfig
}

// New creates a new TUI application.
func New(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

// Run starts the Bubble Tea program and blocks until it exits.
func (a *App) Run(ctx context.Context) error {
	// Detect terminal size for initial layout.
	width, height := 80, 24
	if w, h, err := term.GetSize(0); err == nil && w > 0 && h > 0 {
		width, height = w, h
	}

	// One zone manager per program; no globals.
	zones := zone.New()
	defer zones.Close()

	m := newModel(a.cfg, width, height, zones)
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
