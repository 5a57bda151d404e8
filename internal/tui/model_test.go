package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"todopanel/internal/store"
	"todopanel/internal/todo"
)

func newTestModel(t *testing.T) (model, *store.MemStore) {
	t.Helper()

	st := store.NewMemStore()
	if err := st.SetTodoList("alpha", []todo.Record{
		{Title: "first", Status: todo.StatusInProgress},
		{Title: "second", Status: todo.StatusNotStarted},
	}); err != nil {
		t.Fatalf("seeding store: %v", err)
	}
	if err := st.SetTodoList("beta", nil); err != nil {
		t.Fatalf("seeding store: %v", err)
	}

	zones := zone.New()
	t.Cleanup(zones.Close)

	cfg := AppConfig{Store: st, Sessions: []string{"alpha", "beta"}, Version: "test"}
	return newModel(cfg, 80, 24, zones), st
}

func apply(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	updated, _ := m.Update(msg)
	next, ok := updated.(model)
	if !ok {
		t.Fatalf("Update returned %T, want model", updated)
	}
	return next
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestInitSelectsFirstSession(t *testing.T) {
	m, _ := newTestModel(t)

	cmd := m.Init()
	if cmd == nil {
		t.Fatal("Init returned nil cmd despite configured sessions")
	}
	msg, ok := cmd().(SelectSessionMsg)
	if !ok {
		t.Fatalf("Init cmd produced %T, want SelectSessionMsg", cmd())
	}
	if msg.ID != "alpha" {
		t.Errorf("initial session = %q, want alpha", msg.ID)
	}
}

func TestInitNoSessions(t *testing.T) {
	zones := zone.New()
	t.Cleanup(zones.Close)
	m := newModel(AppConfig{Store: store.NewMemStore()}, 80, 24, zones)

	if cmd := m.Init(); cmd != nil {
		t.Error("Init should return nil cmd with no sessions")
	}
}

func TestSelectSessionShowsPanelAndRemeasures(t *testing.T) {
	m, _ := newTestModel(t)
	before := m.viewport.Height

	m = apply(t, m, SelectSessionMsg{ID: "alpha"})

	if !m.panel.Visible() {
		t.Error("panel should be visible for a session with todos")
	}
	want := m.height - m.panel.Height() - 1
	if m.viewport.Height != want {
		t.Errorf("viewport height = %d, want %d", m.viewport.Height, want)
	}
	if m.viewport.Height >= before {
		t.Errorf("viewport should shrink when the panel appears (was %d, now %d)", before, m.viewport.Height)
	}
}

func TestSelectEmptySessionHidesPanel(t *testing.T) {
	m, _ := newTestModel(t)
	m = apply(t, m, SelectSessionMsg{ID: "alpha"})
	m = apply(t, m, SelectSessionMsg{ID: "beta"})

	if m.panel.Visible() {
		t.Error("panel should hide for a session with no todos")
	}
	if m.viewport.Height != m.height-1 {
		t.Errorf("viewport height = %d, want %d", m.viewport.Height, m.height-1)
	}
}

func TestToggleKeyCollapsesAndRemeasures(t *testing.T) {
	m, _ := newTestModel(t)
	m = apply(t, m, SelectSessionMsg{ID: "alpha"})
	expandedVP := m.viewport.Height

	m = apply(t, m, keyRune('t'))

	if m.panel.Expanded() {
		t.Error("toggle key should collapse the panel")
	}
	if m.viewport.Height <= expandedVP {
		t.Errorf("viewport should grow when the panel collapses (was %d, now %d)", expandedVP, m.viewport.Height)
	}

	m = apply(t, m, keyRune('t'))
	if !m.panel.Expanded() {
		t.Error("second toggle should expand again")
	}
	if m.viewport.Height != expandedVP {
		t.Errorf("viewport height = %d, want %d after even toggles", m.viewport.Height, expandedVP)
	}
}

func TestClearKeyEmptiesStore(t *testing.T) {
	m, st := newTestModel(t)
	m = apply(t, m, SelectSessionMsg{ID: "alpha"})

	m = apply(t, m, keyRune('c'))

	items, _ := st.GetTodoList("alpha")
	if len(items) != 0 {
		t.Errorf("store still holds %d todos after clear", len(items))
	}
	if m.panel.Visible() {
		t.Error("panel should hide after clearing")
	}
}

func TestSessionCycling(t *testing.T) {
	m, _ := newTestModel(t)
	m = apply(t, m, SelectSessionMsg{ID: "alpha"})

	m = apply(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if got := m.panel.SessionID(); got != "beta" {
		t.Errorf("after tab, session = %q, want beta", got)
	}

	// Wraps around.
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if got := m.panel.SessionID(); got != "alpha" {
		t.Errorf("after second tab, session = %q, want alpha", got)
	}

	m = apply(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := m.panel.SessionID(); got != "beta" {
		t.Errorf("after shift+tab, session = %q, want beta", got)
	}
}

func TestDetachKeyHidesPanel(t *testing.T) {
	m, _ := newTestModel(t)
	m = apply(t, m, SelectSessionMsg{ID: "alpha"})

	m = apply(t, m, keyRune('0'))

	if m.panel.SessionID() != "" {
		t.Errorf("session = %q, want detached", m.panel.SessionID())
	}
	if m.panel.Visible() {
		t.Error("panel should hide when detached")
	}
	if m.viewport.Height != m.height-1 {
		t.Errorf("viewport height = %d, want %d", m.viewport.Height, m.height-1)
	}
}

func TestQuitKey(t *testing.T) {
	m, _ := newTestModel(t)

	updated, cmd := m.Update(keyRune('q'))
	next := updated.(model)
	if !next.quitting {
		t.Error("q should set quitting")
	}
	if cmd == nil {
		t.Fatal("q should produce a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("cmd produced %T, want tea.QuitMsg", cmd())
	}
}

func TestWindowResizeRemeasures(t *testing.T) {
	m, _ := newTestModel(t)
	m = apply(t, m, SelectSessionMsg{ID: "alpha"})

	m = apply(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if m.width != 100 || m.height != 40 {
		t.Errorf("size = %dx%d, want 100x40", m.width, m.height)
	}
	want := 40 - m.panel.Height() - 1
	if m.viewport.Height != want {
		t.Errorf("viewport height = %d, want %d", m.viewport.Height, want)
	}
}

func TestMouseClickOutsideHeaderIsIgnored(t *testing.T) {
	m, _ := newTestModel(t)
	m = apply(t, m, SelectSessionMsg{ID: "alpha"})

	// No zones have been scanned yet, so the click cannot be in bounds.
	m = apply(t, m, tea.MouseMsg{
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
		X:      1,
		Y:      1,
	})
	if !m.panel.Expanded() {
		t.Error("stray click should not toggle the panel")
	}
}
