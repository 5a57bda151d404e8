package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"todopanel/internal/panel"
)

// layoutState carries the panel's height-change signal across model copies.
// Bubble Tea passes the model by value, so the subscription closure writes
// through this shared pointer instead of a model field.
type layoutState struct {
	dirty bool
}

// model is the Bubble Tea model for the host application.
type model struct {
	cfg   AppConfig
	zones *zone.Manager
	panel *panel.Panel
	keys  keyMap
	md    *markdownRenderer

	// Session cycling.
	sessions []string
	current  int // index into sessions; -1 = no active session

	// Layout.
	viewport viewport.Model
	width    int
	height   int
	layout   *layoutState

	lastErr  string
	quitting bool
}

// newModel creates the initial Bubble Tea model with the panel wired to
// the store and to the height-change re-measure path.
func newModel(cfg AppConfig, width, height int, zones *zone.Manager) model {
	p := panel.New(cfg.Store)
	p.AttachZone(zones)

	ls := &layoutState{}
	p.OnHeightChange(func() { ls.dirty = true })

	m := model{
		cfg:      cfg,
		zones:    zones,
		panel:    p,
		keys:     defaultKeyMap(),
		md:       newMarkdownRenderer(width),
		sessions: cfg.Sessions,
		current:  -1,
		viewport: viewport.New(width, max(1, height-1)),
		width:    width,
		height:   height,
		layout:   ls,
	}
	m.viewport.SetContent(m.transcript())
	return m
}

func (m model) Init() tea.Cmd {
	if len(m.sessions) == 0 {
		return nil
	}
	// Bind the first session once the program is running.
	first := m.sessions[0]
	return func() tea.Msg {
		return SelectSessionMsg{ID: first}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// ── Terminal resize ──
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.md.updateWidth(msg.Width)
		m.viewport.SetContent(m.transcript())
		m.resize()
		return m, nil

	// ── Session binding ──
	case SelectSessionMsg:
		m.selectSession(msg.ID)
		return m, nil

	// ── Mouse: clicking the panel header toggles it ──
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft &&
			m.zones.Get(panel.ZoneHeader).InBounds(msg) {
			// Same transition as the Toggle key binding.
			m.panel.Toggle()
			m.syncLayout()
		}
		return m, nil

	// ── Key events ──
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		m.panel.Toggle()
		m.syncLayout()
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.lastErr = ""
		if err := m.panel.ClearAll(); err != nil {
			m.lastErr = err.Error()
		}
		m.syncLayout()
		return m, nil

	case key.Matches(msg, m.keys.NextSession):
		m.selectSession(m.neighborSession(1))
		return m, nil

	case key.Matches(msg, m.keys.PrevSession):
		m.selectSession(m.neighborSession(-1))
		return m, nil

	case key.Matches(msg, m.keys.Detach):
		m.selectSession("")
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// neighborSession returns the session id delta steps away from the current
// one, wrapping around. With no current session it returns the first (or
// last, when cycling backwards).
func (m model) neighborSession(delta int) string {
	if len(m.sessions) == 0 {
		return ""
	}
	if m.current < 0 {
		if delta > 0 {
			return m.sessions[0]
		}
		return m.sessions[len(m.sessions)-1]
	}
	idx := (m.current + delta + len(m.sessions)) % len(m.sessions)
	return m.sessions[idx]
}

// selectSession binds the panel to id and refreshes the transcript.
func (m *model) selectSession(id string) {
	m.lastErr = ""
	if err := m.panel.SetActiveSession(id); err != nil {
		m.lastErr = err.Error()
	}

	m.current = -1
	for i, s := range m.sessions {
		if s == id {
			m.current = i
			break
		}
	}

	m.viewport.SetContent(m.transcript())
	m.syncLayout()
}

// syncLayout re-measures the viewport when the panel reported a height
// change. The panel emits after its state change, so Height is already
// current here.
func (m *model) syncLayout() {
	if m.layout.dirty {
		m.layout.dirty = false
		m.resize()
	}
}

// resize fits the viewport into the rows the panel and status bar leave
// over.
func (m *model) resize() {
	h := m.height - m.panel.Height() - 1
	if h < 1 {
		h = 1
	}
	m.viewport.Width = m.width
	m.viewport.Height = h
}

// transcript renders the conversation area for the current session.
func (m model) transcript() string {
	var b strings.Builder
	b.WriteString(m.md.render(welcomeMarkdown))
	b.WriteString("\n\n")

	if m.current < 0 {
		b.WriteString(noSessionStyle.Render("No active session. Press tab to pick one."))
		return b.String()
	}

	b.WriteString(sessionLabelStyle.Render("Session " + m.sessions[m.current]))
	b.WriteString("\n")
	b.WriteString(noSessionStyle.Render("The todo list below tracks this conversation."))
	return b.String()
}

// View renders the full screen: transcript, panel, status bar. Scan strips
// the zone markers the panel header carries for mouse hit-testing.
func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	if pv := m.panel.View(); pv != "" {
		b.WriteString(pv)
		b.WriteString("\n")
	}
	b.WriteString(m.renderStatusBar())
	return m.zones.Scan(b.String())
}
