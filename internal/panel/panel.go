// Package panel implements a collapsible todo list bound to one chat
// session at a time. The host owns layout and input routing; the panel owns
// its view state and talks to storage through the narrow store contract.
package panel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"todopanel/internal/store"
	"todopanel/internal/todo"
)

// ZoneHeader is the bubblezone id of the header line. Hosts that enable
// mouse tracking hit-test clicks against it and call Toggle.
const ZoneHeader = "todopanel.header"

// Panel renders the active session's todo list and lets the user collapse
// the body or clear the list. All state is instance-owned.
type Panel struct {
	store store.Store

	expanded  bool
	sessionID string
	items     []todo.Record
	visible   bool

	zones      *zone.Manager
	heightSubs []func()
}

// New creates a panel backed by st. The panel starts expanded with no
// active session, so it occupies no height until a session with todos is
// bound.
func New(st store.Store) *Panel {
	return &Panel{store: st, expanded: true}
}

// AttachZone marks the header line through zm so the host can route mouse
// clicks to Toggle via ZoneHeader.
func (p *Panel) AttachZone(zm *zone.Manager) {
	p.zones = zm
}

// OnHeightChange registers fn to run whenever the panel's rendered height
// may have changed. Callbacks run synchronously in registration order,
// always after the state change they report. There is no payload; the host
// re-queries Height directly.
func (p *Panel) OnHeightChange(fn func()) {
	p.heightSubs = append(p.heightSubs, fn)
}

func (p *Panel) notifyHeightChange() {
	for _, fn := range p.heightSubs {
		fn()
	}
}

// SetActiveSession binds the panel to sessionID and refreshes. An empty id
// means no active session; the panel hides itself.
func (p *Panel) SetActiveSession(sessionID string) error {
	p.sessionID = sessionID
	return p.Refresh()
}

// SessionID returns the active session identifier, "" if none.
func (p *Panel) SessionID() string {
	return p.sessionID
}

// Refresh re-reads the active session's todo list and recomputes
// visibility. The list is fetched fresh on every call; other collaborators
// may have written to the store since the last operation. Storage errors
// surface to the caller with the panel state untouched.
func (p *Panel) Refresh() error {
	if p.sessionID == "" {
		p.items = nil
		p.visible = false
		p.notifyHeightChange()
		return nil
	}

	items, err := p.store.GetTodoList(p.sessionID)
	if err != nil {
		return fmt.Errorf("fetching todos for session %s: %w", p.sessionID, err)
	}
	p.items = items
	p.visible = len(items) > 0
	p.notifyHeightChange()
	return nil
}

// Toggle flips the panel between expanded and collapsed. Keyboard and
// mouse activation both route here; there is a single transition, not two
// handlers.
func (p *Panel) Toggle() {
	p.expanded = !p.expanded
	p.notifyHeightChange()
}

// Expanded reports whether the body is shown while the panel is visible.
func (p *Panel) Expanded() bool {
	return p.expanded
}

// Visible reports whether the panel occupies any height. It is true
// exactly when a session is bound and its fetched list is non-empty.
func (p *Panel) Visible() bool {
	return p.visible
}

// Items returns the most recently fetched todo snapshot.
func (p *Panel) Items() []todo.Record {
	return p.items
}

// ClearAll replaces the active session's todo list with an empty one and
// refreshes. Without an active session it is a no-op. Calling it twice has
// the same observable effect as calling it once.
func (p *Panel) ClearAll() error {
	if p.sessionID == "" {
		return nil
	}
	if err := p.store.SetTodoList(p.sessionID, nil); err != nil {
		return fmt.Errorf("clearing todos for session %s: %w", p.sessionID, err)
	}
	return p.Refresh()
}

// Height returns the panel's rendered height in terminal rows, 0 when
// hidden. This is the only measurement the host layout consumes.
func (p *Panel) Height() int {
	if !p.visible {
		return 0
	}
	return lipgloss.Height(p.View())
}

// statusGlyph maps a record status to its glyph and line style. The default
// branch covers both not-started and any unrecognized value.
func statusGlyph(s todo.Status) (string, lipgloss.Style) {
	switch s.Normalize() {
	case todo.StatusCompleted:
		return "✓", completedStyle
	case todo.StatusInProgress:
		return "●", inProgressStyle
	default:
		return "○", notStartedStyle
	}
}

// renderItems produces the body lines for items, one numbered line per
// record in input order.
//
// Each line is styled as a single unit (one lipgloss.Render call) rather
// than styling the glyph and text separately. One set of ANSI escape
// sequences per line keeps Bubble Tea's inline renderer from
// miscalculating physical line widths during repaints.
func renderItems(items []todo.Record) string {
	if len(items) == 0 {
		return ""
	}

	lines := make([]string, 0, len(items))
	for i, rec := range items {
		glyph, style := statusGlyph(rec.Status)
		lines = append(lines, style.Render(fmt.Sprintf("  %s %d. %s", glyph, i+1, rec.Title)))
	}
	return strings.Join(lines, "\n")
}

// View renders the panel. A hidden panel renders to the empty string so
// the host can splice it into its view unconditionally. The clear-control
// hint appears exactly when the panel is visible; the body exactly when it
// is also expanded.
func (p *Panel) View() string {
	if !p.visible {
		return ""
	}

	indicator := "▾"
	if !p.expanded {
		indicator = "▸"
	}
	header := headerStyle.Render(indicator+" Todos") + " " + clearHintStyle.Render("(c to clear)")
	if p.zones != nil {
		header = p.zones.Mark(ZoneHeader, header)
	}

	if !p.expanded {
		return header
	}
	return header + "\n" + renderItems(p.items)
}
