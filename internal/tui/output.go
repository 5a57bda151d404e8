package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const welcomeMarkdown = `# todopanel

A collapsible, session-scoped todo list for chat interfaces.

- **tab** / **shift+tab** switch the active session
- **t**, **enter**, or a click on the header collapse and expand the list
- **c** clears the active session's todos
- **0** detaches from all sessions
`

// markdownRenderer renders markdown text to styled ANSI output.
type markdownRenderer struct {
	renderer *glamour.TermRenderer
	width    int
}

// newMarkdownRenderer creates a renderer with the given terminal width.
func newMarkdownRenderer(width int) *markdownRenderer {
	if width < 40 {
		width = 80
	}
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-4), // small margin for safety
	)
	return &markdownRenderer{renderer: r, width: width}
}

// render converts markdown text to styled ANSI output.
func (r *markdownRenderer) render(md string) string {
	if r.renderer == nil {
		return md
	}
	out, err := r.renderer.Render(md)
	if err != nil {
		return md
	}
	// glamour often adds trailing newlines; trim for tighter display.
	return strings.TrimRight(out, "\n")
}

// updateWidth recreates the renderer with a new terminal width.
func (r *markdownRenderer) updateWidth(width int) {
	if width < 40 {
		width = 80
	}
	if width == r.width {
		return
	}
	r.width = width
	newR, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-4),
	)
	if err == nil {
		r.renderer = newR
	}
}
