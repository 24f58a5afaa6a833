// Package markdown renders rendered prompt messages as styled markdown for
// the output region's messages view.
package markdown

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/instructvault/ivault-playground/internal/api"
)

// noMarginStyle removes document margins so output lines up with the pane.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// Renderer wraps glamour with the playground's configuration.
type Renderer struct {
	renderer *glamour.TermRenderer
	width    int
}

// New creates a markdown renderer with the given width and style ("dark",
// "light", "notty" or "ascii"). An explicit style avoids the terminal
// background query WithAutoStyle performs, whose reply would leak into the
// input stream.
func New(width int, style string) (*Renderer, error) {
	if style == "" {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("creating markdown renderer: %w", err)
	}
	return &Renderer{renderer: r, width: width}, nil
}

// Width returns the configured word wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Render transforms markdown to styled terminal output.
func (r *Renderer) Render(markdown string) (string, error) {
	return r.renderer.Render(markdown)
}

// RenderMessages renders msgs as a transcript, one heading per role.
func (r *Renderer) RenderMessages(msgs []api.Message) (string, error) {
	return r.Render(Transcript(msgs))
}

// Transcript formats msgs as markdown.
func Transcript(msgs []api.Message) string {
	if len(msgs) == 0 {
		return "_No messages._\n"
	}
	var b strings.Builder
	for i, m := range msgs {
		if i > 0 {
			b.WriteString("\n---\n\n")
		}
		role := m.Role
		if role == "" {
			role = "message"
		}
		fmt.Fprintf(&b, "### %s\n\n%s\n", role, strings.TrimSpace(m.Content))
	}
	return b.String()
}
