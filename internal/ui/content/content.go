// Package content implements the scrollable text regions of the
// playground: the spec preview and the render output.
package content

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/instructvault/ivault-playground/internal/playground"
	"github.com/instructvault/ivault-playground/internal/ui/styles"
)

// Model is a content region. It remembers the last text written through
// the port verbatim, independent of wrapping and styling.
type Model struct {
	status    playground.ContentStatus
	text      string
	alternate string
	showAlt   bool
	width     int
	height    int
	viewport  viewport.Model
}

// New returns an empty region.
func New() *Model {
	return &Model{viewport: viewport.New(0, 0)}
}

// ShowPlaceholder implements playground.ContentPort.
func (m *Model) ShowPlaceholder(text string) { m.set(playground.ContentPlaceholder, text) }

// ShowLoading implements playground.ContentPort.
func (m *Model) ShowLoading(label string) { m.set(playground.ContentLoading, label) }

// ShowError implements playground.ContentPort.
func (m *Model) ShowError(msg string) { m.set(playground.ContentFailed, msg) }

// ShowContent implements playground.ContentPort.
func (m *Model) ShowContent(text string) { m.set(playground.ContentReady, text) }

func (m *Model) set(status playground.ContentStatus, text string) {
	m.status = status
	m.text = text
	m.alternate = ""
	m.refresh()
	m.viewport.GotoTop()
}

// Text returns the region's text exactly as it was last shown.
func (m *Model) Text() string {
	return m.text
}

// Status returns what kind of text the region holds.
func (m *Model) Status() playground.ContentStatus {
	return m.status
}

// SetAlternate sets an alternate rendering of the current ready content,
// already styled (for example rendered markdown). It is cleared whenever
// the region's text changes.
func (m *Model) SetAlternate(rendered string) {
	m.alternate = rendered
	m.refresh()
}

// ToggleAlternate switches between the text and its alternate rendering.
// It reports whether the alternate is now shown.
func (m *Model) ToggleAlternate() bool {
	m.showAlt = !m.showAlt
	m.refresh()
	return m.showAlt
}

// ShowingAlternate reports whether the alternate rendering is active.
func (m *Model) ShowingAlternate() bool {
	return m.showAlt
}

// SetSize sets the inner dimensions of the region.
func (m *Model) SetSize(width, height int) {
	m.width = max(width, 1)
	m.height = max(height, 1)
	m.viewport.Width = m.width
	m.viewport.Height = m.height
	m.refresh()
}

// Update scrolls the region.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

// ScrollPercent reports how far the region is scrolled.
func (m *Model) ScrollPercent() float64 {
	return m.viewport.ScrollPercent()
}

// View renders the visible part of the region.
func (m *Model) View() string {
	return m.viewport.View()
}

func (m *Model) refresh() {
	if m.showAlt && m.alternate != "" && m.status == playground.ContentReady {
		m.viewport.SetContent(m.alternate)
		return
	}
	text := m.text
	if m.width > 0 {
		text = wrap.String(wordwrap.String(text, m.width), m.width)
	}
	switch m.status {
	case playground.ContentPlaceholder:
		text = styles.PlaceholderStyle.Render(text)
	case playground.ContentLoading:
		text = styles.LoadingStyle.Render(text)
	case playground.ContentFailed:
		text = styles.ErrorTextStyle.Render(text)
	}
	m.viewport.SetContent(text)
}

var _ playground.ContentPort = (*Model)(nil)
