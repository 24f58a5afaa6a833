package diffview

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/instructvault/ivault-playground/internal/ui/overlay"
	"github.com/instructvault/ivault-playground/internal/ui/styles"
)

const (
	boxMaxWidth  = 140
	boxMinWidth  = 30
	boxMaxHeight = 40
)

// CloseMsg is sent when the overlay closes.
type CloseMsg struct{}

// Model is the diff overlay.
type Model struct {
	visible  bool
	title    string
	lines    []Line
	width    int
	height   int
	viewport viewport.Model
}

// New returns a hidden overlay.
func New() Model {
	return Model{viewport: viewport.New(0, 0)}
}

// Show opens the overlay with the diff of pinned against current.
func (m Model) Show(pinnedLabel, pinned, currentLabel, current string) Model {
	m.visible = true
	m.title = pinnedLabel + " → " + currentLabel
	m.lines = Lines(pinned, current)
	m.refresh()
	return m
}

// Visible reports whether the overlay is open.
func (m Model) Visible() bool {
	return m.visible
}

// SetSize records the screen size.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	m.refresh()
	return m
}

// Update scrolls or closes the overlay.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.visible {
		return m, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "q", "ctrl+d":
			m.visible = false
			return m, func() tea.Msg { return CloseMsg{} }
		case "g":
			m.viewport.GotoTop()
			return m, nil
		case "G":
			m.viewport.GotoBottom()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) boxWidth() int {
	return max(min(m.width-4, boxMaxWidth), boxMinWidth)
}

func (m *Model) refresh() {
	if m.width == 0 || m.height == 0 {
		return
	}
	inner := m.boxWidth() - 2
	// header, divider, footer divider, footer and borders
	height := max(min(m.height-6, boxMaxHeight), 3)
	m.viewport.Width = inner
	m.viewport.Height = height
	m.viewport.SetContent(m.content(inner))
}

func (m Model) content(width int) string {
	if !Changed(m.lines) {
		return styles.PlaceholderStyle.Render("No differences.")
	}
	added := lipgloss.NewStyle().Foreground(styles.DiffAddedColor)
	removed := lipgloss.NewStyle().Foreground(styles.DiffRemovedColor)

	rows := make([]string, 0, len(m.lines))
	for _, l := range m.lines {
		row := styles.TruncateString(prefix(l.Kind)+l.Text, width)
		switch l.Kind {
		case LineAdded:
			row = added.Render(row)
		case LineRemoved:
			row = removed.Render(row)
		}
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}

// View renders the overlay box.
func (m Model) View() string {
	if !m.visible {
		return ""
	}
	w := m.boxWidth()
	title := lipgloss.NewStyle().Bold(true).Foreground(styles.OverlayTitleColor).PaddingLeft(1)
	divider := lipgloss.NewStyle().Foreground(styles.OverlayBorderColor).Render(strings.Repeat("─", w))
	hint := lipgloss.NewStyle().Foreground(styles.TextMutedColor).PaddingLeft(1).Render("j/k scroll · esc close")

	body := title.Render(styles.TruncateString("Diff "+m.title, w-2)) + "\n" +
		divider + "\n" +
		m.viewport.View() + "\n" +
		divider + "\n" +
		hint

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Width(w).
		Render(body)
}

// Overlay renders the diff centered on bg.
func (m Model) Overlay(bg string) string {
	if !m.visible {
		return bg
	}
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, m.View(), bg)
}
