// Package help contains the help overlay component.
package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/instructvault/ivault-playground/internal/keys"
	"github.com/instructvault/ivault-playground/internal/ui/overlay"
	"github.com/instructvault/ivault-playground/internal/ui/styles"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.OverlayTitleColor).
			PaddingLeft(2)

	dividerStyle = lipgloss.NewStyle().
			Foreground(styles.OverlayBorderColor)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.OverlayTitleColor).
			MarginTop(1)

	keyStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondaryColor).
			Width(11)

	descStyle = lipgloss.NewStyle().
			Foreground(styles.TextDescriptionColor)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.OverlayBorderColor)

	contentStyle = lipgloss.NewStyle().
			Padding(0, 2)

	footerStyle = lipgloss.NewStyle().
			Foreground(styles.TextMutedColor).
			MarginTop(1)
)

// sections name the columns of keys.KeyMap.FullHelp, in order.
var sections = []string{"Navigation", "Actions", "General"}

// Model holds the help view state.
type Model struct {
	keys   keys.KeyMap
	width  int
	height int
}

// New creates a help view for km.
func New(km keys.KeyMap) Model {
	return Model{keys: km}
}

// SetSize updates dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// View renders the help overlay on its own.
func (m Model) View() string {
	return m.Overlay("")
}

// Overlay renders the help box on top of a background view.
func (m Model) Overlay(background string) string {
	box := m.renderContent()
	if background == "" {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, box, background)
}

func (m Model) renderContent() string {
	columnStyle := lipgloss.NewStyle().MarginRight(4)

	var cols []string
	for i, group := range m.keys.FullHelp() {
		var col strings.Builder
		if i < len(sections) {
			col.WriteString(sectionStyle.Render(sections[i]))
			col.WriteString("\n")
		}
		for _, b := range group {
			col.WriteString(renderBinding(b))
		}
		cols = append(cols, columnStyle.Render(col.String()))
	}
	columns := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	width := lipgloss.Width(columns)
	var b strings.Builder
	b.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(dividerStyle.Render(strings.Repeat("─", width+4)))
	b.WriteString("\n")
	b.WriteString(contentStyle.Render(columns + "\n" + footerStyle.Render("Press ? or esc to close")))

	return boxStyle.Render(b.String())
}

func renderBinding(b key.Binding) string {
	if !b.Enabled() {
		return ""
	}
	h := b.Help()
	return keyStyle.Render(h.Key) + descStyle.Render(h.Desc) + "\n"
}
