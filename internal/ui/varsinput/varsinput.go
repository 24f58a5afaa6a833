// Package varsinput is the editable variables field rendered against the
// selected prompt.
package varsinput

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

const charLimit = 16 * 1024

// Model wraps a textarea holding the variables text.
type Model struct {
	input textarea.Model
}

// New returns an unfocused, empty input.
func New() Model {
	ta := textarea.New()
	ta.Prompt = ""
	ta.Placeholder = `{"name": "Ava"}`
	ta.CharLimit = charLimit
	ta.ShowLineNumbers = false
	ta.SetHeight(3)
	return Model{input: ta}
}

// Seed replaces the text.
func (m Model) Seed(text string) Model {
	m.input.SetValue(text)
	m.input.CursorEnd()
	return m
}

// Value returns the current text.
func (m Model) Value() string {
	return m.input.Value()
}

// Focus starts editing.
func (m Model) Focus() (Model, tea.Cmd) {
	cmd := m.input.Focus()
	return m, cmd
}

// Blur stops editing.
func (m Model) Blur() Model {
	m.input.Blur()
	return m
}

// Focused reports whether the input is being edited.
func (m Model) Focused() bool {
	return m.input.Focused()
}

// SetSize sets the inner dimensions.
func (m Model) SetSize(width, height int) Model {
	m.input.SetWidth(max(width, 1))
	m.input.SetHeight(max(height, 1))
	return m
}

// Update forwards editing keys while focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.input.Focused() {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the input.
func (m Model) View() string {
	return m.input.View()
}
