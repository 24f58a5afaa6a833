package varsinput

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	m := New().Seed(`{"name": "ivault"}`)
	require.Equal(t, `{"name": "ivault"}`, m.Value())
}

func TestUpdate_IgnoredWhileBlurred(t *testing.T) {
	m := New().Seed("{}")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	require.Equal(t, "{}", m.Value())
}

func TestUpdate_EditsWhileFocused(t *testing.T) {
	m := New().SetSize(30, 3).Seed("{")
	m, _ = m.Focus()
	require.True(t, m.Focused())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("}")})
	require.Equal(t, "{}", m.Value())

	m = m.Blur()
	require.False(t, m.Focused())
}
