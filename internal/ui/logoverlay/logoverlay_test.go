package logoverlay

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

const (
	debugEntry = "2026-01-02T15:04:05 [DEBUG] [session] reference changed from= to=v1\n"
	warnEntry  = "2026-01-02T15:04:06 [WARN] [api] slow response\n"
	errorEntry = "2026-01-02T15:04:07 [ERROR] [api] render failed\n"
)

func key(s string) tea.KeyMsg {
	if s == "esc" {
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNew_Hidden(t *testing.T) {
	m := New()
	require.False(t, m.Visible())
	require.Empty(t, m.View())
	require.Equal(t, "bg", m.Overlay("bg"))
}

func TestToggle_ShowsEntries(t *testing.T) {
	m := New().SetSize(120, 40)
	m = m.Append(debugEntry).Append(warnEntry)
	m = m.Toggle()

	view := m.View()
	require.Contains(t, view, "Logs")
	require.Contains(t, view, "reference changed")
	require.Contains(t, view, "slow response")
}

func TestAppend_Bounded(t *testing.T) {
	m := New()
	m.capacity = 3
	for i := range 5 {
		m = m.Append(fmt.Sprintf("entry %d", i))
	}
	require.Equal(t, 3, m.Len())
	require.Equal(t, []string{"entry 2", "entry 3", "entry 4"}, m.entries)
}

func TestUpdate_LevelFilter(t *testing.T) {
	m := New().SetSize(120, 40).Append(debugEntry).Append(warnEntry).Append(errorEntry).Toggle()

	m, _ = m.Update(key("w"))
	view := m.View()
	require.NotContains(t, view, "reference changed")
	require.Contains(t, view, "slow response")
	require.Contains(t, view, "render failed")

	m, _ = m.Update(key("e"))
	require.NotContains(t, m.View(), "slow response")
}

func TestUpdate_Clear(t *testing.T) {
	m := New().SetSize(120, 40).Append(debugEntry).Toggle()

	m, _ = m.Update(key("c"))
	require.Zero(t, m.Len())
	require.Contains(t, m.View(), "No logs to display")
}

func TestUpdate_Close(t *testing.T) {
	m := New().SetSize(120, 40).Toggle()

	m, cmd := m.Update(key("esc"))
	require.False(t, m.Visible())
	require.IsType(t, CloseMsg{}, cmd())
}

func TestLevelOf_UnknownTreatedAsError(t *testing.T) {
	m := New().SetSize(120, 40).Append("plain line").Toggle()
	m, _ = m.Update(key("e"))
	require.Contains(t, m.View(), "plain line")
}
