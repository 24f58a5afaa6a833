package diffview

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	old := "{\n  \"name\": \"greet\",\n  \"model\": \"a\"\n}\n"
	after := "{\n  \"name\": \"greet\",\n  \"model\": \"b\"\n}\n"

	lines := Lines(old, after)

	require.Equal(t, []Line{
		{LineEqual, "{"},
		{LineEqual, `  "name": "greet",`},
		{LineRemoved, `  "model": "a"`},
		{LineAdded, `  "model": "b"`},
		{LineEqual, "}"},
	}, lines)
	require.True(t, Changed(lines))
}

func TestLines_Identical(t *testing.T) {
	lines := Lines("a\nb", "a\nb")
	require.False(t, Changed(lines))
	require.Len(t, lines, 2)
}

func TestUnified(t *testing.T) {
	got := Unified("v1", "v2", []Line{
		{LineEqual, "a"},
		{LineRemoved, "b"},
		{LineAdded, "c"},
	})
	require.Equal(t, "--- v1\n+++ v2\n a\n-b\n+c\n", got)
}

func TestModel_ShowAndClose(t *testing.T) {
	m := New().SetSize(80, 24)
	require.False(t, m.Visible())
	require.Equal(t, "bg", m.Overlay("bg"))

	m = m.Show("greet@v1", "a\nb\n", "greet@v2", "a\nc\n")
	require.True(t, m.Visible())
	view := m.View()
	require.Contains(t, view, "greet@v1 → greet@v2")
	require.Contains(t, view, "-b")
	require.Contains(t, view, "+c")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, m.Visible())
	require.IsType(t, CloseMsg{}, cmd())
}

func TestModel_NoDifferences(t *testing.T) {
	m := New().SetSize(80, 24).Show("a", "same", "b", "same")
	require.Contains(t, m.View(), "No differences.")
}
