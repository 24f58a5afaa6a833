package toaster

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	m := New()

	require.False(t, m.Visible())
	require.Empty(t, m.View())
}

func TestShow(t *testing.T) {
	m, cmd := New().Show("Eval PASS: 2/2", StyleSuccess)

	require.NotNil(t, cmd)
	require.True(t, m.Visible())
	require.Contains(t, m.View(), "Eval PASS: 2/2")
	require.Contains(t, m.View(), "✓")
}

func TestShow_ReplacesExisting(t *testing.T) {
	m, _ := New().Show("First", StyleSuccess)
	m, _ = m.Show("Second", StyleError)

	require.Contains(t, m.View(), "Second")
	require.NotContains(t, m.View(), "First")
	require.Contains(t, m.View(), "✗")
}

func TestUpdate_StaleDismissIgnored(t *testing.T) {
	m, _ := New().Show("First", StyleSuccess)
	first := m.seq
	m, _ = m.Show("Second", StyleInfo)

	m = m.Update(DismissMsg{Seq: first})
	require.True(t, m.Visible(), "dismissal for an older toast must not hide the newer one")

	m = m.Update(DismissMsg{Seq: m.seq})
	require.False(t, m.Visible())
	require.Empty(t, m.Message())
}

func TestView_EmptyWhenMessageEmpty(t *testing.T) {
	m := Model{visible: true, message: ""}
	require.Empty(t, m.View())
}

func TestOverlay(t *testing.T) {
	bg := strings.Repeat(strings.Repeat(".", 40)+"\n", 9) + strings.Repeat(".", 40)
	m, _ := New().Show("Saved", StyleWarn)

	out := m.Overlay(bg, 40, 10)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 10)
	require.Contains(t, lines[7], "Saved")
	require.True(t, strings.HasSuffix(lines[7], ".."), "toast is inset from the right edge")

	hidden := New().Overlay(bg, 40, 10)
	require.Equal(t, bg, hidden)
}
