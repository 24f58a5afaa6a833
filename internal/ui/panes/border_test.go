package panes

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

var (
	testColorBlue  = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}
	testColorGreen = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
)

func TestBorderedPane_BasicRendering(t *testing.T) {
	result := BorderedPane(BorderConfig{
		Content: "Hello World",
		Width:   20,
		Height:  5,
	})

	require.Contains(t, result, "╭")
	require.Contains(t, result, "╯")
	require.Contains(t, result, "Hello World")

	lines := strings.Split(result, "\n")
	require.Len(t, lines, 5)
	for i, line := range lines {
		require.Equal(t, 20, lipgloss.Width(line), "line %d", i)
	}
}

func TestBorderedPane_Titles(t *testing.T) {
	result := BorderedPane(BorderConfig{
		Content:     "content",
		Width:       40,
		Height:      4,
		TopLeft:     "Prompts",
		TopRight:    "3",
		BottomLeft:  "main",
		BottomRight: "ctrl+r",
	})

	lines := strings.Split(result, "\n")
	require.True(t, strings.HasPrefix(lines[0], "╭─ Prompts "))
	require.True(t, strings.HasSuffix(lines[0], " 3 ─╮"))
	require.True(t, strings.HasPrefix(lines[3], "╰─ main "))
	require.True(t, strings.HasSuffix(lines[3], " ctrl+r ─╯"))
	require.Equal(t, 40, lipgloss.Width(lines[0]))
	require.Equal(t, 40, lipgloss.Width(lines[3]))
}

func TestBorderedPane_NarrowDropsRightTitle(t *testing.T) {
	result := BorderedPane(BorderConfig{
		Width:    16,
		Height:   3,
		TopLeft:  "A very long title",
		TopRight: "right",
	})

	top := strings.Split(result, "\n")[0]
	require.Equal(t, 16, lipgloss.Width(top))
	require.NotContains(t, top, "right")
	require.Contains(t, top, "...")
}

func TestBorderedPane_TooNarrowForAnyTitle(t *testing.T) {
	result := BorderedPane(BorderConfig{Width: 5, Height: 3, TopLeft: "Title"})

	top := strings.Split(result, "\n")[0]
	require.Equal(t, "╭───╮", top)
}

func TestBorderedPane_ClipsContent(t *testing.T) {
	result := BorderedPane(BorderConfig{
		Content: "one\ntwo\nthree\nfour",
		Width:   10,
		Height:  4,
	})

	require.Contains(t, result, "two")
	require.NotContains(t, result, "three")
}

func TestResolveBorderColor(t *testing.T) {
	tests := []struct {
		name             string
		border, focusedC lipgloss.TerminalColor
		focused          bool
		want             lipgloss.TerminalColor
	}{
		{"both nil", nil, nil, true, lipgloss.TerminalColor(nil)},
		{"focused inherits", testColorBlue, nil, true, testColorBlue},
		{"focused color", testColorBlue, testColorGreen, true, testColorGreen},
		{"unfocused color", testColorBlue, testColorGreen, false, testColorBlue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveBorderColor(tt.border, tt.focusedC, tt.focused)
			if tt.want == nil {
				require.NotNil(t, got)
				return
			}
			require.Equal(t, tt.want, got)
		})
	}
}
