package help

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/instructvault/ivault-playground/internal/keys"
)

func TestView_ListsEveryBinding(t *testing.T) {
	view := New(keys.DefaultKeyMap()).SetSize(140, 40).View()

	require.Contains(t, view, "Keyboard Shortcuts")
	for _, section := range sections {
		require.Contains(t, view, section)
	}
	for _, group := range keys.DefaultKeyMap().FullHelp() {
		for _, b := range group {
			require.Contains(t, view, b.Help().Desc)
		}
	}
}

func TestOverlay_KeepsBackgroundSize(t *testing.T) {
	bg := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 140)+"\n", 40), "\n")
	out := New(keys.DefaultKeyMap()).SetSize(140, 40).Overlay(bg)

	require.Len(t, strings.Split(out, "\n"), 40)
	require.Contains(t, out, "Keyboard Shortcuts")
}
