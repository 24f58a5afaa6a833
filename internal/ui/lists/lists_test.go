package lists

import (
	"os"
	"strings"
	"testing"

	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"

	"github.com/instructvault/ivault-playground/internal/playground"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func TestReferences_WorktreeFirst(t *testing.T) {
	r := NewReferences()
	require.Equal(t, []string{""}, r.Options())

	r.ShowReferences([]string{"v2", "v1"}, "v1")
	require.Equal(t, []string{"", "v2", "v1"}, r.Options())
	require.Equal(t, "v1", r.Selected())
	require.Equal(t, "v1", r.Cursor(), "cursor starts on the selected reference")

	view := r.View(30, false)
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], playground.WorktreeOptionText)
	require.Contains(t, lines[1], "v2")
}

func TestReferences_DropsEmptyAndDuplicateRefs(t *testing.T) {
	r := NewReferences()
	r.ShowReferences([]string{"", "v1", "v2", "v1"}, "")
	require.Equal(t, []string{"", "v1", "v2"}, r.Options())
	require.Equal(t, "", r.Cursor())
}

func TestReferences_CursorBounds(t *testing.T) {
	r := NewReferences()
	r.ShowReferences([]string{"a", "b"}, "")

	r.Up()
	require.Equal(t, "", r.Cursor())
	r.Down()
	r.Down()
	r.Down()
	require.Equal(t, "b", r.Cursor())
}

func TestReferences_ShrinkingListClampsCursor(t *testing.T) {
	r := NewReferences()
	r.ShowReferences([]string{"a", "b", "c"}, "c")
	r.ShowReferences(nil, "")

	require.Equal(t, "", r.Cursor())
}

func TestPrompts_Statuses(t *testing.T) {
	p := NewPrompts()

	p.ShowLoading()
	require.Equal(t, playground.LoadingText, p.Message())
	require.Empty(t, p.Items())
	require.Contains(t, p.View(40, true), playground.LoadingText)

	p.ShowError(playground.PromptsFailedText)
	require.Contains(t, p.View(40, true), playground.PromptsFailedText)
	require.Empty(t, p.Cursor())

	p.ShowEmpty(playground.NoPromptsText)
	require.Contains(t, p.View(40, true), playground.NoPromptsText)
	require.Empty(t, p.Items(), "empty catalog has zero selectable items")
}

func TestPrompts_Items(t *testing.T) {
	p := NewPrompts()
	p.SetHeight(10)
	p.ShowItems([]string{"greet.prompt.yml", "summarize.prompt.yml"})

	require.Empty(t, p.Message())
	require.Equal(t, "greet.prompt.yml", p.Cursor())
	p.Down()
	require.Equal(t, "summarize.prompt.yml", p.Cursor())

	view := p.View(40, true)
	require.Contains(t, view, "> summarize.prompt.yml")
	require.Contains(t, view, "  greet.prompt.yml")
}

func TestPrompts_ScrollKeepsCursorVisible(t *testing.T) {
	p := NewPrompts()
	p.SetHeight(2)
	p.ShowItems([]string{"a", "b", "c", "d"})

	p.Down()
	p.Down()
	p.Down()
	lines := strings.Split(p.View(20, true), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "c")
	require.Contains(t, lines[1], "> d")
}

func TestPrompts_LongIdentifiersKeepTheirTail(t *testing.T) {
	p := NewPrompts()
	p.SetHeight(1)
	p.ShowItems([]string{"prompts/team/very/deep/path/greet.prompt.yml"})

	view := p.View(20, false)
	require.Contains(t, view, "greet.prompt.yml")
	require.NotContains(t, view, "prompts/team")
}
