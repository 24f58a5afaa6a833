// Package lists implements the two selectable lists of the playground: the
// reference selector and the prompt catalog. Both satisfy the display
// ports the playground controller writes to.
package lists

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/instructvault/ivault-playground/internal/ui/styles"
)

// cursorList is the cursor and scroll state shared by both lists.
type cursorList struct {
	zonePrefix string
	items      []string
	cursor     int
	offset     int
	height     int
}

func (l *cursorList) setItems(items []string) {
	l.items = items
	l.cursor = min(l.cursor, max(len(items)-1, 0))
	l.scroll()
}

func (l *cursorList) setHeight(h int) {
	l.height = max(h, 1)
	l.scroll()
}

func (l *cursorList) up() {
	if l.cursor > 0 {
		l.cursor--
		l.scroll()
	}
}

func (l *cursorList) down() {
	if l.cursor < len(l.items)-1 {
		l.cursor++
		l.scroll()
	}
}

func (l *cursorList) moveTo(i int) {
	if i >= 0 && i < len(l.items) {
		l.cursor = i
		l.scroll()
	}
}

// scroll keeps the cursor inside the visible window.
func (l *cursorList) scroll() {
	h := max(l.height, 1)
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+h {
		l.offset = l.cursor - h + 1
	}
	l.offset = max(min(l.offset, len(l.items)-h), 0)
}

func (l *cursorList) zoneID(i int) string {
	return fmt.Sprintf("%s-%d", l.zonePrefix, i)
}

// hit returns the index of the item under a left click.
func (l *cursorList) hit(msg tea.MouseMsg) (int, bool) {
	if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionRelease {
		return 0, false
	}
	end := min(l.offset+max(l.height, 1), len(l.items))
	for i := l.offset; i < end; i++ {
		if z := zone.Get(l.zoneID(i)); z != nil && z.InBounds(msg) {
			return i, true
		}
	}
	return 0, false
}

// render draws the visible window. label maps an item to its text; active
// marks the item the session currently uses.
func (l *cursorList) render(width int, focused bool, label func(string) string, active func(string) bool) string {
	end := min(l.offset+max(l.height, 1), len(l.items))
	lines := make([]string, 0, end-l.offset)
	for i := l.offset; i < end; i++ {
		text := styles.TruncateLeft(label(l.items[i]), max(width-2, 1))
		switch {
		case i == l.cursor && focused:
			text = styles.SelectionIndicatorStyle.Render(">") + " " + styles.SelectedItemStyle.Render(text)
		case active(l.items[i]):
			text = "  " + styles.SelectedItemStyle.Render(text)
		default:
			text = "  " + text
		}
		lines = append(lines, zone.Mark(l.zoneID(i), text))
	}
	return strings.Join(lines, "\n")
}
