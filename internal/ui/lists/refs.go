package lists

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/instructvault/ivault-playground/internal/playground"
)

// References is the reference selector. The first option is always the
// working tree, represented by the empty reference.
type References struct {
	cursorList
	selected string
}

// NewReferences returns a selector holding only the working-tree option.
func NewReferences() *References {
	r := &References{cursorList: cursorList{zonePrefix: "ref"}}
	r.ShowReferences(nil, "")
	return r
}

// ShowReferences implements playground.ReferencePort.
func (r *References) ShowReferences(refs []string, selected string) {
	items := []string{""}
	for _, ref := range refs {
		if ref != "" && !slices.Contains(items, ref) {
			items = append(items, ref)
		}
	}
	r.selected = selected
	r.setItems(items)
	if i := slices.Index(items, selected); i >= 0 {
		r.moveTo(i)
	}
}

// SetSelected marks ref as the reference in use without moving the cursor.
func (r *References) SetSelected(ref string) {
	r.selected = ref
}

// Options returns every option in display order, "" first.
func (r *References) Options() []string {
	return slices.Clone(r.items)
}

// Selected returns the reference the session is using.
func (r *References) Selected() string {
	return r.selected
}

// Cursor returns the reference under the cursor.
func (r *References) Cursor() string {
	if len(r.items) == 0 {
		return ""
	}
	return r.items[r.cursor]
}

func (r *References) Up() { r.up() }
func (r *References) Down() { r.down() }
func (r *References) SetHeight(h int) { r.setHeight(h) }

// Click returns the reference under a left click.
func (r *References) Click(msg tea.MouseMsg) (string, bool) {
	i, ok := r.hit(msg)
	if !ok {
		return "", false
	}
	r.moveTo(i)
	return r.items[i], true
}

// View renders the options in width columns.
func (r *References) View(width int, focused bool) string {
	return r.render(width, focused, Label, func(ref string) bool { return ref == r.selected })
}

// Label is the display text for ref.
func Label(ref string) string {
	if ref == "" {
		return playground.WorktreeOptionText
	}
	return ref
}

var _ playground.ReferencePort = (*References)(nil)
