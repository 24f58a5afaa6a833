package lists

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/instructvault/ivault-playground/internal/playground"
	"github.com/instructvault/ivault-playground/internal/ui/styles"
)

// Prompts is the prompt catalog. While it is loading, failed or empty it
// shows a single message line and has no selectable items.
type Prompts struct {
	cursorList
	status  playground.ListStatus
	message string
	active  string
}

// NewPrompts returns an empty catalog.
func NewPrompts() *Prompts {
	return &Prompts{cursorList: cursorList{zonePrefix: "prompt"}, status: playground.ListEmpty}
}

// ShowLoading implements playground.ListPort.
func (p *Prompts) ShowLoading() {
	p.showMessage(playground.ListLoading, playground.LoadingText)
}

// ShowError implements playground.ListPort.
func (p *Prompts) ShowError(msg string) {
	p.showMessage(playground.ListFailed, msg)
}

// ShowEmpty implements playground.ListPort.
func (p *Prompts) ShowEmpty(msg string) {
	p.showMessage(playground.ListEmpty, msg)
}

// ShowItems implements playground.ListPort.
func (p *Prompts) ShowItems(items []string) {
	p.status = playground.ListItems
	p.message = ""
	p.cursor, p.offset = 0, 0
	p.setItems(slices.Clone(items))
}

func (p *Prompts) showMessage(status playground.ListStatus, msg string) {
	p.status = status
	p.message = msg
	p.cursor, p.offset = 0, 0
	p.setItems(nil)
}

// Items returns the selectable prompt identifiers.
func (p *Prompts) Items() []string {
	return slices.Clone(p.items)
}

// Message returns the status line shown instead of items.
func (p *Prompts) Message() string {
	return p.message
}

// Cursor returns the prompt under the cursor, or "" when there are none.
func (p *Prompts) Cursor() string {
	if len(p.items) == 0 {
		return ""
	}
	return p.items[p.cursor]
}

// SetActive marks the prompt whose spec is displayed.
func (p *Prompts) SetActive(id string) { p.active = id }

func (p *Prompts) Up() { p.up() }
func (p *Prompts) Down() { p.down() }
func (p *Prompts) SetHeight(h int) { p.setHeight(h) }

// Click returns the prompt under a left click.
func (p *Prompts) Click(msg tea.MouseMsg) (string, bool) {
	i, ok := p.hit(msg)
	if !ok {
		return "", false
	}
	p.moveTo(i)
	return p.items[i], true
}

// View renders the catalog in width columns.
func (p *Prompts) View(width int, focused bool) string {
	switch p.status {
	case playground.ListLoading:
		return styles.LoadingStyle.Render(p.message)
	case playground.ListFailed:
		return styles.ErrorTextStyle.Render(p.message)
	case playground.ListEmpty:
		return styles.PlaceholderStyle.Render(p.message)
	}
	return p.render(width, focused,
		func(id string) string { return id },
		func(id string) bool { return id == p.active })
}

var _ playground.ListPort = (*Prompts)(nil)
