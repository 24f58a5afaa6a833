package app

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/instructvault/ivault-playground/internal/config"
	"github.com/instructvault/ivault-playground/internal/keys"
	"github.com/instructvault/ivault-playground/internal/log"
	"github.com/instructvault/ivault-playground/internal/playground"
	"github.com/instructvault/ivault-playground/internal/ui/lists"
	"github.com/instructvault/ivault-playground/internal/ui/toaster"
)

const (
	zoneRender  = "btn-render"
	zoneEval    = "btn-eval"
	zoneCopy    = "btn-copy"
	zoneVars    = "pane-vars"
	zonePreview = "pane-preview"
	zoneOutput  = "pane-output"
)

var errNoConfigFile = errors.New("no config file")

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := keys.Playground

	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.debugMode && key.Matches(msg, k.Logs) {
		m.logOverlay = m.logOverlay.Toggle()
		return m, nil
	}
	if m.logOverlay.Visible() {
		var cmd tea.Cmd
		m.logOverlay, cmd = m.logOverlay.Update(msg)
		return m, cmd
	}
	if m.diff.Visible() {
		var cmd tea.Cmd
		m.diff, cmd = m.diff.Update(msg)
		return m, cmd
	}
	if m.showHelp {
		if key.Matches(msg, k.Help) || msg.Type == tea.KeyEsc {
			m.showHelp = false
		}
		return m, nil
	}

	// While editing, only ctrl chords and pane switching leave the textarea.
	if m.vars.Focused() {
		switch {
		case key.Matches(msg, k.LeaveVars):
			m.vars = m.vars.Blur()
			return m, nil
		case key.Matches(msg, k.NextPane, k.PrevPane):
			m.vars = m.vars.Blur()
		case strings.HasPrefix(msg.String(), "ctrl+"):
			if next, cmd, ok := m.action(msg); ok {
				return next, cmd
			}
			fallthrough
		default:
			var cmd tea.Cmd
			m.vars, cmd = m.vars.Update(msg)
			return m, cmd
		}
	}

	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, k.NextPane):
		return m.setFocus((m.focus + 1) % paneCount)
	case key.Matches(msg, k.PrevPane):
		return m.setFocus((m.focus + paneCount - 1) % paneCount)
	}
	if next, cmd, ok := m.action(msg); ok {
		return next, cmd
	}
	return m.paneKey(msg)
}

// action handles the bindings that work from every pane.
func (m Model) action(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	k := keys.Playground
	var cmd tea.Cmd
	switch {
	case key.Matches(msg, k.Render):
		m, cmd = m.dispatch(playground.RenderRequested{VarsText: m.vars.Value()})
	case key.Matches(msg, k.Eval):
		m, cmd = m.dispatch(playground.EvalRequested{})
	case key.Matches(msg, k.Copy):
		m, cmd = m.dispatch(playground.CopyRequested{})
	case key.Matches(msg, k.Refresh):
		m, cmd = m.dispatch(playground.RefreshRequested{})
	case key.Matches(msg, k.Pin):
		m, cmd = m.pinPreview()
	case key.Matches(msg, k.Diff):
		m, cmd = m.openDiff()
	case key.Matches(msg, k.Messages):
		m, cmd = m.toggleMessages()
	case key.Matches(msg, k.SaveDefault):
		m, cmd = m.saveDefault()
	default:
		return m, nil, false
	}
	return m, cmd, true
}

// paneKey handles keys specific to the focused pane.
func (m Model) paneKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := keys.Playground
	switch m.focus {
	case paneRefs:
		switch {
		case key.Matches(msg, k.Up):
			m.refs.Up()
		case key.Matches(msg, k.Down):
			m.refs.Down()
		case key.Matches(msg, k.Select):
			return m.dispatch(playground.ReferenceChanged{Ref: m.refs.Cursor()})
		}
	case panePrompts:
		switch {
		case key.Matches(msg, k.Up):
			m.prompts.Up()
		case key.Matches(msg, k.Down):
			m.prompts.Down()
		case key.Matches(msg, k.Select):
			return m.dispatch(playground.PromptSelected{ID: m.prompts.Cursor()})
		}
	case paneVars:
		if key.Matches(msg, k.EditVars, k.Select) {
			var cmd tea.Cmd
			m.vars, cmd = m.vars.Focus()
			return m, cmd
		}
	case panePreview:
		return m, m.preview.Update(msg)
	case paneOutput:
		return m, m.output.Update(msg)
	}
	return m, nil
}

func (m Model) setFocus(p pane) (tea.Model, tea.Cmd) {
	m.focus = p
	log.Debug(log.CatUI, "focus", "pane", int(p))
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.logOverlay.Visible() || m.diff.Visible() || m.showHelp {
		return m, nil
	}

	if msg.Action == tea.MouseActionPress && (msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown) {
		switch {
		case inZone(zonePreview, msg):
			return m, m.preview.Update(msg)
		case inZone(zoneOutput, msg):
			return m, m.output.Update(msg)
		}
		return m, nil
	}

	if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionRelease {
		return m, nil
	}
	if ref, ok := m.refs.Click(msg); ok {
		m.focus = paneRefs
		return m.dispatch(playground.ReferenceChanged{Ref: ref})
	}
	if id, ok := m.prompts.Click(msg); ok {
		m.focus = panePrompts
		return m.dispatch(playground.PromptSelected{ID: id})
	}

	switch {
	case inZone(zoneRender, msg):
		return m.dispatch(playground.RenderRequested{VarsText: m.vars.Value()})
	case inZone(zoneEval, msg):
		return m.dispatch(playground.EvalRequested{})
	case inZone(zoneCopy, msg):
		return m.dispatch(playground.CopyRequested{})
	case inZone(zoneVars, msg):
		m.focus = paneVars
		var cmd tea.Cmd
		m.vars, cmd = m.vars.Focus()
		return m, cmd
	case inZone(zonePreview, msg):
		m.focus = panePreview
	case inZone(zoneOutput, msg):
		m.focus = paneOutput
	}
	return m, nil
}

func inZone(id string, msg tea.MouseMsg) bool {
	z := zone.Get(id)
	return z != nil && z.InBounds(msg)
}

// promptLabel names the displayed spec, e.g. "greet.prompt.yml@v1".
func (m Model) promptLabel() string {
	id := m.session.Prompt()
	if id == "" {
		return ""
	}
	return id + "@" + lists.Label(m.session.Reference())
}

func (m Model) pinPreview() (Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.preview.Status() != playground.ContentReady || !m.session.HasPrompt() {
		m.toaster, cmd = m.toaster.Show("Nothing to pin", toaster.StyleWarn)
		return m, cmd
	}
	m.pinned = &pin{label: m.promptLabel(), text: m.preview.Text()}
	m.toaster, cmd = m.toaster.Show("Pinned "+m.pinned.label, toaster.StyleInfo)
	return m, cmd
}

func (m Model) openDiff() (Model, tea.Cmd) {
	if m.pinned == nil {
		var cmd tea.Cmd
		m.toaster, cmd = m.toaster.Show("Pin a spec first (ctrl+p)", toaster.StyleWarn)
		return m, cmd
	}
	label := m.promptLabel()
	if label == "" {
		label = "preview"
	}
	m.diff = m.diff.Show(m.pinned.label, m.pinned.text, label, m.preview.Text())
	return m, nil
}

func (m Model) toggleMessages() (Model, tea.Cmd) {
	on := m.output.ToggleAlternate()
	log.Debug(log.CatUI, "messages view", "enabled", on)
	return m, nil
}

// saveDefault persists the selected reference when the reference pane is
// focused and the variables text otherwise.
func (m Model) saveDefault() (Model, tea.Cmd) {
	var (
		err  error
		what string
	)
	switch {
	case m.configPath == "":
		err = errNoConfigFile
	case m.focus == paneRefs:
		what = "default reference"
		err = config.SaveDefaultRef(m.configPath, m.session.Reference())
	default:
		what = "default vars"
		err = config.SaveVarsDefault(m.configPath, m.vars.Value())
	}

	var cmd tea.Cmd
	if err != nil {
		log.ErrorErr(log.CatConfig, "saving default", err)
		m.toaster, cmd = m.toaster.Show("Save failed: "+err.Error(), toaster.StyleError)
		return m, cmd
	}
	log.Info(log.CatConfig, "saved "+what, "path", m.configPath)
	m.toaster, cmd = m.toaster.Show("Saved "+what, toaster.StyleSuccess)
	return m, cmd
}
