package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"github.com/instructvault/ivault-playground/internal/keys"
	"github.com/instructvault/ivault-playground/internal/ui/lists"
	"github.com/instructvault/ivault-playground/internal/ui/panes"
	"github.com/instructvault/ivault-playground/internal/ui/styles"
)

// Button labels.
const (
	CopyButtonText   = "Copy JSON"
	CopiedButtonText = "Copied"
	RenderButtonText = "Render"
	EvalButtonText   = "Eval"
)

const (
	varsPaneHeight = 5
	minLeftWidth   = 24
	maxLeftWidth   = 48
	minBodyHeight  = varsPaneHeight + 4
)

func (m Model) leftWidth() int {
	return min(max(m.width/3, minLeftWidth), maxLeftWidth)
}

func (m Model) rightWidth() int {
	return max(m.width-m.leftWidth(), 12)
}

func (m Model) outputWidth() int {
	return m.rightWidth() - 2
}

func (m Model) bodyHeight() int {
	h := m.height
	if m.statusBar {
		h--
	}
	return max(h, minBodyHeight)
}

func (m Model) refsHeight() int {
	return min(len(m.refs.Options())+2, max(m.bodyHeight()/3, 3))
}

func (m Model) previewHeight() int {
	return (m.bodyHeight() - varsPaneHeight) / 2
}

// layout sizes every pane from the window size.
func (m *Model) layout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	body := m.bodyHeight()
	inner := m.rightWidth() - 2
	refsH := m.refsHeight()
	previewH := m.previewHeight()

	m.refs.SetHeight(refsH - 2)
	m.prompts.SetHeight(body - refsH - 2)
	m.preview.SetSize(inner, previewH-2)
	m.vars = m.vars.SetSize(inner, varsPaneHeight-2)
	m.output.SetSize(inner, body-varsPaneHeight-previewH-2)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	left := lipgloss.JoinVertical(lipgloss.Left, m.refsView(), m.promptsView())
	right := lipgloss.JoinVertical(lipgloss.Left, m.previewView(), m.varsView(), m.outputView())
	view := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	if m.statusBar {
		view += "\n" + m.statusBarView()
	}

	view = m.diff.Overlay(view)
	if m.showHelp {
		view = m.help.Overlay(view)
	}
	view = m.logOverlay.Overlay(view)
	view = m.toaster.Overlay(view, m.width, m.height)
	return zone.Scan(view)
}

func (m Model) pane(cfg panes.BorderConfig, p pane) string {
	cfg.Focused = m.focus == p
	cfg.FocusedBorderColor = styles.BorderFocusColor
	return panes.BorderedPane(cfg)
}

func (m Model) refsView() string {
	w := m.leftWidth()
	return m.pane(panes.BorderConfig{
		Content: m.refs.View(w-2, m.focus == paneRefs),
		Width:   w,
		Height:  m.refsHeight(),
		TopLeft: "References",
	}, paneRefs)
}

func (m Model) promptsView() string {
	w := m.leftWidth()
	var count string
	if n := len(m.prompts.Items()); n > 0 {
		count = fmt.Sprint(n)
	}
	return m.pane(panes.BorderConfig{
		Content:  m.prompts.View(w-2, m.focus == panePrompts),
		Width:    w,
		Height:   m.bodyHeight() - m.refsHeight(),
		TopLeft:  "Prompts",
		TopRight: count,
	}, panePrompts)
}

func (m Model) previewView() string {
	copyButton := styles.SecondaryButtonStyle.Render(CopyButtonText)
	if m.copied {
		copyButton = styles.FeedbackButtonStyle.Render(CopiedButtonText)
	}
	return zone.Mark(zonePreview, m.pane(panes.BorderConfig{
		Content:     m.preview.View(),
		Width:       m.rightWidth(),
		Height:      m.previewHeight(),
		TopLeft:     "Spec",
		TopRight:    m.promptLabel(),
		BottomRight: zone.Mark(zoneCopy, copyButton),
	}, panePreview))
}

func (m Model) varsView() string {
	title := "Vars"
	if m.vars.Focused() {
		title = "Vars (editing, esc to leave)"
	}
	renderStyle := styles.PrimaryButtonStyle
	if m.focus == paneVars {
		renderStyle = styles.PrimaryButtonFocusedStyle
	}
	buttons := zone.Mark(zoneRender, renderStyle.Render(RenderButtonText)) + " " +
		zone.Mark(zoneEval, styles.SecondaryButtonStyle.Render(EvalButtonText))
	return zone.Mark(zoneVars, m.pane(panes.BorderConfig{
		Content:     m.vars.View(),
		Width:       m.rightWidth(),
		Height:      varsPaneHeight,
		TopLeft:     title,
		BottomRight: buttons,
	}, paneVars))
}

func (m Model) outputView() string {
	var mode string
	if m.output.ShowingAlternate() {
		mode = "messages"
	}
	return zone.Mark(zoneOutput, m.pane(panes.BorderConfig{
		Content:  m.output.View(),
		Width:    m.rightWidth(),
		Height:   m.bodyHeight() - varsPaneHeight - m.previewHeight(),
		TopLeft:  "Output",
		TopRight: mode,
	}, paneOutput))
}

func (m Model) statusBarView() string {
	var indicator string
	switch m.health {
	case healthOnline:
		indicator = styles.OnlineStyle.Render("● online")
	case healthOffline:
		indicator = styles.OfflineStyle.Render("● offline")
	default:
		indicator = styles.PlaceholderStyle.Render("○ connecting")
	}

	left := indicator + "  ref: " + lists.Label(m.session.Reference())
	if m.pinned != nil {
		left += "  pinned: " + m.pinned.label
	}

	right := m.keyHelp.ShortHelpView(keys.Playground.ShortHelp())
	inner := max(m.width-2, 0)
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	line := left + strings.Repeat(" ", max(gap, 1)) + right
	return styles.StatusBarStyle.Render(ansi.Truncate(line, inner, ""))
}
