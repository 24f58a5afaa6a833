// Package app contains the root application model.
package app

import (
	"context"
	"fmt"
	"time"

	bhelp "github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/instructvault/ivault-playground/internal/api"
	"github.com/instructvault/ivault-playground/internal/clipboard"
	"github.com/instructvault/ivault-playground/internal/config"
	"github.com/instructvault/ivault-playground/internal/keys"
	"github.com/instructvault/ivault-playground/internal/log"
	"github.com/instructvault/ivault-playground/internal/playground"
	"github.com/instructvault/ivault-playground/internal/pubsub"
	"github.com/instructvault/ivault-playground/internal/ui/content"
	"github.com/instructvault/ivault-playground/internal/ui/diffview"
	"github.com/instructvault/ivault-playground/internal/ui/help"
	"github.com/instructvault/ivault-playground/internal/ui/lists"
	"github.com/instructvault/ivault-playground/internal/ui/logoverlay"
	"github.com/instructvault/ivault-playground/internal/ui/markdown"
	"github.com/instructvault/ivault-playground/internal/ui/toaster"
	"github.com/instructvault/ivault-playground/internal/ui/varsinput"
	"github.com/instructvault/ivault-playground/internal/watcher"
)

// pane identifies a focusable region.
type pane int

const (
	paneRefs pane = iota
	panePrompts
	panePreview
	paneVars
	paneOutput
	paneCount
)

type health int

const (
	healthUnknown health = iota
	healthOnline
	healthOffline
)

// pin is a preview snapshot kept for diffing.
type pin struct {
	label string
	text  string
}

// Options configures the application model.
type Options struct {
	Backend   Backend
	Clipboard clipboard.Clipboard
	Config    config.Config
	// ConfigPath is where ctrl+s persists defaults. Empty disables saving.
	ConfigPath string
	// Debug enables the log overlay (ctrl+x).
	Debug bool
	// Watcher, when set, reloads the working-tree catalog on change. The
	// model owns it and stops it in Close.
	Watcher *watcher.Watcher
}

// Model is the root application state. The playground session is the
// single source of truth; the panes are display ports written through
// playground.Apply.
type Model struct {
	ctrl    *playground.Controller
	session playground.Session

	backend    Backend
	clipboard  clipboard.Clipboard
	configPath string
	mdStyle    string
	statusBar  bool

	refs    *lists.References
	prompts *lists.Prompts
	preview *content.Model
	output  *content.Model
	vars    varsinput.Model

	focus  pane
	health health
	copied bool
	pinned *pin

	toaster    toaster.Model
	help       help.Model
	showHelp   bool
	diff       diffview.Model
	keyHelp    bhelp.Model
	md         *markdown.Renderer
	debugMode  bool
	logOverlay logoverlay.Model

	logListener   *pubsub.Listener[string]
	watchListener *pubsub.Listener[string]
	watcher       *watcher.Watcher
	ctx           context.Context
	cancel        context.CancelFunc

	width  int
	height int
}

// New creates the application model.
func New(opts Options) Model {
	cfg := opts.Config
	ctx, cancel := context.WithCancel(context.Background())

	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.NewSystem()
	}

	ctrl := playground.NewController(playground.Options{
		InitialRef:   cfg.DefaultRef,
		VarsSeed:     cfg.Vars.Default,
		LenientVars:  cfg.Vars.Lenient,
		CopyFeedback: cfg.Copy.Feedback,
	})

	m := Model{
		ctrl:       ctrl,
		session:    ctrl.Init(),
		backend:    opts.Backend,
		clipboard:  clip,
		configPath: opts.ConfigPath,
		mdStyle:    cfg.UI.MarkdownStyle,
		statusBar:  cfg.UI.ShowStatusBar,
		refs:       lists.NewReferences(),
		prompts:    lists.NewPrompts(),
		preview:    content.New(),
		output:     content.New(),
		vars:       varsinput.New(),
		focus:      panePrompts,
		toaster:    toaster.New(),
		help:       help.New(keys.Playground),
		diff:       diffview.New(),
		keyHelp:    bhelp.New(),
		debugMode:  opts.Debug,
		logOverlay: logoverlay.New(),
		watcher:    opts.Watcher,
		ctx:        ctx,
		cancel:     cancel,
	}

	if opts.Debug {
		m.logListener = log.NewListener(ctx)
	}
	if opts.Watcher != nil {
		m.watchListener = pubsub.NewListener(ctx, opts.Watcher.Broker())
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{func() tea.Msg { return playground.Started{} }}
	if m.logListener != nil {
		cmds = append(cmds, m.logListener.Listen())
	}
	if m.watchListener != nil {
		cmds = append(cmds, m.watchListener.Listen())
	}
	return tea.Batch(cmds...)
}

// Session returns the current playground session.
func (m Model) Session() playground.Session {
	return m.session
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help = m.help.SetSize(msg.Width, msg.Height)
		m.diff = m.diff.SetSize(msg.Width, msg.Height)
		m.logOverlay = m.logOverlay.SetSize(msg.Width, msg.Height)
		m.layout()
		m.md = nil
		m.refreshMessages()
		return m, nil

	case playground.Event:
		return m.dispatch(msg)

	case pubsub.Event[string]:
		return m.handlePubsub(msg)

	case toaster.DismissMsg:
		m.toaster = m.toaster.Update(msg)
		return m, nil

	case logoverlay.CloseMsg, diffview.CloseMsg:
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.focus == paneVars {
		var cmd tea.Cmd
		m.vars, cmd = m.vars.Update(msg)
		return m, cmd
	}
	return m, nil
}

// dispatch runs ev through the controller, writes display effects to the
// panes and turns the remaining effects into commands.
func (m Model) dispatch(ev playground.Event) (Model, tea.Cmd) {
	var effects []playground.Effect
	m.session, effects = m.ctrl.Update(m.session, ev)

	rest := playground.Apply(m.ports(), effects)
	cmds := make([]tea.Cmd, 0, len(rest))
	for _, e := range rest {
		var cmd tea.Cmd
		m, cmd = m.perform(e)
		cmds = append(cmds, cmd)
	}

	m.refs.SetSelected(m.session.Reference())
	m.prompts.SetActive(m.session.Prompt())
	switch ev.(type) {
	case playground.RenderDone, playground.EvalDone:
		m.refreshMessages()
	case playground.ReferencesLoaded:
		m.layout()
	}
	return m, tea.Batch(cmds...)
}

func (m Model) ports() playground.Ports {
	return playground.Ports{
		References: m.refs,
		List:       m.prompts,
		Preview:    m.preview,
		Output:     m.output,
	}
}

// perform carries out a non-display effect.
func (m Model) perform(e playground.Effect) (Model, tea.Cmd) {
	switch e := e.(type) {
	case playground.SeedVars:
		m.vars = m.vars.Seed(e.Text)
	case playground.ShowCopyFeedback:
		m.copied = e.Active
	case playground.ShowHealth:
		m.health = healthOffline
		if e.Online {
			m.health = healthOnline
		}
	case playground.ShowToast:
		style := toaster.StyleSuccess
		if e.Kind == playground.ToastError {
			style = toaster.StyleError
		}
		var cmd tea.Cmd
		m.toaster, cmd = m.toaster.Show(e.Text, style)
		return m, cmd
	case playground.CopyPreview:
		text, clip := m.preview.Text(), m.clipboard
		return m, func() tea.Msg {
			return playground.CopyDone{Err: clip.Copy(text)}
		}
	case playground.ResetCopyFeedback:
		return m, tea.Tick(e.After, func(_ time.Time) tea.Msg {
			return playground.CopyFeedbackExpired{Seq: e.Seq}
		})
	default:
		if cmd := request(m.ctx, m.backend, e); cmd != nil {
			return m, cmd
		}
		log.Warn(log.CatUI, "unhandled effect", "type", fmt.Sprintf("%T", e))
	}
	return m, nil
}

func (m Model) handlePubsub(ev pubsub.Event[string]) (tea.Model, tea.Cmd) {
	switch ev.Type {
	case pubsub.LogEvent:
		if m.logListener == nil {
			return m, nil
		}
		m.logOverlay = m.logOverlay.Append(ev.Payload)
		return m, m.logListener.Listen()
	case pubsub.ChangedEvent:
		if m.watchListener == nil {
			return m, nil
		}
		log.Debug(log.CatWatcher, "prompt file changed", "path", ev.Payload)
		var cmd tea.Cmd
		m, cmd = m.dispatch(playground.CatalogChanged{})
		return m, tea.Batch(cmd, m.watchListener.Listen())
	}
	return m, nil
}

// refreshMessages renders the output as a markdown transcript when the
// last render produced a message list.
func (m *Model) refreshMessages() {
	raw := m.session.RenderResult()
	if raw == nil || m.output.Status() != playground.ContentReady {
		return
	}
	msgs, err := api.DecodeMessages(raw)
	if err != nil {
		return
	}
	width := max(m.outputWidth(), 20)
	if m.md == nil || m.md.Width() != width {
		md, err := markdown.New(width, m.mdStyle)
		if err != nil {
			log.ErrorErr(log.CatUI, "creating markdown renderer", err)
			return
		}
		m.md = md
	}
	out, err := m.md.RenderMessages(msgs)
	if err != nil {
		log.ErrorErr(log.CatUI, "rendering messages", err)
		return
	}
	m.output.SetAlternate(out)
}

// Close stops background work.
func (m Model) Close() error {
	m.cancel()
	if m.watcher != nil {
		return m.watcher.Stop()
	}
	return nil
}
