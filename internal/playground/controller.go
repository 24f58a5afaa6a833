package playground

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/instructvault/ivault-playground/internal/api"
	"github.com/instructvault/ivault-playground/internal/log"
)

// DefaultCopyFeedback is how long "Copied" stays visible.
const DefaultCopyFeedback = 1200 * time.Millisecond

// Options configures a Controller.
type Options struct {
	// InitialRef is the reference selected on start.
	InitialRef string
	// VarsSeed is the initial content of the variables input.
	VarsSeed string
	// LenientVars accepts HJSON in the variables input.
	LenientVars  bool
	CopyFeedback time.Duration
}

// Controller turns events into session transitions and effects. It holds
// only configuration; all state lives in the Session passed to Update.
type Controller struct {
	opts Options
}

// NewController returns a controller for opts.
func NewController(opts Options) *Controller {
	if opts.CopyFeedback <= 0 {
		opts.CopyFeedback = DefaultCopyFeedback
	}
	return &Controller{opts: opts}
}

// Init returns the starting session.
func (c *Controller) Init() Session {
	return NewSession(c.opts.InitialRef)
}

// Update applies ev to s. It performs no I/O.
func (c *Controller) Update(s Session, ev Event) (Session, []Effect) {
	switch ev := ev.(type) {
	case Started:
		return c.start(s)
	case ReferencesLoaded:
		return s, c.references(s, ev)
	case ReferenceChanged:
		return c.changeReference(s, ev.Ref)
	case PromptsLoaded:
		return s, c.prompts(s, ev)
	case PromptSelected:
		return c.selectPrompt(s, ev.ID)
	case SpecLoaded:
		return c.spec(s, ev)
	case RenderRequested:
		return c.render(s, ev.VarsText)
	case RenderDone:
		return c.rendered(s, ev)
	case EvalRequested:
		return c.eval(s)
	case EvalDone:
		return c.evaluated(s, ev)
	case CopyRequested:
		return s, []Effect{CopyPreview{}}
	case CopyDone:
		return c.copied(s, ev)
	case CopyFeedbackExpired:
		if ev.Seq != s.copySeq {
			return s, nil
		}
		return s, []Effect{ShowCopyFeedback{Active: false}}
	case CatalogChanged:
		if s.Reference() != "" {
			return s, nil
		}
		log.Debug(log.CatSession, "prompts directory changed, reloading catalog")
		return c.loadPrompts(s)
	case RefreshRequested:
		s, load := c.loadPrompts(s)
		return s, append([]Effect{FetchReferences{}}, load...)
	case HealthChecked:
		return s, []Effect{ShowHealth{Online: ev.OK && ev.Err == nil}}
	default:
		log.Warn(log.CatSession, "unhandled event", "type", fmt.Sprintf("%T", ev))
		return s, nil
	}
}

func (c *Controller) start(s Session) (Session, []Effect) {
	effects := []Effect{
		ShowReferences{Refs: withSelected(nil, s.Reference()), Selected: s.Reference()},
		placeholder(RegionPreview),
		placeholder(RegionOutput),
		SeedVars{Text: c.opts.VarsSeed},
		FetchReferences{},
	}
	s, load := c.loadPrompts(s)
	effects = append(effects, load...)
	effects = append(effects, CheckHealth{})
	return s, effects
}

// references populates the selector. Failures are silent and leave only
// the working-tree option (plus the current reference, if named).
func (c *Controller) references(s Session, ev ReferencesLoaded) []Effect {
	if ev.Err != nil {
		log.Debug(log.CatSession, "loading references failed", "error", ev.Err)
		return []Effect{ShowReferences{Refs: withSelected(nil, s.Reference()), Selected: s.Reference()}}
	}
	return []Effect{ShowReferences{Refs: withSelected(ev.Refs, s.Reference()), Selected: s.Reference()}}
}

func (c *Controller) changeReference(s Session, ref string) (Session, []Effect) {
	log.Debug(log.CatSession, "reference changed", "from", s.Reference(), "to", ref)
	s = s.SetReference(ref)
	effects := []Effect{
		placeholder(RegionPreview),
		placeholder(RegionOutput),
	}
	s, load := c.loadPrompts(s)
	return s, append(effects, load...)
}

func (c *Controller) loadPrompts(s Session) (Session, []Effect) {
	s, gen := s.issue(RegionCatalog)
	return s, []Effect{
		ShowList{Status: ListLoading, Message: LoadingText},
		FetchPrompts{Gen: gen, Ref: s.Reference()},
	}
}

func (c *Controller) prompts(s Session, ev PromptsLoaded) []Effect {
	if !s.Current(RegionCatalog, ev.Gen) || ev.Ref != s.Reference() {
		log.Debug(log.CatSession, "discarding stale prompt list", "gen", ev.Gen, "ref", ev.Ref)
		return nil
	}
	switch {
	case ev.Err != nil:
		log.Debug(log.CatSession, "loading prompts failed", "ref", ev.Ref, "error", ev.Err)
		return []Effect{ShowList{Status: ListFailed, Message: PromptsFailedText}}
	case len(ev.Prompts) == 0:
		return []Effect{ShowList{Status: ListEmpty, Message: NoPromptsText}}
	default:
		return []Effect{ShowList{Status: ListItems, Items: slices.Clone(ev.Prompts)}}
	}
}

func (c *Controller) selectPrompt(s Session, id string) (Session, []Effect) {
	if id == "" {
		return s, nil
	}
	s, gen := s.issue(RegionPreview)
	return s, []Effect{
		ShowContent{Region: RegionPreview, Status: ContentLoading, Text: LoadingText},
		FetchSpec{Gen: gen, ID: id, Ref: s.Reference()},
	}
}

// spec commits the selection only once its spec has arrived.
func (c *Controller) spec(s Session, ev SpecLoaded) (Session, []Effect) {
	if !s.Current(RegionPreview, ev.Gen) || ev.Ref != s.Reference() {
		log.Debug(log.CatSession, "discarding stale spec", "gen", ev.Gen, "prompt", ev.ID, "ref", ev.Ref)
		return s, nil
	}
	if ev.Err != nil {
		log.Debug(log.CatSession, "loading spec failed", "prompt", ev.ID, "ref", ev.Ref, "error", ev.Err)
		return s, []Effect{ShowContent{Region: RegionPreview, Status: ContentFailed, Text: PromptFailedText}}
	}
	s = s.SetPrompt(ev.ID, ev.Ref)
	return s, []Effect{ShowContent{Region: RegionPreview, Status: ContentReady, Text: PrettyJSON(ev.Spec)}}
}

func (c *Controller) render(s Session, varsText string) (Session, []Effect) {
	if !s.HasPrompt() {
		return c.outputError(s, SelectPromptFirst)
	}
	vars, err := ParseVars(varsText, c.opts.LenientVars)
	if err != nil {
		log.Debug(log.CatSession, "invalid vars", "error", err)
		return c.outputError(s, InvalidVarsText)
	}

	s, gen := s.issue(RegionOutput)
	return s, []Effect{
		ShowContent{Region: RegionOutput, Status: ContentLoading, Text: RenderingText},
		PostRender{Gen: gen, Prompt: s.Prompt(), Ref: s.Reference(), Vars: vars},
	}
}

func (c *Controller) rendered(s Session, ev RenderDone) (Session, []Effect) {
	if !s.Current(RegionOutput, ev.Gen) {
		log.Debug(log.CatSession, "discarding stale render", "gen", ev.Gen)
		return s, nil
	}
	if ev.Err != nil {
		log.Debug(log.CatSession, "render failed", "error", ev.Err)
		s = s.SetRenderResult(nil)
		return s, []Effect{ShowContent{Region: RegionOutput, Status: ContentFailed, Text: failureText(ev.Err, RenderFailedText)}}
	}
	s = s.SetRenderResult(ev.Result)
	return s, []Effect{ShowContent{Region: RegionOutput, Status: ContentReady, Text: PrettyJSON(ev.Result)}}
}

func (c *Controller) eval(s Session) (Session, []Effect) {
	if !s.HasPrompt() {
		return c.outputError(s, SelectPromptFirst)
	}
	s, gen := s.issue(RegionOutput)
	return s, []Effect{
		ShowContent{Region: RegionOutput, Status: ContentLoading, Text: EvaluatingText},
		PostEval{Gen: gen, Prompt: s.Prompt(), Ref: s.Reference()},
	}
}

func (c *Controller) evaluated(s Session, ev EvalDone) (Session, []Effect) {
	if !s.Current(RegionOutput, ev.Gen) {
		log.Debug(log.CatSession, "discarding stale eval", "gen", ev.Gen)
		return s, nil
	}
	s = s.SetRenderResult(nil)
	if ev.Err != nil {
		log.Debug(log.CatSession, "eval failed", "error", ev.Err)
		return s, []Effect{ShowContent{Region: RegionOutput, Status: ContentFailed, Text: failureText(ev.Err, EvalFailedText)}}
	}

	effects := []Effect{ShowContent{Region: RegionOutput, Status: ContentReady, Text: PrettyJSON(ev.Result)}}
	var outcome api.EvalOutcome
	if err := json.Unmarshal(ev.Result, &outcome); err == nil {
		effects = append(effects, evalToast(outcome))
	}
	return s, effects
}

func (c *Controller) copied(s Session, ev CopyDone) (Session, []Effect) {
	if ev.Err != nil {
		log.Debug(log.CatUI, "copy failed", "error", ev.Err)
		return s, nil
	}
	s, seq := s.nextCopy()
	return s, []Effect{
		ShowCopyFeedback{Active: true},
		ResetCopyFeedback{Seq: seq, After: c.opts.CopyFeedback},
	}
}

// outputError shows a local error in the output and supersedes any
// in-flight render or eval.
func (c *Controller) outputError(s Session, text string) (Session, []Effect) {
	s, _ = s.issue(RegionOutput)
	return s, []Effect{ShowContent{Region: RegionOutput, Status: ContentFailed, Text: text}}
}

func placeholder(r Region) ShowContent {
	text := PreviewPlaceholder
	if r == RegionOutput {
		text = OutputPlaceholder
	}
	return ShowContent{Region: r, Status: ContentPlaceholder, Text: text}
}

// withSelected appends selected to refs when it is a named reference the
// server did not list, so the selector always reflects the session.
func withSelected(refs []string, selected string) []string {
	out := slices.Clone(refs)
	if selected != "" && !slices.Contains(out, selected) {
		out = append(out, selected)
	}
	return out
}

// failureText is the server's detail for non-2xx responses, else fallback.
func failureText(err error, fallback string) string {
	if api.IsStatus(err) {
		if detail, ok := api.DetailOf(err); ok {
			return detail
		}
	}
	return fallback
}

func evalToast(outcome api.EvalOutcome) ShowToast {
	if outcome.Pass {
		return ShowToast{Kind: ToastSuccess, Text: fmt.Sprintf("Eval PASS: %d/%d", len(outcome.Results), len(outcome.Results))}
	}
	passed := 0
	for _, r := range outcome.Results {
		if r.Pass {
			passed++
		}
	}
	return ShowToast{Kind: ToastError, Text: fmt.Sprintf("Eval FAIL: %d/%d", passed, len(outcome.Results))}
}

// PrettyJSON indents raw with two spaces, keeping key order. Input that is
// not valid JSON is returned unchanged.
func PrettyJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
