package app

import (
	"context"
	"encoding/json"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/instructvault/ivault-playground/internal/api"
	"github.com/instructvault/ivault-playground/internal/log"
	"github.com/instructvault/ivault-playground/internal/playground"
)

// Backend is the playground server as the app uses it. *api.Client and
// *api.CachedClient satisfy it.
type Backend interface {
	Refs(ctx context.Context) ([]string, error)
	Prompts(ctx context.Context, ref string) ([]string, error)
	Prompt(ctx context.Context, path, ref string) (json.RawMessage, error)
	Render(ctx context.Context, req api.RenderRequest) (json.RawMessage, error)
	Eval(ctx context.Context, req api.EvalRequest) (json.RawMessage, error)
	Health(ctx context.Context) (api.Health, error)
}

var (
	_ Backend = (*api.Client)(nil)
	_ Backend = (*api.CachedClient)(nil)
)

// request turns a network effect into a command whose result re-enters
// Update as a playground event. It returns nil for other effects.
func request(ctx context.Context, b Backend, e playground.Effect) tea.Cmd {
	switch e := e.(type) {
	case playground.FetchReferences:
		return func() tea.Msg {
			refs, err := b.Refs(ctx)
			return playground.ReferencesLoaded{Refs: refs, Err: err}
		}
	case playground.FetchPrompts:
		return func() tea.Msg {
			prompts, err := b.Prompts(ctx, e.Ref)
			return playground.PromptsLoaded{Gen: e.Gen, Ref: e.Ref, Prompts: prompts, Err: err}
		}
	case playground.FetchSpec:
		return func() tea.Msg {
			spec, err := b.Prompt(ctx, e.ID, e.Ref)
			return playground.SpecLoaded{Gen: e.Gen, ID: e.ID, Ref: e.Ref, Spec: spec, Err: err}
		}
	case playground.PostRender:
		return func() tea.Msg {
			res, err := b.Render(ctx, api.RenderRequest{PromptPath: e.Prompt, Vars: e.Vars, Ref: api.RefPtr(e.Ref)})
			return playground.RenderDone{Gen: e.Gen, Result: res, Err: err}
		}
	case playground.PostEval:
		return func() tea.Msg {
			res, err := b.Eval(ctx, api.EvalRequest{PromptPath: e.Prompt, Ref: api.RefPtr(e.Ref)})
			return playground.EvalDone{Gen: e.Gen, Result: res, Err: err}
		}
	case playground.CheckHealth:
		return func() tea.Msg {
			h, err := b.Health(ctx)
			if err != nil {
				log.Debug(log.CatAPI, "health check failed", "error", err)
			}
			return playground.HealthChecked{OK: h.OK(), Err: err}
		}
	}
	return nil
}
