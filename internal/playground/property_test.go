package playground

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// ============================================================================
// Property-Based Tests for Session Invariants
// ============================================================================

func promptsFor(ref string) []string {
	return []string{ref + "/a.prompt.yml", ref + "/b.prompt.yml"}
}

type tagged struct {
	Prompt string `json:"prompt"`
	Ref    string `json:"ref"`
}

func taggedJSON(prompt, ref string) json.RawMessage {
	raw, _ := json.Marshal(tagged{Prompt: prompt, Ref: ref})
	return raw
}

// respond turns a pending effect into the event a backend would produce.
func respond(e Effect, fail bool) Event {
	var err error
	if fail {
		err = errBoom
	}
	switch e := e.(type) {
	case FetchPrompts:
		if fail {
			return PromptsLoaded{Gen: e.Gen, Ref: e.Ref, Err: err}
		}
		return PromptsLoaded{Gen: e.Gen, Ref: e.Ref, Prompts: promptsFor(e.Ref)}
	case FetchSpec:
		return SpecLoaded{Gen: e.Gen, ID: e.ID, Ref: e.Ref, Spec: taggedJSON(e.ID, e.Ref), Err: err}
	case PostRender:
		return RenderDone{Gen: e.Gen, Result: taggedJSON(e.Prompt, e.Ref), Err: err}
	case PostEval:
		return EvalDone{Gen: e.Gen, Result: taggedJSON(e.Prompt, e.Ref), Err: err}
	default:
		return nil
	}
}

func isRequest(e Effect) bool {
	switch e.(type) {
	case FetchPrompts, FetchSpec, PostRender, PostEval:
		return true
	}
	return false
}

// TestProperty_SessionConsistency drives random interleavings of user
// actions and out-of-order responses and checks that every region only
// ever shows data for the current reference.
func TestProperty_SessionConsistency(t *testing.T) {
	refs := []string{"", "v1", "v2"}

	rapid.Check(t, func(t *rapid.T) {
		h := newHarness(Options{})
		var inflight []Effect
		track := func(effects []Effect) {
			for _, e := range effects {
				if isRequest(e) {
					inflight = append(inflight, e)
				}
			}
		}
		track(h.send(Started{}))

		steps := rapid.IntRange(1, 60).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			switch rapid.IntRange(0, 5).Draw(t, fmt.Sprintf("action-%d", i)) {
			case 0:
				ref := rapid.SampledFrom(refs).Draw(t, fmt.Sprintf("ref-%d", i))
				track(h.send(ReferenceChanged{Ref: ref}))
			case 1:
				id := rapid.SampledFrom(promptsFor(h.session.Reference())).Draw(t, fmt.Sprintf("prompt-%d", i))
				track(h.send(PromptSelected{ID: id}))
			case 2:
				track(h.send(RenderRequested{VarsText: `{"name":"Ava"}`}))
			case 3:
				track(h.send(EvalRequested{}))
			default:
				if len(inflight) == 0 {
					continue
				}
				idx := rapid.IntRange(0, len(inflight)-1).Draw(t, fmt.Sprintf("deliver-%d", i))
				fail := rapid.Float64Range(0, 1).Draw(t, fmt.Sprintf("fail-%d", i)) < 0.2
				e := inflight[idx]
				inflight = append(inflight[:idx], inflight[idx+1:]...)
				track(h.send(respond(e, fail)))
			}

			checkInvariants(t, h)
		}
	})
}

func checkInvariants(t *rapid.T, h *harness) {
	s := h.session

	if s.HasPrompt() {
		require.Equal(t, s.Reference(), s.PromptReference(), "prompt must belong to the current reference")
		require.Contains(t, promptsFor(s.Reference()), s.Prompt())
	}

	if h.rec.listStatus == ListItems {
		require.Equal(t, promptsFor(s.Reference()), h.rec.items, "list must show the current reference's prompts")
	}

	if h.rec.preview.status == ContentReady {
		var got tagged
		require.NoError(t, json.Unmarshal([]byte(h.rec.preview.text), &got))
		require.Equal(t, s.Reference(), got.Ref)
		require.Equal(t, s.Prompt(), got.Prompt, "preview shows the committed prompt")
	}

	if h.rec.output.status == ContentReady {
		var got tagged
		require.NoError(t, json.Unmarshal([]byte(h.rec.output.text), &got))
		require.Equal(t, s.Reference(), got.Ref, "output was produced under the current reference")
	}
}

// TestProperty_ReferenceChangeResetsRegions checks that for every
// reference, selecting it clears the prompt and resets both content
// regions before the list is requested.
func TestProperty_ReferenceChangeResetsRegions(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ref := rapid.StringMatching(`[a-z0-9/._-]{0,12}`).Draw(t, "ref")

		h := newHarness(Options{})
		h.session = h.session.SetPrompt("p", "")
		h.rec.calls = nil

		effects := h.send(ReferenceChanged{Ref: ref})

		require.False(t, h.session.HasPrompt())
		require.Equal(t, []string{
			"preview:0:" + PreviewPlaceholder,
			"output:0:" + OutputPlaceholder,
			"list:loading",
		}, h.rec.calls)
		require.Equal(t, []Effect{FetchPrompts{Gen: h.session.Generation(RegionCatalog), Ref: ref}}, effects)
	})
}
