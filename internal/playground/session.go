// Package playground holds the playground's control logic: the session
// value, the events that drive it and the pure Update function that turns
// each event into a new session plus a list of effects.
package playground

import "encoding/json"

// Region is a display region whose updates are guarded by a request
// generation.
type Region int

const (
	// RegionCatalog is the prompt list.
	RegionCatalog Region = iota
	// RegionPreview is the spec preview.
	RegionPreview
	// RegionOutput is the render/eval output.
	RegionOutput

	regionCount
)

func (r Region) String() string {
	switch r {
	case RegionCatalog:
		return "catalog"
	case RegionPreview:
		return "preview"
	case RegionOutput:
		return "output"
	default:
		return "unknown"
	}
}

// Session is the playground's state. It is a value: every transition
// returns a new Session and leaves the receiver untouched.
//
// A non-empty prompt was always loaded under the current reference.
type Session struct {
	reference string
	prompt    string
	promptRef string
	rendered  json.RawMessage

	generations [regionCount]uint64
	copySeq     uint64
}

// NewSession returns a session scoped to ref with no prompt selected.
func NewSession(ref string) Session {
	return Session{reference: ref}
}

// Reference returns the current reference; empty is the working tree.
func (s Session) Reference() string { return s.reference }

// Prompt returns the current prompt identifier, or "".
func (s Session) Prompt() string { return s.prompt }

// HasPrompt reports whether a prompt is selected.
func (s Session) HasPrompt() bool { return s.prompt != "" }

// PromptReference returns the reference the current prompt was loaded under.
func (s Session) PromptReference() string { return s.promptRef }

// RenderResult returns the last successful render result for the current
// prompt, or nil.
func (s Session) RenderResult() json.RawMessage { return s.rendered }

// Generation returns the latest request generation issued for r.
func (s Session) Generation(r Region) uint64 { return s.generations[r] }

// Current reports whether gen is the latest generation issued for r.
func (s Session) Current(r Region, gen uint64) bool {
	return s.generations[r] == gen
}

// SetReference switches to ref. The prompt and render result are cleared
// and every region's generation advances so responses issued under the
// previous reference are discarded.
func (s Session) SetReference(ref string) Session {
	s.reference = ref
	s.prompt = ""
	s.promptRef = ""
	s.rendered = nil
	for i := range s.generations {
		s.generations[i]++
	}
	return s
}

// SetPrompt records id as the current prompt, loaded under ref. It is a
// no-op when ref is no longer the current reference.
func (s Session) SetPrompt(id, ref string) Session {
	if ref != s.reference {
		return s
	}
	if id != s.prompt {
		s.rendered = nil
	}
	s.prompt = id
	s.promptRef = ref
	return s
}

// SetRenderResult records the latest render result. Pass nil to clear it.
func (s Session) SetRenderResult(result json.RawMessage) Session {
	s.rendered = result
	return s
}

// issue advances r's generation and returns it.
func (s Session) issue(r Region) (Session, uint64) {
	s.generations[r]++
	return s, s.generations[r]
}

// nextCopy advances the copy-feedback sequence.
func (s Session) nextCopy() (Session, uint64) {
	s.copySeq++
	return s, s.copySeq
}
