package playground

import "encoding/json"

// Event is an input to Update: a user action or the result of an effect.
type Event interface {
	event()
}

// Started bootstraps the session.
type Started struct{}

// ReferencesLoaded carries the /refs response.
type ReferencesLoaded struct {
	Refs []string
	Err  error
}

// ReferenceChanged is the operator picking a reference ("" for the
// working tree).
type ReferenceChanged struct {
	Ref string
}

// PromptsLoaded carries a /prompts response.
type PromptsLoaded struct {
	Gen     uint64
	Ref     string
	Prompts []string
	Err     error
}

// PromptSelected is the operator activating a prompt in the list.
type PromptSelected struct {
	ID string
}

// SpecLoaded carries a /prompt response.
type SpecLoaded struct {
	Gen  uint64
	ID   string
	Ref  string
	Spec json.RawMessage
	Err  error
}

// RenderRequested is the operator pressing render with the current
// contents of the variables input.
type RenderRequested struct {
	VarsText string
}

// RenderDone carries a /render response.
type RenderDone struct {
	Gen    uint64
	Result json.RawMessage
	Err    error
}

// EvalRequested is the operator asking to run the prompt's tests.
type EvalRequested struct{}

// EvalDone carries an /eval response.
type EvalDone struct {
	Gen    uint64
	Result json.RawMessage
	Err    error
}

// CopyRequested is the operator pressing copy.
type CopyRequested struct{}

// CopyDone reports the clipboard write.
type CopyDone struct {
	Err error
}

// CopyFeedbackExpired fires when the "Copied" label should revert.
type CopyFeedbackExpired struct {
	Seq uint64
}

// CatalogChanged reports that the local prompts directory changed.
type CatalogChanged struct{}

// RefreshRequested asks for the reference list and the catalog again.
type RefreshRequested struct{}

// HealthChecked carries the /health probe.
type HealthChecked struct {
	OK  bool
	Err error
}

func (Started) event()             {}
func (ReferencesLoaded) event()    {}
func (ReferenceChanged) event()    {}
func (PromptsLoaded) event()       {}
func (PromptSelected) event()      {}
func (SpecLoaded) event()          {}
func (RenderRequested) event()     {}
func (RenderDone) event()          {}
func (EvalRequested) event()       {}
func (EvalDone) event()            {}
func (CopyRequested) event()       {}
func (CopyDone) event()            {}
func (CopyFeedbackExpired) event() {}
func (CatalogChanged) event()      {}
func (RefreshRequested) event()    {}
func (HealthChecked) event()       {}
