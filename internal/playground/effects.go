package playground

import "time"

// Effect is an output of Update. Display effects are applied to ports with
// Apply; the rest are performed by the runtime, which feeds their results
// back as events.
type Effect interface {
	effect()
}

// ListStatus is what the prompt list shows.
type ListStatus int

const (
	ListLoading ListStatus = iota
	ListFailed
	ListEmpty
	ListItems
)

// ShowList updates the prompt list.
type ShowList struct {
	Status  ListStatus
	Message string
	Items   []string
}

// ContentStatus is what a content region shows.
type ContentStatus int

const (
	ContentPlaceholder ContentStatus = iota
	ContentLoading
	ContentFailed
	ContentReady
)

// ShowContent updates the preview or output region.
type ShowContent struct {
	Region Region
	Status ContentStatus
	Text   string
}

// ShowReferences repopulates the reference selector. The working-tree
// option always comes first; Refs follow in server order.
type ShowReferences struct {
	Refs     []string
	Selected string
}

// SeedVars fills the variables input.
type SeedVars struct {
	Text string
}

// ShowCopyFeedback toggles the copy button's "Copied" label.
type ShowCopyFeedback struct {
	Active bool
}

// ShowHealth updates the server indicator.
type ShowHealth struct {
	Online bool
}

// ToastKind is the severity of a toast.
type ToastKind int

const (
	ToastSuccess ToastKind = iota
	ToastError
)

// ShowToast pops a transient notification.
type ShowToast struct {
	Kind ToastKind
	Text string
}

// FetchReferences requests /refs.
type FetchReferences struct{}

// FetchPrompts requests /prompts for Ref.
type FetchPrompts struct {
	Gen uint64
	Ref string
}

// FetchSpec requests /prompt for (ID, Ref).
type FetchSpec struct {
	Gen uint64
	ID  string
	Ref string
}

// PostRender requests /render.
type PostRender struct {
	Gen    uint64
	Prompt string
	Ref    string
	Vars   map[string]any
}

// PostEval requests /eval.
type PostEval struct {
	Gen    uint64
	Prompt string
	Ref    string
}

// CopyPreview writes the preview text to the clipboard.
type CopyPreview struct{}

// ResetCopyFeedback schedules CopyFeedbackExpired{Seq} after After.
type ResetCopyFeedback struct {
	Seq   uint64
	After time.Duration
}

// CheckHealth probes /health.
type CheckHealth struct{}

func (ShowList) effect()          {}
func (ShowContent) effect()       {}
func (ShowReferences) effect()    {}
func (SeedVars) effect()          {}
func (ShowCopyFeedback) effect()  {}
func (ShowHealth) effect()        {}
func (ShowToast) effect()         {}
func (FetchReferences) effect()   {}
func (FetchPrompts) effect()      {}
func (FetchSpec) effect()         {}
func (PostRender) effect()        {}
func (PostEval) effect()          {}
func (CopyPreview) effect()       {}
func (ResetCopyFeedback) effect() {}
func (CheckHealth) effect()       {}
