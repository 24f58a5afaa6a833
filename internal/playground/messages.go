package playground

// Region texts shown to the operator.
const (
	PreviewPlaceholder = "Select a prompt to view its spec."
	OutputPlaceholder  = "Rendered messages will appear here."

	LoadingText        = "Loading..."
	RenderingText      = "Rendering..."
	EvaluatingText     = "Evaluating..."
	NoPromptsText      = "No prompts found."
	PromptsFailedText  = "Failed to load prompts."
	PromptFailedText   = "Failed to load prompt."
	SelectPromptFirst  = "Select a prompt first."
	InvalidVarsText    = `Invalid JSON in vars. Example: {"name":"Ava"}`
	RenderFailedText   = "Render failed."
	EvalFailedText     = "Eval failed."
	WorktreeOptionText = "(worktree)"
)
