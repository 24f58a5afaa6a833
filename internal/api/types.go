package api

import "encoding/json"

// RenderRequest is the body of POST /render.
type RenderRequest struct {
	PromptPath string         `json:"prompt_path"`
	Vars       map[string]any `json:"vars"`
	// Ref is nil for the unversioned working-tree view.
	Ref *string `json:"ref"`
}

// EvalRequest is the body of POST /eval.
type EvalRequest struct {
	PromptPath  string  `json:"prompt_path"`
	DatasetPath *string `json:"dataset_path,omitempty"`
	Ref         *string `json:"ref"`
}

// EvalOutcome is the part of an /eval response the playground inspects.
type EvalOutcome struct {
	Prompt  string `json:"prompt"`
	Ref     string `json:"ref"`
	Pass    bool   `json:"pass"`
	Results []struct {
		Test  string  `json:"test"`
		Pass  bool    `json:"pass"`
		Error *string `json:"error"`
	} `json:"results"`
}

// Message is one rendered chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Health is the /health response.
type Health struct {
	Status string `json:"status"`
}

// OK reports whether the server declared itself healthy.
func (h Health) OK() bool {
	return h.Status == "ok"
}

// RefPtr maps the empty reference to nil.
func RefPtr(ref string) *string {
	if ref == "" {
		return nil
	}
	return &ref
}

// DecodeMessages interprets a render result as chat messages. It fails for
// results that are not a list of {role, content} objects.
func DecodeMessages(raw json.RawMessage) ([]Message, error) {
	var msgs []Message
	if err := json.Unmarshal(raw, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}
