package playground

import "fmt"

// recorder implements every port and keeps both the current region state
// and the call history.
type recorder struct {
	calls []string

	refs     []string
	selected string

	listStatus ListStatus
	listText   string
	items      []string

	preview content
	output  content
}

type content struct {
	status ContentStatus
	text   string
}

func newRecorder() *recorder { return &recorder{} }

func (r *recorder) ports() Ports {
	return Ports{
		References: r,
		List:       r,
		Preview:    contentPort{r: r, region: RegionPreview},
		Output:     contentPort{r: r, region: RegionOutput},
	}
}

func (r *recorder) ShowReferences(refs []string, selected string) {
	r.calls = append(r.calls, fmt.Sprintf("refs:%v:%s", refs, selected))
	r.refs, r.selected = refs, selected
}

func (r *recorder) ShowLoading() {
	r.calls = append(r.calls, "list:loading")
	r.listStatus, r.listText, r.items = ListLoading, LoadingText, nil
}

func (r *recorder) ShowError(msg string) {
	r.calls = append(r.calls, "list:error:"+msg)
	r.listStatus, r.listText, r.items = ListFailed, msg, nil
}

func (r *recorder) ShowEmpty(msg string) {
	r.calls = append(r.calls, "list:empty:"+msg)
	r.listStatus, r.listText, r.items = ListEmpty, msg, nil
}

func (r *recorder) ShowItems(items []string) {
	r.calls = append(r.calls, fmt.Sprintf("list:items:%v", items))
	r.listStatus, r.listText, r.items = ListItems, "", items
}

type contentPort struct {
	r      *recorder
	region Region
}

func (c contentPort) set(status ContentStatus, text string) {
	c.r.calls = append(c.r.calls, fmt.Sprintf("%s:%d:%s", c.region, status, text))
	v := content{status: status, text: text}
	if c.region == RegionOutput {
		c.r.output = v
	} else {
		c.r.preview = v
	}
}

func (c contentPort) ShowPlaceholder(text string) { c.set(ContentPlaceholder, text) }
func (c contentPort) ShowLoading(label string)    { c.set(ContentLoading, label) }
func (c contentPort) ShowError(msg string)        { c.set(ContentFailed, msg) }
func (c contentPort) ShowContent(text string)     { c.set(ContentReady, text) }

// harness drives a controller and applies display effects to a recorder.
type harness struct {
	ctrl    *Controller
	session Session
	rec     *recorder
}

func newHarness(opts Options) *harness {
	ctrl := NewController(opts)
	return &harness{ctrl: ctrl, session: ctrl.Init(), rec: newRecorder()}
}

// send runs ev and returns the non-display effects it produced.
func (h *harness) send(ev Event) []Effect {
	var effects []Effect
	h.session, effects = h.ctrl.Update(h.session, ev)
	return Apply(h.rec.ports(), effects)
}

func findEffect[T Effect](effects []Effect) (T, bool) {
	for _, e := range effects {
		if v, ok := e.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
