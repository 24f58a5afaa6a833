package playground

// ListPort is the prompt list region.
type ListPort interface {
	ShowLoading()
	ShowError(msg string)
	ShowEmpty(msg string)
	ShowItems(items []string)
}

// ContentPort is a text region: the spec preview or the output.
type ContentPort interface {
	ShowPlaceholder(text string)
	ShowLoading(label string)
	ShowError(msg string)
	ShowContent(text string)
}

// ReferencePort is the reference selector.
type ReferencePort interface {
	ShowReferences(refs []string, selected string)
}

// Ports bundles the display regions Apply writes to.
type Ports struct {
	References ReferencePort
	List       ListPort
	Preview    ContentPort
	Output     ContentPort
}

// Apply writes the display effects in effects to p, in order, and returns
// the effects it did not handle.
func Apply(p Ports, effects []Effect) []Effect {
	var rest []Effect
	for _, e := range effects {
		switch e := e.(type) {
		case ShowReferences:
			p.References.ShowReferences(e.Refs, e.Selected)
		case ShowList:
			applyList(p.List, e)
		case ShowContent:
			port := p.Preview
			if e.Region == RegionOutput {
				port = p.Output
			}
			applyContent(port, e)
		default:
			rest = append(rest, e)
		}
	}
	return rest
}

func applyList(port ListPort, e ShowList) {
	switch e.Status {
	case ListLoading:
		port.ShowLoading()
	case ListFailed:
		port.ShowError(e.Message)
	case ListEmpty:
		port.ShowEmpty(e.Message)
	case ListItems:
		port.ShowItems(e.Items)
	}
}

func applyContent(port ContentPort, e ShowContent) {
	switch e.Status {
	case ContentPlaceholder:
		port.ShowPlaceholder(e.Text)
	case ContentLoading:
		port.ShowLoading(e.Text)
	case ContentFailed:
		port.ShowError(e.Text)
	case ContentReady:
		port.ShowContent(e.Text)
	}
}
