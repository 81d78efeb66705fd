package session

// Renderer is the presentation shell. It must re-derive its view entirely
// from the store on each signal; the core assumes no incremental diffing.
type Renderer interface {
	RenderHistory()
	RenderMessages()
}

// NopRenderer satisfies Renderer for headless use.
type NopRenderer struct{}

func (NopRenderer) RenderHistory()  {}
func (NopRenderer) RenderMessages() {}
