package confirm

import "time"

// Renderer turns confirmation content into its final presentation.
// The order service depends on this, not on the factory plumbing.
type Renderer interface {
	RenderDocument(snap Snapshot, now time.Time) string
	RenderPopup() string
}

// HTMLRenderer renders through the HTML document factory.
type HTMLRenderer struct {
	factory *HTMLFactory
}

func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{factory: NewHTMLFactory()}
}

func (r *HTMLRenderer) RenderDocument(snap Snapshot, now time.Time) string {
	surface := Build(r.factory, snap, now).(*HTMLSurface)
	return surface.HTML()
}

func (r *HTMLRenderer) RenderPopup() string {
	return RenderFragment(SubmissionPopup(r.factory))
}
