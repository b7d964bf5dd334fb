package renderer

import (
	"glcube/internal/gles"
	"glcube/internal/profiling"
)

// Renderer drives a fixed set of renderables against one GL context
type Renderer struct {
	ctx         gles.Context
	renderables []Renderable
	names       []string
}

// NewRenderer creates a new renderer with the given renderables
func NewRenderer(ctx gles.Context, rs ...Renderable) *Renderer {
	names := make([]string, len(rs))
	for i, r := range rs {
		names[i] = trackName(r)
	}
	return &Renderer{ctx: ctx, renderables: rs, names: names}
}

// Render draws one frame and reports any GL errors it raised
func (r *Renderer) Render() {
	defer profiling.Track("renderer.Render")()

	for i, renderable := range r.renderables {
		func() {
			defer profiling.Track(r.names[i])()
			renderable.Draw()
		}()
	}
	gles.CheckError(r.ctx, "after frame")
}

// UpdateViewport forwards new framebuffer dimensions to every renderable
func (r *Renderer) UpdateViewport(width, height int) {
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

type named interface {
	Name() string
}

func trackName(r Renderable) string {
	if n, ok := r.(named); ok {
		return "renderer." + n.Name()
	}
	return "renderer.draw"
}
