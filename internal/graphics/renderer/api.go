package renderer

// Renderable interface defines the lifecycle for renderable features.
// Construction happens in the feature's constructor; a feature that failed
// to construct is never handed to the Renderer.
type Renderable interface {
	Draw()
	SetViewport(width, height int)
	Dispose()
}
