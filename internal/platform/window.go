package platform

import (
	"glcube/internal/config"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// NewWindow opens a resizable window with an OpenGL ES 2.0 context and makes
// the context current on the calling thread. glfw.Init must already have run.
func NewWindow(cfg config.WindowConfig) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 0)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	return window, nil
}

// SetVSync toggles swap synchronisation for the current context
func SetVSync(enabled bool) {
	if enabled {
		glfw.SwapInterval(1)
		return
	}
	glfw.SwapInterval(0)
}
