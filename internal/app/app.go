package app

import (
	"fmt"
	"log"
	"time"

	"glcube/internal/config"
	"glcube/internal/gles"
	"glcube/internal/graphics"
	"glcube/internal/graphics/renderables/cube"
	renderer "glcube/internal/graphics/renderer"
	"glcube/internal/platform"
	"glcube/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const slowFrame = 16 * time.Millisecond

// App owns the render loop for one window
type App struct {
	window   *glfw.Window
	renderer *renderer.Renderer
	limiter  *FPSLimiter
	title    string

	frames    int
	lastTitle time.Time
}

// New builds the cube on ctx, which must be current for window.
func New(window *glfw.Window, ctx gles.Context, cfg config.Config) (*App, error) {
	opts, err := cubeOptions(cfg.Shaders)
	if err != nil {
		return nil, err
	}
	c, err := cube.New(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("build cube: %w", err)
	}

	cc := cfg.Render.ClearColor
	ctx.ClearColor(cc[0], cc[1], cc[2], cc[3])
	platform.SetVSync(config.GetVSync())

	a := &App{
		window:    window,
		renderer:  renderer.NewRenderer(ctx, c),
		limiter:   NewFPSLimiter(),
		title:     cfg.Window.Title,
		lastTitle: time.Now(),
	}

	width, height := window.GetFramebufferSize()
	a.renderer.UpdateViewport(width, height)

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		a.renderer.UpdateViewport(width, height)
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	return a, nil
}

func cubeOptions(shaders config.ShaderConfig) (cube.Options, error) {
	if shaders.Vertex == "" {
		return cube.Options{}, nil
	}
	vs, fs, err := graphics.ReadShaderSources(shaders.Vertex, shaders.Fragment)
	if err != nil {
		return cube.Options{}, err
	}
	log.Printf("Using shaders %s, %s", shaders.Vertex, shaders.Fragment)
	return cube.Options{VertexSource: vs, FragmentSource: fs}, nil
}

// Run renders until the window is asked to close
func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

// Close releases GL resources. Call it before the context is destroyed.
func (a *App) Close() {
	a.renderer.Dispose()
}

func (a *App) tick() {
	profiling.ResetFrame()
	start := time.Now()

	glfw.PollEvents()
	a.renderer.Render()
	a.window.SwapBuffers()

	if d := time.Since(start); d > slowFrame {
		log.Printf("Slow frame: %v. Top tasks: %s", d, profiling.TopN(5))
	}

	a.frames++
	if elapsed := time.Since(a.lastTitle); elapsed >= time.Second {
		fps := int(float64(a.frames)/elapsed.Seconds() + 0.5)
		a.window.SetTitle(fmt.Sprintf("%s - %d FPS", a.title, fps))
		a.frames = 0
		a.lastTitle = time.Now()
	}

	a.limiter.Wait()
}
