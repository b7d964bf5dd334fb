package main

import (
	"flag"
	"log"
	"runtime"

	"glcube/internal/app"
	"glcube/internal/config"
	"glcube/internal/gles"
	"glcube/internal/platform"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// GL calls must stay on the thread that owns the context
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "cube.yaml", "path to YAML config (optional)")
	fps := flag.Int("fps", -1, "frame cap, 0 for unlimited (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}
	cfg.Apply()
	if *fps >= 0 {
		config.SetFPSLimit(*fps)
	}

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	window, err := platform.NewWindow(cfg.Window)
	if err != nil {
		panic(err)
	}
	defer window.Destroy()

	ctx, err := gles.Init()
	if err != nil {
		panic(err)
	}
	log.Printf("OpenGL ES version %s", ctx.Version())

	a, err := app.New(window, ctx, cfg)
	if err != nil {
		panic(err)
	}
	defer a.Close()

	a.Run()
}
