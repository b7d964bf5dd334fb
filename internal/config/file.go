package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes the window and shaders for a run
type Config struct {
	Window  WindowConfig `yaml:"window"`
	Render  RenderConfig `yaml:"render"`
	Shaders ShaderConfig `yaml:"shaders"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type RenderConfig struct {
	ClearColor [4]float32 `yaml:"clear_color"`
	FPSLimit   int        `yaml:"fps_limit"`
	VSync      bool       `yaml:"vsync"`
}

// ShaderConfig names optional shader files. Both must be set to replace the
// built-in pair.
type ShaderConfig struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

// Default returns the configuration used when no file is given
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "glcube",
			Width:  800,
			Height: 600,
		},
		Render: RenderConfig{
			ClearColor: [4]float32{0, 0, 0, 1},
			FPSLimit:   60,
			VSync:      true,
		},
	}
}

// Load reads a YAML config over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the window shell cannot honour
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if (c.Shaders.Vertex == "") != (c.Shaders.Fragment == "") {
		return errors.New("shaders.vertex and shaders.fragment must be set together")
	}
	return nil
}

// Apply copies the pacing options into the process-wide render settings
func (c Config) Apply() {
	SetFPSLimit(c.Render.FPSLimit)
	SetVSync(c.Render.VSync)
}
