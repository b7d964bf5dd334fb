package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cube.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("got %+v, want defaults", cfg)
	}

	cfg, err = Load("")
	if err != nil || cfg != Default() {
		t.Errorf("empty path: got %+v, %v", cfg, err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
window:
  title: demo
  width: 1280
render:
  clear_color: [0.1, 0.2, 0.3, 1]
  fps_limit: 144
  vsync: false
shaders:
  vertex: cube.vert
  fragment: cube.frag
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Title != "demo" || cfg.Window.Width != 1280 {
		t.Errorf("window: %+v", cfg.Window)
	}
	if cfg.Window.Height != 600 {
		t.Errorf("unset height should keep default, got %d", cfg.Window.Height)
	}
	if cfg.Render.ClearColor != [4]float32{0.1, 0.2, 0.3, 1} || cfg.Render.FPSLimit != 144 || cfg.Render.VSync {
		t.Errorf("render: %+v", cfg.Render)
	}
	if cfg.Shaders.Vertex != "cube.vert" || cfg.Shaders.Fragment != "cube.frag" {
		t.Errorf("shaders: %+v", cfg.Shaders)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "window: [unterminated\n")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, "window:\n  height: 0\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for zero height")
	}

	path = writeConfig(t, "shaders:\n  vertex: only.vert\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for a lone vertex shader")
	}
}

func TestSetFPSLimitClamps(t *testing.T) {
	defer SetFPSLimit(GetFPSLimit())

	SetFPSLimit(-5)
	if got := GetFPSLimit(); got != 0 {
		t.Errorf("negative limit: got %d, want 0", got)
	}
	SetFPSLimit(5000)
	if got := GetFPSLimit(); got != 1000 {
		t.Errorf("huge limit: got %d, want 1000", got)
	}
}

func TestApply(t *testing.T) {
	defer SetFPSLimit(GetFPSLimit())
	defer SetVSync(GetVSync())

	cfg := Default()
	cfg.Render.FPSLimit = 30
	cfg.Render.VSync = false
	cfg.Apply()
	if GetFPSLimit() != 30 || GetVSync() {
		t.Errorf("settings not applied: fps=%d vsync=%v", GetFPSLimit(), GetVSync())
	}
}
