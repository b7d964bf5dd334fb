package app

import (
	"os"
	"path/filepath"
	"testing"

	"glcube/internal/config"
)

func TestCubeOptionsDefaults(t *testing.T) {
	opts, err := cubeOptions(config.ShaderConfig{})
	if err != nil {
		t.Fatalf("cubeOptions: %v", err)
	}
	if opts.VertexSource != "" || opts.FragmentSource != "" {
		t.Errorf("expected built-in shaders, got %+v", opts)
	}
}

func TestCubeOptionsFromFiles(t *testing.T) {
	dir := t.TempDir()
	vert := filepath.Join(dir, "tint.vert")
	frag := filepath.Join(dir, "tint.frag")
	if err := os.WriteFile(vert, []byte("void main() {}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(frag, []byte("void main() { gl_FragColor = vec4(1.0); }"), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := cubeOptions(config.ShaderConfig{Vertex: vert, Fragment: frag})
	if err != nil {
		t.Fatalf("cubeOptions: %v", err)
	}
	if opts.VertexSource != "void main() {}" || opts.FragmentSource == "" {
		t.Errorf("sources not loaded: %+v", opts)
	}

	if _, err := cubeOptions(config.ShaderConfig{Vertex: filepath.Join(dir, "nope"), Fragment: frag}); err == nil {
		t.Error("expected error for missing shader file")
	}
}
