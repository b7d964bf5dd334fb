package graphics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"glcube/internal/gles"
	"glcube/internal/gles/glestest"
)

const testVertex = `
uniform mat4 uModelMatrix;
uniform mat4 uViewMatrix;
uniform mat4 uProjMatrix;
attribute vec4 aPosition;
attribute vec4 aColor;
varying vec4 vColor;
void main() {
	gl_Position = uProjMatrix * uViewMatrix * uModelMatrix * aPosition;
	vColor = aColor;
}`

const testFragment = `
precision mediump float;
varying vec4 vColor;
void main() {
	gl_FragColor = vColor;
}`

func TestNewProgramResolvesLocations(t *testing.T) {
	ctx := glestest.New()
	p, err := NewProgram(ctx, testVertex, testFragment)
	if err != nil {
		t.Fatalf("NewProgram: %v", err)
	}
	if p.ID == 0 {
		t.Fatal("expected a non-zero program handle")
	}

	locs := map[string]int32{
		AttribPosition: p.Locations.Position,
		AttribColor:    p.Locations.Color,
		UniformModel:   p.Locations.Model,
		UniformView:    p.Locations.View,
		UniformProj:    p.Locations.Proj,
	}
	for name, loc := range locs {
		if loc < 0 {
			t.Errorf("%s: got location %d, want >= 0", name, loc)
		}
	}

	// shaders are flagged for deletion once attached
	if n := ctx.LiveShaders(); n != 0 {
		t.Errorf("live shaders after link: got %d, want 0", n)
	}
	if n := ctx.LivePrograms(); n != 1 {
		t.Errorf("live programs: got %d, want 1", n)
	}
}

func TestNewProgramMissingNamesAreAbsent(t *testing.T) {
	ctx := glestest.New()
	vs := `
uniform mat4 uModelMatrix;
attribute vec4 aPosition;
void main() {
	gl_Position = uModelMatrix * aPosition;
}`
	fs := `
void main() {
	gl_FragColor = vec4(1.0);
}`
	p, err := NewProgram(ctx, vs, fs)
	if err != nil {
		t.Fatalf("NewProgram: %v", err)
	}
	if p.Locations.Position < 0 || p.Locations.Model < 0 {
		t.Errorf("declared names must resolve: %+v", p.Locations)
	}
	if p.Locations.Color != -1 || p.Locations.View != -1 || p.Locations.Proj != -1 {
		t.Errorf("undeclared names must be -1: %+v", p.Locations)
	}
}

func TestNewProgramFragmentCompileError(t *testing.T) {
	ctx := glestest.New()
	broken := strings.Replace(testFragment, "}", "", 1)

	p, err := NewProgram(ctx, testVertex, broken)
	if p != nil {
		t.Fatal("expected nil program on compile failure")
	}
	var compileErr *ShaderCompileError
	if !errors.As(err, &compileErr) {
		t.Fatalf("expected *ShaderCompileError, got %T: %v", err, err)
	}
	if compileErr.Stage != StageFragment {
		t.Errorf("stage: got %v, want fragment", compileErr.Stage)
	}
	if !strings.Contains(compileErr.Log, "syntax error") {
		t.Errorf("log should carry driver diagnostics, got %q", compileErr.Log)
	}
	if ctx.LiveShaders() != 0 || ctx.LivePrograms() != 0 {
		t.Errorf("leaked objects: shaders=%d programs=%d", ctx.LiveShaders(), ctx.LivePrograms())
	}
	if len(ctx.DoubleFrees) != 0 {
		t.Errorf("double frees: %v", ctx.DoubleFrees)
	}
}

func TestNewProgramVertexCompileError(t *testing.T) {
	ctx := glestest.New()
	_, err := NewProgram(ctx, "attribute vec4 aPosition;", testFragment)

	var compileErr *ShaderCompileError
	if !errors.As(err, &compileErr) || compileErr.Stage != StageVertex {
		t.Fatalf("expected vertex *ShaderCompileError, got %v", err)
	}
	if ctx.LiveShaders() != 0 || ctx.LivePrograms() != 0 {
		t.Errorf("leaked objects: shaders=%d programs=%d", ctx.LiveShaders(), ctx.LivePrograms())
	}
	// the fragment stage is never attempted
	if n := ctx.CallCount("CreateShader"); n != 1 {
		t.Errorf("CreateShader calls: got %d, want 1", n)
	}
}

func TestNewProgramLinkErrorMismatchedVaryings(t *testing.T) {
	ctx := glestest.New()
	fs := strings.ReplaceAll(testFragment, "vColor", "vTint")

	_, err := NewProgram(ctx, testVertex, fs)
	var linkErr *ProgramLinkError
	if !errors.As(err, &linkErr) {
		t.Fatalf("expected *ProgramLinkError, got %T: %v", err, err)
	}
	if !strings.Contains(linkErr.Log, "vTint") {
		t.Errorf("link log should name the varying, got %q", linkErr.Log)
	}
	if ctx.LiveShaders() != 0 || ctx.LivePrograms() != 0 {
		t.Errorf("leaked objects: shaders=%d programs=%d", ctx.LiveShaders(), ctx.LivePrograms())
	}
}

func TestNewProgramCreateError(t *testing.T) {
	ctx := glestest.New()
	ctx.FailCreateProgram = true

	_, err := NewProgram(ctx, testVertex, testFragment)
	var createErr *ProgramCreateError
	if !errors.As(err, &createErr) {
		t.Fatalf("expected *ProgramCreateError, got %T: %v", err, err)
	}
	if n := ctx.CallCount("CreateShader"); n != 0 {
		t.Errorf("no shaders should be created, got %d", n)
	}
}

func TestNewProgramShaderAllocationFailure(t *testing.T) {
	ctx := glestest.New()
	ctx.FailCreateShader = true

	_, err := NewProgram(ctx, testVertex, testFragment)
	var compileErr *ShaderCompileError
	if !errors.As(err, &compileErr) {
		t.Fatalf("expected *ShaderCompileError, got %T: %v", err, err)
	}
	if ctx.LivePrograms() != 0 {
		t.Errorf("program leaked after shader allocation failure")
	}
}

func TestNewProgramEmptySource(t *testing.T) {
	ctx := glestest.New()
	_, err := NewProgram(ctx, testVertex, "   \n")
	var compileErr *ShaderCompileError
	if !errors.As(err, &compileErr) || compileErr.Stage != StageFragment {
		t.Fatalf("expected fragment *ShaderCompileError, got %v", err)
	}
	if ctx.LiveShaders() != 0 || ctx.LivePrograms() != 0 {
		t.Errorf("leaked objects: shaders=%d programs=%d", ctx.LiveShaders(), ctx.LivePrograms())
	}
}

func TestProgramDeleteIsIdempotent(t *testing.T) {
	ctx := glestest.New()
	p, err := NewProgram(ctx, testVertex, testFragment)
	if err != nil {
		t.Fatalf("NewProgram: %v", err)
	}
	p.Delete()
	p.Delete()
	if p.ID != 0 {
		t.Errorf("ID after Delete: got %d, want 0", p.ID)
	}
	if n := ctx.CallCount("DeleteProgram"); n != 1 {
		t.Errorf("DeleteProgram calls: got %d, want 1", n)
	}
	if len(ctx.DoubleFrees) != 0 {
		t.Errorf("double frees: %v", ctx.DoubleFrees)
	}
}

func TestLoadProgram(t *testing.T) {
	dir := t.TempDir()
	vertPath := filepath.Join(dir, "cube.vert")
	fragPath := filepath.Join(dir, "cube.frag")
	if err := os.WriteFile(vertPath, []byte(testVertex), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(fragPath, []byte(testFragment), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx := glestest.New()
	p, err := LoadProgram(ctx, vertPath, fragPath)
	if err != nil {
		t.Fatalf("LoadProgram: %v", err)
	}
	uploaded := false
	for _, s := range ctx.Shaders {
		if s.Kind == gles.VertexShader && s.Source == testVertex {
			uploaded = true
		}
	}
	if !uploaded {
		t.Errorf("vertex source not uploaded from file")
	}
	p.Delete()

	if _, err := LoadProgram(ctx, filepath.Join(dir, "missing.vert"), fragPath); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: got %v, want os.ErrNotExist", err)
	}
}

func TestShaderStageString(t *testing.T) {
	if StageVertex.String() != "vertex" || StageFragment.String() != "fragment" {
		t.Errorf("unexpected stage names: %s %s", StageVertex, StageFragment)
	}
}
