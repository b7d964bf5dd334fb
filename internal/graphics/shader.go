package graphics

import (
	"fmt"
	"os"
	"strings"

	"glcube/internal/gles"

	"github.com/go-gl/mathgl/mgl32"
)

// Attribute and uniform names shared by the built-in shaders.
const (
	AttribPosition = "aPosition"
	AttribColor    = "aColor"
	UniformModel   = "uModelMatrix"
	UniformView    = "uViewMatrix"
	UniformProj    = "uProjMatrix"
)

// Locations holds the resolved attribute and uniform slots of a program.
// A slot the program does not declare is -1.
type Locations struct {
	Position int32
	Color    int32
	Model    int32
	View     int32
	Proj     int32
}

// Program is a linked shader program
type Program struct {
	ID        uint32
	Locations Locations

	ctx gles.Context
}

// NewProgram compiles and links the given vertex and fragment sources.
// Any failure deletes every GL object created along the way.
func NewProgram(ctx gles.Context, vertexSrc, fragmentSrc string) (*Program, error) {
	id, err := compileProgram(ctx, vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}

	p := &Program{ID: id, ctx: ctx}
	p.Locations = Locations{
		Position: p.AttribLocation(AttribPosition),
		Color:    p.AttribLocation(AttribColor),
		Model:    p.UniformLocation(UniformModel),
		View:     p.UniformLocation(UniformView),
		Proj:     p.UniformLocation(UniformProj),
	}
	return p, nil
}

// LoadProgram reads the shader sources from disk and builds a program
func LoadProgram(ctx gles.Context, vertexPath, fragmentPath string) (*Program, error) {
	vertexSource, fragmentSource, err := ReadShaderSources(vertexPath, fragmentPath)
	if err != nil {
		return nil, err
	}
	return NewProgram(ctx, vertexSource, fragmentSource)
}

// ReadShaderSources loads a vertex/fragment source pair
func ReadShaderSources(vertexPath, fragmentPath string) (string, string, error) {
	vertexSource, err := os.ReadFile(vertexPath)
	if err != nil {
		return "", "", fmt.Errorf("could not read vertex shader file: %w", err)
	}

	fragmentSource, err := os.ReadFile(fragmentPath)
	if err != nil {
		return "", "", fmt.Errorf("could not read fragment shader file: %w", err)
	}

	return string(vertexSource), string(fragmentSource), nil
}

// Use activates the program
func (p *Program) Use() {
	p.ctx.UseProgram(p.ID)
}

// AttribLocation returns the attribute slot for name, or -1
func (p *Program) AttribLocation(name string) int32 {
	return p.ctx.GetAttribLocation(p.ID, name)
}

// UniformLocation returns the uniform slot for name, or -1
func (p *Program) UniformLocation(name string) int32 {
	return p.ctx.GetUniformLocation(p.ID, name)
}

// SetMatrix4 uploads a column-major 4x4 matrix
func (p *Program) SetMatrix4(location int32, m mgl32.Mat4) {
	p.ctx.UniformMatrix4fv(location, false, [16]float32(m))
}

// Delete releases the program. Calling it again is a no-op.
func (p *Program) Delete() {
	if p.ID == 0 {
		return
	}
	p.ctx.DeleteProgram(p.ID)
	p.ID = 0
}

func compileProgram(ctx gles.Context, vertexSrc, fragmentSrc string) (uint32, error) {
	program := ctx.CreateProgram()
	if program == 0 {
		return 0, &ProgramCreateError{}
	}

	vertexShader, err := compileShader(ctx, vertexSrc, StageVertex)
	if err != nil {
		ctx.DeleteProgram(program)
		return 0, err
	}
	fragmentShader, err := compileShader(ctx, fragmentSrc, StageFragment)
	if err != nil {
		ctx.DeleteShader(vertexShader)
		ctx.DeleteProgram(program)
		return 0, err
	}

	// attached shaders stay alive until the program is deleted
	ctx.AttachShader(program, vertexShader)
	ctx.DeleteShader(vertexShader)
	ctx.AttachShader(program, fragmentShader)
	ctx.DeleteShader(fragmentShader)
	ctx.LinkProgram(program)

	if ctx.GetProgramiv(program, gles.LinkStatus) == gles.False {
		log := ctx.GetProgramInfoLog(program)
		ctx.DeleteProgram(program)
		return 0, &ProgramLinkError{Log: log}
	}
	return program, nil
}

func compileShader(ctx gles.Context, source string, stage ShaderStage) (uint32, error) {
	if strings.TrimSpace(source) == "" {
		return 0, &ShaderCompileError{Stage: stage, Log: "empty source"}
	}

	shader := ctx.CreateShader(uint32(stage))
	if shader == 0 {
		return 0, &ShaderCompileError{Stage: stage, Log: "shader object allocation failed"}
	}
	ctx.ShaderSource(shader, source)
	ctx.CompileShader(shader)

	if ctx.GetShaderiv(shader, gles.CompileStatus) == gles.False {
		log := ctx.GetShaderInfoLog(shader)
		ctx.DeleteShader(shader)
		return 0, &ShaderCompileError{Stage: stage, Log: log}
	}
	return shader, nil
}
