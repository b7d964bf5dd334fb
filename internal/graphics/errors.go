package graphics

import (
	"fmt"

	"glcube/internal/gles"
)

// ShaderStage identifies a programmable pipeline stage
type ShaderStage uint32

const (
	StageVertex   ShaderStage = gles.VertexShader
	StageFragment ShaderStage = gles.FragmentShader
)

func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	}
	return fmt.Sprintf("stage(0x%x)", uint32(s))
}

// ShaderCompileError reports a stage that failed to compile, with the driver's info log.
type ShaderCompileError struct {
	Stage ShaderStage
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, e.Log)
}

// ProgramCreateError reports that the driver returned no program object.
type ProgramCreateError struct{}

func (e *ProgramCreateError) Error() string {
	return "program creation failed"
}

// ProgramLinkError reports a link failure, with the driver's info log.
type ProgramLinkError struct {
	Log string
}

func (e *ProgramLinkError) Error() string {
	return fmt.Sprintf("failed to link program: %s", e.Log)
}
