package gles

import (
	"strings"

	gl "github.com/go-gl/gl/v3.1/gles2"
)

// GL forwards every call to the go-gl GLES2 binding. The window owner must
// make its context current and call Init before using it.
type GL struct{}

// Init loads the GLES2 entry points for the current context.
func Init() (*GL, error) {
	if err := gl.Init(); err != nil {
		return nil, err
	}
	return &GL{}, nil
}

// Version reports the driver's GL_VERSION string.
func (*GL) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (*GL) CreateShader(kind uint32) uint32 { return gl.CreateShader(kind) }

func (*GL) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (*GL) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (*GL) GetShaderiv(shader uint32, pname uint32) int32 {
	var v int32
	gl.GetShaderiv(shader, pname, &v)
	return v
}

func (g *GL) GetShaderInfoLog(shader uint32) string {
	logLength := g.GetShaderiv(shader, InfoLogLength)
	if logLength <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (*GL) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (*GL) CreateProgram() uint32 { return gl.CreateProgram() }

func (*GL) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }

func (*GL) LinkProgram(program uint32) { gl.LinkProgram(program) }

func (*GL) GetProgramiv(program uint32, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(program, pname, &v)
	return v
}

func (g *GL) GetProgramInfoLog(program uint32) string {
	logLength := g.GetProgramiv(program, InfoLogLength)
	if logLength <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (*GL) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (*GL) UseProgram(program uint32) { gl.UseProgram(program) }

func (*GL) GetAttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (*GL) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (*GL) GenBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}

func (*GL) DeleteBuffer(buffer uint32) { gl.DeleteBuffers(1, &buffer) }

func (*GL) BindBuffer(target, buffer uint32) { gl.BindBuffer(target, buffer) }

func (*GL) BufferDataFloat32(target uint32, data []float32, usage uint32) {
	if len(data) == 0 {
		gl.BufferData(target, 0, nil, usage)
		return
	}
	gl.BufferData(target, len(data)*4, gl.Ptr(data), usage)
}

func (*GL) BufferDataUint16(target uint32, data []uint16, usage uint32) {
	if len(data) == 0 {
		gl.BufferData(target, 0, nil, usage)
		return
	}
	gl.BufferData(target, len(data)*2, gl.Ptr(data), usage)
}

func (*GL) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (*GL) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, xtype, normalized, stride, gl.PtrOffset(offset))
}

func (*GL) UniformMatrix4fv(location int32, transpose bool, value [16]float32) {
	gl.UniformMatrix4fv(location, 1, transpose, &value[0])
}

func (*GL) Enable(capability uint32) { gl.Enable(capability) }

func (*GL) BlendFunc(sfactor, dfactor uint32) { gl.BlendFunc(sfactor, dfactor) }

func (*GL) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

func (*GL) Clear(mask uint32) { gl.Clear(mask) }

func (*GL) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }

func (*GL) DrawElements(mode uint32, count int32, xtype uint32, offset int) {
	gl.DrawElements(mode, count, xtype, gl.PtrOffset(offset))
}

func (*GL) GetError() uint32 { return gl.GetError() }
