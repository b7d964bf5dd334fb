// Package gles describes the subset of the OpenGL ES 2.0 API the renderers use.
//
// All drawing code receives a Context explicitly instead of calling a
// process-global binding, so the owner of the window decides which context
// a renderer talks to and tests can substitute a recording fake.
package gles

// OpenGL ES 2.0 enum values.
const (
	False = 0
	True  = 1

	NoError = 0

	VertexShader   = 0x8B31
	FragmentShader = 0x8B30
	CompileStatus  = 0x8B81
	LinkStatus     = 0x8B82
	InfoLogLength  = 0x8B84

	ArrayBuffer        = 0x8892
	ElementArrayBuffer = 0x8893
	StaticDraw         = 0x88E4

	Float         = 0x1406
	UnsignedShort = 0x1403
	Triangles     = 0x0004

	DepthTest        = 0x0B71
	Blend            = 0x0BE2
	SrcAlpha         = 0x0302
	OneMinusSrcAlpha = 0x0303

	DepthBufferBit = 0x00000100
	ColorBufferBit = 0x00004000
)

// Context is a current GL ES rendering context.
//
// Implementations are bound to the thread that made the context current and
// are not safe for concurrent use.
type Context interface {
	CreateShader(kind uint32) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderiv(shader uint32, pname uint32) int32
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgramiv(program uint32, pname uint32) int32
	GetProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)
	UseProgram(program uint32)
	GetAttribLocation(program uint32, name string) int32
	GetUniformLocation(program uint32, name string) int32

	GenBuffer() uint32
	DeleteBuffer(buffer uint32)
	BindBuffer(target, buffer uint32)
	BufferDataFloat32(target uint32, data []float32, usage uint32)
	BufferDataUint16(target uint32, data []uint16, usage uint32)

	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int)
	UniformMatrix4fv(location int32, transpose bool, value [16]float32)

	Enable(capability uint32)
	BlendFunc(sfactor, dfactor uint32)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	Viewport(x, y, width, height int32)
	DrawElements(mode uint32, count int32, xtype uint32, offset int)
	GetError() uint32
}
