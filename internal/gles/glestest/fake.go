// Package glestest provides an in-memory gles.Context for tests that cannot
// open a window.
package glestest

import (
	"fmt"
	"regexp"
	"strings"

	"glcube/internal/gles"
)

var (
	attributeDecl = regexp.MustCompile(`\battribute\s+\w+\s+(\w+)\s*;`)
	uniformDecl   = regexp.MustCompile(`\buniform\s+\w+\s+(\w+)\s*;`)
	varyingDecl   = regexp.MustCompile(`\bvarying\s+\w+\s+(\w+)\s*;`)
)

// Shader is the fake driver's record of a shader object.
type Shader struct {
	Kind     uint32
	Source   string
	Compiled bool
	Log      string
	Deleted  bool
}

// Program is the fake driver's record of a program object.
type Program struct {
	Shaders  []uint32
	Linked   bool
	Log      string
	Deleted  bool
	attribs  map[string]int32
	uniforms map[string]int32
}

// Buffer is the fake driver's record of a buffer object.
type Buffer struct {
	Target  uint32
	Usage   uint32
	Float32 []float32
	Uint16  []uint16
	Deleted bool
}

// AttribPointer records a VertexAttribPointer call.
type AttribPointer struct {
	Buffer     uint32
	Size       int32
	Type       uint32
	Normalized bool
	Stride     int32
	Offset     int
}

// DrawCall records a DrawElements call together with the state it used.
type DrawCall struct {
	Mode          uint32
	Count         int32
	Type          uint32
	Offset        int
	Program       uint32
	ElementBuffer uint32
}

// Context implements gles.Context in memory.
//
// Shaders compile when their source declares main() and has balanced
// braces. Programs fail to link when the fragment stage reads a varying the
// vertex stage never declares, or when LinkFailure is set.
type Context struct {
	// Knobs.
	FailCreateShader  bool
	FailCreateProgram bool
	LinkFailure       string
	PendingErrors     []uint32

	// Objects by handle.
	Shaders  map[uint32]*Shader
	Programs map[uint32]*Program
	Buffers  map[uint32]*Buffer

	// Bound state.
	Enabled        map[uint32]bool
	EnabledAttribs map[uint32]bool
	Attribs        map[uint32]AttribPointer
	Uniforms       map[int32][16]float32
	CurrentProgram uint32
	ArrayBuffer    uint32
	ElementBuffer  uint32
	BlendSrc       uint32
	BlendDst       uint32
	ViewportRect   [4]int32
	ClearRGBA      [4]float32

	Clears      []uint32
	Draws       []DrawCall
	Calls       []string
	DoubleFrees []string

	next uint32
}

// New returns an empty fake context.
func New() *Context {
	return &Context{
		Shaders:        make(map[uint32]*Shader),
		Programs:       make(map[uint32]*Program),
		Buffers:        make(map[uint32]*Buffer),
		Enabled:        make(map[uint32]bool),
		EnabledAttribs: make(map[uint32]bool),
		Attribs:        make(map[uint32]AttribPointer),
		Uniforms:       make(map[int32][16]float32),
	}
}

var _ gles.Context = (*Context)(nil)

func (c *Context) record(format string, args ...any) {
	c.Calls = append(c.Calls, fmt.Sprintf(format, args...))
}

func (c *Context) alloc() uint32 {
	c.next++
	return c.next
}

// LiveShaders counts shader objects not yet deleted.
func (c *Context) LiveShaders() int {
	n := 0
	for _, s := range c.Shaders {
		if !s.Deleted {
			n++
		}
	}
	return n
}

// LivePrograms counts program objects not yet deleted.
func (c *Context) LivePrograms() int {
	n := 0
	for _, p := range c.Programs {
		if !p.Deleted {
			n++
		}
	}
	return n
}

// LiveBuffers counts buffer objects not yet deleted.
func (c *Context) LiveBuffers() int {
	n := 0
	for _, b := range c.Buffers {
		if !b.Deleted {
			n++
		}
	}
	return n
}

// CallCount reports how many recorded calls start with prefix.
func (c *Context) CallCount(prefix string) int {
	n := 0
	for _, call := range c.Calls {
		if strings.HasPrefix(call, prefix) {
			n++
		}
	}
	return n
}

func (c *Context) CreateShader(kind uint32) uint32 {
	c.record("CreateShader(0x%x)", kind)
	if c.FailCreateShader {
		return 0
	}
	id := c.alloc()
	c.Shaders[id] = &Shader{Kind: kind}
	return id
}

func (c *Context) ShaderSource(shader uint32, source string) {
	c.record("ShaderSource(%d)", shader)
	if s, ok := c.Shaders[shader]; ok {
		s.Source = source
	}
}

func (c *Context) CompileShader(shader uint32) {
	c.record("CompileShader(%d)", shader)
	s, ok := c.Shaders[shader]
	if !ok {
		return
	}
	switch {
	case !strings.Contains(s.Source, "void main("):
		s.Compiled, s.Log = false, "ERROR: 0:1: 'main' : function not defined"
	case strings.Count(s.Source, "{") != strings.Count(s.Source, "}"):
		s.Compiled, s.Log = false, "ERROR: 0:1: '' : syntax error: unbalanced braces"
	default:
		s.Compiled, s.Log = true, ""
	}
}

func (c *Context) GetShaderiv(shader uint32, pname uint32) int32 {
	s, ok := c.Shaders[shader]
	if !ok {
		return 0
	}
	switch pname {
	case gles.CompileStatus:
		if s.Compiled {
			return gles.True
		}
		return gles.False
	case gles.InfoLogLength:
		if s.Log == "" {
			return 0
		}
		return int32(len(s.Log) + 1)
	}
	return 0
}

func (c *Context) GetShaderInfoLog(shader uint32) string {
	if s, ok := c.Shaders[shader]; ok {
		return s.Log
	}
	return ""
}

func (c *Context) DeleteShader(shader uint32) {
	c.record("DeleteShader(%d)", shader)
	if shader == 0 {
		return
	}
	s, ok := c.Shaders[shader]
	if !ok || s.Deleted {
		c.DoubleFrees = append(c.DoubleFrees, fmt.Sprintf("shader %d", shader))
		return
	}
	s.Deleted = true
}

func (c *Context) CreateProgram() uint32 {
	c.record("CreateProgram()")
	if c.FailCreateProgram {
		return 0
	}
	id := c.alloc()
	c.Programs[id] = &Program{}
	return id
}

func (c *Context) AttachShader(program, shader uint32) {
	c.record("AttachShader(%d, %d)", program, shader)
	if p, ok := c.Programs[program]; ok {
		p.Shaders = append(p.Shaders, shader)
	}
}

func (c *Context) LinkProgram(program uint32) {
	c.record("LinkProgram(%d)", program)
	p, ok := c.Programs[program]
	if !ok {
		return
	}
	p.Linked, p.Log = false, ""
	p.attribs = make(map[string]int32)
	p.uniforms = make(map[string]int32)
	if c.LinkFailure != "" {
		p.Log = c.LinkFailure
		return
	}

	var vertex, fragment *Shader
	for _, id := range p.Shaders {
		s := c.Shaders[id]
		if s == nil || !s.Compiled {
			p.Log = fmt.Sprintf("ERROR: shader %d is not compiled", id)
			return
		}
		switch s.Kind {
		case gles.VertexShader:
			vertex = s
		case gles.FragmentShader:
			fragment = s
		}
	}
	if vertex == nil || fragment == nil {
		p.Log = "ERROR: program requires a vertex and a fragment shader"
		return
	}

	written := make(map[string]bool)
	for _, m := range varyingDecl.FindAllStringSubmatch(vertex.Source, -1) {
		written[m[1]] = true
	}
	for _, m := range varyingDecl.FindAllStringSubmatch(fragment.Source, -1) {
		if !written[m[1]] {
			p.Log = fmt.Sprintf("ERROR: varying '%s' is not written by the vertex shader", m[1])
			return
		}
	}

	for _, m := range attributeDecl.FindAllStringSubmatch(vertex.Source, -1) {
		if _, ok := p.attribs[m[1]]; !ok {
			p.attribs[m[1]] = int32(len(p.attribs))
		}
	}
	for _, src := range []string{vertex.Source, fragment.Source} {
		for _, m := range uniformDecl.FindAllStringSubmatch(src, -1) {
			if _, ok := p.uniforms[m[1]]; !ok {
				p.uniforms[m[1]] = int32(len(p.uniforms))
			}
		}
	}
	p.Linked = true
}

func (c *Context) GetProgramiv(program uint32, pname uint32) int32 {
	p, ok := c.Programs[program]
	if !ok {
		return 0
	}
	switch pname {
	case gles.LinkStatus:
		if p.Linked {
			return gles.True
		}
		return gles.False
	case gles.InfoLogLength:
		if p.Log == "" {
			return 0
		}
		return int32(len(p.Log) + 1)
	}
	return 0
}

func (c *Context) GetProgramInfoLog(program uint32) string {
	if p, ok := c.Programs[program]; ok {
		return p.Log
	}
	return ""
}

func (c *Context) DeleteProgram(program uint32) {
	c.record("DeleteProgram(%d)", program)
	if program == 0 {
		return
	}
	p, ok := c.Programs[program]
	if !ok || p.Deleted {
		c.DoubleFrees = append(c.DoubleFrees, fmt.Sprintf("program %d", program))
		return
	}
	p.Deleted = true
	if c.CurrentProgram == program {
		c.CurrentProgram = 0
	}
}

func (c *Context) UseProgram(program uint32) {
	c.record("UseProgram(%d)", program)
	c.CurrentProgram = program
}

func (c *Context) GetAttribLocation(program uint32, name string) int32 {
	p, ok := c.Programs[program]
	if !ok || !p.Linked {
		return -1
	}
	if loc, ok := p.attribs[name]; ok {
		return loc
	}
	return -1
}

func (c *Context) GetUniformLocation(program uint32, name string) int32 {
	p, ok := c.Programs[program]
	if !ok || !p.Linked {
		return -1
	}
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	return -1
}

func (c *Context) GenBuffer() uint32 {
	c.record("GenBuffer()")
	id := c.alloc()
	c.Buffers[id] = &Buffer{}
	return id
}

func (c *Context) DeleteBuffer(buffer uint32) {
	c.record("DeleteBuffer(%d)", buffer)
	if buffer == 0 {
		return
	}
	b, ok := c.Buffers[buffer]
	if !ok || b.Deleted {
		c.DoubleFrees = append(c.DoubleFrees, fmt.Sprintf("buffer %d", buffer))
		return
	}
	b.Deleted = true
}

func (c *Context) BindBuffer(target, buffer uint32) {
	c.record("BindBuffer(0x%x, %d)", target, buffer)
	switch target {
	case gles.ArrayBuffer:
		c.ArrayBuffer = buffer
	case gles.ElementArrayBuffer:
		c.ElementBuffer = buffer
	}
}

func (c *Context) bound(target uint32) *Buffer {
	switch target {
	case gles.ArrayBuffer:
		return c.Buffers[c.ArrayBuffer]
	case gles.ElementArrayBuffer:
		return c.Buffers[c.ElementBuffer]
	}
	return nil
}

func (c *Context) BufferDataFloat32(target uint32, data []float32, usage uint32) {
	c.record("BufferData(0x%x, float32[%d])", target, len(data))
	if b := c.bound(target); b != nil {
		b.Target, b.Usage = target, usage
		b.Float32 = append([]float32(nil), data...)
		b.Uint16 = nil
	}
}

func (c *Context) BufferDataUint16(target uint32, data []uint16, usage uint32) {
	c.record("BufferData(0x%x, uint16[%d])", target, len(data))
	if b := c.bound(target); b != nil {
		b.Target, b.Usage = target, usage
		b.Uint16 = append([]uint16(nil), data...)
		b.Float32 = nil
	}
}

func (c *Context) EnableVertexAttribArray(index uint32) {
	c.record("EnableVertexAttribArray(%d)", index)
	c.EnabledAttribs[index] = true
}

func (c *Context) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	c.record("VertexAttribPointer(%d, %d)", index, size)
	c.Attribs[index] = AttribPointer{
		Buffer:     c.ArrayBuffer,
		Size:       size,
		Type:       xtype,
		Normalized: normalized,
		Stride:     stride,
		Offset:     offset,
	}
}

func (c *Context) UniformMatrix4fv(location int32, transpose bool, value [16]float32) {
	c.record("UniformMatrix4fv(%d, %t)", location, transpose)
	if location < 0 {
		return
	}
	c.Uniforms[location] = value
}

func (c *Context) Enable(capability uint32) {
	c.record("Enable(0x%x)", capability)
	c.Enabled[capability] = true
}

func (c *Context) BlendFunc(sfactor, dfactor uint32) {
	c.record("BlendFunc(0x%x, 0x%x)", sfactor, dfactor)
	c.BlendSrc, c.BlendDst = sfactor, dfactor
}

func (c *Context) ClearColor(r, g, b, a float32) {
	c.record("ClearColor(%g, %g, %g, %g)", r, g, b, a)
	c.ClearRGBA = [4]float32{r, g, b, a}
}

func (c *Context) Clear(mask uint32) {
	c.record("Clear(0x%x)", mask)
	c.Clears = append(c.Clears, mask)
}

func (c *Context) Viewport(x, y, width, height int32) {
	c.record("Viewport(%d, %d, %d, %d)", x, y, width, height)
	c.ViewportRect = [4]int32{x, y, width, height}
}

func (c *Context) DrawElements(mode uint32, count int32, xtype uint32, offset int) {
	c.record("DrawElements(0x%x, %d)", mode, count)
	c.Draws = append(c.Draws, DrawCall{
		Mode:          mode,
		Count:         count,
		Type:          xtype,
		Offset:        offset,
		Program:       c.CurrentProgram,
		ElementBuffer: c.ElementBuffer,
	})
}

func (c *Context) GetError() uint32 {
	if len(c.PendingErrors) == 0 {
		return gles.NoError
	}
	err := c.PendingErrors[0]
	c.PendingErrors = c.PendingErrors[1:]
	return err
}
