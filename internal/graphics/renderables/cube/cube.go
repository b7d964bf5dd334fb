package cube

import (
	"glcube/internal/gles"
	"glcube/internal/graphics"
)

// RotationDivisor converts the draw counter into the model rotation in radians.
const RotationDivisor = 50.0

// Options configures a Cube. Zero fields fall back to the built-in shaders
// and a default Camera.
type Options struct {
	VertexSource   string
	FragmentSource string
	Transforms     graphics.Transforms
}

// Cube draws a spinning vertex-colored cube
type Cube struct {
	ctx        gles.Context
	transforms graphics.Transforms
	program    *graphics.Program

	positionBuffer uint32
	colorBuffer    uint32
	indexBuffer    uint32

	width     int
	height    int
	drawCount uint64
}

// New builds the cube's program and uploads its geometry on ctx, which must
// be current on the calling thread. A Cube whose constructor failed holds no
// GL objects.
func New(ctx gles.Context, opts Options) (*Cube, error) {
	if opts.VertexSource == "" {
		opts.VertexSource = VertexShader
	}
	if opts.FragmentSource == "" {
		opts.FragmentSource = FragmentShader
	}
	if opts.Transforms == nil {
		opts.Transforms = graphics.NewCamera()
	}

	program, err := graphics.NewProgram(ctx, opts.VertexSource, opts.FragmentSource)
	if err != nil {
		return nil, err
	}

	c := &Cube{
		ctx:        ctx,
		transforms: opts.Transforms,
		program:    program,
	}
	c.setupBuffers()

	return c, nil
}

func (c *Cube) setupBuffers() {
	c.positionBuffer = c.ctx.GenBuffer()
	c.ctx.BindBuffer(gles.ArrayBuffer, c.positionBuffer)
	c.ctx.BufferDataFloat32(gles.ArrayBuffer, Positions, gles.StaticDraw)

	c.colorBuffer = c.ctx.GenBuffer()
	c.ctx.BindBuffer(gles.ArrayBuffer, c.colorBuffer)
	c.ctx.BufferDataFloat32(gles.ArrayBuffer, Colors, gles.StaticDraw)

	c.indexBuffer = c.ctx.GenBuffer()
	c.ctx.BindBuffer(gles.ElementArrayBuffer, c.indexBuffer)
	c.ctx.BufferDataUint16(gles.ElementArrayBuffer, Indices, gles.StaticDraw)
}

// Name labels the cube in frame profiles
func (c *Cube) Name() string { return "cube" }

// DrawCount reports how many frames have been drawn
func (c *Cube) DrawCount() uint64 { return c.drawCount }

// Draw renders one frame: it clears the target and draws the cube. With no
// program it only clears.
func (c *Cube) Draw() {
	c.ctx.Enable(gles.DepthTest)
	c.ctx.Clear(gles.ColorBufferBit | gles.DepthBufferBit)
	c.ctx.Enable(gles.Blend)
	c.ctx.BlendFunc(gles.SrcAlpha, gles.OneMinusSrcAlpha)

	if c.program == nil || c.program.ID == 0 {
		return
	}

	c.program.Use()
	c.bindAttrib(c.positionBuffer, c.program.Locations.Position, positionSize)
	c.bindAttrib(c.colorBuffer, c.program.Locations.Color, colorSize)

	model := c.transforms.ModelMatrix(float32(c.drawCount) / RotationDivisor)
	c.program.SetMatrix4(c.program.Locations.Model, model)
	c.program.SetMatrix4(c.program.Locations.View, c.transforms.ViewMatrix())
	c.program.SetMatrix4(c.program.Locations.Proj, c.transforms.ProjectionMatrix(c.aspectRatio()))

	c.ctx.BindBuffer(gles.ElementArrayBuffer, c.indexBuffer)
	c.ctx.DrawElements(gles.Triangles, int32(len(Indices)), gles.UnsignedShort, 0)

	c.drawCount++
}

// bindAttrib skips slots the program does not declare.
func (c *Cube) bindAttrib(buffer uint32, location int32, size int32) {
	c.ctx.BindBuffer(gles.ArrayBuffer, buffer)
	if location < 0 {
		return
	}
	c.ctx.EnableVertexAttribArray(uint32(location))
	c.ctx.VertexAttribPointer(uint32(location), size, gles.Float, false, 0, 0)
}

// aspectRatio clamps the height to 1 so a minimised window never divides by zero.
func (c *Cube) aspectRatio() float32 {
	height := c.height
	if height < 1 {
		height = 1
	}
	return float32(c.width) / float32(height)
}

// UpdateWindowSize sets the viewport to the full window and records its size
func (c *Cube) UpdateWindowSize(width, height int) {
	c.ctx.Viewport(0, 0, int32(width), int32(height))
	c.width = width
	c.height = height
}

// SetViewport implements renderer.Renderable.
func (c *Cube) SetViewport(width, height int) {
	c.UpdateWindowSize(width, height)
}

// Dispose releases the program and buffers. Safe to call more than once.
func (c *Cube) Dispose() {
	if c.program != nil {
		c.program.Delete()
	}
	for _, buf := range []*uint32{&c.positionBuffer, &c.colorBuffer, &c.indexBuffer} {
		if *buf != 0 {
			c.ctx.DeleteBuffer(*buf)
			*buf = 0
		}
	}
}
