package graphics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Transforms produces the model, view and projection matrices for a draw.
// Implementations must be deterministic; matrices are column-major.
type Transforms interface {
	ModelMatrix(t float32) mgl32.Mat4
	ViewMatrix() mgl32.Mat4
	ProjectionMatrix(aspectRatio float32) mgl32.Mat4
}

// Camera is a fixed orbit camera looking at the origin
type Camera struct {
	FOV       float32 // vertical, degrees
	NearPlane float32
	FarPlane  float32
	Distance  float32
	Elevation float32 // degrees above the XZ plane
}

// NewCamera returns a camera 5 units out, 30 degrees up, with a 70 degree FOV
func NewCamera() *Camera {
	return &Camera{
		FOV:       70.0,
		NearPlane: 0.01,
		FarPlane:  50.0,
		Distance:  5.0,
		Elevation: 30.0,
	}
}

// ModelMatrix spins the model t radians about the Y axis.
func (c *Camera) ModelMatrix(t float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DY(t)
}

// ViewMatrix looks from the orbit position at the origin with +Y up
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	elev := float64(mgl32.DegToRad(c.Elevation))
	eye := mgl32.Vec3{
		0,
		c.Distance * float32(math.Sin(elev)),
		c.Distance * float32(math.Cos(elev)),
	}
	return mgl32.LookAtV(eye, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
}

// ProjectionMatrix builds the perspective projection for the given width/height ratio
func (c *Camera) ProjectionMatrix(aspectRatio float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspectRatio, c.NearPlane, c.FarPlane)
}
