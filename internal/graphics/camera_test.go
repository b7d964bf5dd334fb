package graphics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// near compares componentwise with an absolute tolerance; mgl32's
// ApproxEqualThreshold tightens the bound whenever one side is exactly 0.
func near(got, want []float32) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if math.Abs(float64(got[i]-want[i])) > 1e-5 {
			return false
		}
	}
	return true
}

func TestCameraModelMatrix(t *testing.T) {
	c := NewCamera()
	if id, m := mgl32.Ident4(), c.ModelMatrix(0); !near(m[:], id[:]) {
		t.Errorf("ModelMatrix(0) should be identity, got %v", c.ModelMatrix(0))
	}

	// a quarter turn about Y carries +X to -Z
	p := c.ModelMatrix(mgl32.DegToRad(90)).Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	if !near(p[:], []float32{0, 0, -1, 1}) {
		t.Errorf("rotated +X: got %v, want (0,0,-1,1)", p)
	}

	if c.ModelMatrix(0.3) != c.ModelMatrix(0.3) {
		t.Error("ModelMatrix must be deterministic")
	}
}

func TestCameraViewMatrix(t *testing.T) {
	c := NewCamera()
	origin := c.ViewMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if !near(origin[:], []float32{0, 0, -c.Distance, 1}) {
		t.Errorf("origin in view space: got %v, want (0,0,%v,1)", origin, -c.Distance)
	}
}

func TestCameraProjectionAspect(t *testing.T) {
	c := NewCamera()
	square := c.ProjectionMatrix(1)
	wide := c.ProjectionMatrix(2)

	if !mgl32.FloatEqualThreshold(square[0], wide[0]*2, 1e-5) {
		t.Errorf("x scale should halve when aspect doubles: %v vs %v", square[0], wide[0])
	}
	if !mgl32.FloatEqualThreshold(square[5], wide[5], 1e-6) {
		t.Errorf("y scale should not depend on aspect: %v vs %v", square[5], wide[5])
	}
}
