// Package camera provides camera implementations for 3D rendering.
package camera

import (
	gomath "math"

	"github.com/Faultbox/cubedrop/pkg/math"
)

// Default projection parameters.
const (
	DefaultFOV  = 75.0 // degrees
	DefaultNear = 0.1
	DefaultFar  = 1000.0
)

// PerspectiveCamera looks from a fixed position at a target point.
type PerspectiveCamera struct {
	// Vertical field of view in degrees
	FOV float32

	// Width / height of the output surface
	Aspect float32

	// Clip planes
	Near float32
	Far  float32

	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3
}

// NewPerspectiveCamera creates a camera with the default projection sized to a
// width x height surface, looking at the origin.
func NewPerspectiveCamera(width, height int) *PerspectiveCamera {
	c := &PerspectiveCamera{
		FOV:    DefaultFOV,
		Aspect: 1,
		Near:   DefaultNear,
		Far:    DefaultFar,
		Up:     math.Vec3{X: 0, Y: 1, Z: 0},
	}
	c.Resize(width, height)
	return c
}

// Resize recomputes the aspect ratio for a width x height surface.
// Non-positive sizes are ignored.
func (c *PerspectiveCamera) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// LookAt places the camera at position, facing target.
func (c *PerspectiveCamera) LookAt(position, target math.Vec3) {
	c.Position = position
	c.Target = target
}

// ProjectionMatrix returns the perspective projection.
func (c *PerspectiveCamera) ProjectionMatrix() math.Mat4 {
	fovY := float32(float64(c.FOV) * gomath.Pi / 180.0)
	return math.Perspective(fovY, c.Aspect, c.Near, c.Far)
}

// ViewMatrix returns the view matrix for this camera.
func (c *PerspectiveCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Target, c.Up)
}

// ViewProjection returns projection * view.
func (c *PerspectiveCamera) ViewProjection() math.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}
