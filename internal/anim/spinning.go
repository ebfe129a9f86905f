package anim

import "github.com/Faultbox/cubedrop/pkg/math"

// DefaultSpinStep is the per-frame rotation increment of the spinning cube.
const DefaultSpinStep = 0.01

// Spinning turns a cube about X and Y by a fixed increment every frame.
type Spinning struct {
	step   float64
	rx, ry float64
	frames uint64
}

// NewSpinning creates a spinning cube. A non-positive step falls back to
// DefaultSpinStep.
func NewSpinning(step float64) *Spinning {
	if step <= 0 {
		step = DefaultSpinStep
	}
	return &Spinning{step: step}
}

// Step advances the rotation by one frame. The angles are not wrapped.
func (s *Spinning) Step() Event {
	s.frames++
	s.rx = float64(s.frames) * s.step
	s.ry = float64(s.frames) * s.step
	return EventNone
}

// Frames returns the number of steps taken.
func (s *Spinning) Frames() uint64 { return s.frames }

// Transform returns the current pose. The cube stays at the origin.
func (s *Spinning) Transform() Transform {
	return Transform{Rotation: math.Vec3{X: float32(s.rx), Y: float32(s.ry)}}
}
