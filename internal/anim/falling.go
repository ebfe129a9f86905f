package anim

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/cubedrop/pkg/math"
)

// FallingConfig holds the tunables of the falling cube.
type FallingConfig struct {
	CubeSize     float64
	PlatformSize float64

	StartHeight  float64
	TargetHeight float64
	FallDuration float64 // seconds

	FrameStep float64 // seconds advanced per Step
	RollStep  float64 // radians added to the roll angle per Step

	WobbleAmplitude float64 // radians at the start of the fall, decays to 0

	StartCell Cell
}

// DefaultFallingConfig returns a unit cube dropped onto a 3x3 platform.
func DefaultFallingConfig() FallingConfig {
	return FallingConfig{
		CubeSize:        1,
		PlatformSize:    3,
		StartHeight:     5,
		TargetHeight:    -1, // resting on the platform floor
		FallDuration:    2,
		FrameStep:       1.0 / 60,
		RollStep:        gomath.Pi / 30,
		WobbleAmplitude: 0.3,
		StartCell:       Cell{X: 0, Z: -1},
	}
}

// Validate reports configuration values that would break the motion.
func (c FallingConfig) Validate() error {
	switch {
	case c.CubeSize <= 0:
		return fmt.Errorf("cube size must be positive, got %v", c.CubeSize)
	case c.PlatformSize < c.CubeSize:
		return fmt.Errorf("platform size %v smaller than cube size %v", c.PlatformSize, c.CubeSize)
	case c.FallDuration <= 0:
		return fmt.Errorf("fall duration must be positive, got %v", c.FallDuration)
	case c.FrameStep <= 0:
		return fmt.Errorf("frame step must be positive, got %v", c.FrameStep)
	case c.RollStep <= 0 || c.RollStep > QuarterTurn:
		return fmt.Errorf("roll step must be in (0, pi/2], got %v", c.RollStep)
	case !c.CellInBounds(c.StartCell):
		return fmt.Errorf("start cell %+v lies outside the platform (bound %v)", c.StartCell, c.Bound())
	}
	return nil
}

// Bound returns the largest allowed |coordinate| of the cube centre.
func (c FallingConfig) Bound() float64 {
	return c.PlatformSize/2 - c.CubeSize/2
}

// CellInBounds reports whether a cube centred on cell stays within the platform.
func (c FallingConfig) CellInBounds(cell Cell) bool {
	x, z := float64(cell.X)*c.CubeSize, float64(cell.Z)*c.CubeSize
	bound := c.Bound()
	return gomath.Abs(x) <= bound && gomath.Abs(z) <= bound
}

// Falling drops a cube with a bounce and, once it has landed, rolls it one cell
// at a time across the platform.
type Falling struct {
	cfg FallingConfig

	elapsed   float64
	fallStep  int
	fallSteps int // steps until landing
	rollSteps int // steps per roll
	landed    bool

	cell Cell
	roll RollState

	transform Transform
}

// NewFalling creates a cube at the start height above its start cell.
func NewFalling(cfg FallingConfig) *Falling {
	f := &Falling{
		cfg:       cfg,
		cell:      cfg.StartCell,
		roll:      Idle{},
		fallSteps: stepsToCover(cfg.FallDuration, cfg.FrameStep),
		rollSteps: stepsToCover(QuarterTurn, cfg.RollStep),
	}
	f.transform = f.PoseAt(0)
	return f
}

// Config returns the configuration the animator was built with.
func (f *Falling) Config() FallingConfig { return f.cfg }

// Elapsed returns the fall time so far, frozen at the fall duration.
func (f *Falling) Elapsed() float64 { return f.elapsed }

// Landed reports whether the fall has finished.
func (f *Falling) Landed() bool { return f.landed }

// Cell returns the grid cell the cube rests on.
func (f *Falling) Cell() Cell { return f.cell }

// RollState returns the current roll state.
func (f *Falling) RollState() RollState { return f.roll }

// Transform returns the current pose.
func (f *Falling) Transform() Transform { return f.transform }

// PoseAt returns the fall pose at elapsed time t. For t at or past the fall
// duration the cube sits exactly at the target height with zero rotation.
func (f *Falling) PoseAt(t float64) Transform {
	x, z := f.cellXZ(f.cell)
	if t >= f.cfg.FallDuration {
		return Transform{
			Position: math.Vec3{X: float32(x), Y: float32(f.cfg.TargetHeight), Z: float32(z)},
		}
	}
	if t < 0 {
		t = 0
	}

	progress := t / f.cfg.FallDuration
	y := f.cfg.StartHeight + (f.cfg.TargetHeight-f.cfg.StartHeight)*EaseOutBounce(progress)

	wobble := f.cfg.WobbleAmplitude * (1 - progress)
	return Transform{
		Position: math.Vec3{X: float32(x), Y: float32(y), Z: float32(z)},
		Rotation: math.Vec3{
			X: float32(gomath.Sin(t*12) * wobble),
			Z: float32(gomath.Cos(t*9) * wobble),
		},
	}
}

// Step advances the animation by one frame.
func (f *Falling) Step() Event {
	if !f.landed {
		f.fallStep++
		f.elapsed = float64(f.fallStep) * f.cfg.FrameStep
		if f.fallStep >= f.fallSteps {
			f.elapsed = f.cfg.FallDuration
			f.landed = true
			f.transform = f.PoseAt(f.elapsed)
			return EventLanded
		}
		f.transform = f.PoseAt(f.elapsed)
		return EventNone
	}

	rolling, ok := f.roll.(Rolling)
	if !ok {
		return EventNone
	}

	rolling.Frames++
	rolling.Angle = gomath.Min(float64(rolling.Frames)*f.cfg.RollStep, QuarterTurn)
	if rolling.Frames >= f.rollSteps {
		f.cell = f.cell.Add(rolling.Direction)
		f.roll = Idle{}
		f.transform = f.restingPose()
		return EventRollCompleted
	}

	visual := EaseOutQuad(rolling.Angle/QuarterTurn) * QuarterTurn
	dx, dy, dz := pivotOffset(rolling.Direction, visual, f.cfg.CubeSize/2)
	rx, rz := pivotRotation(rolling.Direction, visual)

	rest := f.restingPose()
	f.transform = Transform{
		Position: math.Vec3{
			X: rest.Position.X + float32(dx),
			Y: rest.Position.Y + float32(dy),
			Z: rest.Position.Z + float32(dz),
		},
		Rotation: math.Vec3{X: float32(rx), Z: float32(rz)},
	}
	f.roll = rolling
	return EventNone
}

// CanRoll reports whether a roll in dir would be accepted right now.
func (f *Falling) CanRoll(dir Direction) bool {
	if !f.landed {
		return false
	}
	if _, idle := f.roll.(Idle); !idle {
		return false
	}
	return f.InBounds(f.cell.Add(dir))
}

// Roll starts rolling towards the neighbouring cell in dir. It returns false and
// changes nothing if the cube has not landed, is already rolling, or the
// destination lies outside the platform.
func (f *Falling) Roll(dir Direction) bool {
	if !f.CanRoll(dir) {
		return false
	}
	f.roll = Rolling{Direction: dir}
	return true
}

// InBounds reports whether the cube centred on c stays within the platform.
func (f *Falling) InBounds(c Cell) bool {
	return f.cfg.CellInBounds(c)
}

func (f *Falling) restingPose() Transform {
	x, z := f.cellXZ(f.cell)
	return Transform{
		Position: math.Vec3{X: float32(x), Y: float32(f.cfg.TargetHeight), Z: float32(z)},
	}
}

func (f *Falling) cellXZ(c Cell) (x, z float64) {
	return float64(c.X) * f.cfg.CubeSize, float64(c.Z) * f.cfg.CubeSize
}
