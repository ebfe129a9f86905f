package anim

import "math"

// QuarterTurn is the angle of one complete roll.
const QuarterTurn = math.Pi / 2

// RollState is either Idle or Rolling.
type RollState interface {
	isRollState()
}

// Idle means no roll is in progress.
type Idle struct{}

// Rolling is an in-progress roll towards the neighbouring cell in Direction.
// Frames counts the steps taken so far and Angle is the raw (un-eased) roll
// angle derived from it, capped at QuarterTurn.
type Rolling struct {
	Direction Direction
	Frames    int
	Angle     float64
}

func (Idle) isRollState()    {}
func (Rolling) isRollState() {}

// Cell is a position on the platform grid.
type Cell struct {
	X, Z int
}

// Add returns the cell one step away in dir.
func (c Cell) Add(dir Direction) Cell {
	return Cell{X: c.X + dir.DX, Z: c.Z + dir.DZ}
}

// stepsToCover returns how many steps of size step it takes to cover total.
// Float noise in the division is absorbed so pi/2 in steps of pi/30 is 15.
func stepsToCover(total, step float64) int {
	n := int(math.Ceil(total/step - 1e-9))
	if n < 1 {
		n = 1
	}
	return n
}

// pivotOffset returns the offset of the cube centre while it tips over its
// bottom edge. visual is the eased roll angle.
func pivotOffset(dir Direction, visual, radius float64) (dx, dy, dz float64) {
	horizontal := radius * (1 - math.Cos(visual))
	vertical := radius * math.Sin(visual)
	return float64(dir.DX) * horizontal, vertical, float64(dir.DZ) * horizontal
}

// pivotRotation returns the cube rotation for a roll in dir at the eased angle.
// Rolling towards +X turns the cube clockwise about Z, rolling towards +Z turns
// it counter-clockwise about X.
func pivotRotation(dir Direction, visual float64) (rx, rz float64) {
	return float64(dir.DZ) * visual, -float64(dir.DX) * visual
}
