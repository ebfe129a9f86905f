package anim

import "github.com/Faultbox/cubedrop/pkg/math"

// Transform is the pose of an animated object.
type Transform struct {
	Position math.Vec3
	Rotation math.Vec3 // XYZ Euler angles, radians
}

// Event reports a transition that happened during a step.
type Event int

const (
	EventNone Event = iota
	EventLanded
	EventRollCompleted
)

func (e Event) String() string {
	switch e {
	case EventLanded:
		return "landed"
	case EventRollCompleted:
		return "roll_completed"
	default:
		return "none"
	}
}

// Animator advances one object by fixed steps.
type Animator interface {
	Step() Event
	Transform() Transform
}
