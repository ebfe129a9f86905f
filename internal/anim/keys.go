package anim

// Key is an engine-independent key identifier.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyOther
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyNone:
		return "none"
	default:
		return "other"
	}
}

// Direction is a unit step on the platform grid.
type Direction struct {
	DX, DZ int
}

// Roll directions.
var (
	DirLeft    = Direction{DX: -1}
	DirRight   = Direction{DX: 1}
	DirForward = Direction{DZ: -1}
	DirBack    = Direction{DZ: 1}
)

// DirectionForKey returns the roll direction bound to a key.
// ok is false for keys that do not roll the cube.
func DirectionForKey(k Key) (dir Direction, ok bool) {
	switch k {
	case KeyLeft:
		return DirLeft, true
	case KeyRight:
		return DirRight, true
	case KeyUp:
		return DirForward, true
	case KeyDown:
		return DirBack, true
	}
	return Direction{}, false
}
