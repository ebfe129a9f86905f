// Package anim implements the scripted cube motion: the falling/bouncing/rolling
// state machine and the spinning variant. Everything here is pure arithmetic
// stepped at a fixed rate; nothing touches the GPU or the window.
package anim

// Bounce curve constants.
const (
	bounceN1 = 7.5625
	bounceD1 = 2.75
)

// EaseOutBounce maps t in [0,1] to a decelerating bounce that comes to rest at 1.
// The curve has four parabolic segments split at 1/2.75, 2/2.75 and 2.5/2.75.
// Inputs outside [0,1] are clamped.
func EaseOutBounce(t float64) float64 {
	t = clamp01(t)
	if t == 1 {
		return 1
	}

	switch {
	case t < 1/bounceD1:
		return bounceN1 * t * t
	case t < 2/bounceD1:
		t -= 1.5 / bounceD1
		return bounceN1*t*t + 0.75
	case t < 2.5/bounceD1:
		t -= 2.25 / bounceD1
		return bounceN1*t*t + 0.9375
	default:
		t -= 2.625 / bounceD1
		return bounceN1*t*t + 0.984375
	}
}

// EaseOutQuad maps t in [0,1] to 1-(1-t)^2. Inputs outside [0,1] are clamped.
func EaseOutQuad(t float64) float64 {
	t = clamp01(t)
	return 1 - (1-t)*(1-t)
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
