package view

import (
	"go.uber.org/zap"

	"github.com/Faultbox/cubedrop/internal/anim"
)

// Update advances the animation by dt seconds of wall time in fixed steps.
// Events raised by those steps are available from Events until the next Update.
func (v *View) Update(dt float64) error {
	v.events = v.events[:0]
	if !v.active() {
		return nil
	}

	step := v.frameStep()
	v.accumulator += dt

	maxSteps := v.cfg.MaxStepsPerFrame
	if maxSteps <= 0 {
		maxSteps = 1
	}

	steps := 0
	for v.accumulator >= step && steps < maxSteps {
		v.Step()
		v.accumulator -= step
		steps++
	}
	if steps == maxSteps && v.accumulator >= step {
		// drop the backlog instead of spiralling
		v.accumulator = 0
	}
	return nil
}

// Step runs exactly one fixed animation step and returns its event.
func (v *View) Step() anim.Event {
	if !v.active() {
		return anim.EventNone
	}

	ev := v.animator.Step()
	v.syncCube()

	if ev != anim.EventNone {
		v.events = append(v.events, ev)
		fields := []zap.Field{zap.Stringer("event", ev)}
		if v.falling != nil {
			c := v.falling.Cell()
			fields = append(fields, zap.Int("cell_x", c.X), zap.Int("cell_z", c.Z))
		}
		v.log.Debug("animation event", fields...)
	}
	return ev
}

// Events returns the events raised during the last Update.
func (v *View) Events() []anim.Event {
	return v.events
}

// Render draws the current frame.
func (v *View) Render() error {
	if !v.active() {
		return nil
	}
	v.renderer.Render(v.scene, v.camera)
	return nil
}

// HandleKey maps a directional key to a roll. Other keys, and rolls the cube
// cannot make right now, are ignored.
func (v *View) HandleKey(key anim.Key) error {
	if !v.active() || v.falling == nil {
		return nil
	}

	dir, ok := anim.DirectionForKey(key)
	if !ok {
		return nil
	}

	accepted := v.falling.Roll(dir)
	v.log.Debug("roll request",
		zap.Stringer("key", key),
		zap.Bool("accepted", accepted),
	)
	return nil
}

// Resize matches the renderer output and camera aspect to a width x height
// surface. Nothing else changes.
func (v *View) Resize(width, height int) {
	if !v.active() || width <= 0 || height <= 0 {
		return
	}
	v.renderer.Resize(width, height)
	v.camera.Resize(width, height)
	v.log.Debug("view resized", zap.Int("width", width), zap.Int("height", height))
}

func (v *View) active() bool {
	return v.mounted && !v.cancelled
}

func (v *View) syncCube() {
	if v.cube == nil || v.animator == nil {
		return
	}
	tr := v.animator.Transform()
	v.cube.SetTransform(tr.Position, tr.Rotation)
}
