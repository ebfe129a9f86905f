// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/cubedrop/internal/anim"
)

// Event types for game use
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
)

// Command is a shell-level action bound to a key outside the animation keys.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandSwitchVariant
	CommandScreenshot
	CommandToggleBounds
)

// Event represents a processed input event.
type Event struct {
	Type    EventType
	Key     anim.Key
	Command Command
	Width   int
	Height  int
}

// DrawableSizer reports the drawable size in pixels.
type DrawableSizer interface {
	DrawableSize() (int, int)
}

// Input handles all input processing.
type Input struct {
	events []Event
	sizer  DrawableSizer
}

// New creates a new input handler. Resize events report the drawable size
// from sizer when it is non-nil, otherwise the window event payload.
func New(sizer DrawableSizer) *Input {
	return &Input{
		events: make([]Event, 0, 16),
		sizer:  sizer,
	}
}

// Update polls SDL events and converts them to game events.
// Returns true if the game should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0] // Clear previous events

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				w, h := int(e.Data1), int(e.Data2)
				if i.sizer != nil {
					w, h = i.sizer.DrawableSize()
				}
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  w,
					Height: h,
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
				continue
			}
			key, cmd := Translate(e.Keysym.Scancode)
			i.events = append(i.events, Event{
				Type:    EventKeyDown,
				Key:     key,
				Command: cmd,
			})
		}
	}

	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Translate maps an SDL scancode to an animation key and a shell command.
// Unbound scancodes yield anim.KeyOther and CommandNone.
func Translate(sc sdl.Scancode) (anim.Key, Command) {
	switch sc {
	case sdl.SCANCODE_LEFT:
		return anim.KeyLeft, CommandNone
	case sdl.SCANCODE_RIGHT:
		return anim.KeyRight, CommandNone
	case sdl.SCANCODE_UP:
		return anim.KeyUp, CommandNone
	case sdl.SCANCODE_DOWN:
		return anim.KeyDown, CommandNone
	case sdl.SCANCODE_ESCAPE:
		return anim.KeyOther, CommandQuit
	case sdl.SCANCODE_TAB:
		return anim.KeyOther, CommandSwitchVariant
	case sdl.SCANCODE_F12:
		return anim.KeyOther, CommandScreenshot
	case sdl.SCANCODE_F3:
		return anim.KeyOther, CommandToggleBounds
	default:
		return anim.KeyOther, CommandNone
	}
}
