// Package states implements state management for the mounted views.
package states

import (
	"go.uber.org/multierr"

	"github.com/Faultbox/cubedrop/internal/anim"
)

// State is one mountable animation view.
type State interface {
	// Enter is called when entering this state.
	Enter() error

	// Exit is called when leaving this state.
	Exit() error

	// Update is called every frame with the wall time since the last frame.
	Update(dt float64) error

	// Render is called every frame to draw the state.
	Render() error

	// HandleKey processes a key press.
	HandleKey(key anim.Key) error

	// Resize is called when the drawable size changes.
	Resize(width, height int)
}

// EventSource is implemented by states that report animation events.
type EventSource interface {
	Events() []anim.Event
}

// Manager manages state transitions.
type Manager struct {
	current State
	next    State
}

// NewManager creates a new state manager.
func NewManager() *Manager {
	return &Manager{}
}

// Current returns the current state.
func (m *Manager) Current() State {
	return m.current
}

// Pending reports whether a state change is scheduled.
func (m *Manager) Pending() bool {
	return m.next != nil
}

// Change schedules a state change. It takes effect on the next Update.
func (m *Manager) Change(next State) {
	m.next = next
}

// Update processes state changes and updates current state.
func (m *Manager) Update(dt float64) error {
	// Handle state transition
	if m.next != nil {
		if m.current != nil {
			if err := m.current.Exit(); err != nil {
				return err
			}
		}
		m.current = m.next
		m.next = nil
		if err := m.current.Enter(); err != nil {
			return err
		}
	}

	// Update current state
	if m.current != nil {
		return m.current.Update(dt)
	}
	return nil
}

// Render renders the current state.
func (m *Manager) Render() error {
	if m.current != nil {
		return m.current.Render()
	}
	return nil
}

// HandleKey forwards a key press to the current state.
func (m *Manager) HandleKey(key anim.Key) error {
	if m.current != nil {
		return m.current.HandleKey(key)
	}
	return nil
}

// Resize forwards a drawable size change to the current state.
func (m *Manager) Resize(width, height int) {
	if m.current != nil {
		m.current.Resize(width, height)
	}
}

// Events returns the events raised by the current state during its last Update.
func (m *Manager) Events() []anim.Event {
	if src, ok := m.current.(EventSource); ok {
		return src.Events()
	}
	return nil
}

// Close exits the current state and drops any pending change.
func (m *Manager) Close() error {
	var err error
	if m.current != nil {
		err = multierr.Append(err, m.current.Exit())
		m.current = nil
	}
	m.next = nil
	return err
}
