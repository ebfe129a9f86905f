// Package scene holds the scene graph of an animated view: its objects, lights,
// background and camera placement. It owns no GPU state; a renderer draws it.
package scene

import (
	"github.com/Faultbox/cubedrop/internal/engine/lighting"
	"github.com/Faultbox/cubedrop/pkg/math"
)

// Scene is the container of everything a view draws.
type Scene struct {
	Background [3]float32

	Objects []*Object
	Lights  lighting.Rig

	// Camera placement
	Eye    math.Vec3
	Target math.Vec3
}

// New creates an empty scene with a black background.
func New() *Scene {
	return &Scene{}
}

// Add appends an object and returns it.
func (s *Scene) Add(obj *Object) *Object {
	s.Objects = append(s.Objects, obj)
	return obj
}

// Find returns the object with the given name, or nil.
func (s *Scene) Find(name string) *Object {
	for _, obj := range s.Objects {
		if obj.Name == name {
			return obj
		}
	}
	return nil
}

// Opaque returns the objects drawn without blending, in insertion order.
func (s *Scene) Opaque() []*Object {
	var out []*Object
	for _, obj := range s.Objects {
		if !obj.Material.Transparent() {
			out = append(out, obj)
		}
	}
	return out
}

// Transparent returns the objects drawn with blending, in insertion order.
func (s *Scene) Transparent() []*Object {
	var out []*Object
	for _, obj := range s.Objects {
		if obj.Material.Transparent() {
			out = append(out, obj)
		}
	}
	return out
}

// Clear removes all objects and lights.
func (s *Scene) Clear() {
	s.Objects = nil
	s.Lights = lighting.Rig{}
}
