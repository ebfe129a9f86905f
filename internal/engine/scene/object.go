package scene

import (
	"github.com/Faultbox/cubedrop/internal/engine/mesh"
	"github.com/Faultbox/cubedrop/pkg/math"
)

// Material describes the Phong surface of an object.
type Material struct {
	Color     [3]float32
	Shininess float32
	Opacity   float32 // 1 = opaque
}

// Transparent reports whether the material needs blending.
func (m Material) Transparent() bool {
	return m.Opacity < 1
}

// Object is a mesh placed in the scene.
type Object struct {
	Name     string
	Mesh     *mesh.Mesh
	Material Material

	Position math.Vec3
	Rotation math.Vec3 // XYZ Euler angles, radians
	Scale    math.Vec3

	Visible bool
}

// NewObject creates a visible object at the origin with unit scale.
func NewObject(name string, m *mesh.Mesh, mat Material) *Object {
	return &Object{
		Name:     name,
		Mesh:     m,
		Material: mat,
		Scale:    math.Vec3{X: 1, Y: 1, Z: 1},
		Visible:  true,
	}
}

// ModelMatrix returns the object's local-to-world transform.
func (o *Object) ModelMatrix() math.Mat4 {
	return math.Compose(o.Position, o.Rotation, o.Scale)
}

// SetTransform copies a position and rotation onto the object.
func (o *Object) SetTransform(position, rotation math.Vec3) {
	o.Position = position
	o.Rotation = rotation
}
