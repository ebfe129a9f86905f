// Package lighting provides the light types used by the scene shader.
package lighting

import (
	"math"
)

// MaxDirectionalLights is the number of directional lights the shader supports.
const MaxDirectionalLights = 3

// AmbientLight lights every surface evenly.
type AmbientLight struct {
	Color     [3]float32
	Intensity float32
}

// DirectionalLight is an infinitely distant light.
// Direction points from the surface towards the light.
type DirectionalLight struct {
	Direction [3]float32
	Color     [3]float32
	Intensity float32
}

// Rig is the set of lights in a scene.
type Rig struct {
	Ambient     AmbientLight
	Directional []DirectionalLight
}

// NewDirectionalLight creates a light shining from position towards the origin,
// the way a light placed in the scene and aimed at its centre behaves.
func NewDirectionalLight(position [3]float32, color [3]float32, intensity float32) DirectionalLight {
	return DirectionalLight{
		Direction: normalize(position),
		Color:     color,
		Intensity: intensity,
	}
}

// AddDirectional appends a light. It returns false when the rig is full.
func (r *Rig) AddDirectional(l DirectionalLight) bool {
	if len(r.Directional) >= MaxDirectionalLights {
		return false
	}
	r.Directional = append(r.Directional, l)
	return true
}

// Uniforms flattens the directional lights into arrays sized for the shader.
// Colours are premultiplied by intensity.
func (r *Rig) Uniforms() (dirs, colors [MaxDirectionalLights * 3]float32, count int32) {
	for i, l := range r.Directional {
		if i >= MaxDirectionalLights {
			break
		}
		for c := 0; c < 3; c++ {
			dirs[i*3+c] = l.Direction[c]
			colors[i*3+c] = l.Color[c] * l.Intensity
		}
		count++
	}
	return dirs, colors, count
}

// AmbientColor returns the ambient colour premultiplied by intensity.
func (r *Rig) AmbientColor() [3]float32 {
	a := r.Ambient
	return [3]float32{a.Color[0] * a.Intensity, a.Color[1] * a.Intensity, a.Color[2] * a.Intensity}
}

// HexColor converts a 0xRRGGBB value to an RGB triple in the 0-1 range.
func HexColor(hex uint32) [3]float32 {
	return [3]float32{
		float32((hex>>16)&0xff) / 255,
		float32((hex>>8)&0xff) / 255,
		float32(hex&0xff) / 255,
	}
}

func normalize(v [3]float32) [3]float32 {
	l := float32(math.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])))
	if l == 0 {
		return [3]float32{0, 1, 0}
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}
