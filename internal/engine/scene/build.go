package scene

import (
	"github.com/Faultbox/cubedrop/internal/anim"
	"github.com/Faultbox/cubedrop/internal/engine/lighting"
	"github.com/Faultbox/cubedrop/internal/engine/mesh"
	"github.com/Faultbox/cubedrop/pkg/math"
)

// Object names used by the views.
const (
	CubeName     = "cube"
	PlatformName = "platform"
)

var (
	cubeMaterial = Material{
		Color:     lighting.HexColor(0x44aa88),
		Shininess: 100,
		Opacity:   1,
	}
	platformMaterial = Material{
		Color:     lighting.HexColor(0x8888ff),
		Shininess: 30,
		Opacity:   0.3,
	}
)

// BuildFalling creates the falling-cube scene: a cube above a translucent
// platform, three directional lights and a camera looking down at the platform.
func BuildFalling(cfg anim.FallingConfig) *Scene {
	s := New()
	s.Background = lighting.HexColor(0x1a1a2e)

	s.Add(NewObject(PlatformName, mesh.Cube(PlatformName, float32(cfg.PlatformSize)), platformMaterial))
	cube := s.Add(NewObject(CubeName, mesh.Cube(CubeName, float32(cfg.CubeSize)), cubeMaterial))
	cube.Position = math.Vec3{
		X: float32(float64(cfg.StartCell.X) * cfg.CubeSize),
		Y: float32(cfg.StartHeight),
		Z: float32(float64(cfg.StartCell.Z) * cfg.CubeSize),
	}

	white := [3]float32{1, 1, 1}
	s.Lights.Ambient = lighting.AmbientLight{Color: lighting.HexColor(0x404040), Intensity: 1.5}
	s.Lights.AddDirectional(lighting.NewDirectionalLight([3]float32{5, 10, 7.5}, white, 1))
	s.Lights.AddDirectional(lighting.NewDirectionalLight([3]float32{-5, 5, -5}, white, 0.5))
	s.Lights.AddDirectional(lighting.NewDirectionalLight([3]float32{0, -5, 5}, white, 0.3))

	size := float32(cfg.PlatformSize)
	s.Eye = math.Vec3{X: size * 1.4, Y: size * 1.4, Z: size * 2}
	s.Target = math.Vec3{}
	return s
}

// BuildSpinning creates the spinning-cube scene: one cube at the origin lit by
// two directional lights.
func BuildSpinning() *Scene {
	s := New()
	s.Background = lighting.HexColor(0x202025)

	s.Add(NewObject(CubeName, mesh.Cube(CubeName, 1), cubeMaterial))

	white := [3]float32{1, 1, 1}
	s.Lights.Ambient = lighting.AmbientLight{Color: lighting.HexColor(0x404040), Intensity: 1}
	s.Lights.AddDirectional(lighting.NewDirectionalLight([3]float32{1, 2, 4}, white, 1))
	s.Lights.AddDirectional(lighting.NewDirectionalLight([3]float32{-1, -2, -4}, white, 0.4))

	s.Eye = math.Vec3{X: 0, Y: 0, Z: 3}
	s.Target = math.Vec3{}
	return s
}
