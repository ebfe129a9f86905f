// Package view implements the scene animator: it owns one embedded 3D view,
// builds its scene, steps the cube animation every frame, reacts to keys and
// resizes, and releases everything when the view is torn down.
package view

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/cubedrop/internal/anim"
	"github.com/Faultbox/cubedrop/internal/engine/camera"
	"github.com/Faultbox/cubedrop/internal/engine/mesh"
	"github.com/Faultbox/cubedrop/internal/engine/scene"
	"github.com/Faultbox/cubedrop/internal/logger"
)

// Variant selects which animation a view plays.
type Variant int

const (
	VariantFalling Variant = iota
	VariantSpinning
)

func (v Variant) String() string {
	switch v {
	case VariantFalling:
		return "falling"
	case VariantSpinning:
		return "spinning"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Next returns the variant Tab switches to.
func (v Variant) Next() Variant {
	if v == VariantFalling {
		return VariantSpinning
	}
	return VariantFalling
}

// ParseVariant converts a config/flag string to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "falling", "fall", "":
		return VariantFalling, nil
	case "spinning", "spin":
		return VariantSpinning, nil
	}
	return 0, fmt.Errorf("unknown variant %q", s)
}

// Host is the surface a view is mounted on.
type Host interface {
	// DrawableSize returns the current size in pixels.
	DrawableSize() (width, height int)
}

// Renderer draws scenes and owns their GPU resources.
type Renderer interface {
	Upload(m *mesh.Mesh) error
	Release(m *mesh.Mesh)
	Resize(width, height int)
	Size() (width, height int)
	Render(s *scene.Scene, cam *camera.PerspectiveCamera)
}

// Config holds view settings.
type Config struct {
	Variant  Variant
	Falling  anim.FallingConfig
	SpinStep float64

	// MaxStepsPerFrame bounds catch-up after a stall.
	MaxStepsPerFrame int
}

// DefaultConfig returns the falling variant with default motion.
func DefaultConfig() Config {
	return Config{
		Variant:          VariantFalling,
		Falling:          anim.DefaultFallingConfig(),
		SpinStep:         anim.DefaultSpinStep,
		MaxStepsPerFrame: 5,
	}
}

// View is one mounted 3D animation.
type View struct {
	cfg      Config
	host     Host
	renderer Renderer
	log      *zap.Logger

	scene    *scene.Scene
	camera   *camera.PerspectiveCamera
	cube     *scene.Object
	animator anim.Animator
	falling  *anim.Falling // nil for the spinning variant

	uploaded []*mesh.Mesh

	accumulator float64
	events      []anim.Event

	mounted   bool
	cancelled bool
}

// New creates an unmounted view. Call Enter to set it up.
func New(cfg Config, host Host, r Renderer) *View {
	return &View{
		cfg:      cfg,
		host:     host,
		renderer: r,
		log:      logger.Named("view").With(zap.Stringer("variant", cfg.Variant)),
	}
}

// Variant returns the animation this view plays.
func (v *View) Variant() Variant { return v.cfg.Variant }

// Mounted reports whether setup completed.
func (v *View) Mounted() bool { return v.mounted }

// Cancelled reports whether the view was torn down.
func (v *View) Cancelled() bool { return v.cancelled }

// Scene returns the scene graph, nil before setup.
func (v *View) Scene() *scene.Scene { return v.scene }

// Camera returns the camera, nil before setup.
func (v *View) Camera() *camera.PerspectiveCamera { return v.camera }

// Falling returns the falling animator, nil for other variants or before setup.
func (v *View) Falling() *anim.Falling { return v.falling }

// frameStep returns the fixed simulation step in seconds.
func (v *View) frameStep() float64 {
	if v.cfg.Falling.FrameStep > 0 {
		return v.cfg.Falling.FrameStep
	}
	return 1.0 / 60
}
