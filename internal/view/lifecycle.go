package view

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/cubedrop/internal/anim"
	"github.com/Faultbox/cubedrop/internal/engine/camera"
	"github.com/Faultbox/cubedrop/internal/engine/scene"
)

// Enter sets the view up: scene, camera sized to the host, lights, meshes.
// If the host has no area yet, setup is skipped and the view stays inert.
func (v *View) Enter() error {
	if v.mounted || v.cancelled {
		return nil
	}
	if v.host == nil || v.renderer == nil {
		v.log.Warn("no host or renderer, skipping setup")
		return nil
	}

	width, height := v.host.DrawableSize()
	if width <= 0 || height <= 0 {
		v.log.Warn("host has no drawable area, skipping setup",
			zap.Int("width", width),
			zap.Int("height", height),
		)
		return nil
	}

	switch v.cfg.Variant {
	case VariantFalling:
		if err := v.cfg.Falling.Validate(); err != nil {
			return fmt.Errorf("falling config: %w", err)
		}
		v.falling = anim.NewFalling(v.cfg.Falling)
		v.animator = v.falling
		v.scene = scene.BuildFalling(v.cfg.Falling)
	case VariantSpinning:
		v.animator = anim.NewSpinning(v.cfg.SpinStep)
		v.scene = scene.BuildSpinning()
	default:
		return fmt.Errorf("unsupported variant %v", v.cfg.Variant)
	}
	v.cube = v.scene.Find(scene.CubeName)

	v.camera = camera.NewPerspectiveCamera(width, height)
	v.camera.LookAt(v.scene.Eye, v.scene.Target)

	for _, obj := range v.scene.Objects {
		if err := v.renderer.Upload(obj.Mesh); err != nil {
			v.releaseMeshes()
			v.dropScene()
			return fmt.Errorf("upload %s: %w", obj.Name, err)
		}
		v.uploaded = append(v.uploaded, obj.Mesh)
	}
	v.renderer.Resize(width, height)
	v.syncCube()

	v.mounted = true
	v.log.Info("view mounted",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("objects", len(v.scene.Objects)),
	)
	return nil
}

// Exit tears the view down. After Exit no further frame, key or resize
// mutates anything. Calling Exit more than once is harmless.
func (v *View) Exit() error {
	if v.cancelled {
		return nil
	}
	v.cancelled = true

	v.releaseMeshes()
	if v.scene != nil {
		v.scene.Clear()
	}
	v.events = nil
	v.animator = nil
	v.falling = nil
	v.cube = nil

	if v.mounted {
		v.log.Info("view unmounted")
	}
	v.mounted = false
	return nil
}

func (v *View) releaseMeshes() {
	if v.renderer == nil {
		return
	}
	for _, m := range v.uploaded {
		v.renderer.Release(m)
	}
	v.uploaded = nil
}

// dropScene forgets a partially built setup so a later Enter starts clean.
func (v *View) dropScene() {
	v.scene = nil
	v.camera = nil
	v.cube = nil
	v.animator = nil
	v.falling = nil
	v.accumulator = 0
}
