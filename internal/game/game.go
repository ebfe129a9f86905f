// Package game implements the main loop and wires the views to the engine.
package game

import (
	"fmt"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/cubedrop/internal/anim"
	"github.com/Faultbox/cubedrop/internal/config"
	"github.com/Faultbox/cubedrop/internal/engine/audio"
	"github.com/Faultbox/cubedrop/internal/engine/debug"
	"github.com/Faultbox/cubedrop/internal/engine/input"
	"github.com/Faultbox/cubedrop/internal/engine/renderer"
	"github.com/Faultbox/cubedrop/internal/engine/window"
	"github.com/Faultbox/cubedrop/internal/game/states"
	"github.com/Faultbox/cubedrop/internal/logger"
	"github.com/Faultbox/cubedrop/internal/view"
)

var _ states.State = (*view.View)(nil)

// Title is the window title.
const Title = "CubeDrop"

// Game is the main application instance.
type Game struct {
	config   *config.Config
	viewCfg  view.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	audio    *audio.Manager
	states   *states.Manager
	shots    *debug.ScreenshotCapture
	variant  view.Variant

	wantShot bool // capture after the next render
}

// New creates a new game instance.
func New(cfg *config.Config) (*Game, error) {
	viewCfg, err := cfg.ViewConfig()
	if err != nil {
		return nil, fmt.Errorf("scene config: %w", err)
	}
	format, err := cfg.ScreenshotFormat()
	if err != nil {
		return nil, fmt.Errorf("debug config: %w", err)
	}

	logger.Info("initializing",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Stringer("variant", viewCfg.Variant),
	)

	g := &Game{
		config:  cfg,
		viewCfg: viewCfg,
		variant: viewCfg.Variant,
		states:  states.NewManager(),
		shots:   debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "cubedrop", format),
	}

	// Create window (this also creates OpenGL context)
	g.window, err = window.New(window.Config{
		Title:      windowTitle(g.variant),
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	w, h := g.window.DrawableSize()
	g.renderer, err = renderer.New(renderer.Config{
		Width:      w,
		Height:     h,
		ShowBounds: cfg.Debug.ShowBounds,
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.input = input.New(g.window)

	g.audio = audio.New()
	g.audio.SetMasterVolume(float64(cfg.Audio.MasterVolume))
	g.audio.SetSFXVolume(float64(cfg.Audio.SFXVolume))
	g.audio.SetMuted(cfg.Audio.Muted)
	if !cfg.Audio.Muted {
		if err := g.audio.Init(); err != nil {
			// Sound is optional
			logger.Warn("audio unavailable", zap.Error(err))
		}
	}

	g.states.Change(g.newView(g.variant))

	logger.Info("initialized successfully")
	return g, nil
}

// newView creates an unmounted view of the given variant.
func (g *Game) newView(variant view.Variant) *view.View {
	cfg := g.viewCfg
	cfg.Variant = variant
	return view.New(cfg, g.window, g.renderer)
}

// Run starts the main loop.
func (g *Game) Run() error {
	g.running = true

	// Timing
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting main loop")

	for g.running {
		// Calculate delta time
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Process input
		if g.input.Update() {
			// Quit event received
			g.running = false
			break
		}

		for _, event := range g.input.Events() {
			if err := g.handleEvent(event); err != nil {
				return err
			}
		}
		if !g.running {
			break
		}

		// 2. Update views
		if err := g.states.Update(dt); err != nil {
			return fmt.Errorf("update error: %w", err)
		}
		g.playCues(g.states.Events())

		// 3. Render
		if err := g.states.Render(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}

		if g.wantShot {
			g.screenshot()
			g.wantShot = false
		}

		// 4. Present (swap buffers)
		g.window.SwapBuffers()

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			if g.config.Debug.ShowFPS {
				logger.Debug("fps", zap.Int("count", frameCount), zap.Float64("dt_ms", dt*1000))
			}
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// handleEvent dispatches one input event.
func (g *Game) handleEvent(event input.Event) error {
	switch event.Type {
	case input.EventWindowResize:
		g.states.Resize(event.Width, event.Height)

	case input.EventKeyDown:
		switch event.Command {
		case input.CommandQuit:
			g.running = false
		case input.CommandSwitchVariant:
			g.switchVariant()
		case input.CommandScreenshot:
			g.wantShot = true
		case input.CommandToggleBounds:
			g.renderer.SetShowBounds(!g.renderer.ShowBounds())
		default:
			if event.Key == anim.KeyOther {
				return nil
			}
			if err := g.states.HandleKey(event.Key); err != nil {
				return fmt.Errorf("key %v: %w", event.Key, err)
			}
		}
	}
	return nil
}

// switchVariant tears down the current view and mounts the other animation.
func (g *Game) switchVariant() {
	if g.states.Pending() {
		return
	}
	g.variant = g.variant.Next()
	logger.Info("switching variant", zap.Stringer("variant", g.variant))
	g.states.Change(g.newView(g.variant))
	g.window.SetTitle(windowTitle(g.variant))
}

// windowTitle names the app and the animation it is showing.
func windowTitle(v view.Variant) string {
	return Title + " - " + v.String()
}

// screenshot writes the back buffer to disk. Call it before SwapBuffers.
func (g *Game) screenshot() {
	pixels, w, h := g.renderer.ReadPixels()
	path, err := g.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// playCues plays the sound for each animation event.
func (g *Game) playCues(events []anim.Event) {
	for _, ev := range events {
		cue, ok := audio.CueFor(ev)
		if !ok || !g.audio.IsInitialized() {
			continue
		}
		if err := g.audio.Play(cue); err != nil {
			logger.Warn("cue failed", zap.Stringer("cue", cue), zap.Error(err))
		}
	}
}

// Close tears down the active view and releases engine resources.
func (g *Game) Close() error {
	logger.Info("closing")

	var err error
	if g.states != nil {
		err = multierr.Append(err, g.states.Close())
	}
	if g.audio != nil {
		g.audio.Close()
	}
	if g.renderer != nil {
		err = multierr.Append(err, g.renderer.Close())
	}
	if g.window != nil {
		g.window.Close()
	}
	return err
}
