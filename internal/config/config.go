// Package config handles configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/cubedrop/internal/anim"
	"github.com/Faultbox/cubedrop/internal/engine/debug"
	"github.com/Faultbox/cubedrop/internal/view"
)

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Audio    AudioConfig    `yaml:"audio"`
	Debug    DebugConfig    `yaml:"debug"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// SceneConfig holds the animation settings.
type SceneConfig struct {
	Variant      string  `yaml:"variant"` // falling or spinning
	CubeSize     float64 `yaml:"cube_size"`
	PlatformSize float64 `yaml:"platform_size"`
	StartHeight  float64 `yaml:"start_height"`
	FallDuration float64 `yaml:"fall_duration"` // seconds
	FPS          int     `yaml:"fps"`           // fixed simulation rate
	Wobble       float64 `yaml:"wobble"`
	SpinStep     float64 `yaml:"spin_step"` // radians per frame
}

// AudioConfig holds audio settings.
type AudioConfig struct {
	MasterVolume float32 `yaml:"master_volume"`
	SFXVolume    float32 `yaml:"sfx_volume"`
	Muted        bool    `yaml:"muted"`
}

// DebugConfig holds developer settings.
type DebugConfig struct {
	ShowFPS          bool   `yaml:"show_fps"`
	ShowBounds       bool   `yaml:"show_bounds"`
	ScreenshotDir    string `yaml:"screenshot_dir"`
	ScreenshotFormat string `yaml:"screenshot_format"` // png or bmp
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	fall := anim.DefaultFallingConfig()
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Scene: SceneConfig{
			Variant:      view.VariantFalling.String(),
			CubeSize:     fall.CubeSize,
			PlatformSize: fall.PlatformSize,
			StartHeight:  fall.StartHeight,
			FallDuration: fall.FallDuration,
			FPS:          60,
			Wobble:       fall.WobbleAmplitude,
			SpinStep:     anim.DefaultSpinStep,
		},
		Audio: AudioConfig{
			MasterVolume: 0.8,
			SFXVolume:    0.8,
			Muted:        false,
		},
		Debug: DebugConfig{
			ShowFPS:          false,
			ShowBounds:       false,
			ScreenshotDir:    "screenshots",
			ScreenshotFormat: "png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// ViewConfig converts the scene settings into a view configuration.
func (c *Config) ViewConfig() (view.Config, error) {
	vc := view.DefaultConfig()

	variant, err := view.ParseVariant(c.Scene.Variant)
	if err != nil {
		return vc, err
	}
	vc.Variant = variant

	if c.Scene.FPS <= 0 {
		return vc, fmt.Errorf("scene fps must be positive, got %d", c.Scene.FPS)
	}

	f := vc.Falling
	f.CubeSize = c.Scene.CubeSize
	f.PlatformSize = c.Scene.PlatformSize
	f.StartHeight = c.Scene.StartHeight
	f.TargetHeight = (c.Scene.CubeSize - c.Scene.PlatformSize) / 2 // floor of the platform box
	f.FallDuration = c.Scene.FallDuration
	f.FrameStep = 1 / float64(c.Scene.FPS)
	f.WobbleAmplitude = c.Scene.Wobble
	if err := f.Validate(); err != nil {
		return vc, err
	}
	vc.Falling = f
	vc.SpinStep = c.Scene.SpinStep

	return vc, nil
}

// ScreenshotFormat returns the parsed screenshot format.
func (c *Config) ScreenshotFormat() (debug.Format, error) {
	return debug.ParseFormat(c.Debug.ScreenshotFormat)
}
