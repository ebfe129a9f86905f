package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/Faultbox/cubedrop/internal/engine/debug"
	"github.com/Faultbox/cubedrop/internal/view"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test graphics defaults
	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	// Test scene defaults
	if cfg.Scene.Variant != "falling" {
		t.Errorf("expected variant 'falling', got %s", cfg.Scene.Variant)
	}
	if cfg.Scene.FallDuration != 2 {
		t.Errorf("expected fall duration 2, got %f", cfg.Scene.FallDuration)
	}
	if cfg.Scene.FPS != 60 {
		t.Errorf("expected fps 60, got %d", cfg.Scene.FPS)
	}

	// Test audio defaults
	if cfg.Audio.MasterVolume != 0.8 {
		t.Errorf("expected master volume 0.8, got %f", cfg.Audio.MasterVolume)
	}
	if cfg.Audio.Muted {
		t.Error("expected muted to be false by default")
	}

	// Test debug defaults
	if cfg.Debug.ShowFPS {
		t.Error("expected show_fps to be false by default")
	}
	if cfg.Debug.ScreenshotFormat != "png" {
		t.Errorf("expected screenshot format 'png', got %s", cfg.Debug.ScreenshotFormat)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestDefaultViewConfig(t *testing.T) {
	vc, err := Default().ViewConfig()
	if err != nil {
		t.Fatalf("ViewConfig() error = %v", err)
	}

	want := view.DefaultConfig()
	if vc.Variant != want.Variant {
		t.Errorf("variant = %v, want %v", vc.Variant, want.Variant)
	}
	if vc.Falling != want.Falling {
		t.Errorf("falling config = %+v, want %+v", vc.Falling, want.Falling)
	}
	if vc.SpinStep != want.SpinStep {
		t.Errorf("spin step = %f, want %f", vc.SpinStep, want.SpinStep)
	}
}

func TestViewConfig(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
		check   func(*testing.T, view.Config)
	}{
		{
			name:   "spinning variant",
			modify: func(c *Config) { c.Scene.Variant = "spinning" },
			check: func(t *testing.T, vc view.Config) {
				if vc.Variant != view.VariantSpinning {
					t.Errorf("variant = %v, want spinning", vc.Variant)
				}
			},
		},
		{
			name: "larger platform lowers the floor",
			modify: func(c *Config) {
				c.Scene.PlatformSize = 5
				c.Scene.CubeSize = 1
			},
			check: func(t *testing.T, vc view.Config) {
				if vc.Falling.TargetHeight != -2 {
					t.Errorf("target height = %f, want -2", vc.Falling.TargetHeight)
				}
			},
		},
		{
			name:   "fps sets frame step",
			modify: func(c *Config) { c.Scene.FPS = 120 },
			check: func(t *testing.T, vc view.Config) {
				if vc.Falling.FrameStep != 1.0/120 {
					t.Errorf("frame step = %f, want %f", vc.Falling.FrameStep, 1.0/120)
				}
			},
		},
		{
			name:    "unknown variant",
			modify:  func(c *Config) { c.Scene.Variant = "tumbling" },
			wantErr: true,
		},
		{
			name:    "zero fps",
			modify:  func(c *Config) { c.Scene.FPS = 0 },
			wantErr: true,
		},
		{
			name:    "platform smaller than cube",
			modify:  func(c *Config) { c.Scene.PlatformSize = 0.5 },
			wantErr: true,
		},
		{
			name:    "unit platform leaves start cell off the edge",
			modify:  func(c *Config) { c.Scene.PlatformSize = 1 },
			wantErr: true,
		},
		{
			name:    "zero fall duration",
			modify:  func(c *Config) { c.Scene.FallDuration = 0 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			vc, err := cfg.ViewConfig()
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ViewConfig() error = %v", err)
			}
			tt.check(t, vc)
		})
	}
}

func TestScreenshotFormat(t *testing.T) {
	cfg := Default()

	cfg.Debug.ScreenshotFormat = "BMP"
	format, err := cfg.ScreenshotFormat()
	if err != nil {
		t.Fatalf("ScreenshotFormat() error = %v", err)
	}
	if format != debug.FormatBMP {
		t.Errorf("format = %v, want %v", format, debug.FormatBMP)
	}

	cfg.Debug.ScreenshotFormat = "gif"
	if _, err := cfg.ScreenshotFormat(); err == nil {
		t.Error("expected error for gif, got nil")
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

scene:
  variant: spinning
  fall_duration: 3.5
  fps: 30
  spin_step: 0.02

audio:
  master_volume: 0.5
  sfx_volume: 0.7
  muted: true

debug:
  show_fps: true
  show_bounds: true
  screenshot_dir: "shots"
  screenshot_format: bmp

logging:
  level: "debug"
  log_file: "cubedrop.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Load config
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Verify values were loaded
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 1080 {
		t.Errorf("expected height 1080, got %d", cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}

	if cfg.Scene.Variant != "spinning" {
		t.Errorf("expected variant 'spinning', got %s", cfg.Scene.Variant)
	}
	if cfg.Scene.FallDuration != 3.5 {
		t.Errorf("expected fall duration 3.5, got %f", cfg.Scene.FallDuration)
	}
	if cfg.Scene.FPS != 30 {
		t.Errorf("expected fps 30, got %d", cfg.Scene.FPS)
	}
	if cfg.Scene.SpinStep != 0.02 {
		t.Errorf("expected spin step 0.02, got %f", cfg.Scene.SpinStep)
	}
	// Keys absent from the file keep their defaults
	if cfg.Scene.PlatformSize != 3 {
		t.Errorf("expected platform size 3, got %f", cfg.Scene.PlatformSize)
	}

	if cfg.Audio.MasterVolume != 0.5 {
		t.Errorf("expected master volume 0.5, got %f", cfg.Audio.MasterVolume)
	}
	if !cfg.Audio.Muted {
		t.Error("expected muted to be true")
	}

	if !cfg.Debug.ShowBounds {
		t.Error("expected show_bounds to be true")
	}
	if cfg.Debug.ScreenshotDir != "shots" {
		t.Errorf("expected screenshot dir 'shots', got %s", cfg.Debug.ScreenshotDir)
	}
	if cfg.Debug.ScreenshotFormat != "bmp" {
		t.Errorf("expected screenshot format 'bmp', got %s", cfg.Debug.ScreenshotFormat)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "cubedrop.log" {
		t.Errorf("expected log file 'cubedrop.log', got %s", cfg.Logging.LogFile)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Graphics.Width = 1024
	cfg.Scene.Variant = "spinning"
	cfg.Scene.SpinStep = 0.05
	cfg.Audio.Muted = true
	cfg.Debug.ScreenshotFormat = "bmp"
	cfg.Logging.LogFile = "cubedrop.log"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}
	if !reflect.DeepEqual(cfg, loaded) {
		t.Errorf("round trip mismatch:\n saved  %+v\n loaded %+v", cfg, loaded)
	}
}

func TestSaveToUnwritableDir(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	// A regular file in place of the parent directory
	if err := Default().SaveTo(filepath.Join(blocker, "config.yaml")); err == nil {
		t.Error("expected error saving under a regular file, got nil")
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	// Create temporary config file with invalid YAML
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Try to load - should error
	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Just verify it returns a non-empty path
	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	// Verify path is absolute
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	// Save current directory
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	// Create temp directory and change to it
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	// No config file exists - should return empty
	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	// Create config.yaml in current directory
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	// Should find it now
	path = findConfigFile()
	if path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config) error
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) error {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Debug.ShowFPS {
					t.Error("expected show_fps to be enabled with debug flag")
				}
				return nil
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "variant flag",
			setup: func() {
				*flagVariant = "spinning"
			},
			verify: func(cfg *Config) error {
				if cfg.Scene.Variant != "spinning" {
					t.Errorf("expected variant spinning, got %s", cfg.Scene.Variant)
				}
				return nil
			},
			teardown: func() {
				*flagVariant = ""
			},
		},
		{
			name: "mute flag",
			setup: func() {
				*flagMute = true
			},
			verify: func(cfg *Config) error {
				if !cfg.Audio.Muted {
					t.Error("expected muted with mute flag")
				}
				return nil
			},
			teardown: func() {
				*flagMute = false
			},
		},
		{
			name: "windowed flag",
			setup: func() {
				*flagWindowed = true
			},
			verify: func(cfg *Config) error {
				if cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
				return nil
			},
			teardown: func() {
				*flagWindowed = false
			},
		},
		{
			name: "fullscreen flag",
			setup: func() {
				*flagFullscreen = true
			},
			verify: func(cfg *Config) error {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
				return nil
			},
			teardown: func() {
				*flagFullscreen = false
			},
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) error {
				if cfg.Graphics.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Graphics.Width)
				}
				if cfg.Graphics.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Graphics.Height)
				}
				return nil
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			tt.setup()
			defer tt.teardown()

			// Apply flags to default config
			cfg := Default()
			applyFlags(cfg)

			// Verify
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	// Load config
	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}

	// Height should be from file (900) since no flag override
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}
