package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/chewxy/math32"

	"github.com/Faultbox/wireframe/internal/engine/raster"
	"github.com/Faultbox/wireframe/pkg/math"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Screen.Width != 640 || cfg.Screen.Height != 480 {
		t.Errorf("expected 640x480, got %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Projection.FieldOfView != 0.785 {
		t.Errorf("expected fov 0.785, got %f", cfg.Projection.FieldOfView)
	}
	if cfg.Projection.Near != 0.1 || cfg.Projection.Far != 1000 {
		t.Errorf("expected clip planes 0.1/1000, got %f/%f", cfg.Projection.Near, cfg.Projection.Far)
	}
	if cfg.Camera.Eye != [3]float32{0, 0, 12} {
		t.Errorf("expected eye (0,0,12), got %v", cfg.Camera.Eye)
	}
	if cfg.Scene.SideLength != 5 {
		t.Errorf("expected side length 5, got %f", cfg.Scene.SideLength)
	}
	if cfg.Scene.FrameDelay != 16*time.Millisecond {
		t.Errorf("expected frame delay 16ms, got %v", cfg.Scene.FrameDelay)
	}
	if cfg.Scene.Cube != [4]uint8{0, 200, 0, 255} {
		t.Errorf("expected green cube, got %v", cfg.Scene.Cube)
	}
	if cfg.Output.Headless {
		t.Error("expected windowed mode by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestFrustumAndCamera(t *testing.T) {
	cfg := Default()

	if got := cfg.Frustum(); got != raster.DefaultFrustum() {
		t.Errorf("Frustum() = %+v, want %+v", got, raster.DefaultFrustum())
	}

	cam := cfg.CameraValue()
	if cam.Eye != (math.Vec3{X: 0, Y: 0, Z: 12}) || cam.Up != (math.Vec3{X: 0, Y: 1, Z: 0}) {
		t.Errorf("CameraValue() = %+v", cam)
	}

	if c := Color(cfg.Scene.Tetra); c != (raster.Color{R: 200, A: 255}) {
		t.Errorf("Color() = %+v", c)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Screen.Width = 0 }},
		{"huge height", func(c *Config) { c.Screen.Height = raster.MaxScreenCoord + 1 }},
		{"zero scale", func(c *Config) { c.Screen.Scale = 0 }},
		{"flat fov", func(c *Config) { c.Projection.FieldOfView = 0 }},
		{"straight fov", func(c *Config) { c.Projection.FieldOfView = math32.Pi }},
		{"far before near", func(c *Config) { c.Projection.Far = 0.05 }},
		{"no frames", func(c *Config) { c.Output.Frames = 0 }},
		{"gif", func(c *Config) { c.Output.Format = "gif" }},
		{"unknown extra kind", func(c *Config) {
			c.Scene.Extra = []SolidConfig{{Kind: "dodecahedron", Side: 1}}
		}},
		{"flat extra", func(c *Config) {
			c.Scene.Extra = []SolidConfig{{Kind: "cube", Side: 0}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidateWideFieldOfView(t *testing.T) {
	cfg := Default()
	cfg.Projection.FieldOfView = math32.Nextafter(math32.Pi, 0)
	if err := cfg.Validate(); err != nil {
		t.Errorf("field of view just under pi rejected: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
screen:
  width: 800
  height: 600
  scale: 2

projection:
  field_of_view: 1.0
  near: 0.5
  far: 50

camera:
  eye: [1, 2, 20]
  center: [0, 1, 0]
  up: [0, 1, 0]

scene:
  side_length: 3
  rotation: {x: 0, y: 0.02, z: 0}
  frame_delay: 33ms
  cube: [255, 255, 0, 255]
  extra:
    - kind: octahedron
      center: [4, 0, 0]
      side: 2
      color: [255, 0, 255, 255]
      spin: {y: 0.05}

output:
  headless: true
  frames: 30
  snapshot: "frame.bmp"
  format: bmp

logging:
  level: "debug"
  log_file: "wireframe.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Screen.Width != 800 || cfg.Screen.Height != 600 {
		t.Errorf("expected 800x600, got %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Screen.Title != "Pixel Buffer" {
		t.Errorf("title should keep its default, got %q", cfg.Screen.Title)
	}
	if cfg.Projection.FieldOfView != 1.0 || cfg.Projection.Far != 50 {
		t.Errorf("unexpected projection %+v", cfg.Projection)
	}
	if cfg.Camera.Eye != [3]float32{1, 2, 20} {
		t.Errorf("expected eye (1,2,20), got %v", cfg.Camera.Eye)
	}
	if cfg.Scene.Rotation.Y != 0.02 || cfg.Scene.Rotation.X != 0 {
		t.Errorf("unexpected rotation %+v", cfg.Scene.Rotation)
	}
	if cfg.Scene.FrameDelay != 33*time.Millisecond {
		t.Errorf("expected frame delay 33ms, got %v", cfg.Scene.FrameDelay)
	}
	if cfg.Scene.Cube != [4]uint8{255, 255, 0, 255} {
		t.Errorf("unexpected cube color %v", cfg.Scene.Cube)
	}
	if len(cfg.Scene.Extra) != 1 {
		t.Fatalf("expected one extra solid, got %d", len(cfg.Scene.Extra))
	}
	if extra := cfg.Scene.Extra[0]; extra.Kind != "octahedron" || extra.Center != [3]float32{4, 0, 0} || extra.Spin.Y != 0.05 {
		t.Errorf("unexpected extra solid %+v", extra)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("loaded config invalid: %v", err)
	}
	if !cfg.Output.Headless || cfg.Output.Frames != 30 || cfg.Output.Format != "bmp" {
		t.Errorf("unexpected output %+v", cfg.Output)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "wireframe.log" {
		t.Errorf("unexpected logging %+v", cfg.Logging)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
screen:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "wireframe.yaml")
	if err := os.WriteFile(configPath, []byte("screen:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find wireframe.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 1024
				*flagHeight = 768
			},
			verify: func(cfg *Config) {
				if cfg.Screen.Width != 1024 || cfg.Screen.Height != 768 {
					t.Errorf("expected 1024x768, got %dx%d", cfg.Screen.Width, cfg.Screen.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(cfg *Config) {
				if !cfg.Screen.Fullscreen {
					t.Error("expected fullscreen")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "headless flags",
			setup: func() {
				*flagHeadless = true
				*flagFrames = 12
			},
			verify: func(cfg *Config) {
				if !cfg.Output.Headless || cfg.Output.Frames != 12 {
					t.Errorf("unexpected output %+v", cfg.Output)
				}
			},
			teardown: func() {
				*flagHeadless = false
				*flagFrames = 0
			},
		},
		{
			name:  "snapshot extension selects format",
			setup: func() { *flagSnapshot = "out/frame.BMP" },
			verify: func(cfg *Config) {
				if cfg.Output.Snapshot != "out/frame.BMP" || cfg.Output.Format != "bmp" {
					t.Errorf("unexpected output %+v", cfg.Output)
				}
			},
			teardown: func() { *flagSnapshot = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
screen:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width from the flag, height from the file
	if cfg.Screen.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Screen.Width)
	}
	if cfg.Screen.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Screen.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("projection:\n  near: 10\n  far: 1\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected invalid clip planes to fail Load")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Scene.SideLength = 7
	cfg.Camera.Eye = [3]float32{3, 4, 5}
	cfg.Scene.Extra = []SolidConfig{{Kind: "octahedron", Center: [3]float32{4, 0, 0}, Side: 2, Color: [4]uint8{1, 2, 3, 255}}}

	got, err := cfg.Save(path)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got != path {
		t.Errorf("Save wrote %q, want %q", got, path)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}
	if loaded.Scene.SideLength != 7 || loaded.Camera.Eye != [3]float32{3, 4, 5} {
		t.Errorf("round trip lost values: %+v", loaded.Scene)
	}
	if loaded.Scene.FrameDelay != cfg.Scene.FrameDelay {
		t.Errorf("frame delay = %v, want %v", loaded.Scene.FrameDelay, cfg.Scene.FrameDelay)
	}
	if len(loaded.Scene.Extra) != 1 || loaded.Scene.Extra[0] != cfg.Scene.Extra[0] {
		t.Errorf("extra solids = %+v", loaded.Scene.Extra)
	}

	// No temporary files are left next to the config.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("config dir holds %d entries, want 1", len(entries))
	}
}

func TestSaveDefaultPath(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skip("default path uses XDG_CONFIG_HOME on Linux only")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path, err := Default().Save("")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if path != DefaultPath() {
		t.Errorf("Save wrote %q, want %q", path, DefaultPath())
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("stat: %v", err)
	}
}

func TestSaveRequested(t *testing.T) {
	if SaveRequested() {
		t.Error("save-config should default to false")
	}
	*flagSaveConfig = true
	defer func() { *flagSaveConfig = false }()
	if !SaveRequested() {
		t.Error("expected SaveRequested after setting the flag")
	}
}
