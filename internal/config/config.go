// Package config handles renderer configuration loading and management.
package config

import (
	"fmt"
	"time"

	"github.com/chewxy/math32"

	"github.com/Faultbox/wireframe/internal/engine/raster"
	"github.com/Faultbox/wireframe/pkg/math"
)

// Config holds all renderer settings.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Projection ProjectionConfig `yaml:"projection"`
	Camera     CameraConfig     `yaml:"camera"`
	Scene      SceneConfig      `yaml:"scene"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ScreenConfig holds the target resolution and window settings.
type ScreenConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Title      string  `yaml:"title"`
	Scale      float32 `yaml:"scale"` // Window size multiplier over the frame buffer
	Fullscreen bool    `yaml:"fullscreen"`
}

// ProjectionConfig holds the frustum parameters.
type ProjectionConfig struct {
	FieldOfView float32 `yaml:"field_of_view"` // Vertical, radians
	Near        float32 `yaml:"near"`
	Far         float32 `yaml:"far"`
}

// CameraConfig holds the look-at camera in world units.
type CameraConfig struct {
	Eye    [3]float32 `yaml:"eye"`
	Center [3]float32 `yaml:"center"`
	Up     [3]float32 `yaml:"up"`
}

// RotationConfig is a per-frame rotation in radians about each axis.
type RotationConfig struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

// SceneConfig holds the geometry drawn each frame.
type SceneConfig struct {
	SideLength float32        `yaml:"side_length"`
	Rotation   RotationConfig `yaml:"rotation"`
	FrameDelay time.Duration  `yaml:"frame_delay"`
	Background [4]uint8       `yaml:"background"`
	Cube       [4]uint8       `yaml:"cube"`
	Tetra      [4]uint8       `yaml:"tetrahedron"`
	Axis       [4]uint8       `yaml:"axis"`
	ShowBounds bool           `yaml:"show_bounds"` // Draw the cube's axis-aligned bounds behind it
	Bounds     [4]uint8       `yaml:"bounds"`
	Extra      []SolidConfig  `yaml:"extra"` // Drawn after the tetrahedron, in order
}

// SolidConfig places one additional solid in the scene.
type SolidConfig struct {
	Kind   string         `yaml:"kind"` // tetrahedron, cube or octahedron
	Center [3]float32     `yaml:"center"`
	Side   float32        `yaml:"side"`
	Color  [4]uint8       `yaml:"color"`
	Spin   RotationConfig `yaml:"spin"` // Per-frame rotation about Center
}

// OutputConfig selects headless rendering and snapshot output.
type OutputConfig struct {
	Headless bool   `yaml:"headless"`
	Frames   int    `yaml:"frames"`
	Snapshot string `yaml:"snapshot"` // Path; empty uses a timestamped name
	Dir      string `yaml:"dir"`      // Directory for timestamped snapshots
	Format   string `yaml:"format"`   // png or bmp
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Screen: ScreenConfig{
			Width:  640,
			Height: 480,
			Title:  "Pixel Buffer",
			Scale:  1,
		},
		Projection: ProjectionConfig{
			FieldOfView: 0.785,
			Near:        0.1,
			Far:         1000,
		},
		Camera: CameraConfig{
			Eye:    [3]float32{0, 0, 12},
			Center: [3]float32{0, 0, 0},
			Up:     [3]float32{0, 1, 0},
		},
		Scene: SceneConfig{
			SideLength: 5,
			Rotation:   RotationConfig{X: 0.01, Y: 0.01, Z: 0.01},
			FrameDelay: 16 * time.Millisecond,
			Background: [4]uint8{0, 0, 0, 255},
			Cube:       [4]uint8{0, 200, 0, 255},
			Tetra:      [4]uint8{200, 0, 0, 255},
			Axis:       [4]uint8{0, 0, 200, 255},
			Bounds:     [4]uint8{80, 80, 80, 255},
		},
		Output: OutputConfig{
			Headless: false,
			Frames:   1,
			Format:   "png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate rejects settings the renderer cannot run with.
func (c *Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size %dx%d must be positive", c.Screen.Width, c.Screen.Height)
	}
	if c.Screen.Width > raster.MaxScreenCoord || c.Screen.Height > raster.MaxScreenCoord {
		return fmt.Errorf("screen size %dx%d exceeds %d", c.Screen.Width, c.Screen.Height, raster.MaxScreenCoord)
	}
	if c.Screen.Scale <= 0 {
		return fmt.Errorf("screen scale %v must be positive", c.Screen.Scale)
	}
	if c.Projection.FieldOfView <= 0 || c.Projection.FieldOfView >= math32.Pi {
		return fmt.Errorf("field of view %v out of range (0, pi)", c.Projection.FieldOfView)
	}
	if c.Projection.Near <= 0 || c.Projection.Far <= c.Projection.Near {
		return fmt.Errorf("invalid clip planes near=%v far=%v", c.Projection.Near, c.Projection.Far)
	}
	for i, extra := range c.Scene.Extra {
		if _, err := raster.ParseSolidKind(extra.Kind); err != nil {
			return fmt.Errorf("scene.extra[%d]: %w", i, err)
		}
		if extra.Side <= 0 {
			return fmt.Errorf("scene.extra[%d]: side %v must be positive", i, extra.Side)
		}
	}
	if c.Output.Frames < 1 {
		return fmt.Errorf("frames %d must be at least 1", c.Output.Frames)
	}
	switch c.Output.Format {
	case "png", "bmp":
	default:
		return fmt.Errorf("unknown snapshot format %q", c.Output.Format)
	}
	return nil
}

// Frustum builds the raster frustum from the screen and projection settings.
func (c *Config) Frustum() raster.Frustum {
	return raster.Frustum{
		Width:       c.Screen.Width,
		Height:      c.Screen.Height,
		FieldOfView: c.Projection.FieldOfView,
		Near:        c.Projection.Near,
		Far:         c.Projection.Far,
	}
}

// CameraValue builds the raster camera.
func (c *Config) CameraValue() raster.Camera {
	return raster.Camera{
		Eye:    Vec3(c.Camera.Eye),
		Center: Vec3(c.Camera.Center),
		Up:     Vec3(c.Camera.Up),
	}
}

// Color converts an RGBA quadruple from the config into a raster color.
func Color(c [4]uint8) raster.Color {
	return raster.Color{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// Vec3 converts a configured triple into a vector.
func Vec3(v [3]float32) math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}
