// Package scene holds the wireframe geometry drawn each frame and its draw order.
package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/wireframe/internal/config"
	"github.com/Faultbox/wireframe/internal/engine/debug"
	"github.com/Faultbox/wireframe/internal/engine/raster"
	"github.com/Faultbox/wireframe/pkg/math"
)

// Scene draws a cube, a tetrahedron and an axis line through the cube,
// back to front, into a frame buffer.
type Scene struct {
	renderer *raster.Renderer
	camera   raster.Camera
	log      *zap.Logger

	cube  raster.Solid
	tetra raster.Solid

	background raster.Color
	cubeColor  raster.Color
	tetraColor raster.Color
	axisColor  raster.Color

	showBounds  bool
	boundsColor raster.Color

	extras []extraSolid

	// Applied to the cube in order on every Update
	rotations [3]math.Mat4

	frames uint64
}

// extraSolid is a configured solid that spins about its own center.
type extraSolid struct {
	solid raster.Solid
	color raster.Color
	spin  math.Mat4
}

// New builds the scene described by cfg. A nil logger disables logging.
func New(cfg *config.Config, log *zap.Logger) (*Scene, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var origin math.Vec3
	side := cfg.Scene.SideLength
	rot := cfg.Scene.Rotation

	s := &Scene{
		renderer:    raster.NewRenderer(cfg.Frustum(), log.Named("raster")),
		camera:      cfg.CameraValue(),
		log:         log,
		cube:        raster.NewCube(origin, side),
		tetra:       raster.NewTetrahedron(origin, side),
		background:  config.Color(cfg.Scene.Background),
		cubeColor:   config.Color(cfg.Scene.Cube),
		tetraColor:  config.Color(cfg.Scene.Tetra),
		axisColor:   config.Color(cfg.Scene.Axis),
		showBounds:  cfg.Scene.ShowBounds,
		boundsColor: config.Color(cfg.Scene.Bounds),
		rotations: [3]math.Mat4{
			math.RotateX(rot.X),
			math.RotateY(rot.Y),
			math.RotateZ(rot.Z),
		},
	}

	for i, extra := range cfg.Scene.Extra {
		kind, err := raster.ParseSolidKind(extra.Kind)
		if err != nil {
			return nil, fmt.Errorf("extra solid %d: %w", i, err)
		}
		center := config.Vec3(extra.Center)
		solid, err := raster.NewSolid(kind, center, extra.Side)
		if err != nil {
			return nil, fmt.Errorf("extra solid %d: %w", i, err)
		}
		s.extras = append(s.extras, extraSolid{
			solid: solid,
			color: config.Color(extra.Color),
			spin:  math.About(center, rotation(extra.Spin)),
		})
	}

	log.Info("scene created",
		zap.Float32("side", side),
		zap.Int("width", cfg.Screen.Width),
		zap.Int("height", cfg.Screen.Height),
		zap.Int("extra", len(s.extras)),
	)
	return s, nil
}

// rotation composes the X, then Y, then Z rotations of r.
func rotation(r config.RotationConfig) math.Mat4 {
	return math.RotateZ(r.Z).Mul(math.RotateY(r.Y)).Mul(math.RotateX(r.X))
}

// Render clears fb to the background color and draws, in order: the cube's
// bounds when enabled, the cube, the tetrahedron, the extra solids in config
// order and the axis line. A primitive that fails is logged and skipped.
func (s *Scene) Render(fb *raster.FrameBuffer) error {
	if err := fb.Validate(); err != nil {
		return err
	}

	fb.Clear(s.background)

	if s.showBounds {
		if box, ok := debug.BoundingBox(s.cube); ok {
			if err := s.renderer.DrawCube(fb, s.camera, box, s.boundsColor); err != nil {
				s.log.Warn("draw bounds failed", zap.Error(err))
			}
		}
	}

	if err := s.renderer.DrawCube(fb, s.camera, s.cube, s.cubeColor); err != nil {
		s.log.Warn("draw cube failed", zap.Error(err))
	}
	if err := s.renderer.DrawTetrahedron(fb, s.camera, s.tetra, s.tetraColor); err != nil {
		s.log.Warn("draw tetrahedron failed", zap.Error(err))
	}
	for i, extra := range s.extras {
		if err := s.renderer.DrawSolid(fb, s.camera, extra.solid, extra.color); err != nil {
			s.log.Warn("draw extra solid failed", zap.Int("index", i), zap.Error(err))
		}
	}

	from, to := s.Axis()
	if err := s.renderer.DrawLine(fb, s.camera, to, from, s.axisColor); err != nil {
		s.log.Warn("draw axis failed", zap.Error(err))
	}

	s.frames++
	return nil
}

// Update advances the cube's rotation and every extra solid's spin by one
// frame.
func (s *Scene) Update() {
	for _, m := range s.rotations {
		s.cube.Transform(m)
	}
	for i := range s.extras {
		s.extras[i].solid.Transform(s.extras[i].spin)
	}
}

// Axis returns the endpoints of the line through the cube's diagonal.
func (s *Scene) Axis() (from, to math.Vec3) {
	return s.cube.Vertices[0], s.cube.Vertices[6]
}

// Cube returns a copy of the cube in its current orientation.
func (s *Scene) Cube() raster.Solid {
	return cloneSolid(s.cube)
}

// Tetrahedron returns a copy of the tetrahedron.
func (s *Scene) Tetrahedron() raster.Solid {
	return cloneSolid(s.tetra)
}

// Extras returns copies of the extra solids in draw order.
func (s *Scene) Extras() []raster.Solid {
	out := make([]raster.Solid, len(s.extras))
	for i, extra := range s.extras {
		out[i] = cloneSolid(extra.solid)
	}
	return out
}

// Camera returns the scene camera.
func (s *Scene) Camera() raster.Camera {
	return s.camera
}

// Frames returns the number of frames rendered so far.
func (s *Scene) Frames() uint64 {
	return s.frames
}

func cloneSolid(src raster.Solid) raster.Solid {
	return raster.Solid{
		Kind:     src.Kind,
		Vertices: append([]math.Vec3(nil), src.Vertices...),
	}
}
