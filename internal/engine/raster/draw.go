package raster

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/wireframe/pkg/math"
)

// Renderer runs the full draw pipeline for one frustum:
// project, rasterize, wrap, colorize, composite. Every intermediate buffer is
// owned by the draw call and released before it returns.
type Renderer struct {
	frustum Frustum
	log     *zap.Logger
}

// NewRenderer creates a renderer. A nil logger disables logging.
func NewRenderer(f Frustum, log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{frustum: f, log: log}
}

// Frustum returns the renderer's frustum.
func (r *Renderer) Frustum() Frustum {
	return r.frustum
}

// DrawLine draws the world-space segment from -> to.
func (r *Renderer) DrawLine(fb *FrameBuffer, cam Camera, from, to math.Vec3, color Color) error {
	if err := fb.Validate(); err != nil {
		return err
	}
	p := NewProjector(cam, r.frustum)
	return r.composite(fb, "line", p.LinePoints(from, to), color)
}

// DrawTriangle fills the world-space triangle t. Only samples that land in
// fb are scanned.
func (r *Renderer) DrawTriangle(fb *FrameBuffer, cam Camera, t Triangle, color Color) error {
	if err := fb.Validate(); err != nil {
		return err
	}
	p := NewProjector(cam, r.frustum)
	return r.composite(fb, "triangle", p.TrianglePointsIn(t, fb.Rect()), color)
}

// DrawSolid draws the wireframe of s.
func (r *Renderer) DrawSolid(fb *FrameBuffer, cam Camera, s Solid, color Color) error {
	if err := fb.Validate(); err != nil {
		return err
	}
	p := NewProjector(cam, r.frustum)
	points, err := p.SolidPoints(s)
	if err != nil {
		return fmt.Errorf("edges %s: %w", s.Kind, err)
	}
	return r.composite(fb, s.Kind.String(), points, color)
}

// DrawTetrahedron draws th, which must be a tetrahedron.
func (r *Renderer) DrawTetrahedron(fb *FrameBuffer, cam Camera, th Solid, color Color) error {
	if th.Kind != Tetrahedron {
		return fmt.Errorf("%w: got %s, want tetrahedron", ErrTopology, th.Kind)
	}
	return r.DrawSolid(fb, cam, th, color)
}

// DrawCube draws cube, which must be a hexahedron.
func (r *Renderer) DrawCube(fb *FrameBuffer, cam Camera, cube Solid, color Color) error {
	if cube.Kind != Hexahedron {
		return fmt.Errorf("%w: got %s, want cube", ErrTopology, cube.Kind)
	}
	return r.DrawSolid(fb, cam, cube, color)
}

// composite takes ownership of points and pushes them through the buffer
// stages into fb.
func (r *Renderer) composite(fb *FrameBuffer, name string, points []Point, color Color) error {
	pts, err := WrapPoints(points)
	if err != nil {
		return fmt.Errorf("wrap %s: %w", name, err)
	}
	defer pts.Release()

	pixels, err := Colorize(pts, color)
	if err != nil {
		return fmt.Errorf("colorize %s: %w", name, err)
	}
	defer pixels.Release()

	written, err := Composite(fb, pixels)
	if err != nil {
		return fmt.Errorf("composite %s: %w", name, err)
	}

	r.log.Debug("drew primitive",
		zap.String("primitive", name),
		zap.Int("pixels", pixels.Len()),
		zap.Int("clipped", pixels.Len()-written),
	)
	return nil
}
