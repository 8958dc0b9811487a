// Package raster turns world-space wireframe geometry into pixels.
//
// The pipeline is: camera and projection transform, perspective divide,
// viewport mapping, integer line stepping or barycentric triangle fill,
// then point buffer, pixel buffer and finally a write into a caller-owned
// 32-bit ARGB frame buffer. There is no clipping against the frustum and no
// depth test: a later draw call overwrites an earlier one at the same pixel.
//
// Degenerate math is not reported as an error. A collapsed camera basis, a
// zero-area triangle or a perspective divide by zero propagate non-finite or
// extreme coordinates. Non-finite points are dropped where they are converted
// to integer pixels; segments reaching past MaxScreenCoord are cut back to it.
package raster

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/wireframe/pkg/math"
)

// Frustum holds the static viewing volume and target resolution.
type Frustum struct {
	Width       int     // Target width in pixels
	Height      int     // Target height in pixels
	FieldOfView float32 // Vertical field of view, radians
	Near        float32
	Far         float32
}

// DefaultFrustum returns a 640x480 frustum with a 0.785 rad field of view.
func DefaultFrustum() Frustum {
	return Frustum{
		Width:       640,
		Height:      480,
		FieldOfView: 0.785,
		Near:        0.1,
		Far:         1000,
	}
}

// Aspect returns width / height.
func (f Frustum) Aspect() float32 {
	return float32(f.Width) / float32(f.Height)
}

// ProjectionMatrix returns the symmetric perspective projection for f.
func (f Frustum) ProjectionMatrix() math.Mat4 {
	return math.Perspective(f.FieldOfView, f.Aspect(), f.Near, f.Far)
}

// ViewportTransform maps normalized device coordinates to pixels.
// x in [-1,1] maps to [0,Width), y in [-1,1] maps to [Height,0); z is kept.
func (f Frustum) ViewportTransform(ndc math.Vec3) math.Vec3 {
	return math.Vec3{
		X: (ndc.X + 1) / 2 * float32(f.Width),
		Y: (1 - ndc.Y) / 2 * float32(f.Height),
		Z: ndc.Z,
	}
}

// Camera is a look-at camera. Up must not be parallel to Eye-Center.
type Camera struct {
	Eye    math.Vec3
	Center math.Vec3
	Up     math.Vec3
}

// ViewMatrix returns the world to view change of basis for the camera.
func (c Camera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Eye, c.Center, c.Up)
}

// PerspectiveDivide converts clip coordinates to normalized device
// coordinates. w is not checked; w == 0 yields Inf or NaN components.
func PerspectiveDivide(v math.Vec4) math.Vec3 {
	return math.Vec3{X: v.X / v.W, Y: v.Y / v.W, Z: v.Z / v.W}
}

// MaxScreenCoord bounds the magnitude of a pixel coordinate produced by
// projection. Lines are clipped to it; single points and triangle vertices
// beyond it are not rasterized outside a clip rectangle.
const MaxScreenCoord = 1 << 14

// Projector composes the camera and frustum into a single world to screen
// transform. It is a value; build one per draw call or per frame.
type Projector struct {
	frustum  Frustum
	viewProj math.Mat4
}

// NewProjector precomputes projection * view for cam and f.
func NewProjector(cam Camera, f Frustum) Projector {
	return Projector{
		frustum:  f,
		viewProj: f.ProjectionMatrix().Mul(cam.ViewMatrix()),
	}
}

// Frustum returns the frustum the projector was built with.
func (p Projector) Frustum() Frustum {
	return p.frustum
}

// WorldToScreen projects a homogeneous world-space point to screen space:
// viewport(divide(projection * view * v)). Z is the NDC depth, unused by
// rasterization.
func (p Projector) WorldToScreen(v math.Vec4) math.Vec3 {
	return p.frustum.ViewportTransform(PerspectiveDivide(p.viewProj.MulVec4(v)))
}

// Project projects a world-space point (w=1) to screen space.
func (p Projector) Project(v math.Vec3) math.Vec3 {
	return p.WorldToScreen(v.Homogeneous(1))
}

// ProjectPoint projects v and truncates it to an integer pixel. ok is false
// when the projected coordinates are non-finite or beyond MaxScreenCoord.
func (p Projector) ProjectPoint(v math.Vec3) (pt Point, ok bool) {
	s := p.Project(v)
	if !representable(s.X) || !representable(s.Y) {
		return Point{}, false
	}
	return Point{X: int(s.X), Y: int(s.Y)}, true
}

func representable(v float32) bool {
	return !math32.IsNaN(v) && math32.Abs(v) <= MaxScreenCoord
}
