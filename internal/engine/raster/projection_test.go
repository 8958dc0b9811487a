package raster

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/Faultbox/wireframe/pkg/math"
)

// sceneCamera is the reference camera used by the regression tests.
func sceneCamera() Camera {
	return Camera{
		Eye:    math.Vec3{X: 0, Y: 0, Z: 12},
		Center: math.Vec3{X: 0, Y: 0, Z: 0},
		Up:     math.Vec3{X: 0, Y: 1, Z: 0},
	}
}

func TestDefaultFrustum(t *testing.T) {
	f := DefaultFrustum()
	if f.Width != 640 || f.Height != 480 {
		t.Errorf("size = %dx%d, want 640x480", f.Width, f.Height)
	}
	if f.FieldOfView != 0.785 || f.Near != 0.1 || f.Far != 1000 {
		t.Errorf("unexpected frustum %+v", f)
	}
	if math32.Abs(f.Aspect()-4.0/3.0) > 1e-6 {
		t.Errorf("aspect = %f, want 4/3", f.Aspect())
	}
}

func TestViewportTransform(t *testing.T) {
	f := DefaultFrustum()
	tests := []struct {
		name string
		ndc  math.Vec3
		want math.Vec3
	}{
		{"center", math.Vec3{}, math.Vec3{X: 320, Y: 240}},
		{"top left", math.Vec3{X: -1, Y: 1, Z: 0.5}, math.Vec3{X: 0, Y: 0, Z: 0.5}},
		{"bottom right", math.Vec3{X: 1, Y: -1}, math.Vec3{X: 640, Y: 480}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.ViewportTransform(tt.ndc); got != tt.want {
				t.Errorf("ViewportTransform(%v) = %v, want %v", tt.ndc, got, tt.want)
			}
		})
	}
}

func TestPerspectiveDivide(t *testing.T) {
	got := PerspectiveDivide(math.Vec4{X: 2, Y: -4, Z: 6, W: 2})
	if got != (math.Vec3{X: 1, Y: -2, Z: 3}) {
		t.Errorf("PerspectiveDivide = %v", got)
	}

	// No guard on w == 0.
	zero := PerspectiveDivide(math.Vec4{X: 1, Y: 0, Z: -1, W: 0})
	if !math32.IsInf(zero.X, 1) || !math32.IsNaN(zero.Y) || !math32.IsInf(zero.Z, -1) {
		t.Errorf("divide by zero w = %v, want (+Inf, NaN, -Inf)", zero)
	}
}

func TestViewMatrixBasis(t *testing.T) {
	view := sceneCamera().ViewMatrix()

	got := view.TransformVec3(math.Vec3{X: 1, Y: 2, Z: 3})
	want := math.Vec3{X: 1, Y: 2, Z: 3 - 12}
	if got != want {
		t.Errorf("view transform = %v, want %v", got, want)
	}
}

func TestWorldToScreenRegression(t *testing.T) {
	p := NewProjector(sceneCamera(), DefaultFrustum())

	tests := []struct {
		name   string
		vertex math.Vec3
		wantX  float32
		wantY  float32
		pixel  Point
	}{
		{"near corner", math.Vec3{X: 2.5, Y: 2.5, Z: 2.5}, 472.5625, 87.4375, Point{472, 87}},
		{"far corner", math.Vec3{X: -2.5, Y: -2.5, Z: -2.5}, 220.0452, 339.9548, Point{220, 339}},
		{"origin", math.Vec3{}, 320, 240, Point{320, 240}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := p.WorldToScreen(tt.vertex.Homogeneous(1))
			if math32.Abs(s.X-tt.wantX) > 1e-2 || math32.Abs(s.Y-tt.wantY) > 1e-2 {
				t.Errorf("screen = (%f, %f), want (%f, %f)", s.X, s.Y, tt.wantX, tt.wantY)
			}

			pt, ok := p.ProjectPoint(tt.vertex)
			if !ok {
				t.Fatal("point reported unrepresentable")
			}
			if pt != tt.pixel {
				t.Errorf("pixel = %v, want %v", pt, tt.pixel)
			}
		})
	}
}

func TestProjectPointUnrepresentable(t *testing.T) {
	p := NewProjector(sceneCamera(), DefaultFrustum())

	// On the eye plane clip w is zero.
	if _, ok := p.ProjectPoint(math.Vec3{X: 0, Y: 0, Z: 12}); ok {
		t.Error("point on the eye plane should not be representable")
	}
	// Almost on the eye plane the divide blows up past MaxScreenCoord.
	if _, ok := p.ProjectPoint(math.Vec3{X: 1, Y: 0, Z: 11.9999}); ok {
		t.Error("point just in front of the eye should not be representable")
	}
}

func TestCollapsedCameraBasis(t *testing.T) {
	cam := Camera{
		Eye:    math.Vec3{X: 0, Y: 10, Z: 0},
		Center: math.Vec3{},
		Up:     math.Vec3{X: 0, Y: 1, Z: 0},
	}
	p := NewProjector(cam, DefaultFrustum())

	// Every point collapses onto the screen center column.
	s := p.Project(math.Vec3{X: 3, Y: 0, Z: 4})
	if s.X != 320 || s.Y != 240 {
		t.Errorf("collapsed basis projected to (%f, %f), want (320, 240)", s.X, s.Y)
	}
}
