package math

import (
	"testing"
)

func TestSignedArea(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c Vec2
		want    float32
	}{
		{"ccw", Vec2{0, 0}, Vec2{4, 0}, Vec2{0, 3}, 12},
		{"cw", Vec2{0, 0}, Vec2{0, 3}, Vec2{4, 0}, -12},
		{"collinear", Vec2{0, 0}, Vec2{1, 1}, Vec2{2, 2}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SignedArea(tt.a, tt.b, tt.c); got != tt.want {
				t.Errorf("SignedArea() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero Normalize() = %v, want zero", got)
	}
}

func TestVec3Homogeneous(t *testing.T) {
	got := Vec3{1, 2, 3}.Homogeneous(1)
	if got != (Vec4{1, 2, 3, 1}) {
		t.Errorf("Homogeneous() = %v", got)
	}
	if got.XYZ() != (Vec3{1, 2, 3}) {
		t.Errorf("XYZ() = %v", got.XYZ())
	}
}

func TestVec3Scale(t *testing.T) {
	if got := (Vec3{1, -2, 3}).Scale(-1); got != (Vec3{-1, 2, -3}) {
		t.Errorf("Scale(-1) = %v", got)
	}
}
