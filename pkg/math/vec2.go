// Package math provides the small vector and matrix value types used by the
// rasterizer. All types are plain values with no owned heap state.
package math

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Cross returns the scalar 2D cross product v.X*other.Y - v.Y*other.X.
func (v Vec2) Cross(other Vec2) float32 {
	return v.X*other.Y - v.Y*other.X
}

// SignedArea returns twice the signed area of triangle (a, b, c):
// (b-a) x (c-a). Positive for counter-clockwise winding in a y-up frame.
func SignedArea(a, b, c Vec2) float32 {
	return b.Sub(a).Cross(c.Sub(a))
}
