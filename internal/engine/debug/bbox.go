package debug

import (
	"github.com/Faultbox/wireframe/internal/engine/raster"
	"github.com/Faultbox/wireframe/pkg/math"
)

// Bounds returns the axis-aligned box enclosing vertices.
// ok is false for an empty vertex list.
func Bounds(vertices []math.Vec3) (lo, hi math.Vec3, ok bool) {
	if len(vertices) == 0 {
		return lo, hi, false
	}
	lo, hi = vertices[0], vertices[0]
	for _, v := range vertices[1:] {
		lo.X, hi.X = min(lo.X, v.X), max(hi.X, v.X)
		lo.Y, hi.Y = min(lo.Y, v.Y), max(hi.Y, v.Y)
		lo.Z, hi.Z = min(lo.Z, v.Z), max(hi.Z, v.Z)
	}
	return lo, hi, true
}

// BoundingBox returns a hexahedron on the axis-aligned bounds of s, with the
// same corner order as raster.NewCube so it draws with the cube's edge list.
func BoundingBox(s raster.Solid) (raster.Solid, bool) {
	lo, hi, ok := Bounds(s.Vertices)
	if !ok {
		return raster.Solid{}, false
	}
	return raster.Solid{
		Kind: raster.Hexahedron,
		Vertices: []math.Vec3{
			// Bottom face
			{X: lo.X, Y: lo.Y, Z: lo.Z}, {X: hi.X, Y: lo.Y, Z: lo.Z},
			{X: hi.X, Y: lo.Y, Z: hi.Z}, {X: lo.X, Y: lo.Y, Z: hi.Z},
			// Top face
			{X: lo.X, Y: hi.Y, Z: lo.Z}, {X: hi.X, Y: hi.Y, Z: lo.Z},
			{X: hi.X, Y: hi.Y, Z: hi.Z}, {X: lo.X, Y: hi.Y, Z: hi.Z},
		},
	}, true
}
