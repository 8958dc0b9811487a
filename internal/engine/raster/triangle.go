package raster

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/wireframe/pkg/math"
)

// Triangle is a world-space triangle.
type Triangle [3]math.Vec3

// Barycentric returns the weights (alpha, beta, gamma) of p relative to the
// triangle (a, b, c), as ratios of signed areas over the total signed area.
// A zero-area triangle divides by zero and yields Inf or NaN weights.
func Barycentric(a, b, c, p math.Vec2) math.Vec3 {
	total := math.SignedArea(a, b, c)
	return math.Vec3{
		X: math.SignedArea(p, b, c) / total,
		Y: math.SignedArea(a, p, c) / total,
		Z: math.SignedArea(a, b, p) / total,
	}
}

// InsideTriangle reports whether all barycentric weights are >= 0.
// The boundary is inside; NaN weights are never inside.
func InsideTriangle(w math.Vec3) bool {
	return w.X >= 0 && w.Y >= 0 && w.Z >= 0
}

// Bounds is an inclusive integer pixel rectangle.
type Bounds struct {
	MinX, MinY, MaxX, MaxY int
}

// Capacity returns the number of integer samples in b.
func (b Bounds) Capacity() int {
	if b.MaxX < b.MinX || b.MaxY < b.MinY {
		return 0
	}
	return (b.MaxX - b.MinX + 1) * (b.MaxY - b.MinY + 1)
}

// Intersect returns the overlap of b and o, which may be empty.
func (b Bounds) Intersect(o Bounds) Bounds {
	return Bounds{
		MinX: max(b.MinX, o.MinX),
		MinY: max(b.MinY, o.MinY),
		MaxX: min(b.MaxX, o.MaxX),
		MaxY: min(b.MaxY, o.MaxY),
	}
}

// TriangleBounds returns [floor(min)..ceil(max)] over the three vertices.
// ok is false when any vertex is non-finite or beyond MaxScreenCoord.
func TriangleBounds(a, b, c math.Vec2) (Bounds, bool) {
	for _, v := range [3]math.Vec2{a, b, c} {
		if !representable(v.X) || !representable(v.Y) {
			return Bounds{}, false
		}
	}
	return Bounds{
		MinX: int(math32.Floor(min(a.X, b.X, c.X))),
		MinY: int(math32.Floor(min(a.Y, b.Y, c.Y))),
		MaxX: int(math32.Ceil(max(a.X, b.X, c.X))),
		MaxY: int(math32.Ceil(max(a.Y, b.Y, c.Y))),
	}, true
}

// maxFillPrealloc caps the up-front allocation for very large boxes; the
// result still grows to the full inside count.
const maxFillPrealloc = 1 << 20

// FillTriangle returns every integer sample of the bounding box of (a, b, c)
// that lies inside or on the triangle. Samples are visited column by column:
// outer loop over x, inner loop over y. A degenerate triangle yields no points.
func FillTriangle(a, b, c math.Vec2) []Point {
	bounds, ok := TriangleBounds(a, b, c)
	if !ok {
		return []Point{}
	}
	return fillBounds(a, b, c, bounds)
}

// FillTriangleIn is FillTriangle restricted to the samples of clip. Only the
// overlap of the triangle's box and clip is scanned, so vertices far outside
// clip, even beyond MaxScreenCoord, cost nothing. Non-finite vertices yield
// no points.
func FillTriangleIn(a, b, c math.Vec2, clip Bounds) []Point {
	for _, v := range [3]math.Vec2{a, b, c} {
		if !finite(v.X) || !finite(v.Y) {
			return []Point{}
		}
	}
	bounds := Bounds{
		MinX: clampInt(math32.Floor(min(a.X, b.X, c.X)), clip.MinX, clip.MaxX+1),
		MinY: clampInt(math32.Floor(min(a.Y, b.Y, c.Y)), clip.MinY, clip.MaxY+1),
		MaxX: clampInt(math32.Ceil(max(a.X, b.X, c.X)), clip.MinX-1, clip.MaxX),
		MaxY: clampInt(math32.Ceil(max(a.Y, b.Y, c.Y)), clip.MinY-1, clip.MaxY),
	}
	return fillBounds(a, b, c, bounds)
}

func fillBounds(a, b, c math.Vec2, bounds Bounds) []Point {
	points := make([]Point, 0, min(bounds.Capacity(), maxFillPrealloc))
	for x := bounds.MinX; x <= bounds.MaxX; x++ {
		for y := bounds.MinY; y <= bounds.MaxY; y++ {
			w := Barycentric(a, b, c, math.Vec2{X: float32(x), Y: float32(y)})
			if InsideTriangle(w) {
				points = append(points, Point{x, y})
			}
		}
	}
	return points
}

// clampInt converts an integral float to an int within [lo, hi].
func clampInt(v float32, lo, hi int) int {
	switch {
	case v <= float32(lo):
		return lo
	case v >= float32(hi):
		return hi
	}
	return int(v)
}
