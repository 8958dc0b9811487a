package raster

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/wireframe/pkg/math"
)

// finite reports whether v is neither NaN nor infinite.
func finite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}

// ClipSegment clips the screen-space segment a-b to the guard band
// [-MaxScreenCoord, MaxScreenCoord] on both axes, keeping its direction.
// ok is false when an endpoint is non-finite or the segment misses the band.
// Endpoints already inside the band are returned unchanged, and a segment and
// its reverse clip to the same pair of points.
func ClipSegment(a, b math.Vec2) (math.Vec2, math.Vec2, bool) {
	if !finite(a.X) || !finite(a.Y) || !finite(b.X) || !finite(b.Y) {
		return a, b, false
	}
	if b.X < a.X || (b.X == a.X && b.Y < a.Y) {
		cb, ca, ok := clipOrdered(b, a)
		return ca, cb, ok
	}
	return clipOrdered(a, b)
}

// clipOrdered is Liang-Barsky against the guard band, in float64 so that
// far endpoints keep their slope.
func clipOrdered(a, b math.Vec2) (math.Vec2, math.Vec2, bool) {
	const limit = float64(MaxScreenCoord)

	x0, y0 := float64(a.X), float64(a.Y)
	dx, dy := float64(b.X)-x0, float64(b.Y)-y0

	t0, t1 := 0.0, 1.0
	for _, edge := range [4][2]float64{
		{-dx, x0 + limit},
		{dx, limit - x0},
		{-dy, y0 + limit},
		{dy, limit - y0},
	} {
		p, q := edge[0], edge[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return a, b, false
			}
			t0 = max(t0, r)
		} else {
			if r < t0 {
				return a, b, false
			}
			t1 = min(t1, r)
		}
	}

	clamp := func(v float64) float32 {
		return float32(min(max(v, -limit), limit))
	}
	if t0 > 0 {
		a = math.Vec2{X: clamp(x0 + t0*dx), Y: clamp(y0 + t0*dy)}
	}
	if t1 < 1 {
		b = math.Vec2{X: clamp(x0 + t1*dx), Y: clamp(y0 + t1*dy)}
	}
	return a, b, true
}

// segmentLine clips a-b to the guard band, truncates the endpoints and
// rasterizes the result. A segment that is non-finite or misses the band
// yields an empty, non-nil line.
func segmentLine(a, b math.Vec2) Line {
	ca, cb, ok := ClipSegment(a, b)
	if !ok {
		return Line{}
	}
	return RasterizeLine(
		Point{X: int(ca.X), Y: int(ca.Y)},
		Point{X: int(cb.X), Y: int(cb.Y)},
	)
}
