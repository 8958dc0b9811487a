package raster

import "slices"

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// Line is the ordered, 8-connected pixel approximation of one segment.
type Line []Point

// less orders points by X, then Y.
func (p Point) less(o Point) bool {
	if p.X != o.X {
		return p.X < o.X
	}
	return p.Y < o.Y
}

// RasterizeLine returns the pixels of the segment p0-p1 inclusive, starting
// at p0 and ending at p1, exactly max(|dx|, |dy|) + 1 points. The pixel set
// does not depend on the direction: stepping always starts from the smaller
// endpoint and the result is reversed when p1 sorts before p0.
func RasterizeLine(p0, p1 Point) Line {
	if p1.less(p0) {
		line := stepLine(p1, p0)
		slices.Reverse(line)
		return line
	}
	return stepLine(p0, p1)
}

// stepLine is the integer error-accumulation stepper.
func stepLine(p0, p1 Point) Line {
	x0, y0 := p0.X, p0.Y
	x1, y1 := p1.X, p1.Y

	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)

	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}

	// Decision variable: scaled distance between the true and stepped line
	err := dx - dy

	line := make(Line, 0, max(dx, dy)+1)
	for {
		line = append(line, Point{x0, y0})
		if x0 == x1 && y0 == y1 {
			break
		}

		err2 := 2 * err
		if err2 > -dy {
			err -= dy
			x0 += sx
		}
		if err2 < dx {
			err += dx
			y0 += sy
		}
	}

	return line
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
