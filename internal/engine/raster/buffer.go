package raster

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// ARGB packs the color as (A<<24)|(R<<16)|(G<<8)|B.
func (c Color) ARGB() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// ColorFromARGB unpacks a frame buffer word.
func ColorFromARGB(v uint32) Color {
	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: uint8(v >> 24),
	}
}

// Pixel is a screen point with a color.
type Pixel struct {
	Pos   Point
	Color Color
}

// PointBuffer owns uncolored screen geometry. It takes ownership of the
// slice it wraps; the caller must not use that slice afterwards.
type PointBuffer struct {
	points   []Point
	released bool
}

// WrapPoints transfers points into a new PointBuffer. A nil slice is
// rejected; an empty, non-nil slice is valid geometry with no pixels.
func WrapPoints(points []Point) (*PointBuffer, error) {
	if points == nil {
		return nil, ErrNilPoints
	}
	return &PointBuffer{points: points}, nil
}

// Len returns the number of points.
func (b *PointBuffer) Len() int {
	return len(b.points)
}

// Points returns the backing slice. It is valid until Release.
func (b *PointBuffer) Points() []Point {
	return b.points
}

// Release drops the backing slice. Later reads see an empty, released buffer.
func (b *PointBuffer) Release() {
	if b == nil {
		return
	}
	b.points = nil
	b.released = true
}

// Released reports whether Release has been called.
func (b *PointBuffer) Released() bool {
	return b.released
}

// PixelBuffer owns colored pixels built from a PointBuffer.
type PixelBuffer struct {
	pixels   []Pixel
	released bool
}

// Colorize pairs every point of src with color. src is only borrowed for the
// duration of the call and remains owned, and released, by its caller.
func Colorize(src *PointBuffer, color Color) (*PixelBuffer, error) {
	if src == nil {
		return nil, ErrNilPointBuffer
	}
	if src.released {
		return nil, ErrReleased
	}
	if src.points == nil {
		return nil, ErrNilPoints
	}

	pixels := make([]Pixel, len(src.points))
	for i, p := range src.points {
		pixels[i] = Pixel{Pos: p, Color: color}
	}
	return &PixelBuffer{pixels: pixels}, nil
}

// Len returns the number of pixels.
func (b *PixelBuffer) Len() int {
	return len(b.pixels)
}

// Pixels returns the backing slice. It is valid until Release.
func (b *PixelBuffer) Pixels() []Pixel {
	return b.pixels
}

// Release drops the backing slice.
func (b *PixelBuffer) Release() {
	if b == nil {
		return
	}
	b.pixels = nil
	b.released = true
}

// Released reports whether Release has been called.
func (b *PixelBuffer) Released() bool {
	return b.released
}
