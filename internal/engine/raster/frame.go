package raster

import "fmt"

// FrameBuffer is a caller-owned row-major array of packed ARGB words.
// PitchBytes is the byte length of one row and may exceed Width*4.
type FrameBuffer struct {
	Pix        []uint32
	Width      int
	Height     int
	PitchBytes int
}

// NewFrameBuffer allocates a tightly packed width x height frame buffer.
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		Pix:        make([]uint32, width*height),
		Width:      width,
		Height:     height,
		PitchBytes: width * 4,
	}
}

// WrapFrameBuffer views an existing word slice with the given row pitch.
func WrapFrameBuffer(pix []uint32, width, height, pitchBytes int) (*FrameBuffer, error) {
	fb := &FrameBuffer{Pix: pix, Width: width, Height: height, PitchBytes: pitchBytes}
	if err := fb.Validate(); err != nil {
		return nil, err
	}
	return fb, nil
}

// Validate checks that every visible pixel has a word in Pix.
func (fb *FrameBuffer) Validate() error {
	if fb == nil || fb.Pix == nil {
		return ErrNilFrameBuffer
	}
	if fb.Width < 0 || fb.Height < 0 {
		return fmt.Errorf("%w: size %dx%d", ErrFrameLayout, fb.Width, fb.Height)
	}
	if fb.PitchBytes < fb.Width*4 || fb.PitchBytes%4 != 0 {
		return fmt.Errorf("%w: pitch %d bytes for width %d", ErrFrameLayout, fb.PitchBytes, fb.Width)
	}
	if need := (fb.Height-1)*fb.Stride() + fb.Width; fb.Height > 0 && len(fb.Pix) < need {
		return fmt.Errorf("%w: holds %d words, need %d", ErrFrameLayout, len(fb.Pix), need)
	}
	return nil
}

// Rect returns the visible area as an inclusive pixel rectangle.
func (fb *FrameBuffer) Rect() Bounds {
	return Bounds{MinX: 0, MinY: 0, MaxX: fb.Width - 1, MaxY: fb.Height - 1}
}

// Stride returns the row length in words.
func (fb *FrameBuffer) Stride() int {
	return fb.PitchBytes / 4
}

// Contains reports whether (x, y) is inside the visible area.
func (fb *FrameBuffer) Contains(x, y int) bool {
	return x >= 0 && x < fb.Width && y >= 0 && y < fb.Height
}

// At returns the word at (x, y), or 0 outside the visible area or the words
// of Pix.
func (fb *FrameBuffer) At(x, y int) uint32 {
	if !fb.Contains(x, y) {
		return 0
	}
	if i := y*fb.Stride() + x; i < len(fb.Pix) {
		return fb.Pix[i]
	}
	return 0
}

// ColorAt returns the color at (x, y).
func (fb *FrameBuffer) ColorAt(x, y int) Color {
	return ColorFromARGB(fb.At(x, y))
}

// Clear fills the visible area with c. Row padding is left untouched. A frame
// buffer that fails Validate is left as is.
func (fb *FrameBuffer) Clear(c Color) {
	if fb.Validate() != nil {
		return
	}
	v := c.ARGB()
	stride := fb.Stride()
	for y := 0; y < fb.Height; y++ {
		row := fb.Pix[y*stride : y*stride+fb.Width]
		for x := range row {
			row[x] = v
		}
	}
}

// Composite writes every pixel of pb into fb at Pix[y*stride+x], in order,
// so later pixels overwrite earlier ones. Pixels outside [0,Width)x[0,Height)
// are discarded. It returns the number of pixels written.
func Composite(fb *FrameBuffer, pb *PixelBuffer) (int, error) {
	if err := fb.Validate(); err != nil {
		return 0, err
	}
	if pb == nil {
		return 0, ErrNilPixelBuffer
	}
	if pb.released {
		return 0, ErrReleased
	}

	stride := fb.Stride()
	written := 0
	for _, px := range pb.pixels {
		if !fb.Contains(px.Pos.X, px.Pos.Y) {
			continue
		}
		fb.Pix[px.Pos.Y*stride+px.Pos.X] = px.Color.ARGB()
		written++
	}
	return written, nil
}
