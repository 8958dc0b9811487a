package raster

import "errors"

// Sentinel errors reported by the buffer stages. A draw call wraps them with
// the name of the failing stage, so callers should compare with errors.Is.
var (
	ErrNilPoints      = errors.New("raster: nil point slice")
	ErrNilPointBuffer = errors.New("raster: nil point buffer")
	ErrNilPixelBuffer = errors.New("raster: nil pixel buffer")
	ErrNilFrameBuffer = errors.New("raster: nil frame buffer")
	ErrFrameLayout    = errors.New("raster: frame buffer layout does not fit its words")
	ErrReleased       = errors.New("raster: buffer already released")
	ErrTopology       = errors.New("raster: vertex count does not match solid topology")
)
