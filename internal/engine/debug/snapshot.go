// Package debug provides frame snapshots and debug geometry for the renderer.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/bmp"

	"github.com/Faultbox/wireframe/internal/engine/raster"
)

// Snapshot formats.
const (
	FormatPNG = "png"
	FormatBMP = "bmp"
)

// SnapshotWriter writes frame buffers to image files.
type SnapshotWriter struct {
	outputDir string
	prefix    string
	format    string
}

// NewSnapshotWriter creates a writer for the given format ("png" or "bmp").
func NewSnapshotWriter(outputDir, prefix, format string) (*SnapshotWriter, error) {
	format = strings.ToLower(format)
	if format != FormatPNG && format != FormatBMP {
		return nil, fmt.Errorf("unknown snapshot format %q", format)
	}
	return &SnapshotWriter{
		outputDir: outputDir,
		prefix:    prefix,
		format:    format,
	}, nil
}

// Format returns the encoding used by Write.
func (sw *SnapshotWriter) Format() string {
	return sw.format
}

// Write encodes fb to path, or to a timestamped file in the output
// directory when path is empty. It returns the file written.
func (sw *SnapshotWriter) Write(fb *raster.FrameBuffer, path string) (string, error) {
	img, err := FrameImage(fb)
	if err != nil {
		return "", err
	}

	if path == "" {
		path = sw.GenerateFilename()
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := sw.Encode(file, img); err != nil {
		return "", err
	}
	return path, nil
}

// Encode writes img in the writer's format.
func (sw *SnapshotWriter) Encode(w io.Writer, img image.Image) error {
	switch sw.format {
	case FormatBMP:
		if err := bmp.Encode(w, img); err != nil {
			return fmt.Errorf("encoding BMP: %w", err)
		}
	default:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("encoding PNG: %w", err)
		}
	}
	return nil
}

// GenerateFilename generates a snapshot filename without saving.
func (sw *SnapshotWriter) GenerateFilename() string {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s.%s", sw.prefix, timestamp, sw.format)
	if sw.outputDir != "" {
		filename = filepath.Join(sw.outputDir, filename)
	}
	return filename
}

// FrameImage copies the visible area of fb into a non-premultiplied image.
// Row padding beyond Width is skipped.
func FrameImage(fb *raster.FrameBuffer) (*image.NRGBA, error) {
	if fb == nil {
		return nil, raster.ErrNilFrameBuffer
	}

	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	stride := fb.Stride()
	for y := 0; y < fb.Height; y++ {
		row := fb.Pix[y*stride : y*stride+fb.Width]
		dst := img.Pix[y*img.Stride:]
		for x, v := range row {
			i := x * 4
			dst[i+0] = uint8(v >> 16)
			dst[i+1] = uint8(v >> 8)
			dst[i+2] = uint8(v)
			dst[i+3] = uint8(v >> 24)
		}
	}
	return img, nil
}
