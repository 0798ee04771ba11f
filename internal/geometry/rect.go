package geometry

import (
	"fmt"
	"image"

	"github.com/ironsheep/anybitmap/internal/imgerr"
)

// CropRectangle describes a region requested by a caller.
//
// The rectangle is never trusted as-is. Clamp fits it inside a source of a
// given size:
//   - negative X or Y is treated as 0
//   - non-positive Width or Height means "the full source dimension"
//   - a rectangle running past the right or bottom edge is shrunk to fit
type CropRectangle struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// NewCropRectangle returns a CropRectangle with the given origin and size.
func NewCropRectangle(x, y, width, height int) CropRectangle {
	return CropRectangle{X: x, Y: y, Width: width, Height: height}
}

// Clamp fits the rectangle inside a srcW x srcH source and returns the
// resulting window in source coordinates (Min inclusive, Max exclusive).
//
// An oversized rectangle is silently shrunk. The only failure is a window
// that collapses to zero area, for example when X lies at or beyond the
// right edge; that returns an error wrapping imgerr.ErrOutOfRange.
func (r CropRectangle) Clamp(srcW, srcH int) (image.Rectangle, error) {
	if srcW <= 0 || srcH <= 0 {
		return image.Rectangle{}, fmt.Errorf("source %dx%d has no pixels: %w", srcW, srcH, imgerr.ErrInvalidArgument)
	}

	x := max(r.X, 0)
	y := max(r.Y, 0)

	w := r.Width
	if w <= 0 {
		w = srcW
	}
	h := r.Height
	if h <= 0 {
		h = srcH
	}

	if x+w > srcW {
		w = srcW - x
	}
	if y+h > srcH {
		h = srcH - y
	}

	if w <= 0 || h <= 0 {
		return image.Rectangle{}, fmt.Errorf("crop %s collapses to %dx%d inside %dx%d: %w",
			r, max(w, 0), max(h, 0), srcW, srcH, imgerr.ErrOutOfRange)
	}

	return image.Rect(x, y, x+w, y+h), nil
}

// String renders the rectangle as "(x,y wxh)".
func (r CropRectangle) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}
