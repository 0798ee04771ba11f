package imaging

import (
	"fmt"
	"image"

	"github.com/ironsheep/anybitmap/internal/geometry"
	"github.com/ironsheep/anybitmap/internal/imgerr"
)

// Crop copies the window described by rect out of src, pixel for pixel.
//
// The rectangle is clamped first (see geometry.CropRectangle.Clamp), so an
// oversized or partially outside rectangle never fails; it is shrunk to the
// part that overlaps the source. No resampling takes place.
//
// # Errors
//
//   - imgerr.ErrInvalidArgument: src is nil
//   - imgerr.ErrOutOfRange: the clamped window has zero area
func Crop(src *PixelBuffer, rect geometry.CropRectangle) (*PixelBuffer, error) {
	if err := requireBuffer(src, "crop"); err != nil {
		return nil, err
	}
	r, err := rect.Clamp(src.width, src.height)
	if err != nil {
		return nil, err
	}
	return copyWindow(src, r)
}

// CropSize copies the top-left width x height window of src.
//
// Unlike Crop the request is not clamped: a window larger than the source in
// either dimension is rejected with imgerr.ErrOutOfRange rather than read past
// the buffer. Non-positive sizes wrap imgerr.ErrInvalidArgument.
func CropSize(src *PixelBuffer, width, height int) (*PixelBuffer, error) {
	if err := requireBuffer(src, "crop"); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("crop size %dx%d must be positive: %w", width, height, imgerr.ErrInvalidArgument)
	}
	if width > src.width || height > src.height {
		return nil, fmt.Errorf("crop size %dx%d exceeds source %dx%d: %w",
			width, height, src.width, src.height, imgerr.ErrOutOfRange)
	}
	return copyWindow(src, image.Rect(0, 0, width, height))
}

// copyWindow copies r, which must lie inside src, into a new buffer.
func copyWindow(src *PixelBuffer, r image.Rectangle) (*PixelBuffer, error) {
	w, h := r.Dx(), r.Dy()
	if err := checkCanvas(w, h); err != nil {
		return nil, err
	}
	pix := make([]uint32, w*h)
	for y := 0; y < h; y++ {
		start := (r.Min.Y+y)*src.width + r.Min.X
		copy(pix[y*w:(y+1)*w], src.pix[start:start+w])
	}
	return &PixelBuffer{width: w, height: h, pix: pix}, nil
}

// QuadrantRectangle returns the crop rectangle for a named region of a
// width x height image.
//
// Supported regions: top-left, top-right, bottom-left, bottom-right,
// top-half, bottom-half, left-half, right-half and center (the middle 50%).
// Halves use integer division, so odd sizes give the extra pixel to the
// right or bottom part.
func QuadrantRectangle(region string, width, height int) (geometry.CropRectangle, error) {
	midX := width / 2
	midY := height / 2

	var x1, y1, x2, y2 int

	switch region {
	case "top-left":
		x1, y1, x2, y2 = 0, 0, midX, midY
	case "top-right":
		x1, y1, x2, y2 = midX, 0, width, midY
	case "bottom-left":
		x1, y1, x2, y2 = 0, midY, midX, height
	case "bottom-right":
		x1, y1, x2, y2 = midX, midY, width, height
	case "top-half":
		x1, y1, x2, y2 = 0, 0, width, midY
	case "bottom-half":
		x1, y1, x2, y2 = 0, midY, width, height
	case "left-half":
		x1, y1, x2, y2 = 0, 0, midX, height
	case "right-half":
		x1, y1, x2, y2 = midX, 0, width, height
	case "center":
		qW := width / 4
		qH := height / 4
		x1, y1, x2, y2 = qW, qH, width-qW, height-qH
	default:
		return geometry.CropRectangle{}, fmt.Errorf("unknown region %q: %w", region, imgerr.ErrInvalidArgument)
	}

	if x2 <= x1 || y2 <= y1 {
		return geometry.CropRectangle{}, fmt.Errorf("region %q of %dx%d is empty: %w",
			region, width, height, imgerr.ErrOutOfRange)
	}
	return geometry.NewCropRectangle(x1, y1, x2-x1, y2-y1), nil
}
