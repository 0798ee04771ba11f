package imaging

import (
	"fmt"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/ironsheep/anybitmap/internal/imgerr"
)

// RotatedSize returns the axis-aligned bounding box of a width x height
// rectangle rotated by degrees:
//
//	rw = floor(|cos|*width + |sin|*height)
//	rh = floor(|cos|*height + |sin|*width)
func RotatedSize(width, height int, degrees float64) (int, int) {
	rad := degrees * math.Pi / 180
	sin := math.Abs(math.Sin(rad))
	cos := math.Abs(math.Cos(rad))
	rw := math.Floor(cos*float64(width) + sin*float64(height))
	rh := math.Floor(cos*float64(height) + sin*float64(width))
	return int(rw), int(rh)
}

// Rotate rotates src clockwise by degrees about its center.
//
// The canvas is the rotated bounding box (see RotatedSize) cleared to fully
// transparent. The source is placed so its center sits on the canvas center
// (both halved with integer division) and is sampled with the high-quality
// filter. Rotating by 0 or 360 keeps the original size.
//
// # Errors
//
//   - imgerr.ErrInvalidArgument: degrees is NaN or infinite, or src is nil
//   - imgerr.ErrOutOfRange: the bounding box collapses to zero
//   - imgerr.ErrResourceExhausted: the bounding box exceeds the pixel limit
func Rotate(src *PixelBuffer, degrees float64) (*PixelBuffer, error) {
	if err := requireBuffer(src, "rotate"); err != nil {
		return nil, err
	}
	if math.IsNaN(degrees) || math.IsInf(degrees, 0) {
		return nil, fmt.Errorf("rotation angle %v must be finite: %w", degrees, imgerr.ErrInvalidArgument)
	}

	rw, rh := RotatedSize(src.width, src.height, degrees)
	dst, err := newCanvas(rw, rh)
	if err != nil {
		return nil, err
	}

	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)

	// Source to destination: translate the source center to the origin,
	// rotate, then translate onto the canvas center. With Y pointing down a
	// positive angle turns clockwise.
	ox, oy := float64(src.width/2), float64(src.height/2)
	cx, cy := float64(rw/2), float64(rh/2)
	s2d := f64.Aff3{
		cos, -sin, cx - cos*ox + sin*oy,
		sin, cos, cy - sin*ox - cos*oy,
	}

	highQuality.Transform(dst, s2d, src.NRGBA(), src.Bounds(), draw.Over, nil)
	return fromNRGBA(dst), nil
}
