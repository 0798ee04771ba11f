package imaging

import (
	"fmt"
	"math"

	"golang.org/x/image/draw"

	"github.com/ironsheep/anybitmap/internal/imgerr"
)

// ResizeScale resizes src by a uniform scale factor.
//
// The output is floor(width*scale) x floor(height*scale). Every output pixel
// is mapped back into source space through the inverse scale and sampled with
// the high-quality filter; samples that fall outside the source are clamped
// to the nearest edge pixel.
//
// # Errors
//
//   - imgerr.ErrInvalidArgument: scale <= 0, NaN or infinite, or src is nil
//   - imgerr.ErrOutOfRange: the scaled size floors to zero in either dimension
//   - imgerr.ErrResourceExhausted: the scaled size exceeds the pixel limit
func ResizeScale(src *PixelBuffer, scale float64) (*PixelBuffer, error) {
	if err := requireBuffer(src, "resize"); err != nil {
		return nil, err
	}
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		return nil, fmt.Errorf("resize scale %v must be a positive finite number: %w", scale, imgerr.ErrInvalidArgument)
	}

	fw := math.Floor(float64(src.width) * scale)
	fh := math.Floor(float64(src.height) * scale)
	if fw*fh > float64(MaxPixels()) {
		return nil, fmt.Errorf("resize by %v gives %.0fx%.0f, over the %d pixel limit: %w",
			scale, fw, fh, MaxPixels(), imgerr.ErrResourceExhausted)
	}
	return resample(src, int(fw), int(fh))
}

// Resize resizes src to exactly width x height, scaling each axis
// independently (width/srcWidth horizontally, height/srcHeight vertically).
//
// Sampling follows the same rule as ResizeScale. Non-positive target
// dimensions return an error wrapping imgerr.ErrInvalidArgument.
func Resize(src *PixelBuffer, width, height int) (*PixelBuffer, error) {
	if err := requireBuffer(src, "resize"); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("resize target %dx%d must be positive: %w", width, height, imgerr.ErrInvalidArgument)
	}
	return resample(src, width, height)
}

func resample(src *PixelBuffer, width, height int) (*PixelBuffer, error) {
	dst, err := newCanvas(width, height)
	if err != nil {
		return nil, err
	}
	highQuality.Scale(dst, dst.Bounds(), src.NRGBA(), src.Bounds(), draw.Src, nil)
	return fromNRGBA(dst), nil
}
