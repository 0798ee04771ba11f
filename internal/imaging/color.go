package imaging

import (
	"fmt"

	"github.com/ironsheep/anybitmap/internal/geometry"
	"github.com/ironsheep/anybitmap/internal/imgerr"
)

// ColorResult contains a color value in multiple representations.
//
// This struct provides the same color in three formats to suit different use cases:
//   - Hex: Compact string format for CSS/web usage
//   - RGBA: 8-bit components with alpha for transparency
//   - HSL: Perceptual color space for intuitive color operations
type ColorResult struct {
	Hex  string            `json:"hex"`  // "#RRGGBB", or "#RRGGBBAA" when translucent
	RGBA geometry.Color    `json:"rgba"` // RGBA components with alpha
	HSL  geometry.HSLColor `json:"hsl"`  // HSL representation
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Parameters:
//   - src: The pixel buffer to sample from.
//   - x: X coordinate (0-based, 0 = leftmost pixel).
//   - y: Y coordinate (0-based, 0 = topmost pixel).
//
// Returns:
//   - *ColorResult: The color at (x, y) in multiple formats.
//   - error: wraps imgerr.ErrOutOfRange if the coordinates are outside the
//     buffer, imgerr.ErrInvalidArgument if src is nil.
func SampleColor(src *PixelBuffer, x, y int) (*ColorResult, error) {
	if err := requireBuffer(src, "sample color"); err != nil {
		return nil, err
	}
	if x < 0 || x >= src.width || y < 0 || y >= src.height {
		return nil, fmt.Errorf("coordinates (%d,%d) outside %dx%d image: %w",
			x, y, src.width, src.height, imgerr.ErrOutOfRange)
	}

	c := geometry.ColorFromPacked(src.pix[y*src.width+x])
	return &ColorResult{
		Hex:  c.Hex(),
		RGBA: c,
		HSL:  c.HSL(),
	}, nil
}
