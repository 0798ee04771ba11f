package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"github.com/ironsheep/anybitmap/internal/geometry"
	"github.com/ironsheep/anybitmap/internal/imgerr"
)

// AddBorder surrounds src with a solid border width pixels thick.
//
// The canvas is (W+2*width) x (H+2*width), filled with c, and the source is
// composited over it at (width, width) through the same filter as Resize.
// Translucent source pixels therefore blend with the border colour. A width
// of 0 reproduces the source.
//
// Negative widths wrap imgerr.ErrInvalidArgument.
func AddBorder(src *PixelBuffer, c geometry.Color, width int) (*PixelBuffer, error) {
	if err := requireBuffer(src, "add border"); err != nil {
		return nil, err
	}
	if width < 0 {
		return nil, fmt.Errorf("border width %d must not be negative: %w", width, imgerr.ErrInvalidArgument)
	}

	cw, ch := src.width+2*width, src.height+2*width
	if err := checkCanvas(cw, ch); err != nil {
		return nil, err
	}

	dst := imaging.New(cw, ch, c.NRGBA())
	inner := image.Rect(width, width, width+src.width, width+src.height)
	highQuality.Scale(dst, inner, src.NRGBA(), src.Bounds(), draw.Over, nil)
	return fromNRGBA(dst), nil
}
