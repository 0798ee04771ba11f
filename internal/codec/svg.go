package codec

import (
	"bytes"
	"image"
	"math"

	"github.com/pkg/errors"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/ironsheep/anybitmap/internal/imaging"
	"github.com/ironsheep/anybitmap/internal/imgerr"
)

// DefaultSVGSize is the raster size used for documents without a usable
// viewBox or width/height.
const DefaultSVGSize = 512

func decodeSVG(data []byte) (*imaging.PixelBuffer, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, errors.Wrapf(imgerr.ErrDecode, "parse svg: %v", err)
	}

	w := int(math.Ceil(icon.ViewBox.W))
	h := int(math.Ceil(icon.ViewBox.H))
	if w <= 0 || h <= 0 {
		w, h = DefaultSVGSize, DefaultSVGSize
	}
	if err := checkDecodeSize(Svg, w, h); err != nil {
		return nil, err
	}

	icon.SetTarget(0, 0, float64(w), float64(h))
	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, canvas, canvas.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	pb, err := imaging.FromImage(canvas)
	if err != nil {
		return nil, errors.WithMessage(err, "convert rasterized svg")
	}
	return pb, nil
}
