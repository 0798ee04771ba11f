package codec

import (
	"bytes"
	"image"

	disimaging "github.com/disintegration/imaging"
	"github.com/pkg/errors"

	// Register decoders beyond the standard library's PNG/JPEG/GIF.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/ironsheep/anybitmap/internal/imaging"
	"github.com/ironsheep/anybitmap/internal/imgerr"
)

// DefaultQuality is the encode quality used when the caller gives none.
const DefaultQuality = 100

// encoders lists the formats Encode can write. WEBP and SVG are decode-only.
var encoders = map[Format]disimaging.Format{
	Bmp:  disimaging.BMP,
	Png:  disimaging.PNG,
	Jpeg: disimaging.JPEG,
	Gif:  disimaging.GIF,
	Tiff: disimaging.TIFF,
}

// Decode turns encoded bytes into a pixel buffer.
//
// The format is detected from the signature (see DetectFormat). Raster
// formats are decoded with the registered Go decoders; multi-frame GIFs yield
// their first frame. SVG documents are rasterized at their viewBox size.
// Decoding is deterministic: the same bytes always give the same pixels.
//
// # Errors
//
//   - imgerr.ErrDecode: unrecognized signature, corrupt data, unsupported subformat
//   - imgerr.ErrResourceExhausted: the header declares more pixels than imaging.MaxPixels
func Decode(data []byte) (*imaging.PixelBuffer, error) {
	format := DetectFormat(data)
	switch format {
	case Unknown:
		return nil, errors.Wrap(imgerr.ErrDecode, "no known image signature")
	case Svg:
		return decodeSVG(data)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(imgerr.ErrDecode, "read %s header: %v", format, err)
	}
	if err := checkDecodeSize(format, cfg.Width, cfg.Height); err != nil {
		return nil, err
	}

	img, err := disimaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(imgerr.ErrDecode, "decode %s: %v", format, err)
	}

	pb, err := imaging.FromImage(img)
	if err != nil {
		return nil, errors.WithMessagef(err, "convert decoded %s", format)
	}
	return pb, nil
}

// Encode writes a pixel buffer in the given container format.
//
// quality (0-100) is passed to the JPEG encoder and ignored by lossless ones.
//
// # Errors
//
//   - imgerr.ErrInvalidArgument: nil buffer or quality outside 0-100
//   - imgerr.ErrEncode: the format cannot be written, or the encoder failed
func Encode(pb *imaging.PixelBuffer, format Format, quality int) ([]byte, error) {
	if pb == nil {
		return nil, errors.Wrap(imgerr.ErrInvalidArgument, "encode: no pixel buffer")
	}
	if quality < 0 || quality > 100 {
		return nil, errors.Wrapf(imgerr.ErrInvalidArgument, "encode quality %d outside 0-100", quality)
	}
	enc, ok := encoders[format]
	if !ok {
		return nil, errors.Wrapf(imgerr.ErrEncode, "cannot encode to %s", format)
	}

	var buf bytes.Buffer
	if err := disimaging.Encode(&buf, pb.NRGBA(), enc, disimaging.JPEGQuality(quality)); err != nil {
		return nil, errors.Wrapf(imgerr.ErrEncode, "encode %s: %v", format, err)
	}
	return buf.Bytes(), nil
}

func checkDecodeSize(format Format, width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.Wrapf(imgerr.ErrDecode, "%s declares %dx%d", format, width, height)
	}
	if int64(width) > imaging.MaxPixels()/int64(height) {
		return errors.Wrapf(imgerr.ErrResourceExhausted, "%s of %dx%d exceeds %d pixel limit",
			format, width, height, imaging.MaxPixels())
	}
	return nil
}
