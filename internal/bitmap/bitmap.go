package bitmap

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"
	"sync"

	"github.com/anthonynsimon/bild/clone"
	"github.com/cespare/xxhash/v2"

	"github.com/ironsheep/anybitmap/internal/codec"
	"github.com/ironsheep/anybitmap/internal/geometry"
	"github.com/ironsheep/anybitmap/internal/imaging"
	"github.com/ironsheep/anybitmap/internal/imgerr"
)

// Bitmap is an encoded image plus its lazily decoded pixels.
//
// The bytes a Bitmap was built from are kept exactly as given and are what
// Equal, Hash and ExportBytes (without WithFormat) operate on. Decoding
// happens the first time pixels are needed and is remembered for the life of
// the value. A Bitmap is safe for concurrent use; none of its methods modify
// it.
type Bitmap struct {
	data   []byte
	format codec.Format

	once sync.Once
	pix  *imaging.PixelBuffer
	err  error
}

// FromBytes wraps encoded image bytes. The slice is copied and only the
// signature is inspected; nothing is decoded yet.
//
// # Errors
//
//   - imgerr.ErrInvalidArgument: data is empty
//   - imgerr.ErrUnsupportedFormat: no known signature and not SVG markup
func FromBytes(data []byte) (*Bitmap, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("no image data: %w", imgerr.ErrInvalidArgument)
	}
	format := codec.DetectFormat(data)
	if format == codec.Unknown {
		return nil, fmt.Errorf("unrecognized image signature % x: %w", head(data, 8), imgerr.ErrUnsupportedFormat)
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return &Bitmap{data: cp, format: format}, nil
}

// FromReader reads r to the end and wraps the result like FromBytes.
func FromReader(r io.Reader) (*Bitmap, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	return FromBytes(data)
}

// FromFile reads the file at path and wraps it like FromBytes.
func FromFile(path string) (*Bitmap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	b, err := FromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// FromPixelBuffer encodes pb and wraps the encoded bytes. Without WithFormat
// the buffer is written as PNG.
func FromPixelBuffer(pb *imaging.PixelBuffer, opts ...Option) (*Bitmap, error) {
	o := resolveOptions(codec.Png, opts)
	if err := o.validate(); err != nil {
		return nil, err
	}
	return encodeBitmap(pb, o)
}

// FromImage converts any image.Image and encodes it like FromPixelBuffer.
func FromImage(img image.Image, opts ...Option) (*Bitmap, error) {
	pb, err := imaging.FromImage(img)
	if err != nil {
		return nil, err
	}
	return FromPixelBuffer(pb, opts...)
}

// Format returns the container format detected from the original bytes.
func (b *Bitmap) Format() codec.Format { return b.format }

// Len returns the length of the original bytes.
func (b *Bitmap) Len() int { return len(b.data) }

// PixelBuffer decodes the original bytes on first use and returns the same
// buffer, or the same error, on every later call.
func (b *Bitmap) PixelBuffer() (*imaging.PixelBuffer, error) {
	b.once.Do(func() {
		b.pix, b.err = codec.Decode(b.data)
	})
	return b.pix, b.err
}

// Dimensions returns the decoded width and height.
func (b *Bitmap) Dimensions() (int, int, error) {
	pb, err := b.PixelBuffer()
	if err != nil {
		return 0, 0, err
	}
	return pb.Width(), pb.Height(), nil
}

// Width returns the decoded width, or 0 if the bytes cannot be decoded.
func (b *Bitmap) Width() int {
	w, _, _ := b.Dimensions()
	return w
}

// Height returns the decoded height, or 0 if the bytes cannot be decoded.
func (b *Bitmap) Height() int {
	_, h, _ := b.Dimensions()
	return h
}

// ExportBytes returns the image as encoded bytes.
//
// Without WithFormat the result is a copy of the original bytes, untouched
// by any decode that happened in between, and WithQuality is ignored. With
// WithFormat the decoded pixels are encoded into that format.
//
// # Errors
//
//   - imgerr.ErrInvalidArgument: quality outside 0-100
//   - imgerr.ErrEncode: the requested format cannot be written
//   - imgerr.ErrDecode: the original bytes cannot be decoded
func (b *Bitmap) ExportBytes(opts ...Option) ([]byte, error) {
	o := resolveOptions(b.format, opts)
	if err := o.validate(); err != nil {
		return nil, err
	}
	if !o.formatSet {
		cp := make([]byte, len(b.data))
		copy(cp, b.data)
		return cp, nil
	}
	pb, err := b.PixelBuffer()
	if err != nil {
		return nil, err
	}
	return codec.Encode(pb, o.format, o.quality)
}

// Equal reports whether both bitmaps hold identical original bytes.
func (b *Bitmap) Equal(other *Bitmap) bool {
	if b == nil || other == nil {
		return b == other
	}
	return bytes.Equal(b.data, other.data)
}

// Hash returns the xxHash64 of the original bytes. Bitmaps that are Equal
// have the same hash.
func (b *Bitmap) Hash() uint64 {
	return xxhash.Sum64(b.data)
}

// HashString returns Hash as 16 hex digits.
func (b *Bitmap) HashString() string {
	return fmt.Sprintf("%016x", b.Hash())
}

// Clone returns an independent Bitmap with a copy of the original bytes. The
// clone decodes on its own first use.
func (b *Bitmap) Clone() *Bitmap {
	cp := make([]byte, len(b.data))
	copy(cp, b.data)
	return &Bitmap{data: cp, format: b.format}
}

// ToImage decodes the bitmap into a fresh *image.NRGBA.
func (b *Bitmap) ToImage() (*image.NRGBA, error) {
	pb, err := b.PixelBuffer()
	if err != nil {
		return nil, err
	}
	return pb.NRGBA(), nil
}

// ToRGBA decodes the bitmap into a fresh premultiplied *image.RGBA.
func (b *Bitmap) ToRGBA() (*image.RGBA, error) {
	pb, err := b.PixelBuffer()
	if err != nil {
		return nil, err
	}
	return clone.AsRGBA(pb), nil
}

// Resize returns the image scaled to exactly width x height.
func (b *Bitmap) Resize(width, height int, opts ...Option) (*Bitmap, error) {
	return b.transform("resize", opts, func(pb *imaging.PixelBuffer) (*imaging.PixelBuffer, error) {
		return imaging.Resize(pb, width, height)
	})
}

// ResizeScale returns the image scaled uniformly by scale.
func (b *Bitmap) ResizeScale(scale float64, opts ...Option) (*Bitmap, error) {
	return b.transform("resize", opts, func(pb *imaging.PixelBuffer) (*imaging.PixelBuffer, error) {
		return imaging.ResizeScale(pb, scale)
	})
}

// Crop returns the part of the image inside rect, clamped to the source.
func (b *Bitmap) Crop(rect geometry.CropRectangle, opts ...Option) (*Bitmap, error) {
	return b.transform("crop", opts, func(pb *imaging.PixelBuffer) (*imaging.PixelBuffer, error) {
		return imaging.Crop(pb, rect)
	})
}

// CropSize returns the top-left width x height window of the image.
func (b *Bitmap) CropSize(width, height int, opts ...Option) (*Bitmap, error) {
	return b.transform("crop", opts, func(pb *imaging.PixelBuffer) (*imaging.PixelBuffer, error) {
		return imaging.CropSize(pb, width, height)
	})
}

// Rotate returns the image rotated clockwise by degrees on a transparent
// canvas.
func (b *Bitmap) Rotate(degrees float64, opts ...Option) (*Bitmap, error) {
	return b.transform("rotate", opts, func(pb *imaging.PixelBuffer) (*imaging.PixelBuffer, error) {
		return imaging.Rotate(pb, degrees)
	})
}

// Trim returns the image with its white margin removed.
func (b *Bitmap) Trim(opts ...Option) (*Bitmap, error) {
	return b.transform("trim", opts, imaging.Trim)
}

// AddBorder returns the image surrounded by a width-pixel border of c.
func (b *Bitmap) AddBorder(c geometry.Color, width int, opts ...Option) (*Bitmap, error) {
	return b.transform("add border", opts, func(pb *imaging.PixelBuffer) (*imaging.PixelBuffer, error) {
		return imaging.AddBorder(pb, c, width)
	})
}

// transform decodes, applies fn and encodes the result into a new Bitmap.
// The output format follows WithFormat, else the source format when it can be
// encoded, else PNG.
func (b *Bitmap) transform(op string, opts []Option, fn func(*imaging.PixelBuffer) (*imaging.PixelBuffer, error)) (*Bitmap, error) {
	fallback := b.format
	if !fallback.CanEncode() {
		fallback = codec.Png
	}
	o := resolveOptions(fallback, opts)
	if err := o.validate(); err != nil {
		return nil, err
	}

	pb, err := b.PixelBuffer()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	out, err := fn(pb)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return encodeBitmap(out, o)
}

func encodeBitmap(pb *imaging.PixelBuffer, o exportOptions) (*Bitmap, error) {
	data, err := codec.Encode(pb, o.format, o.quality)
	if err != nil {
		return nil, err
	}
	return &Bitmap{data: data, format: o.format}, nil
}

func head(data []byte, n int) []byte {
	if len(data) < n {
		return data
	}
	return data[:n]
}
