package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/anybitmap/internal/imgerr"
)

// PixelBuffer is a decoded, immutable grid of packed 8-bit RGBA samples.
//
// Each sample is a uint32 laid out as 0xAARRGGBB (non-premultiplied), stored
// row-major from the top-left corner. The low 24 bits of a sample are its RGB
// value, which is what Trim inspects.
//
// A PixelBuffer is only produced by decoding or by a transform, and nothing in
// this module writes to one after it is returned. It implements image.Image,
// so it can be handed to any standard library consumer.
type PixelBuffer struct {
	width  int
	height int
	pix    []uint32
}

// NewPixelBuffer wraps the given samples. The slice is copied.
//
// Returns an error wrapping imgerr.ErrInvalidArgument if the dimensions are
// not positive or len(pix) != width*height.
func NewPixelBuffer(width, height int, pix []uint32) (*PixelBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("pixel buffer size %dx%d: %w", width, height, imgerr.ErrInvalidArgument)
	}
	if err := checkCanvas(width, height); err != nil {
		return nil, err
	}
	if len(pix) != width*height {
		return nil, fmt.Errorf("pixel buffer %dx%d needs %d samples, got %d: %w",
			width, height, width*height, len(pix), imgerr.ErrInvalidArgument)
	}
	cp := make([]uint32, len(pix))
	copy(cp, pix)
	return &PixelBuffer{width: width, height: height, pix: cp}, nil
}

// FromImage converts any image.Image into a PixelBuffer. The result always
// starts at (0,0) regardless of the source bounds.
func FromImage(img image.Image) (*PixelBuffer, error) {
	if img == nil {
		return nil, fmt.Errorf("nil image: %w", imgerr.ErrInvalidArgument)
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("image bounds %v are empty: %w", b, imgerr.ErrInvalidArgument)
	}
	if err := checkCanvas(b.Dx(), b.Dy()); err != nil {
		return nil, err
	}

	n, ok := img.(*image.NRGBA)
	if !ok || n.Rect.Min != (image.Point{}) {
		n = imaging.Clone(img)
	}
	return fromNRGBA(n), nil
}

// fromNRGBA packs an NRGBA image anchored at (0,0). The caller guarantees the
// origin.
func fromNRGBA(n *image.NRGBA) *PixelBuffer {
	w, h := n.Rect.Dx(), n.Rect.Dy()
	pix := make([]uint32, w*h)
	for y := 0; y < h; y++ {
		row := n.Pix[y*n.Stride : y*n.Stride+w*4]
		for x := 0; x < w; x++ {
			p := row[x*4 : x*4+4 : x*4+4]
			pix[y*w+x] = uint32(p[3])<<24 | uint32(p[0])<<16 | uint32(p[1])<<8 | uint32(p[2])
		}
	}
	return &PixelBuffer{width: w, height: h, pix: pix}
}

// NRGBA unpacks the buffer into a freshly allocated *image.NRGBA.
func (p *PixelBuffer) NRGBA() *image.NRGBA {
	n := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	for i, s := range p.pix {
		o := i * 4
		n.Pix[o+0] = uint8(s >> 16)
		n.Pix[o+1] = uint8(s >> 8)
		n.Pix[o+2] = uint8(s)
		n.Pix[o+3] = uint8(s >> 24)
	}
	return n
}

// Width returns the buffer width in pixels.
func (p *PixelBuffer) Width() int { return p.width }

// Height returns the buffer height in pixels.
func (p *PixelBuffer) Height() int { return p.height }

// Len returns the number of samples, always Width*Height.
func (p *PixelBuffer) Len() int { return len(p.pix) }

// Sample returns the packed sample at (x, y). It panics if the coordinate is
// outside the buffer, like slice indexing.
func (p *PixelBuffer) Sample(x, y int) uint32 {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		panic(fmt.Sprintf("imaging: sample (%d,%d) outside %dx%d buffer", x, y, p.width, p.height))
	}
	return p.pix[y*p.width+x]
}

// Samples returns a copy of all packed samples in storage order.
func (p *PixelBuffer) Samples() []uint32 {
	cp := make([]uint32, len(p.pix))
	copy(cp, p.pix)
	return cp
}

// Equal reports whether both buffers have the same size and samples.
func (p *PixelBuffer) Equal(other *PixelBuffer) bool {
	if p == nil || other == nil {
		return p == other
	}
	if p.width != other.width || p.height != other.height {
		return false
	}
	for i := range p.pix {
		if p.pix[i] != other.pix[i] {
			return false
		}
	}
	return true
}

// ColorModel implements image.Image.
func (p *PixelBuffer) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements image.Image.
func (p *PixelBuffer) Bounds() image.Rectangle { return image.Rect(0, 0, p.width, p.height) }

// At implements image.Image. Coordinates outside the buffer are transparent.
func (p *PixelBuffer) At(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.NRGBA{}
	}
	s := p.pix[y*p.width+x]
	return color.NRGBA{R: uint8(s >> 16), G: uint8(s >> 8), B: uint8(s), A: uint8(s >> 24)}
}
