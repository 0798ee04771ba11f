package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/anybitmap/internal/geometry"
	"github.com/ironsheep/anybitmap/internal/imaging"
	"github.com/ironsheep/anybitmap/internal/imgerr"
)

// solidBuffer creates a width x height buffer filled with c.
func solidBuffer(t *testing.T, width, height int, c geometry.Color) *imaging.PixelBuffer {
	t.Helper()
	pix := make([]uint32, width*height)
	for i := range pix {
		pix[i] = c.Packed()
	}
	pb, err := imaging.NewPixelBuffer(width, height, pix)
	require.NoError(t, err)
	return pb
}

func TestEncodeDecode_Lossless(t *testing.T) {
	src := solidBuffer(t, 24, 16, geometry.Color{R: 200, G: 40, B: 10, A: 255})

	for _, f := range []Format{Png, Bmp, Tiff} {
		t.Run(f.String(), func(t *testing.T) {
			data, err := Encode(src, f, DefaultQuality)
			require.NoError(t, err)
			assert.Equal(t, f, DetectFormat(data))

			got, err := Decode(data)
			require.NoError(t, err)
			assert.True(t, src.Equal(got), "decoded pixels differ from the encoded buffer")
		})
	}
}

func TestEncodeDecode_Lossy(t *testing.T) {
	src := solidBuffer(t, 32, 32, geometry.Color{R: 255, A: 255})

	for _, f := range []Format{Jpeg, Gif} {
		t.Run(f.String(), func(t *testing.T) {
			data, err := Encode(src, f, 80)
			require.NoError(t, err)
			assert.Equal(t, f, DetectFormat(data))

			got, err := Decode(data)
			require.NoError(t, err)
			assert.Equal(t, 32, got.Width())
			assert.Equal(t, 32, got.Height())
			assert.Equal(t, got.Width()*got.Height(), got.Len())
		})
	}
}

func TestEncode_JPEGQualityChangesSize(t *testing.T) {
	pix := make([]uint32, 64*64)
	for i := range pix {
		pix[i] = 0xFF000000 | uint32(i*2654435761)&0xFFFFFF
	}
	noisy, err := imaging.NewPixelBuffer(64, 64, pix)
	require.NoError(t, err)

	low, err := Encode(noisy, Jpeg, 5)
	require.NoError(t, err)
	high, err := Encode(noisy, Jpeg, 100)
	require.NoError(t, err)
	assert.Less(t, len(low), len(high))
}

func TestEncode_Errors(t *testing.T) {
	src := solidBuffer(t, 4, 4, geometry.White)

	tests := []struct {
		name    string
		pb      *imaging.PixelBuffer
		format  Format
		quality int
		want    error
	}{
		{"webp is decode only", src, Webp, 90, imgerr.ErrEncode},
		{"svg is decode only", src, Svg, 90, imgerr.ErrEncode},
		{"unknown format", src, Unknown, 90, imgerr.ErrEncode},
		{"quality below range", src, Png, -1, imgerr.ErrInvalidArgument},
		{"quality above range", src, Jpeg, 101, imgerr.ErrInvalidArgument},
		{"nil buffer", nil, Png, 90, imgerr.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Encode(tt.pb, tt.format, tt.quality)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"garbage", []byte("not an image")},
		{"png signature with corrupt body", append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}, make([]byte, 32)...)},
		{"jpeg signature only", []byte{0xFF, 0xD8, 0xFF, 0xE0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			assert.ErrorIs(t, err, imgerr.ErrDecode)
		})
	}
}

func TestDecode_PixelLimit(t *testing.T) {
	data, err := Encode(solidBuffer(t, 50, 50, geometry.Black), Png, DefaultQuality)
	require.NoError(t, err)

	imaging.SetMaxPixels(1000)
	t.Cleanup(func() { imaging.SetMaxPixels(0) })

	_, err = Decode(data)
	assert.ErrorIs(t, err, imgerr.ErrResourceExhausted)
}

func TestDecode_SVG(t *testing.T) {
	svg := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="40" height="20" viewBox="0 0 40 20">
  <rect x="0" y="0" width="40" height="20" fill="#ff0000"/>
</svg>`)

	require.Equal(t, Svg, DetectFormat(svg))

	pb, err := Decode(svg)
	require.NoError(t, err)
	assert.Equal(t, 40, pb.Width())
	assert.Equal(t, 20, pb.Height())

	center := geometry.ColorFromPacked(pb.Sample(20, 10))
	assert.Greater(t, center.R, uint8(200))
	assert.Less(t, center.G, uint8(50))
	assert.Greater(t, center.A, uint8(200))
}

func TestDecode_SVGWithoutSize(t *testing.T) {
	pb, err := Decode([]byte(`<svg xmlns="http://www.w3.org/2000/svg"><circle cx="5" cy="5" r="4"/></svg>`))
	require.NoError(t, err)
	assert.Equal(t, DefaultSVGSize, pb.Width())
	assert.Equal(t, DefaultSVGSize, pb.Height())
}
