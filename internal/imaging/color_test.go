package imaging

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/anybitmap/internal/geometry"
	"github.com/ironsheep/anybitmap/internal/imgerr"
)

var (
	red   = geometry.Color{R: 255, A: 255}
	green = geometry.Color{G: 255, A: 255}
	blue  = geometry.Color{B: 255, A: 255}
)

// createSolidBuffer creates a buffer filled with a single colour.
func createSolidBuffer(t *testing.T, width, height int, c geometry.Color) *PixelBuffer {
	t.Helper()
	pix := make([]uint32, width*height)
	for i := range pix {
		pix[i] = c.Packed()
	}
	pb, err := NewPixelBuffer(width, height, pix)
	require.NoError(t, err)
	return pb
}

// createPatternBuffer creates a buffer with different colors in each quadrant:
// red top-left, green top-right, blue bottom-left, white bottom-right.
func createPatternBuffer(t *testing.T, width, height int) *PixelBuffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			if x < width/2 && y < height/2 {
				c = color.RGBA{255, 0, 0, 255}
			} else if x >= width/2 && y < height/2 {
				c = color.RGBA{0, 255, 0, 255}
			} else if x < width/2 && y >= height/2 {
				c = color.RGBA{0, 0, 255, 255}
			} else {
				c = color.RGBA{255, 255, 255, 255}
			}
			img.Set(x, y, c)
		}
	}
	pb, err := FromImage(img)
	require.NoError(t, err)
	return pb
}

// colorAt unpacks the sample at (x, y).
func colorAt(pb *PixelBuffer, x, y int) geometry.Color {
	return geometry.ColorFromPacked(pb.Sample(x, y))
}

// assertColorNear allows one step of rounding per channel.
func assertColorNear(t *testing.T, want, got geometry.Color, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, want.R, got.R, 1, msgAndArgs...)
	assert.InDelta(t, want.G, got.G, 1, msgAndArgs...)
	assert.InDelta(t, want.B, got.B, 1, msgAndArgs...)
	assert.InDelta(t, want.A, got.A, 1, msgAndArgs...)
}

func TestSampleColor(t *testing.T) {
	pb := createSolidBuffer(t, 100, 100, geometry.Color{R: 255, G: 128, B: 64, A: 255})

	result, err := SampleColor(pb, 50, 50)
	require.NoError(t, err)

	assert.Equal(t, "#FF8040", result.Hex)
	assert.Equal(t, geometry.Color{R: 255, G: 128, B: 64, A: 255}, result.RGBA)
	assert.Equal(t, 20, result.HSL.H)
}

func TestSampleColor_Pattern(t *testing.T) {
	pb := createPatternBuffer(t, 100, 100)

	tests := []struct {
		name    string
		x, y    int
		wantHex string
	}{
		{"top-left", 25, 25, "#FF0000"},
		{"top-right", 75, 25, "#00FF00"},
		{"bottom-left", 25, 75, "#0000FF"},
		{"bottom-right", 75, 75, "#FFFFFF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := SampleColor(pb, tt.x, tt.y)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHex, result.Hex)
		})
	}
}

func TestSampleColor_Translucent(t *testing.T) {
	pb := createSolidBuffer(t, 2, 2, geometry.Color{R: 10, G: 20, B: 30, A: 40})

	result, err := SampleColor(pb, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, "#0A141E28", result.Hex)
	assert.Equal(t, uint8(40), result.RGBA.A)
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	pb := createSolidBuffer(t, 100, 100, red)

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 50},
		{"negative y", 50, -1},
		{"x too large", 100, 50},
		{"y too large", 50, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SampleColor(pb, tt.x, tt.y)
			assert.ErrorIs(t, err, imgerr.ErrOutOfRange)
		})
	}
}

func TestSampleColor_NilBuffer(t *testing.T) {
	_, err := SampleColor(nil, 0, 0)
	assert.ErrorIs(t, err, imgerr.ErrInvalidArgument)
}
