package geometry

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/anybitmap/internal/imgerr"
)

// Color is a non-premultiplied 8-bit RGBA colour.
//
// The alpha component represents opacity:
//   - 0 = fully transparent
//   - 255 = fully opaque
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// Common colours.
var (
	Transparent = Color{}
	Black       = Color{A: 255}
	White       = Color{R: 255, G: 255, B: 255, A: 255}
)

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ParseColor parses a hex colour string.
//
// Accepted forms, with or without the leading '#':
//   - "RGB"      short form, opaque
//   - "RRGGBB"   opaque
//   - "RRGGBBAA" with alpha
//
// Malformed input returns an error wrapping imgerr.ErrInvalidArgument.
func ParseColor(hex string) (Color, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")

	alpha := uint8(255)
	switch len(s) {
	case 3, 6:
	case 8:
		a, err := strconv.ParseUint(s[6:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid alpha in colour %q: %w", hex, imgerr.ErrInvalidArgument)
		}
		alpha = uint8(a)
		s = s[:6]
	default:
		return Color{}, fmt.Errorf("invalid hex colour length %q: %w", hex, imgerr.ErrInvalidArgument)
	}

	c, err := colorful.Hex("#" + s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex colour %q: %w", hex, imgerr.ErrInvalidArgument)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b, A: alpha}, nil
}

// ColorFromPacked unpacks a 0xAARRGGBB sample.
func ColorFromPacked(p uint32) Color {
	return Color{
		R: uint8(p >> 16),
		G: uint8(p >> 8),
		B: uint8(p),
		A: uint8(p >> 24),
	}
}

// Packed returns the colour as a 0xAARRGGBB sample.
func (c Color) Packed() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// NRGBA returns the colour as a standard library colour value.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Hex returns "#RRGGBB", or "#RRGGBBAA" when the colour is not opaque.
func (c Color) Hex() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// HSL converts the RGB components to HSL. Alpha is ignored.
func (c Color) HSL() HSLColor {
	h, s, l := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hsl()
	return HSLColor{
		H: int(h),
		S: int(s * 100),
		L: int(l * 100),
	}
}

// IsWhite reports whether the RGB components are all 255, ignoring alpha.
func (c Color) IsWhite() bool {
	return c.Packed()&0xFFFFFF == 0xFFFFFF
}
