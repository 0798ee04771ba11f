package imaging

import (
	"github.com/ironsheep/anybitmap/internal/geometry"
)

// whiteRGB is the RGB value Trim treats as background.
const whiteRGB = 0xFFFFFF

func isNonWhite(sample uint32) bool {
	return sample&whiteRGB != whiteRGB
}

// trimBounds is the state carried between trim phases. Bounds are inclusive.
type trimBounds struct {
	left, top, right, bottom int
	found                    bool
}

// Trim removes the white margin around src.
//
// A pixel is non-white when its RGB value differs from #FFFFFF; alpha is
// ignored. The bounding box is found in four phases, each stopping at its
// first hit:
//
//  1. findTop scans in storage order. The first non-white pixel fixes top and
//     seeds left and right with its column.
//  2. findBottom scans in reverse storage order. The first non-white pixel
//     fixes bottom and may widen left or right.
//  3. refineLeftRight runs only when bottom > top. For every row strictly
//     between them it searches columns left of the current left edge
//     (left-to-right) and columns right of the current right edge
//     (right-to-left), moving the edge to the first hit.
//  4. The source is cropped to the inclusive box with Crop.
//
// The phase order decides the result and must not be changed. An image with
// no non-white pixel at all is returned as a full-size copy.
func Trim(src *PixelBuffer) (*PixelBuffer, error) {
	if err := requireBuffer(src, "trim"); err != nil {
		return nil, err
	}

	b := findTop(src)
	if !b.found {
		return copyWindow(src, src.Bounds())
	}
	b = findBottom(src, b)
	if b.bottom > b.top {
		b = refineLeftRight(src, b)
	}

	return Crop(src, geometry.NewCropRectangle(b.left, b.top, b.right-b.left+1, b.bottom-b.top+1))
}

func findTop(src *PixelBuffer) trimBounds {
	b := trimBounds{left: src.width, top: src.height}
	for i, s := range src.pix {
		if isNonWhite(s) {
			r, c := i/src.width, i%src.width
			b.left = min(b.left, c)
			b.right = max(b.right, c)
			b.top = r
			b.bottom = r
			b.found = true
			break
		}
	}
	return b
}

func findBottom(src *PixelBuffer, b trimBounds) trimBounds {
	for i := len(src.pix) - 1; i >= 0; i-- {
		if isNonWhite(src.pix[i]) {
			r, c := i/src.width, i%src.width
			b.left = min(b.left, c)
			b.right = max(b.right, c)
			b.bottom = r
			break
		}
	}
	return b
}

func refineLeftRight(src *PixelBuffer, b trimBounds) trimBounds {
	for r := b.top + 1; r < b.bottom; r++ {
		row := src.pix[r*src.width : (r+1)*src.width]

		for c := 0; c < b.left; c++ {
			if isNonWhite(row[c]) {
				b.left = c
				break
			}
		}
		for c := src.width - 1; c > b.right; c-- {
			if isNonWhite(row[c]) {
				b.right = c
				break
			}
		}
	}
	return b
}
