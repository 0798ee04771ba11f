package imaging

import (
	"fmt"
	"image"
	"sync/atomic"

	"golang.org/x/image/draw"

	"github.com/ironsheep/anybitmap/internal/imgerr"
)

// DefaultMaxPixels is the largest canvas (width*height) any operation will
// allocate unless SetMaxPixels says otherwise. 1<<28 pixels is 1 GiB of RGBA.
const DefaultMaxPixels int64 = 1 << 28

var maxPixels atomic.Int64

func init() {
	maxPixels.Store(DefaultMaxPixels)
}

// SetMaxPixels changes the canvas limit. Values <= 0 restore DefaultMaxPixels.
// Intended to be called once at startup.
func SetMaxPixels(n int64) {
	if n <= 0 {
		n = DefaultMaxPixels
	}
	maxPixels.Store(n)
}

// MaxPixels returns the current canvas limit.
func MaxPixels() int64 {
	return maxPixels.Load()
}

// highQuality is the one resampling filter used by every geometric operation.
var highQuality = draw.CatmullRom

// checkCanvas validates a canvas size before anything is allocated.
func checkCanvas(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("canvas %dx%d has no pixels: %w", width, height, imgerr.ErrOutOfRange)
	}
	limit := maxPixels.Load()
	// Divide rather than multiply so huge sizes cannot overflow.
	if int64(width) > limit/int64(height) {
		return fmt.Errorf("canvas %dx%d exceeds %d pixel limit: %w",
			width, height, limit, imgerr.ErrResourceExhausted)
	}
	return nil
}

// newCanvas allocates a transparent NRGBA canvas anchored at (0,0).
func newCanvas(width, height int) (*image.NRGBA, error) {
	if err := checkCanvas(width, height); err != nil {
		return nil, err
	}
	return image.NewNRGBA(image.Rect(0, 0, width, height)), nil
}

func requireBuffer(src *PixelBuffer, op string) error {
	if src == nil {
		return fmt.Errorf("%s: no pixel buffer to process: %w", op, imgerr.ErrInvalidArgument)
	}
	return nil
}
