package bitmap

import (
	"fmt"

	"github.com/ironsheep/anybitmap/internal/codec"
	"github.com/ironsheep/anybitmap/internal/imgerr"
)

// Option configures how a Bitmap is encoded by ExportBytes, the transform
// methods and the FromImage/FromPixelBuffer constructors.
type Option func(*exportOptions)

type exportOptions struct {
	format    codec.Format
	formatSet bool
	quality   int
}

// WithFormat selects the output container format.
func WithFormat(f codec.Format) Option {
	return func(o *exportOptions) {
		o.format = f
		o.formatSet = true
	}
}

// WithQuality sets the encode quality, 0-100. Only JPEG uses it. The default
// is codec.DefaultQuality.
func WithQuality(q int) Option {
	return func(o *exportOptions) {
		o.quality = q
	}
}

func resolveOptions(fallback codec.Format, opts []Option) exportOptions {
	o := exportOptions{format: fallback, quality: codec.DefaultQuality}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o exportOptions) validate() error {
	if o.quality < 0 || o.quality > 100 {
		return fmt.Errorf("quality %d outside 0-100: %w", o.quality, imgerr.ErrInvalidArgument)
	}
	if o.formatSet && !o.format.CanEncode() {
		return fmt.Errorf("cannot encode to %s: %w", o.format, imgerr.ErrEncode)
	}
	return nil
}
