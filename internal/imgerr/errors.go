// Package imgerr defines the error kinds shared by the codec, the transform
// engine and the bitmap layer.
//
// Every error returned by this module wraps exactly one of these sentinels, so
// callers classify failures with errors.Is:
//
//	out, err := bmp.Crop(rect)
//	if errors.Is(err, imgerr.ErrOutOfRange) {
//	    // the clamped region was empty
//	}
package imgerr

import "errors"

var (
	// ErrInvalidArgument reports absent input, non-positive dimensions,
	// out-of-range quality or a non-finite angle.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDecode reports bytes the codec could not turn into pixels.
	ErrDecode = errors.New("decode error")

	// ErrEncode reports a target format the codec cannot write.
	ErrEncode = errors.New("encode error")

	// ErrUnsupportedFormat reports input whose signature matches no known format.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrOutOfRange reports geometry that collapses to zero area or would read
	// outside the source buffer.
	ErrOutOfRange = errors.New("out of range")

	// ErrResourceExhausted reports a canvas larger than the configured pixel limit.
	ErrResourceExhausted = errors.New("resource exhausted")
)
