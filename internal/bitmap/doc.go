// Package bitmap holds Bitmap, an encoded image that keeps its original bytes
// and decodes them on demand, and Cache, a path-keyed store of bitmaps.
//
// A Bitmap remembers the exact bytes it was created from. Exporting without a
// target format hands those bytes back unchanged, so loading and saving a file
// never re-encodes it. Pixels are decoded once, on first use, and shared by
// every later call.
//
// Transforms (Resize, Crop, Rotate, Trim, AddBorder, ...) never modify the
// receiver. Each one decodes, runs the matching function from package
// imaging, encodes the result and returns it as a new Bitmap. The output is
// written in the source format when it can be encoded, PNG otherwise; use
// WithFormat and WithQuality to choose.
//
// Errors wrap the sentinels in package imgerr:
//
//	b, err := bitmap.FromFile("scan.webp")
//	if errors.Is(err, imgerr.ErrUnsupportedFormat) {
//	    // not an image we know
//	}
//	trimmed, err := b.Trim(bitmap.WithFormat(codec.Png))
package bitmap
