// Package codec is the boundary between encoded image bytes and pixel
// buffers.
//
// It has three responsibilities:
//   - DetectFormat sniffs the container format from a signature prefix
//   - Decode turns bytes of any supported format into an imaging.PixelBuffer
//   - Encode writes a pixel buffer as BMP, PNG, JPEG, GIF or TIFF
//
// # Supported Formats
//
//	format  detect  decode  encode
//	BMP     yes     yes     yes
//	PNG     yes     yes     yes
//	JPEG    yes     yes     yes (quality 0-100)
//	GIF     yes     yes     yes (first frame only on decode)
//	TIFF    yes     yes     yes
//	WEBP    yes     yes     no
//	SVG     yes     yes     no  (rasterized at the viewBox size)
//
// Errors wrap the sentinels in package imgerr and carry the underlying
// decoder message.
package codec
