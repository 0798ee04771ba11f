// Package imaging is the transform engine: a packed RGBA pixel buffer and the
// stateless operations that produce new buffers from it.
//
// Every operation takes a *PixelBuffer and returns a new one. Inputs are never
// modified, so operations on distinct buffers may run concurrently, and a
// buffer may be read by any number of goroutines at once.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// # Sampling
//
// Resize, Rotate and AddBorder share a single Catmull-Rom filter from
// golang.org/x/image/draw. There is no per-call quality knob; quality is only
// a parameter of lossy encoding, which lives in the codec package. Crop,
// CropSize and Trim copy pixels verbatim.
//
// # Error Handling
//
// Errors wrap the sentinels in package imgerr:
//   - ErrInvalidArgument for nil buffers, non-positive sizes, non-finite values
//   - ErrOutOfRange for geometry that collapses to zero area or leaves the source
//   - ErrResourceExhausted for canvases over the MaxPixels limit
//
// # Memory
//
// Each operation allocates one output buffer sized to its result. The limit checked
// before allocation defaults to DefaultMaxPixels and can be changed with
// SetMaxPixels.
package imaging
