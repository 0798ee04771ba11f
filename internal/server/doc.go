// Package server implements the MCP (Model Context Protocol) server that
// exposes the bitmap operations as tools.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Transforms (each returns the new image as base64, optionally also written
// to output_path):
//   - image_resize: Exact size or uniform scale
//   - image_crop: Clamped rectangular region
//   - image_crop_size: Top-left corner of a given size
//   - image_crop_quadrant: Named region (top-left, center, etc.)
//   - image_rotate: Clockwise rotation on a transparent canvas
//   - image_trim: Remove white margins
//   - image_add_border: Solid border
//   - image_convert: Re-encode into another format
//
// Color Operations:
//   - image_sample_color: Get color at pixel
//
// # Image Caching
//
// Loaded images are cached by path for the lifetime of the process, together
// with their decoded pixels. Results of transforms are not cached.
//
// # Configuration
//
// ConfigFromEnv reads ANYBITMAP_LOG_LEVEL, ANYBITMAP_MAX_PIXELS and
// ANYBITMAP_DEFAULT_QUALITY. New applies the pixel limit process-wide.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32602 for arguments that do not parse, -32000 for any other failure
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	cfg, err := server.ConfigFromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := server.New(cfg).Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
