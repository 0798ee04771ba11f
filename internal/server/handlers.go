package server

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/anybitmap/internal/bitmap"
	"github.com/ironsheep/anybitmap/internal/codec"
	"github.com/ironsheep/anybitmap/internal/geometry"
	"github.com/ironsheep/anybitmap/internal/imaging"
	"github.com/ironsheep/anybitmap/internal/imgerr"
)

// errInvalidParams marks tool arguments that could not be parsed.
var errInvalidParams = errors.New("invalid params")

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_crop").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Malformed arguments return code -32602; any other failure returns -32000
// with the error text as data.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if s.cfg.Debug() {
			log.Printf("tool %s failed: %v", params.Name, err)
		}
		if errors.Is(err, errInvalidParams) {
			return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Loads the bitmap from the cache
//  3. Calls the matching Bitmap or imaging function
//  4. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Transforms
	case "image_resize":
		return s.handleImageResize(args)
	case "image_crop":
		return s.handleImageCrop(args)
	case "image_crop_size":
		return s.handleImageCropSize(args)
	case "image_crop_quadrant":
		return s.handleImageCropQuadrant(args)
	case "image_rotate":
		return s.handleImageRotate(args)
	case "image_trim":
		return s.handleImageTrim(args)
	case "image_add_border":
		return s.handleImageAddBorder(args)
	case "image_convert":
		return s.handleImageConvert(args)

	// Color Operations
	case "image_sample_color":
		return s.handleImageSampleColor(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

func decodeArgs(args json.RawMessage, v interface{}) error {
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("%w: %v", errInvalidParams, err)
	}
	return nil
}

// ImageResult is returned by every tool that produces a new image.
type ImageResult struct {
	ImageBase64 string `json:"image_base64"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Format      string `json:"format"`
	MimeType    string `json:"mime_type"`
	SizeBytes   int    `json:"size_bytes"`
	Hash        string `json:"hash"`
	OutputPath  string `json:"output_path,omitempty"`
}

// outputArgs are the encode settings shared by all transform tools.
type outputArgs struct {
	Format     string `json:"format"`
	Quality    *int   `json:"quality"`
	OutputPath string `json:"output_path"`
}

func (s *Server) exportOptions(o outputArgs) ([]bitmap.Option, error) {
	quality := s.cfg.DefaultQuality
	if o.Quality != nil {
		quality = *o.Quality
	}
	opts := []bitmap.Option{bitmap.WithQuality(quality)}
	if o.Format != "" {
		f, err := codec.ParseFormat(o.Format)
		if err != nil {
			return nil, err
		}
		opts = append(opts, bitmap.WithFormat(f))
	}
	return opts, nil
}

// transform loads path, runs fn with the requested encode options and packs
// the result, writing it to OutputPath when one is given.
func (s *Server) transform(path string, o outputArgs, fn func(*bitmap.Bitmap, []bitmap.Option) (*bitmap.Bitmap, error)) (*ImageResult, error) {
	opts, err := s.exportOptions(o)
	if err != nil {
		return nil, err
	}
	src, err := s.cache.Load(path)
	if err != nil {
		return nil, err
	}
	out, err := fn(src, opts)
	if err != nil {
		return nil, err
	}
	return s.imageResult(out, o.OutputPath)
}

func (s *Server) imageResult(b *bitmap.Bitmap, outputPath string) (*ImageResult, error) {
	w, h, err := b.Dimensions()
	if err != nil {
		return nil, err
	}
	data, err := b.ExportBytes()
	if err != nil {
		return nil, err
	}
	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0o644); err != nil {
			return nil, fmt.Errorf("failed to write output: %w", err)
		}
	}
	return &ImageResult{
		ImageBase64: base64.StdEncoding.EncodeToString(data),
		Width:       w,
		Height:      h,
		Format:      b.Format().String(),
		MimeType:    b.Format().MimeType(),
		SizeBytes:   len(data),
		Hash:        b.HashString(),
		OutputPath:  outputPath,
	}, nil
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	b, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return b.Info()
}

// DimensionsResult contains the width and height of an image.
type DimensionsResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	b, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	w, h, err := b.Dimensions()
	if err != nil {
		return nil, err
	}
	return &DimensionsResult{Width: w, Height: h}, nil
}

// === Transform Handlers ===

type imageResizeArgs struct {
	Path   string  `json:"path"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Scale  float64 `json:"scale"`
	outputArgs
}

func (s *Server) handleImageResize(args json.RawMessage) (interface{}, error) {
	var a imageResizeArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	useScale := a.Width == 0 && a.Height == 0
	if useScale && a.Scale == 0 {
		return nil, fmt.Errorf("resize needs width and height, or scale: %w", imgerr.ErrInvalidArgument)
	}
	return s.transform(a.Path, a.outputArgs, func(b *bitmap.Bitmap, opts []bitmap.Option) (*bitmap.Bitmap, error) {
		if useScale {
			return b.ResizeScale(a.Scale, opts...)
		}
		return b.Resize(a.Width, a.Height, opts...)
	})
}

type imageCropArgs struct {
	Path   string `json:"path"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	outputArgs
}

func (s *Server) handleImageCrop(args json.RawMessage) (interface{}, error) {
	var a imageCropArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	rect := geometry.NewCropRectangle(a.X, a.Y, a.Width, a.Height)
	return s.transform(a.Path, a.outputArgs, func(b *bitmap.Bitmap, opts []bitmap.Option) (*bitmap.Bitmap, error) {
		return b.Crop(rect, opts...)
	})
}

type imageCropSizeArgs struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	outputArgs
}

func (s *Server) handleImageCropSize(args json.RawMessage) (interface{}, error) {
	var a imageCropSizeArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return s.transform(a.Path, a.outputArgs, func(b *bitmap.Bitmap, opts []bitmap.Option) (*bitmap.Bitmap, error) {
		return b.CropSize(a.Width, a.Height, opts...)
	})
}

type imageCropQuadrantArgs struct {
	Path   string `json:"path"`
	Region string `json:"region"`
	outputArgs
}

func (s *Server) handleImageCropQuadrant(args json.RawMessage) (interface{}, error) {
	var a imageCropQuadrantArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return s.transform(a.Path, a.outputArgs, func(b *bitmap.Bitmap, opts []bitmap.Option) (*bitmap.Bitmap, error) {
		w, h, err := b.Dimensions()
		if err != nil {
			return nil, err
		}
		rect, err := imaging.QuadrantRectangle(a.Region, w, h)
		if err != nil {
			return nil, err
		}
		return b.Crop(rect, opts...)
	})
}

type imageRotateArgs struct {
	Path    string  `json:"path"`
	Degrees float64 `json:"degrees"`
	outputArgs
}

func (s *Server) handleImageRotate(args json.RawMessage) (interface{}, error) {
	var a imageRotateArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return s.transform(a.Path, a.outputArgs, func(b *bitmap.Bitmap, opts []bitmap.Option) (*bitmap.Bitmap, error) {
		return b.Rotate(a.Degrees, opts...)
	})
}

type imageTrimArgs struct {
	Path string `json:"path"`
	outputArgs
}

func (s *Server) handleImageTrim(args json.RawMessage) (interface{}, error) {
	var a imageTrimArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return s.transform(a.Path, a.outputArgs, func(b *bitmap.Bitmap, opts []bitmap.Option) (*bitmap.Bitmap, error) {
		return b.Trim(opts...)
	})
}

type imageAddBorderArgs struct {
	Path  string `json:"path"`
	Color string `json:"color"`
	Width int    `json:"width"`
	outputArgs
}

func (s *Server) handleImageAddBorder(args json.RawMessage) (interface{}, error) {
	var a imageAddBorderArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Color == "" {
		a.Color = "#000000"
	}
	c, err := geometry.ParseColor(a.Color)
	if err != nil {
		return nil, err
	}
	return s.transform(a.Path, a.outputArgs, func(b *bitmap.Bitmap, opts []bitmap.Option) (*bitmap.Bitmap, error) {
		return b.AddBorder(c, a.Width, opts...)
	})
}

type imageConvertArgs struct {
	Path string `json:"path"`
	outputArgs
}

func (s *Server) handleImageConvert(args json.RawMessage) (interface{}, error) {
	var a imageConvertArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Format == "" {
		return nil, fmt.Errorf("convert needs a target format: %w", imgerr.ErrInvalidArgument)
	}
	opts, err := s.exportOptions(a.outputArgs)
	if err != nil {
		return nil, err
	}
	src, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	data, err := src.ExportBytes(opts...)
	if err != nil {
		return nil, err
	}
	out, err := bitmap.FromBytes(data)
	if err != nil {
		return nil, err
	}
	return s.imageResult(out, a.OutputPath)
}

// === Color Operation Handlers ===

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	b, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	pb, err := b.PixelBuffer()
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(pb, a.X, a.Y)
}
