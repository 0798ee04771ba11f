package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// QuadrantRegions lists the regions accepted by image_crop_quadrant.
var QuadrantRegions = []string{
	"top-left", "top-right", "bottom-left", "bottom-right",
	"top-half", "bottom-half", "left-half", "right-half", "center",
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// transformSchema builds the input schema of a tool that produces an image.
// Every such tool accepts the same output settings next to its own
// properties.
func transformSchema(props map[string]interface{}, required ...string) map[string]interface{} {
	props["path"] = pathProperty()
	props["format"] = map[string]interface{}{
		"type":        "string",
		"enum":        []string{"bmp", "png", "jpeg", "gif", "tiff"},
		"description": "Output format. Defaults to the source format, or png when the source cannot be written (webp, svg)",
	}
	props["quality"] = map[string]interface{}{
		"type":        "integer",
		"minimum":     0,
		"maximum":     100,
		"description": "Encode quality 0-100, used by jpeg only. Default 100",
	}
	props["output_path"] = map[string]interface{}{
		"type":        "string",
		"description": "Optional file path to also write the result to",
	}
	return map[string]interface{}{
		"type":       "object",
		"properties": props,
		"required":   append([]string{"path"}, required...),
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, size, content hash and whether it has transparency. Supports BMP, PNG, JPEG, GIF, TIFF, WEBP and SVG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Transforms
		{
			Name:        "image_resize",
			Description: "Resize an image to an exact width and height, or by a uniform scale factor. Returns the result as base64.",
			InputSchema: transformSchema(map[string]interface{}{
				"width": map[string]interface{}{
					"type":        "integer",
					"description": "Target width in pixels",
				},
				"height": map[string]interface{}{
					"type":        "integer",
					"description": "Target height in pixels",
				},
				"scale": map[string]interface{}{
					"type":        "number",
					"description": "Uniform scale factor, used when width and height are omitted (e.g., 0.5 halves both)",
				},
			}),
		},
		{
			Name:        "image_crop",
			Description: "Crop a rectangular region from an image. The rectangle is clamped to the image: a negative origin counts as 0, a zero or negative size means the full extent, and anything past the edge is cut off.",
			InputSchema: transformSchema(map[string]interface{}{
				"x": map[string]interface{}{
					"type":        "integer",
					"description": "Left edge X coordinate (0-based)",
				},
				"y": map[string]interface{}{
					"type":        "integer",
					"description": "Top edge Y coordinate (0-based)",
				},
				"width": map[string]interface{}{
					"type":        "integer",
					"description": "Region width; 0 for the full image width",
				},
				"height": map[string]interface{}{
					"type":        "integer",
					"description": "Region height; 0 for the full image height",
				},
			}, "x", "y", "width", "height"),
		},
		{
			Name:        "image_crop_size",
			Description: "Crop the top-left width x height corner of an image. Fails if the size is larger than the image.",
			InputSchema: transformSchema(map[string]interface{}{
				"width": map[string]interface{}{
					"type":        "integer",
					"description": "Width in pixels",
				},
				"height": map[string]interface{}{
					"type":        "integer",
					"description": "Height in pixels",
				},
			}, "width", "height"),
		},
		{
			Name:        "image_crop_quadrant",
			Description: "Crop a named region of the image (top-left, top-right, bottom-left, bottom-right, top-half, bottom-half, left-half, right-half, center).",
			InputSchema: transformSchema(map[string]interface{}{
				"region": map[string]interface{}{
					"type":        "string",
					"enum":        QuadrantRegions,
					"description": "Named region to extract",
				},
			}, "region"),
		},
		{
			Name:        "image_rotate",
			Description: "Rotate an image clockwise about its center. The canvas grows to the rotated bounding box and uncovered corners are transparent.",
			InputSchema: transformSchema(map[string]interface{}{
				"degrees": map[string]interface{}{
					"type":        "number",
					"description": "Clockwise rotation in degrees; negative values rotate counter-clockwise",
				},
			}, "degrees"),
		},
		{
			Name:        "image_trim",
			Description: "Remove the white margin around an image. Alpha is ignored; an image that is entirely white is returned unchanged.",
			InputSchema: transformSchema(map[string]interface{}{}),
		},
		{
			Name:        "image_add_border",
			Description: "Surround an image with a solid border of the given color and width.",
			InputSchema: transformSchema(map[string]interface{}{
				"color": map[string]interface{}{
					"type":        "string",
					"description": "Border color as #RGB, #RRGGBB or #RRGGBBAA. Default #000000",
					"default":     "#000000",
				},
				"width": map[string]interface{}{
					"type":        "integer",
					"minimum":     0,
					"description": "Border width in pixels",
				},
			}, "width"),
		},
		{
			Name:        "image_convert",
			Description: "Re-encode an image into another format (bmp, png, jpeg, gif, tiff).",
			InputSchema: transformSchema(map[string]interface{}{}, "format"),
		},

		// Color Operations
		{
			Name:        "image_sample_color",
			Description: "Get the exact color value at a specific pixel coordinate.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
