package bitmap

// Info contains metadata about a bitmap.
type Info struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the container format detected from the signature, e.g. "png".
	Format string `json:"format"`

	// MimeType is the MIME type of Format.
	MimeType string `json:"mime_type"`

	// HasAlpha reports whether any pixel is less than fully opaque.
	HasAlpha bool `json:"has_alpha"`

	// SizeBytes is the length of the original encoded bytes.
	SizeBytes int `json:"size_bytes"`

	// Hash is the xxHash64 of the original bytes as 16 hex digits.
	Hash string `json:"hash"`
}

// Info decodes the bitmap (if it has not been decoded yet) and describes it.
func (b *Bitmap) Info() (*Info, error) {
	pb, err := b.PixelBuffer()
	if err != nil {
		return nil, err
	}

	hasAlpha := false
	for _, s := range pb.Samples() {
		if s>>24 != 0xFF {
			hasAlpha = true
			break
		}
	}

	return &Info{
		Width:     pb.Width(),
		Height:    pb.Height(),
		Format:    b.format.String(),
		MimeType:  b.format.MimeType(),
		HasAlpha:  hasAlpha,
		SizeBytes: len(b.data),
		Hash:      b.HashString(),
	}, nil
}
