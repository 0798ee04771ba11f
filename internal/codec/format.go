package codec

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"

	"github.com/ironsheep/anybitmap/internal/imgerr"
)

// Format is an image container format.
type Format int

// Container formats known to the codec.
const (
	Unknown Format = iota
	Bmp
	Png
	Jpeg
	Gif
	Tiff
	Webp
	Svg
)

var formatNames = map[Format]string{
	Unknown: "unknown",
	Bmp:     "bmp",
	Png:     "png",
	Jpeg:    "jpeg",
	Gif:     "gif",
	Tiff:    "tiff",
	Webp:    "webp",
	Svg:     "svg",
}

var formatMimeTypes = map[Format]string{
	Bmp:  "image/bmp",
	Png:  "image/png",
	Jpeg: "image/jpeg",
	Gif:  "image/gif",
	Tiff: "image/tiff",
	Webp: "image/webp",
	Svg:  "image/svg+xml",
}

var formatAliases = map[string]Format{
	"bmp":  Bmp,
	"png":  Png,
	"jpg":  Jpeg,
	"jpeg": Jpeg,
	"gif":  Gif,
	"tif":  Tiff,
	"tiff": Tiff,
	"webp": Webp,
	"svg":  Svg,
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return formatNames[Unknown]
}

// MimeType returns the IANA media type, or "application/octet-stream" for
// Unknown.
func (f Format) MimeType() string {
	if m, ok := formatMimeTypes[f]; ok {
		return m
	}
	return "application/octet-stream"
}

// Extension returns the conventional file extension including the dot.
func (f Format) Extension() string {
	if f == Unknown {
		return ""
	}
	return "." + f.String()
}

// CanEncode reports whether Encode can write this format.
func (f Format) CanEncode() bool {
	_, ok := encoders[f]
	return ok
}

// ParseFormat maps a name or extension ("png", ".JPG", "tif") to a Format.
func ParseFormat(name string) (Format, error) {
	key := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "."))
	if f, ok := formatAliases[key]; ok {
		return f, nil
	}
	return Unknown, errors.Wrapf(imgerr.ErrUnsupportedFormat, "format name %q", name)
}

// signature is one row of the detection table: every part must match.
type signature struct {
	format Format
	parts  []signaturePart
}

type signaturePart struct {
	offset int
	magic  []byte
}

// signatures is checked in order; the first full match wins.
var signatures = []signature{
	{Png, []signaturePart{{0, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}}}},
	{Jpeg, []signaturePart{{0, []byte{0xFF, 0xD8, 0xFF}}}},
	{Gif, []signaturePart{{0, []byte("GIF87a")}}},
	{Gif, []signaturePart{{0, []byte("GIF89a")}}},
	{Webp, []signaturePart{{0, []byte("RIFF")}, {8, []byte("WEBP")}}},
	{Tiff, []signaturePart{{0, []byte{'I', 'I', 0x2A, 0x00}}}},
	{Tiff, []signaturePart{{0, []byte{'M', 'M', 0x00, 0x2A}}}},
	{Bmp, []signaturePart{{0, []byte("BM")}}},
}

// svgSniffLen bounds how far into a document the SVG sniff looks for the
// root element.
const svgSniffLen = 4096

// DetectFormat identifies the container format from the leading bytes.
//
// Binary signatures are checked first in a fixed priority order. If none
// match, the content is sniffed as markup: it must start (after an optional
// byte order mark and whitespace) with '<' and contain an <svg element
// within the first svgSniffLen bytes. Anything else is Unknown. File
// extensions are never consulted.
func DetectFormat(data []byte) Format {
	for _, sig := range signatures {
		if sig.matches(data) {
			return sig.format
		}
	}
	if looksLikeSVG(data) {
		return Svg
	}
	return Unknown
}

func (s signature) matches(data []byte) bool {
	for _, p := range s.parts {
		end := p.offset + len(p.magic)
		if len(data) < end || !bytes.Equal(data[p.offset:end], p.magic) {
			return false
		}
	}
	return true
}

func looksLikeSVG(data []byte) bool {
	head := data
	if len(head) > svgSniffLen {
		head = head[:svgSniffLen]
	}
	head = bytes.TrimPrefix(head, []byte{0xEF, 0xBB, 0xBF})
	head = bytes.TrimLeft(head, " \t\r\n")
	if len(head) == 0 || head[0] != '<' {
		return false
	}
	return bytes.Contains(bytes.ToLower(head), []byte("<svg"))
}
