// Package format provides image payload format detection for the screentext
// library.
package format

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format represents a supported image format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PNG indicates a PNG image.
	PNG
	// JPEG indicates a JPEG image.
	JPEG
	// TIFF indicates a TIFF image.
	TIFF
	// BMP indicates a Windows bitmap image.
	BMP
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	case TIFF:
		return "TIFF"
	case BMP:
		return "BMP"
	default:
		return "Unknown"
	}
}

// MIME returns the MIME type for the format.
func (f Format) MIME() string {
	switch f {
	case PNG:
		return "image/png"
	case JPEG:
		return "image/jpeg"
	case TIFF:
		return "image/tiff"
	case BMP:
		return "image/bmp"
	default:
		return ""
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PNG:
		return ".png"
	case JPEG:
		return ".jpg"
	case TIFF:
		return ".tiff"
	case BMP:
		return ".bmp"
	default:
		return ""
	}
}

// DetectFromName determines image format from a filename extension.
func DetectFromName(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".png":
		return PNG
	case ".jpg", ".jpeg":
		return JPEG
	case ".tif", ".tiff":
		return TIFF
	case ".bmp":
		return BMP
	default:
		return Unknown
	}
}

// Detect checks magic bytes to determine image format. This is more reliable
// than extension-based detection. Returns Unknown if the payload does not
// start with a recognized signature.
func Detect(data []byte) Format {
	if len(data) < 4 {
		return Unknown
	}

	// PNG magic: \x89PNG
	if bytes.HasPrefix(data, []byte{0x89, 'P', 'N', 'G'}) {
		return PNG
	}

	// JPEG magic: \xFF\xD8\xFF
	if bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}) {
		return JPEG
	}

	// TIFF magic, both byte orders: II*\x00 or MM\x00*
	if bytes.HasPrefix(data, []byte{'I', 'I', 0x2A, 0x00}) ||
		bytes.HasPrefix(data, []byte{'M', 'M', 0x00, 0x2A}) {
		return TIFF
	}

	// BMP magic: BM
	if data[0] == 'B' && data[1] == 'M' {
		return BMP
	}

	return Unknown
}
