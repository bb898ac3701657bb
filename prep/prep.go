// Package prep conditions captured screen images before recognition.
//
// OCR engines cope better with high-contrast, oversized input, so captures
// are converted to grayscale and upscaled before being handed to the engine.
// The same factor used here must later be passed to the hOCR parser so word
// coordinates can be mapped back to screen space.
package prep

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/draw"
)

// DefaultResizeFactor is the magnification applied to captures before
// recognition.
const DefaultResizeFactor = 2

// Grayscale converts an image to 8-bit luminance.
func Grayscale(img image.Image) *image.Gray {
	bounds := img.Bounds()
	dst := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst
}

// Upscale converts an image to grayscale and enlarges it by the given
// integer factor using Catmull-Rom resampling. Factors below one are treated
// as one (grayscale conversion only).
func Upscale(img image.Image, factor int) *image.Gray {
	if factor < 1 {
		factor = 1
	}

	bounds := img.Bounds()
	dst := image.NewGray(image.Rect(0, 0, bounds.Dx()*factor, bounds.Dy()*factor))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}

// EncodePNG encodes an image as PNG for handing to a recognition engine.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding image: %w", err)
	}
	return buf.Bytes(), nil
}
