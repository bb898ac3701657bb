// Package screentext provides a fluent API for recognizing text in a
// captured screen region and navigating the result offset by offset.
//
// Basic usage:
//
//	nav, err := screentext.FromImage(capture, region).Navigator()
//	if err != nil {
//	    // handle error
//	}
//	if nav.StoryLength() == 0 {
//	    // nothing recognized
//	}
//	line := nav.CurrentLine()
//
// With options:
//
//	nav, err := screentext.FromImage(capture, region).
//	    Locale("de").
//	    ResizeFactor(4).
//	    Navigator()
//
// Recognition requires Tesseract and the "ocr" build tag; see the ocr
// package. Markup produced elsewhere can be fed in directly with FromHOCR,
// which needs neither.
package screentext

import (
	"fmt"
	"image"

	"github.com/tsawler/screentext/hocr"
	"github.com/tsawler/screentext/lang"
	"github.com/tsawler/screentext/model"
	"github.com/tsawler/screentext/ocr"
	"github.com/tsawler/screentext/prep"
	"github.com/tsawler/screentext/review"
)

// Recognizer holds a captured image and recognition options for fluent
// configuration. Terminal operations run the full pipeline: condition the
// image, recognize it, parse the engine's markup, and wrap the result.
type Recognizer struct {
	img      image.Image
	region   model.Rect
	language string
	factor   int
}

// FromImage starts recognition of a captured image. The region is the
// image's position on screen; recognized word coordinates are reported
// relative to its top-left corner.
func FromImage(img image.Image, region model.Rect) *Recognizer {
	return &Recognizer{
		img:      img,
		region:   region,
		language: lang.Default,
		factor:   prep.DefaultResizeFactor,
	}
}

// Language sets the engine language code (e.g. "eng", "deu", "eng+fra").
func (r *Recognizer) Language(code string) *Recognizer {
	r.language = code
	return r
}

// Locale sets the recognition language from a host locale code (e.g. "de",
// "pt_BR"), falling back to English for unknown locales.
func (r *Recognizer) Locale(locale string) *Recognizer {
	r.language = lang.ToTesseract(locale)
	return r
}

// ResizeFactor sets the magnification applied before recognition. Larger
// captures tend to recognize better at higher factors. Values below one are
// treated as one.
func (r *Recognizer) ResizeFactor(factor int) *Recognizer {
	if factor < 1 {
		factor = 1
	}
	r.factor = factor
	return r
}

// Result runs recognition and returns the parsed recognition result.
func (r *Recognizer) Result() (*hocr.Result, error) {
	conditioned := prep.Upscale(r.img, r.factor)
	data, err := prep.EncodePNG(conditioned)
	if err != nil {
		return nil, err
	}

	client, err := ocr.New()
	if err != nil {
		return nil, err
	}
	defer client.Close()

	if err := client.SetLanguage(r.language); err != nil {
		return nil, fmt.Errorf("setting language %q: %w", r.language, err)
	}

	markup, err := client.RecognizeHOCR(data)
	if err != nil {
		return nil, err
	}

	return hocr.Parse(markup, r.region.Origin(), float64(r.factor))
}

// Navigator runs recognition and returns a navigator over the result,
// positioned at the start of the text.
func (r *Recognizer) Navigator() (*review.Navigator, error) {
	res, err := r.Result()
	if err != nil {
		return nil, err
	}
	return review.New(res), nil
}

// Text runs recognition and returns just the recognized text.
func (r *Recognizer) Text() (string, error) {
	res, err := r.Result()
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// FromHOCR parses recognizer markup produced elsewhere and returns a
// navigator over it. The region is the captured area's screen position and
// resizeFactor the magnification that was applied before recognition.
func FromHOCR(doc string, region model.Rect, resizeFactor float64) (*review.Navigator, error) {
	res, err := hocr.Parse(doc, region.Origin(), resizeFactor)
	if err != nil {
		return nil, err
	}
	return review.New(res), nil
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	nav := screentext.Must(screentext.FromHOCR(markup, region, 2))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
