//go:build ocr

// Package ocr provides OCR (Optical Character Recognition) capabilities
// for recognizing text in captured screen images.
//
// This package wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/tsawler/screentext/format"
)

// ErrUnsupportedFormat is returned when an image payload does not carry a
// recognizable image signature.
var ErrUnsupportedFormat = errors.New("ocr: unsupported image format")

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	client := gosseract.NewClient()
	return &Client{client: client}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// RecognizeImage performs OCR on image data (PNG, TIFF, JPEG, etc.).
// Returns the recognized text with leading/trailing whitespace trimmed.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	if err := c.setImage(imageData); err != nil {
		return "", err
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// RecognizeHOCR performs OCR on image data and returns the engine's hOCR
// markup, which carries per-line and per-word layout. The markup is the
// expected input for hocr.Parse.
func (c *Client) RecognizeHOCR(imageData []byte) (string, error) {
	if err := c.setImage(imageData); err != nil {
		return "", err
	}

	markup, err := c.client.HOCRText()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return markup, nil
}

func (c *Client) setImage(imageData []byte) error {
	if format.Detect(imageData) == format.Unknown {
		return ErrUnsupportedFormat
	}
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return fmt.Errorf("failed to set image: %w", err)
	}
	return nil
}

// SetLanguage sets the language(s) for OCR recognition.
// Multiple languages can be specified as a "+" separated string (e.g., "eng+fra").
// Default is "eng" (English).
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// SetPageSegMode sets the page segmentation mode.
// This affects how Tesseract analyzes the page layout.
// See gosseract.PageSegMode constants for available modes.
func (c *Client) SetPageSegMode(mode gosseract.PageSegMode) error {
	return c.client.SetPageSegMode(mode)
}

// Languages returns the languages the installed engine has trained data for.
func (c *Client) Languages() ([]string, error) {
	langs, err := c.client.GetAvailableLanguages()
	if err != nil {
		return nil, fmt.Errorf("listing languages: %w", err)
	}
	return langs, nil
}
