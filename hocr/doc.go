// Package hocr parses the hOCR XML family of OCR output into a flat,
// navigable text model.
//
// The parser consumes the markup a recognition engine produces for one
// captured screen region and builds a [Result]: the concatenated recognized
// text, the end offset of every line, and one [Word] record per recognized
// word carrying the offset where its text starts and the absolute screen
// position of its bounding box origin.
//
// Consumed markup:
//
//   - <p> and <div> delimit blocks; leading whitespace inside a block is
//     suppressed.
//   - <span class="ocr_line"> marks the start of a recognized line.
//   - <span class="ocr_word"> or <span class="ocrx_word"> marks a word; its
//     title attribute must carry a "bbox left top right bottom" descriptor.
//   - All character data is accumulated, with whitespace runs collapsed to
//     single spaces.
//
// Word coordinates are mapped back to screen space by dividing out the
// pre-recognition resize factor and adding the capture origin, so callers
// can route a review cursor or mouse pointer to any text offset.
package hocr
