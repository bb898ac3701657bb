// Package review implements offset-based navigation over recognized text.
//
// A [Navigator] wraps one [hocr.Result] and answers the queries a review
// cursor needs: total story length, arbitrary text ranges, the line or word
// containing an offset, and the screen point for an offset. All boundary
// lookups share one convention: an offset exactly on a boundary belongs to
// the segment that starts there, so every offset in [0, StoryLength()] maps
// to exactly one line and one word range.
//
// The wrapped result is never mutated, so any number of navigators (and
// clones of them) may read it concurrently.
package review

import (
	"fmt"

	"github.com/tsawler/screentext/hocr"
	"github.com/tsawler/screentext/model"
)

// Navigator provides offset-based access to a recognition result, tracking a
// current position the way a review cursor does.
type Navigator struct {
	res *hocr.Result
	pos int
}

// New creates a navigator positioned at the start of the text.
func New(res *hocr.Result) *Navigator {
	return &Navigator{res: res}
}

// NewAt creates a navigator at the given position. The position must lie in
// [0, StoryLength()].
func NewAt(res *hocr.Result, pos int) *Navigator {
	n := New(res)
	n.MoveTo(pos)
	return n
}

// Clone returns an independent copy of the navigator. Both share the same
// immutable result, so moving one never disturbs the other.
func (n *Navigator) Clone() *Navigator {
	c := *n
	return &c
}

// Result returns the wrapped recognition result.
func (n *Navigator) Result() *hocr.Result {
	return n.res
}

// StoryLength returns the total number of characters of recognized text.
// Valid offsets for all other queries lie in [0, StoryLength()]. A length of
// zero means nothing was recognized; callers should check for that before
// navigating.
func (n *Navigator) StoryLength() int {
	return n.res.Length
}

// Position returns the navigator's current offset.
func (n *Navigator) Position() int {
	return n.pos
}

// MoveTo sets the current offset. Offsets outside [0, StoryLength()] are a
// caller bug and panic.
func (n *Navigator) MoveTo(offset int) {
	n.assertOffset(offset)
	n.pos = offset
}

// TextRange returns the text between two offsets. Out-of-range offsets are a
// caller contract violation and panic; the navigator never clamps, so caller
// bugs surface instead of being masked.
func (n *Navigator) TextRange(start, end int) string {
	return n.res.Slice(start, end)
}

// LineRange returns the half-open range [start, end) of the line containing
// the given offset. An offset exactly at a line's end boundary belongs to
// the following line; the terminal offset resolves to the final line.
func (n *Navigator) LineRange(offset int) (start, end int) {
	n.assertOffset(offset)

	start = 0
	for _, boundary := range n.res.Lines {
		if boundary > offset {
			return start, boundary
		}
		start = boundary
	}
	return start, n.res.Length
}

// WordRange returns the half-open range [start, end) of the word containing
// the given offset. Word records mark starts, so the range runs from the
// last word starting at or before the offset to the next word's start, or to
// the end of the story for the final word.
func (n *Navigator) WordRange(offset int) (start, end int) {
	n.assertOffset(offset)

	start = 0
	for _, word := range n.res.Words {
		if word.Offset > offset {
			return start, word.Offset
		}
		start = word.Offset
	}
	return start, n.res.Length
}

// PointAtOffset returns the screen coordinate of the word containing or
// immediately preceding the given offset. When no word precedes the offset,
// or nothing was recognized at all, it falls back to the capture origin.
func (n *Navigator) PointAtOffset(offset int) model.Point {
	n.assertOffset(offset)

	found := false
	var word hocr.Word
	for _, next := range n.res.Words {
		if next.Offset > offset {
			break
		}
		word = next
		found = true
	}
	if !found {
		return n.res.Origin
	}
	return model.Point{X: word.Left, Y: word.Top}
}

// Line returns the text of the line containing the given offset.
func (n *Navigator) Line(offset int) string {
	start, end := n.LineRange(offset)
	return n.res.Slice(start, end)
}

// Word returns the text of the word containing the given offset.
func (n *Navigator) Word(offset int) string {
	start, end := n.WordRange(offset)
	return n.res.Slice(start, end)
}

// CurrentLine returns the text of the line at the current position.
func (n *Navigator) CurrentLine() string {
	return n.Line(n.pos)
}

// CurrentWord returns the text of the word at the current position.
func (n *Navigator) CurrentWord() string {
	return n.Word(n.pos)
}

// CurrentPoint returns the screen coordinate for the current position.
func (n *Navigator) CurrentPoint() model.Point {
	return n.PointAtOffset(n.pos)
}

func (n *Navigator) assertOffset(offset int) {
	if offset < 0 || offset > n.res.Length {
		panic(fmt.Sprintf("review: offset %d out of range [0, %d]", offset, n.res.Length))
	}
}
