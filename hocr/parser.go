package hocr

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tsawler/screentext/model"
)

var (
	// ErrMalformedMarkup indicates the input is not well-formed XML, or a
	// word element carries an unparseable bounding box descriptor.
	ErrMalformedMarkup = errors.New("hocr: malformed markup")
	// ErrMissingAttribute indicates a word element lacks the title attribute
	// that carries its bounding box.
	ErrMissingAttribute = errors.New("hocr: word element missing title attribute")
)

// Word records where a recognized word starts in the text buffer and where
// its bounding box origin lies on screen.
type Word struct {
	// Offset is the rune offset at which the word's text begins.
	Offset int
	// Left and Top are absolute screen coordinates, already translated to
	// the capture origin and rescaled to undo the pre-recognition upscale.
	Left float64
	Top  float64
}

// Result is the parsed output of one recognition pass. It is built in a
// single pass by Parse and must be treated as read-only afterward; it is safe
// for concurrent readers.
type Result struct {
	// Text is the full recognized text in document order.
	Text string
	// Length is the rune count of Text.
	Length int
	// Lines holds the exclusive end offset of each line except the last,
	// strictly increasing. The final line implicitly ends at Length.
	Lines []int
	// Words holds one record per recognized word, ordered by non-decreasing
	// Offset.
	Words []Word
	// Origin is the screen coordinate of the capture region's top-left
	// corner, used as the anchor point when no word precedes an offset.
	Origin model.Point
}

// IsEmpty reports whether no text was recognized.
func (r *Result) IsEmpty() bool {
	return r.Length == 0
}

// Slice returns the text between two rune offsets. Both offsets must lie
// within [0, Length] with start <= end; anything else is a caller bug and
// panics rather than clamping.
func (r *Result) Slice(start, end int) string {
	if start < 0 || end < start || end > r.Length {
		panic(fmt.Sprintf("hocr: text range [%d:%d) out of bounds for length %d", start, end, r.Length))
	}
	if start == 0 && end == r.Length {
		return r.Text
	}
	runes := []rune(r.Text)
	return string(runes[start:end])
}

// Parse consumes an hOCR document produced by a recognizer and returns the
// Recognition Result for it. The document is processed in one forward
// streaming pass; nothing is buffered beyond the accumulated text itself.
//
// origin is the screen coordinate of the captured region's top-left corner.
// resizeFactor is the magnification that was applied to the capture before
// recognition; word coordinates are divided by it to get back to screen
// space. A factor of zero or less is treated as 1 (no rescale).
func Parse(doc string, origin model.Point, resizeFactor float64) (*Result, error) {
	if resizeFactor <= 0 {
		resizeFactor = 1
	}

	p := &parser{
		origin:       origin,
		factor:       resizeFactor,
		lastWasSpace: true,
	}

	dec := xml.NewDecoder(strings.NewReader(doc))
	// Recognizers emit XHTML, which may carry named HTML entities.
	dec.Entity = xml.HTMLEntity

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedMarkup, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if err := p.startElement(t); err != nil {
				return nil, err
			}
		case xml.CharData:
			p.charData(string(t))
		}
	}

	return &Result{
		Text:   p.buf.String(),
		Length: p.length,
		Lines:  p.lines,
		Words:  p.words,
		Origin: origin,
	}, nil
}

// parser is the accumulating state for one streaming pass.
type parser struct {
	origin model.Point
	factor float64

	buf    strings.Builder
	length int
	lines  []int
	words  []Word

	// blockHadContent is reset on entry to each block-level element and set
	// once the block contributes visible text. While unset, whitespace runs
	// are discarded instead of collapsed.
	blockHadContent bool
	// lastWasSpace tracks whether the previously emitted rune was a space,
	// so whitespace runs never produce duplicate separators at element
	// merge points. Starts true: nothing precedes offset zero.
	lastWasSpace bool
}

func (p *parser) startElement(el xml.StartElement) error {
	switch el.Name.Local {
	case "p", "div":
		p.blockHadContent = false
	case "span":
		switch attr(el, "class") {
		case "ocr_line":
			p.startLine()
		case "ocr_word", "ocrx_word":
			// Both class names occur in the wild; older engine versions
			// used ocr_word, newer ones ocrx_word.
			return p.startWord(el)
		}
	}
	return nil
}

// startLine records the end boundary of the preceding line. The first line
// has no preceding boundary, so nothing is recorded for it; the last line's
// boundary is implicit in the total text length.
func (p *parser) startLine() {
	if p.length == 0 {
		return
	}
	if n := len(p.lines); n > 0 && p.lines[n-1] >= p.length {
		// An empty line would duplicate the previous boundary.
		return
	}
	p.lines = append(p.lines, p.length)
}

// startWord records a word at the current offset, with its screen position
// recovered from the element's bounding box.
func (p *parser) startWord(el xml.StartElement) error {
	title, ok := attrLookup(el, "title")
	if !ok {
		return fmt.Errorf("%w (word starting at offset %d)", ErrMissingAttribute, p.length)
	}

	left, top, err := parseBBox(title)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedMarkup, err)
	}

	p.words = append(p.words, Word{
		Offset: p.length,
		Left:   p.origin.X + float64(left)/p.factor,
		Top:    p.origin.Y + float64(top)/p.factor,
	})
	return nil
}

// charData folds character data into the text buffer. Whitespace runs
// collapse to a single space; runs before a block's first visible content
// are dropped entirely.
func (p *parser) charData(data string) {
	for len(data) > 0 {
		r, _ := utf8.DecodeRuneInString(data)
		if unicode.IsSpace(r) {
			end := len(data)
			if i := strings.IndexFunc(data, isNotSpace); i >= 0 {
				end = i
			}
			if p.blockHadContent && !p.lastWasSpace {
				p.buf.WriteByte(' ')
				p.length++
				p.lastWasSpace = true
			}
			data = data[end:]
			continue
		}

		end := len(data)
		if i := strings.IndexFunc(data, unicode.IsSpace); i >= 0 {
			end = i
		}
		seg := data[:end]
		p.buf.WriteString(seg)
		p.length += utf8.RuneCountInString(seg)
		p.blockHadContent = true
		p.lastWasSpace = false
		data = data[end:]
	}
}

func isNotSpace(r rune) bool {
	return !unicode.IsSpace(r)
}

// parseBBox extracts the left and top coordinates from a bounding box
// descriptor of the form "bbox <left> <top> <right> <bottom>". Some engine
// versions append ;-separated metadata (e.g. "x_wconf 93") which is
// discarded before parsing.
func parseBBox(title string) (left, top int, err error) {
	desc := title
	if i := strings.IndexByte(desc, ';'); i >= 0 {
		desc = desc[:i]
	}

	fields := strings.Fields(desc)
	if len(fields) < 5 {
		return 0, 0, fmt.Errorf("invalid bbox descriptor %q", title)
	}

	left, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid bbox left coordinate %q", fields[1])
	}
	top, err = strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid bbox top coordinate %q", fields[2])
	}
	return left, top, nil
}

func attr(el xml.StartElement, name string) string {
	val, _ := attrLookup(el, name)
	return val
}

func attrLookup(el xml.StartElement, name string) (string, bool) {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}
