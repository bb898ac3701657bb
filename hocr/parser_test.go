package hocr

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/tsawler/screentext/model"
)

// twoWordDoc is a minimal document with one line containing two words,
// recognized from an image upscaled by a factor of two.
const twoWordDoc = `<div><span class="ocr_line"><span class="ocr_word" title="bbox 10 20 30 40">Hi</span> <span class="ocr_word" title="bbox 50 20 70 40">there</span></span></div>`

func mustParse(t *testing.T, doc string, origin model.Point, factor float64) *Result {
	t.Helper()
	res, err := Parse(doc, origin, factor)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return res
}

// ============================================================================
// Text accumulation
// ============================================================================

func TestParseText(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			"two words one line",
			twoWordDoc,
			"Hi there",
		},
		{
			"whitespace run collapses",
			"<p>a\n\n  b</p>",
			"a b",
		},
		{
			"leading block whitespace suppressed",
			"<p>  hi</p>",
			"hi",
		},
		{
			"whitespace-only block contributes nothing",
			"<div><p>   </p><p>x</p></div>",
			"x",
		},
		{
			"no duplicate space at element merge points",
			`<p><span class="ocr_line">a</span> <span class="ocr_line"> b</span></p>`,
			"a b",
		},
		{
			"non-breaking space entity collapses like whitespace",
			"<p>a&nbsp;b</p>",
			"a b",
		},
		{
			"empty document",
			"<div></div>",
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := mustParse(t, tt.doc, model.Point{}, 1)
			if res.Text != tt.want {
				t.Errorf("Text = %q, want %q", res.Text, tt.want)
			}
			if res.Length != len([]rune(tt.want)) {
				t.Errorf("Length = %d, want %d", res.Length, len([]rune(tt.want)))
			}
		})
	}
}

func TestParseUnicodeLength(t *testing.T) {
	res := mustParse(t, "<p>héllo wörld</p>", model.Point{}, 1)

	if res.Text != "héllo wörld" {
		t.Errorf("Text = %q, want %q", res.Text, "héllo wörld")
	}
	// Length counts runes, not bytes.
	if res.Length != 11 {
		t.Errorf("Length = %d, want 11", res.Length)
	}
}

// ============================================================================
// Line and word boundaries
// ============================================================================

func TestParseWorkedExample(t *testing.T) {
	res := mustParse(t, twoWordDoc, model.Point{}, 2)

	if res.Text != "Hi there" {
		t.Errorf("Text = %q, want %q", res.Text, "Hi there")
	}
	// A single line never records an explicit boundary; its end is implicit
	// in the total length.
	if len(res.Lines) != 0 {
		t.Errorf("Lines = %v, want none", res.Lines)
	}

	want := []Word{
		{Offset: 0, Left: 5, Top: 10},
		{Offset: 3, Left: 25, Top: 10},
	}
	if !reflect.DeepEqual(res.Words, want) {
		t.Errorf("Words = %+v, want %+v", res.Words, want)
	}
}

func TestParseLineBoundaries(t *testing.T) {
	doc := "<div>\n" +
		`<span class="ocr_line"><span class="ocr_word" title="bbox 0 0 30 10">One</span></span>` + "\n" +
		`<span class="ocr_line"><span class="ocr_word" title="bbox 0 12 30 22">Two</span></span>` + "\n" +
		"</div>"

	res := mustParse(t, doc, model.Point{}, 1)

	if res.Text != "One Two " {
		t.Errorf("Text = %q, want %q", res.Text, "One Two ")
	}
	if !reflect.DeepEqual(res.Lines, []int{4}) {
		t.Errorf("Lines = %v, want [4]", res.Lines)
	}

	want := []Word{
		{Offset: 0, Left: 0, Top: 0},
		{Offset: 4, Left: 0, Top: 12},
	}
	if !reflect.DeepEqual(res.Words, want) {
		t.Errorf("Words = %+v, want %+v", res.Words, want)
	}
}

func TestParseLineBoundariesStrictlyIncreasing(t *testing.T) {
	// Consecutive empty lines must not record duplicate boundaries.
	doc := `<div><span class="ocr_line">ab</span><span class="ocr_line"></span><span class="ocr_line"></span><span class="ocr_line">cd</span></div>`

	res := mustParse(t, doc, model.Point{}, 1)

	prev := 0
	for _, b := range res.Lines {
		if b <= prev {
			t.Fatalf("Lines = %v: boundary %d not strictly increasing", res.Lines, b)
		}
		if b > res.Length {
			t.Fatalf("Lines = %v: boundary %d exceeds length %d", res.Lines, b, res.Length)
		}
		prev = b
	}
}

func TestParseWordOffsetsMonotonic(t *testing.T) {
	doc := `<div><span class="ocr_line">` +
		`<span class="ocrx_word" title="bbox 0 0 10 10">a</span> ` +
		`<span class="ocrx_word" title="bbox 12 0 22 10">bb</span> ` +
		`<span class="ocrx_word" title="bbox 24 0 34 10">ccc</span>` +
		`</span></div>`

	res := mustParse(t, doc, model.Point{}, 1)

	if len(res.Words) != 3 {
		t.Fatalf("len(Words) = %d, want 3", len(res.Words))
	}
	for i := 1; i < len(res.Words); i++ {
		if res.Words[i].Offset < res.Words[i-1].Offset {
			t.Errorf("Words[%d].Offset = %d < Words[%d].Offset = %d",
				i, res.Words[i].Offset, i-1, res.Words[i-1].Offset)
		}
	}
	if last := res.Words[len(res.Words)-1]; last.Offset > res.Length {
		t.Errorf("last word offset %d exceeds length %d", last.Offset, res.Length)
	}
}

// ============================================================================
// Coordinate mapping
// ============================================================================

func TestParseCoordinateTranslation(t *testing.T) {
	tests := []struct {
		name     string
		origin   model.Point
		factor   float64
		wantLeft float64
		wantTop  float64
	}{
		{"origin only", model.Point{X: 100, Y: 200}, 1, 110, 220},
		{"factor only", model.Point{}, 2, 5, 10},
		{"origin and factor", model.Point{X: 100, Y: 200}, 2, 105, 210},
		{"factor four", model.Point{}, 4, 2.5, 5},
		{"zero factor treated as one", model.Point{}, 0, 10, 20},
	}

	doc := `<div><span class="ocr_line"><span class="ocr_word" title="bbox 10 20 30 40">x</span></span></div>`

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := mustParse(t, doc, tt.origin, tt.factor)
			if len(res.Words) != 1 {
				t.Fatalf("len(Words) = %d, want 1", len(res.Words))
			}
			w := res.Words[0]
			if w.Left != tt.wantLeft || w.Top != tt.wantTop {
				t.Errorf("Word = (%v, %v), want (%v, %v)", w.Left, w.Top, tt.wantLeft, tt.wantTop)
			}
		})
	}
}

func TestParseClassVariantsEquivalent(t *testing.T) {
	oldStyle := mustParse(t, twoWordDoc, model.Point{X: 3, Y: 7}, 2)
	newStyle := mustParse(t, strings.ReplaceAll(twoWordDoc, "ocr_word", "ocrx_word"), model.Point{X: 3, Y: 7}, 2)

	if !reflect.DeepEqual(oldStyle, newStyle) {
		t.Errorf("ocr_word result %+v != ocrx_word result %+v", oldStyle, newStyle)
	}
}

func TestParseTitleMetadataSuffixIgnored(t *testing.T) {
	plain := `<div><span class="ocr_line"><span class="ocrx_word" title="bbox 10 20 30 40">x</span></span></div>`
	suffixed := `<div><span class="ocr_line"><span class="ocrx_word" title="bbox 10 20 30 40; x_wconf 93; x_font serif">x</span></span></div>`

	a := mustParse(t, plain, model.Point{}, 1)
	b := mustParse(t, suffixed, model.Point{}, 1)

	if !reflect.DeepEqual(a, b) {
		t.Errorf("suffixed title result %+v != plain result %+v", b, a)
	}
}

// ============================================================================
// Error conditions
// ============================================================================

func TestParseMalformedMarkup(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unclosed element", `<div><span class="ocr_line">`},
		{"mismatched tags", `<div><p>text</div></p>`},
		{"stray markup", "text <<< more"},
		{"truncated bbox", `<div><span class="ocrx_word" title="bbox 10 20">x</span></div>`},
		{"non-numeric bbox", `<div><span class="ocrx_word" title="bbox a b c d">x</span></div>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.doc, model.Point{}, 1)
			if !errors.Is(err, ErrMalformedMarkup) {
				t.Errorf("Parse() error = %v, want ErrMalformedMarkup", err)
			}
		})
	}
}

func TestParseMissingTitleAttribute(t *testing.T) {
	doc := `<div><span class="ocr_line"><span class="ocrx_word">x</span></span></div>`

	_, err := Parse(doc, model.Point{}, 1)
	if !errors.Is(err, ErrMissingAttribute) {
		t.Errorf("Parse() error = %v, want ErrMissingAttribute", err)
	}
}

// ============================================================================
// Result accessors
// ============================================================================

func TestResultSlice(t *testing.T) {
	res := mustParse(t, twoWordDoc, model.Point{}, 2)

	// Round trip: the full slice reproduces the text.
	if got := res.Slice(0, res.Length); got != res.Text {
		t.Errorf("Slice(0, Length) = %q, want %q", got, res.Text)
	}
	if got := res.Slice(3, 8); got != "there" {
		t.Errorf("Slice(3, 8) = %q, want %q", got, "there")
	}
	if got := res.Slice(4, 4); got != "" {
		t.Errorf("Slice(4, 4) = %q, want empty", got)
	}
}

func TestResultSliceUnicode(t *testing.T) {
	res := mustParse(t, "<p>héllo wörld</p>", model.Point{}, 1)

	if got := res.Slice(0, 5); got != "héllo" {
		t.Errorf("Slice(0, 5) = %q, want %q", got, "héllo")
	}
	if got := res.Slice(6, 11); got != "wörld" {
		t.Errorf("Slice(6, 11) = %q, want %q", got, "wörld")
	}
}

func TestResultSlicePanicsOutOfRange(t *testing.T) {
	res := mustParse(t, twoWordDoc, model.Point{}, 2)

	tests := []struct {
		name       string
		start, end int
	}{
		{"negative start", -1, 2},
		{"end before start", 5, 3},
		{"end past length", 0, res.Length + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Slice(%d, %d) did not panic", tt.start, tt.end)
				}
			}()
			res.Slice(tt.start, tt.end)
		})
	}
}

func TestResultIsEmpty(t *testing.T) {
	empty := mustParse(t, "<div></div>", model.Point{X: 10, Y: 20}, 1)
	if !empty.IsEmpty() {
		t.Error("IsEmpty() = false for empty document, want true")
	}
	if empty.Origin != (model.Point{X: 10, Y: 20}) {
		t.Errorf("Origin = %+v, want {10, 20}", empty.Origin)
	}

	full := mustParse(t, twoWordDoc, model.Point{}, 2)
	if full.IsEmpty() {
		t.Error("IsEmpty() = true for non-empty document, want false")
	}
}
