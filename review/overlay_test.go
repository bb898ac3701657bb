package review

import (
	"testing"

	"github.com/tsawler/screentext/hocr"
	"github.com/tsawler/screentext/model"
)

// hostWindow stands in for whatever object the text was recognized from.
type hostWindow struct {
	title string
}

func TestOverlayAttach(t *testing.T) {
	res, err := hocr.Parse(twoWordDoc, model.Point{}, 2)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	host := &hostWindow{title: "Settings"}
	o := Attach(host, res)

	if o.Host() != host {
		t.Errorf("Host() = %p, want %p", o.Host(), host)
	}
	if o.Result() != res {
		t.Error("Result() does not return the attached result")
	}
	// Attaching must not touch the host.
	if host.title != "Settings" {
		t.Errorf("host mutated: title = %q", host.title)
	}
}

func TestOverlayMakeNavigator(t *testing.T) {
	res, err := hocr.Parse(twoWordDoc, model.Point{}, 2)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	o := Attach(&hostWindow{}, res)

	first := o.MakeNavigator(0)
	second := o.MakeNavigator(3)

	if first.Position() != 0 || second.Position() != 3 {
		t.Errorf("positions = %d, %d, want 0, 3", first.Position(), second.Position())
	}
	if got := second.CurrentWord(); got != "there" {
		t.Errorf("CurrentWord() = %q, want %q", got, "there")
	}

	// Navigators from the same overlay are independent cursors.
	first.MoveTo(5)
	if second.Position() != 3 {
		t.Errorf("second navigator moved to %d when first was moved", second.Position())
	}
}
