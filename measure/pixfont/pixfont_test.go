package pixfont

import (
	"strings"
	"testing"

	"tinygo.org/x/tinyfont/proggy"
)

func testRegion(width int) *Region {
	return NewRegion(&proggy.TinySZ8pt7b, width, 10)
}

func TestRegion_SizeEmpty(t *testing.T) {
	r := testRegion(100)
	if got := r.Size(); got.Width != 0 || got.Height != 0 {
		t.Errorf("Size() = %+v, expected zero box for empty text", got)
	}
}

func TestRegion_SizeSingleLine(t *testing.T) {
	r := testRegion(1000)
	r.SetText("hello")

	box := r.Size()
	if box.Height != 10 {
		t.Errorf("height = %d, expected one line height 10", box.Height)
	}
	if box.Width <= 0 || box.Width > 1000 {
		t.Errorf("width = %d, expected positive width within region", box.Width)
	}
}

func TestRegion_HeightIsLineMultiple(t *testing.T) {
	r := testRegion(60)
	r.SetText("several words that will not fit on one narrow line")

	box := r.Size()
	if box.Height%10 != 0 {
		t.Errorf("height = %d, expected multiple of line height", box.Height)
	}
	if box.Height <= 10 {
		t.Errorf("height = %d, expected wrapping onto multiple lines", box.Height)
	}
}

func TestRegion_ForcedBreaks(t *testing.T) {
	r := testRegion(1000)
	r.SetText("i\ni\ni")

	if got := r.Size().Height; got != 30 {
		t.Errorf("height = %d, expected 3 lines of 10px", got)
	}
}

func TestRegion_MonotonicInPrefixLength(t *testing.T) {
	r := testRegion(80)
	words := strings.Fields("the longer the prefix the larger the rendered footprint stays")

	prevW, prevH := 0, 0
	for i := 1; i <= len(words); i++ {
		r.SetText(strings.Join(words[:i], " "))
		box := r.Size()
		if box.Width < prevW {
			t.Fatalf("width shrank at prefix %d: %d < %d", i, box.Width, prevW)
		}
		if box.Height < prevH {
			t.Fatalf("height shrank at prefix %d: %d < %d", i, box.Height, prevH)
		}
		prevW, prevH = box.Width, box.Height
	}
}

func TestNewRegion_ClampsArguments(t *testing.T) {
	r := NewRegion(&proggy.TinySZ8pt7b, 0, 0)
	if r.Width() != 1 {
		t.Errorf("Width() = %d, expected clamp to 1", r.Width())
	}
	if r.LineHeight() != 1 {
		t.Errorf("LineHeight() = %d, expected clamp to 1", r.LineHeight())
	}
}
