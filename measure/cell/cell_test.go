package cell

import (
	"strings"
	"testing"

	"github.com/excerptkit/excerpt/measure"
)

func TestRegion_Size(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		text     string
		expected measure.Box
	}{
		{
			name:     "empty",
			width:    10,
			text:     "",
			expected: measure.Box{},
		},
		{
			name:     "single line",
			width:    20,
			text:     "hello world",
			expected: measure.Box{Width: 11, Height: 1},
		},
		{
			name:     "wraps at word boundary",
			width:    11,
			text:     "hello wide world",
			expected: measure.Box{Width: 10, Height: 2},
		},
		{
			name:     "forced line breaks",
			width:    20,
			text:     "i\ni\ni",
			expected: measure.Box{Width: 1, Height: 3},
		},
		{
			name:     "overlong word overflows",
			width:    5,
			text:     "unbreakable",
			expected: measure.Box{Width: 11, Height: 1},
		},
		{
			name:     "wide runes count double",
			width:    20,
			text:     "世界",
			expected: measure.Box{Width: 4, Height: 1},
		},
		{
			name:     "whitespace only renders one empty line",
			width:    20,
			text:     " ",
			expected: measure.Box{Width: 0, Height: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegion(tt.width)
			r.SetText(tt.text)
			if got := r.Size(); got != tt.expected {
				t.Errorf("Size() = %+v, expected %+v", got, tt.expected)
			}
		})
	}
}

func TestRegion_Lines(t *testing.T) {
	r := NewRegion(11)
	r.SetText("hello wide world")

	lines := r.Lines()
	expected := []string{"hello wide", "world"}

	if strings.Join(lines, "|") != strings.Join(expected, "|") {
		t.Errorf("Lines() = %v, expected %v", lines, expected)
	}
}

func TestRegion_Resize(t *testing.T) {
	r := NewRegion(20)
	r.SetText("hello wide world")

	if got := r.Size().Height; got != 1 {
		t.Fatalf("height = %d at width 20, expected 1", got)
	}

	r.Resize(11)
	if got := r.Size().Height; got != 2 {
		t.Errorf("height = %d at width 11, expected 2", got)
	}
	if r.Width() != 11 {
		t.Errorf("Width() = %d, expected 11", r.Width())
	}
}

func TestNewRegion_ClampsWidth(t *testing.T) {
	r := NewRegion(0)
	if r.Width() != 1 {
		t.Errorf("Width() = %d, expected clamp to 1", r.Width())
	}

	r.Resize(-5)
	if r.Width() != 1 {
		t.Errorf("Width() = %d after Resize(-5), expected clamp to 1", r.Width())
	}
}

func TestRegion_TextRoundTrip(t *testing.T) {
	r := NewRegion(10)
	r.SetText("some text")
	if got := r.Text(); got != "some text" {
		t.Errorf("Text() = %q, expected %q", got, "some text")
	}
}
