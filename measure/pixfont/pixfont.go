// Package pixfont implements a pixel measurement substrate backed by a
// bitmap font. A Region is a fixed pixel width; text wraps at word
// boundaries using glyph advance widths and the footprint is reported in
// pixels.
package pixfont

import (
	"strings"

	"tinygo.org/x/tinyfont"

	"github.com/excerptkit/excerpt/measure"
)

// Region is a fixed-width pixel area rendered with a bitmap font. Line
// height is configured explicitly since fonts only carry glyph extents.
type Region struct {
	font       tinyfont.Fonter
	width      int
	lineHeight int
	text       string
}

// NewRegion creates a region width pixels wide rendering with font. Lines
// advance by lineHeight pixels.
func NewRegion(font tinyfont.Fonter, width, lineHeight int) *Region {
	if width < 1 {
		width = 1
	}
	if lineHeight < 1 {
		lineHeight = 1
	}
	return &Region{font: font, width: width, lineHeight: lineHeight}
}

// Text returns the current content.
func (r *Region) Text() string { return r.text }

// SetText replaces the current content.
func (r *Region) SetText(text string) { r.text = text }

// Width returns the region width in pixels.
func (r *Region) Width() int { return r.width }

// LineHeight returns the configured line advance in pixels.
func (r *Region) LineHeight() int { return r.lineHeight }

// Size reports the rendered footprint of the current content in pixels:
// the widest wrapped line and the line count times the line height.
func (r *Region) Size() measure.Box {
	if r.text == "" {
		return measure.Box{}
	}

	var widest, lines int
	for _, block := range strings.Split(r.text, "\n") {
		for _, line := range r.wrap(block) {
			lines++
			if w := r.textWidth(line); w > widest {
				widest = w
			}
		}
	}
	return measure.Box{Width: widest, Height: lines * r.lineHeight}
}

// wrap splits text into lines no wider than the region, breaking only at
// spaces. Overlong words are kept whole and overflow.
func (r *Region) wrap(text string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		joined := current + " " + word
		if r.textWidth(joined) <= r.width {
			current = joined
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	return append(lines, current)
}

func (r *Region) textWidth(s string) int {
	if s == "" {
		return 0
	}
	_, outbox := tinyfont.LineWidth(r.font, s)
	return int(outbox)
}
