// Package cell implements a terminal-cell measurement substrate. A Region
// is a fixed-width column of character cells; rendering wraps text at word
// boundaries and the footprint is reported in cells (columns, lines).
package cell

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/excerptkit/excerpt/measure"
)

// Region is a fixed-width terminal area. It renders its text by wrapping
// at word boundaries; a word wider than the region overflows on its own
// line rather than being split, so the reported width can exceed the
// region width.
type Region struct {
	width int
	text  string
}

// NewRegion creates a region width columns wide. Widths below 1 are
// clamped to 1.
func NewRegion(width int) *Region {
	if width < 1 {
		width = 1
	}
	return &Region{width: width}
}

// Text returns the current content.
func (r *Region) Text() string { return r.text }

// SetText replaces the current content.
func (r *Region) SetText(text string) { r.text = text }

// Width returns the region width in columns.
func (r *Region) Width() int { return r.width }

// Resize changes the region width, e.g. after a terminal size change.
func (r *Region) Resize(width int) {
	if width < 1 {
		width = 1
	}
	r.width = width
}

// Size reports the rendered footprint of the current content: the widest
// wrapped line in columns and the total wrapped line count.
func (r *Region) Size() measure.Box {
	if r.text == "" {
		return measure.Box{}
	}

	var box measure.Box
	for _, block := range strings.Split(r.text, "\n") {
		lines := wrap(block, r.width)
		box.Height += len(lines)
		for _, line := range lines {
			if w := runewidth.StringWidth(line); w > box.Width {
				box.Width = w
			}
		}
	}
	return box
}

// Lines returns the current content as it wraps inside the region.
func (r *Region) Lines() []string {
	if r.text == "" {
		return nil
	}
	var all []string
	for _, block := range strings.Split(r.text, "\n") {
		all = append(all, wrap(block, r.width)...)
	}
	return all
}

// wrap splits text into lines of at most width columns, breaking only at
// spaces. Overlong words are kept whole.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var current strings.Builder
	currentWidth := 0

	for _, word := range words {
		wordWidth := runewidth.StringWidth(word)
		switch {
		case currentWidth == 0:
			current.WriteString(word)
			currentWidth = wordWidth
		case currentWidth+1+wordWidth <= width:
			current.WriteString(" ")
			current.WriteString(word)
			currentWidth += 1 + wordWidth
		default:
			lines = append(lines, current.String())
			current.Reset()
			current.WriteString(word)
			currentWidth = wordWidth
		}
	}

	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}
