package measure

import "strings"

// Box is a rendered footprint in the substrate's native units
// (terminal cells, pixels, etc.).
type Box struct {
	Width  int
	Height int
}

// Contains reports whether other fits entirely within b.
func (b Box) Contains(other Box) bool {
	return other.Width <= b.Width && other.Height <= b.Height
}

// Container is one managed region of a rendering substrate. Setting its
// text re-renders it; Size reports the footprint of whatever content is
// currently set. Measurement is mutate-then-read: callers must not assume
// the content survives beyond what they last wrote.
//
// Implementations must be comparable (pointer types are), so a Container
// can serve as a registry key.
type Container interface {
	// Text returns the currently rendered text.
	Text() string

	// SetText replaces the rendered text.
	SetText(text string)

	// Width returns the fixed layout width of the region.
	Width() int

	// Size returns the rendered footprint of the current content.
	// Content that cannot wrap within the region's width may report a
	// width larger than Width.
	Size() Box
}

// lineFiller is the non-empty content used to probe line height.
const lineFiller = "i"

// placeholder is written back after a target-box probe so the container is
// never left holding probe content.
const placeholder = " "

// Oracle answers fit queries for candidate strings against a target box.
// It is bound to a single Container and measures by writing into it and
// reading the rendered size back.
type Oracle struct {
	container Container
	target    Box
}

// NewOracle creates an oracle bound to the given container.
func NewOracle(c Container) *Oracle {
	return &Oracle{container: c}
}

// TargetBox renders lines forced line breaks of filler content, reads back
// the resulting box, and captures it as the threshold for subsequent Fits
// calls. The container is reset to a neutral placeholder afterwards.
func (o *Oracle) TargetBox(lines int) Box {
	if lines < 1 {
		lines = 1
	}

	probe := lineFiller + strings.Repeat("\n"+lineFiller, lines-1)
	o.container.SetText(probe)
	height := o.container.Size().Height
	o.container.SetText(placeholder)

	o.target = Box{Width: o.container.Width(), Height: height}
	return o.target
}

// Target returns the most recently captured target box.
func (o *Oracle) Target() Box {
	return o.target
}

// Fits writes candidate into the container and reports whether its
// rendered footprint stays within the captured target box.
func (o *Oracle) Fits(candidate string) bool {
	o.container.SetText(candidate)
	return o.target.Contains(o.container.Size())
}
