package excerpt

import (
	"strings"

	"github.com/excerptkit/excerpt/measure"
)

// DefaultEnd is the marker appended when truncation occurs.
const DefaultEnd = "…"

// maxProbes caps the binary search. The search converges in O(log n)
// probes against a monotonic oracle; the ceiling guards against substrates
// whose measurements are not.
const maxProbes = 48

// Excerpt clamps one container's text to a number of display lines. The
// source text is captured once at creation; Refresh recomputes the longest
// word-aligned prefix that fits and writes it back, with an end marker when
// anything was cut.
type Excerpt struct {
	container measure.Container
	oracle    *measure.Oracle
	original  string
	end       string
	alwaysEnd string
	lines     int
}

// New captures the container's current text and returns an excerpt
// clamping it to one line with the default end marker. Use the With
// methods to adjust, then call Refresh.
func New(c measure.Container) *Excerpt {
	return &Excerpt{
		container: c,
		oracle:    measure.NewOracle(c),
		original:  c.Text(),
		end:       DefaultEnd,
		lines:     1,
	}
}

// WithLines sets the maximum number of display lines. Values below 1 are
// clamped to 1.
func (e *Excerpt) WithLines(n int) *Excerpt {
	if n < 1 {
		n = 1
	}
	e.lines = n
	return e
}

// WithEnd sets the marker appended when truncation occurs.
func (e *Excerpt) WithEnd(marker string) *Excerpt {
	e.end = marker
	return e
}

// WithAlwaysEnd sets a marker appended whether or not truncation occurs.
func (e *Excerpt) WithAlwaysEnd(marker string) *Excerpt {
	e.alwaysEnd = marker
	return e
}

// Original returns the captured source text.
func (e *Excerpt) Original() string { return e.original }

// End returns the truncation marker.
func (e *Excerpt) End() string { return e.end }

// AlwaysEnd returns the unconditional marker.
func (e *Excerpt) AlwaysEnd() string { return e.alwaysEnd }

// Lines returns the configured line limit.
func (e *Excerpt) Lines() int { return e.lines }

// Container returns the managed container.
func (e *Excerpt) Container() measure.Container { return e.container }

// Refresh recomputes the clamped text and writes it into the container.
// It never overflows the target box: when in doubt it shows less text. If
// the full text fits, it is shown verbatim with no end marker. A container
// that is empty (or whose captured text collapses to nothing) is left
// untouched.
func (e *Excerpt) Refresh() {
	if e.container.Text() == "" {
		return
	}

	s := collapse(e.original)
	if s == "" {
		return
	}

	cuts := boundaries(s)
	e.oracle.TargetBox(e.lines)

	// Find the largest cut whose candidate fits. The midpoint is biased
	// upward so lbound always advances; rbound comes down on failure.
	lbound, rbound := 0, len(cuts)-1
	for probes := 0; probes < maxProbes && lbound < rbound; probes++ {
		mid := (lbound + rbound) / 2
		if mid == lbound {
			mid++
		}
		if e.oracle.Fits(e.assemble(s, cuts[mid])) {
			lbound = mid
		} else {
			rbound = mid - 1
		}
	}

	e.container.SetText(e.assemble(s, cuts[lbound]))
}

// assemble builds the displayed string for a cut offset: the prefix plus
// the end marker, unless the prefix is the whole text. The always-end
// marker follows either way.
func (e *Excerpt) assemble(s string, cut int) string {
	if cut >= len(s) {
		return s + e.alwaysEnd
	}
	return s[:cut] + e.end + e.alwaysEnd
}

// collapse trims the text and squeezes internal whitespace runs down to
// single spaces.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// boundaries returns the offsets at which a prefix of s may end: the start,
// each space, and the full length. collapse guarantees spaces are single
// and internal.
func boundaries(s string) []int {
	cuts := []int{0}
	for i, r := range s {
		if r == ' ' {
			cuts = append(cuts, i)
		}
	}
	return append(cuts, len(s))
}
