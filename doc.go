// Package excerpt clamps plain text to a fixed number of display lines
// inside a fixed-width container, cutting only at word boundaries and
// appending an end marker only when something was actually cut.
//
// The core is a binary search over word-boundary prefixes, driven by a
// measurement oracle (see the measure subpackage) that reports the rendered
// footprint of a candidate string. The engine never measures anything
// itself, so any substrate that can report a rendered (width, height) can
// host it: terminal cells, bitmap fonts, or whatever the embedding program
// renders with.
//
// # Basic Usage
//
// Bind a container, configure, refresh:
//
//	region := cell.NewRegion(40)
//	region.SetText("The quick brown fox jumps over the lazy dog")
//
//	ex := excerpt.Bind(region).WithLines(2)
//	ex.Refresh()
//	fmt.Println(region.Text()) // clamped to 2 lines, "…" if cut
//
// Refresh is idempotent and cheap to repeat; call it again whenever the
// container's available width changes. The original text is captured once
// at Bind time, so refreshing after a resize re-clamps from the full text,
// not from the previously clamped output.
//
// # Markers
//
// The end marker (default "…") appears only when truncation occurred. An
// always-end marker, if configured, is appended unconditionally:
//
//	ex := excerpt.Bind(region).WithEnd("…").WithAlwaysEnd(" (more)")
//
// # Guarantees
//
// After Refresh the rendered content never overflows the target box (the
// container width by the height of the configured line count). Among all
// word-aligned prefixes that fit together with the markers, the longest is
// chosen. If the full text fits, it is shown unmodified and no end marker
// appears. If not even the markers alone fit, the markers alone are shown;
// the engine degrades toward showing less text rather than overflowing.
//
// # Subpackages
//
//   - measure: the container and oracle contracts
//   - measure/cell: terminal-cell substrate (go-runewidth)
//   - measure/pixfont: bitmap-font pixel substrate (tinyfont)
//   - attach: declarative attachment config and resize/file reactivity
//   - debounce: the single-slot deferred scheduler used for reactivity
package excerpt
