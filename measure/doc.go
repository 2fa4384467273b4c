// Package measure defines the measurement side of line clamping: containers
// that render text and report its footprint, and the oracle that turns those
// measurements into a fit predicate.
//
// # Containers
//
// A Container is one region of a rendering substrate with a fixed layout
// width. Measurement is mutate-then-read: the oracle writes a candidate
// string into the container and reads the rendered size back. Two substrates
// ship with this module:
//
//   - cell: terminal regions measured in character cells
//   - pixfont: pixel regions measured with bitmap font glyph metrics
//
// # Oracle
//
// The Oracle captures a target box (the container's width, and the height of
// N rendered lines) and then answers fit queries:
//
//	region := cell.NewRegion(40)
//	oracle := measure.NewOracle(region)
//	oracle.TargetBox(2)                  // capture the box for 2 lines
//	ok := oracle.Fits("some candidate")  // within the captured box?
//
// Fits must be monotonic in prefix length for binary-search truncation to
// find the exact longest fitting prefix: a longer prefix never renders
// strictly smaller. Both shipped substrates satisfy this.
package measure
