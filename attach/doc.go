// Package attach is the declarative glue around the excerpt engine: it
// reads attachment configuration, binds containers, and wires reactivity.
//
// # Configuration
//
// An attachment file names containers and gives each a line limit and
// markers. TOML and YAML are both accepted:
//
//	debounce_ms = 100
//
//	[containers.headline]
//	lines = 1
//
//	[containers.teaser]
//	lines = 3
//	end = "…"
//	always_end = " (more)"
//
// Schema returns a JSON Schema for the file so editors can validate it,
// and AttachAll applies a loaded config to a set of named containers.
//
// # Bindings
//
// Attach binds a container, refreshes it once, and schedules one deferred
// settle refresh for substrates whose first measurements are preliminary.
// The returned Binding carries the per-instance debouncer: call Resize on
// every width-changing event and the refreshes coalesce to one per quiet
// period.
//
//	b := attach.Attach(region, attach.Spec{Lines: 2})
//	defer b.Close()
//	// on every resize signal:
//	b.Resize()
//
// # Live config
//
// Watch re-reads the attachment file when it changes on disk, so a running
// program can re-bind containers without restarting.
package attach
