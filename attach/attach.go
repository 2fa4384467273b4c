package attach

import (
	"time"

	"github.com/excerptkit/excerpt"
	"github.com/excerptkit/excerpt/debounce"
	"github.com/excerptkit/excerpt/measure"
)

// Binding is one attached container: its excerpt plus the per-instance
// debouncer gating resize-triggered refreshes.
type Binding struct {
	ex  *excerpt.Excerpt
	deb *debounce.Debouncer

	// AfterRefresh, if set, runs after every deferred refresh. Useful for
	// redrawing whatever displays the container.
	AfterRefresh func()
}

// Attach binds the container per spec, runs the first refresh, and
// schedules one deferred settle refresh. The settle pass corrects
// substrates that report preliminary measurements before their layout
// stabilizes; on stable substrates it is a harmless repeat (Refresh is
// idempotent).
func Attach(c measure.Container, spec Spec) *Binding {
	return attach(c, spec, debounce.New(0))
}

// AttachWithDelay is Attach with an explicit resize quiet period.
func AttachWithDelay(c measure.Container, spec Spec, delay time.Duration) *Binding {
	return attach(c, spec, debounce.New(delay))
}

func attach(c measure.Container, spec Spec, deb *debounce.Debouncer) *Binding {
	spec = spec.normalize()

	ex := excerpt.Bind(c).
		WithLines(spec.Lines).
		WithEnd(spec.End).
		WithAlwaysEnd(spec.AlwaysEnd)
	ex.Refresh()

	b := &Binding{ex: ex, deb: deb}
	b.deb.Trigger(b.refresh)
	return b
}

// AttachAll binds every container that has a spec entry in cfg, using the
// config's debounce delay for all bindings. Containers with no matching
// spec are left alone.
func AttachAll(cfg *Config, containers map[string]measure.Container) map[string]*Binding {
	bindings := make(map[string]*Binding, len(cfg.Containers))
	for name, spec := range cfg.Containers {
		c, ok := containers[name]
		if !ok {
			continue
		}
		bindings[name] = attach(c, spec, debounce.New(cfg.Delay()))
	}
	return bindings
}

// Excerpt returns the bound excerpt.
func (b *Binding) Excerpt() *excerpt.Excerpt { return b.ex }

// Resize schedules a debounced refresh. Bursts of calls coalesce into one
// refresh after the quiet period.
func (b *Binding) Resize() {
	b.deb.Trigger(b.refresh)
}

// Settle runs any pending deferred refresh immediately.
func (b *Binding) Settle() {
	b.deb.Flush()
}

// Close cancels any pending refresh and releases the container's binding.
// The container keeps its last committed text.
func (b *Binding) Close() {
	b.deb.Stop()
	excerpt.Detach(b.ex.Container())
}

func (b *Binding) refresh() {
	b.ex.Refresh()
	if b.AfterRefresh != nil {
		b.AfterRefresh()
	}
}
