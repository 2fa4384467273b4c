package excerpt

import (
	"sync"

	"github.com/excerptkit/excerpt/measure"
)

// registry maps container identity to its owning excerpt. A container has
// at most one excerpt at a time; binding again replaces the prior one.
var (
	registryMu sync.RWMutex
	registry   = make(map[measure.Container]*Excerpt)
)

// Bind creates an excerpt for the container, records it as the container's
// owner, and returns it. Any previous binding for the same container is
// replaced.
func Bind(c measure.Container) *Excerpt {
	e := New(c)

	registryMu.Lock()
	registry[c] = e
	registryMu.Unlock()

	return e
}

// Bound returns the excerpt currently owning the container, if any.
func Bound(c measure.Container) (*Excerpt, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	e, ok := registry[c]
	return e, ok
}

// Detach releases the container's binding. The container keeps whatever
// text was last committed.
func Detach(c measure.Container) {
	registryMu.Lock()
	defer registryMu.Unlock()

	delete(registry, c)
}

// BoundCount returns the number of live bindings. Primarily useful in
// tests.
func BoundCount() int {
	registryMu.RLock()
	defer registryMu.RUnlock()

	return len(registry)
}
