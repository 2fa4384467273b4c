// Package debounce provides a single-slot trailing-edge deferred scheduler.
//
// A Debouncer holds at most one pending task. Each Trigger cancels any
// outstanding task and reschedules, so a burst of triggers runs the last
// task once, after the quiet period:
//
//	deb := debounce.New(0) // default 100ms
//	deb.Trigger(refresh)   // cancelled by the next Trigger
//	deb.Trigger(refresh)   // runs ~100ms after this call
//	defer deb.Stop()
package debounce

import (
	"sync"
	"time"
)

// DefaultDelay is the quiet period used when none is specified.
const DefaultDelay = 100 * time.Millisecond

// Debouncer coalesces triggers into one deferred run of the most recent
// task. The zero value is not usable; construct with New.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending func()
}

// New creates a debouncer with the given quiet period. Non-positive delays
// fall back to DefaultDelay.
func New(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{delay: delay}
}

// Delay returns the configured quiet period.
func (d *Debouncer) Delay() time.Duration { return d.delay }

// Trigger schedules fn to run after the quiet period, cancelling any task
// still pending. Last writer wins.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = fn
	d.timer = time.AfterFunc(d.delay, d.fire)
}

// Stop cancels any pending task.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = nil
}

// Flush runs any pending task immediately instead of waiting out the quiet
// period.
func (d *Debouncer) Flush() {
	if fn := d.take(); fn != nil {
		fn()
	}
}

func (d *Debouncer) fire() {
	if fn := d.take(); fn != nil {
		fn()
	}
}

// take claims the pending task, cancelling its timer.
func (d *Debouncer) take() func() {
	d.mu.Lock()
	defer d.mu.Unlock()

	fn := d.pending
	d.pending = nil
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	return fn
}
