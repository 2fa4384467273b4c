package debounce

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestTrigger_CoalescesBursts(t *testing.T) {
	d := New(20 * time.Millisecond)
	defer d.Stop()

	var first, last atomic.Int32
	for i := 0; i < 5; i++ {
		d.Trigger(func() { first.Add(1) })
	}
	d.Trigger(func() { last.Add(1) })

	time.Sleep(150 * time.Millisecond)

	if got := first.Load(); got != 0 {
		t.Errorf("superseded task ran %d times, expected 0", got)
	}
	if got := last.Load(); got != 1 {
		t.Errorf("last task ran %d times, expected 1", got)
	}
}

func TestTrigger_RunsAfterQuietPeriod(t *testing.T) {
	d := New(10 * time.Millisecond)
	defer d.Stop()

	done := make(chan struct{})
	d.Trigger(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task never ran")
	}
}

func TestStop_CancelsPending(t *testing.T) {
	d := New(20 * time.Millisecond)

	var ran atomic.Int32
	d.Trigger(func() { ran.Add(1) })
	d.Stop()

	time.Sleep(100 * time.Millisecond)

	if got := ran.Load(); got != 0 {
		t.Errorf("cancelled task ran %d times, expected 0", got)
	}
}

func TestFlush_RunsImmediately(t *testing.T) {
	d := New(time.Hour)
	defer d.Stop()

	var ran atomic.Int32
	d.Trigger(func() { ran.Add(1) })
	d.Flush()

	if got := ran.Load(); got != 1 {
		t.Errorf("task ran %d times after Flush, expected 1", got)
	}

	// Nothing left pending.
	d.Flush()
	if got := ran.Load(); got != 1 {
		t.Errorf("task ran %d times after second Flush, expected 1", got)
	}
}

func TestNew_DefaultDelay(t *testing.T) {
	if got := New(0).Delay(); got != DefaultDelay {
		t.Errorf("Delay() = %v, expected %v", got, DefaultDelay)
	}
	if got := New(-time.Second).Delay(); got != DefaultDelay {
		t.Errorf("Delay() = %v for negative input, expected %v", got, DefaultDelay)
	}
	if got := New(time.Second).Delay(); got != time.Second {
		t.Errorf("Delay() = %v, expected %v", got, time.Second)
	}
}
