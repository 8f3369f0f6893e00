// ABOUTME: Tests for the trailing-edge debouncer.
// ABOUTME: Verifies burst collapsing, timer reset, and cancellation.
package sync

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncerCollapsesBurst(t *testing.T) {
	var fired atomic.Int32
	d := NewDebouncer(30*time.Millisecond, func() { fired.Add(1) })

	for i := 0; i < 10; i++ {
		d.Trigger()
		time.Sleep(time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)
	if got := fired.Load(); got != 1 {
		t.Errorf("expected burst to collapse into one invocation, got %d", got)
	}
}

func TestDebouncerResetsCountdown(t *testing.T) {
	var fired atomic.Int32
	d := NewDebouncer(50*time.Millisecond, func() { fired.Add(1) })

	// Each trigger lands inside the previous window, so nothing fires while
	// the burst continues.
	d.Trigger()
	for i := 0; i < 4; i++ {
		time.Sleep(25 * time.Millisecond)
		d.Trigger()
	}
	if got := fired.Load(); got != 0 {
		t.Fatalf("expected no invocation during burst, got %d", got)
	}

	time.Sleep(120 * time.Millisecond)
	if got := fired.Load(); got != 1 {
		t.Errorf("expected single invocation after quiet period, got %d", got)
	}
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	var fired atomic.Int32
	d := NewDebouncer(20*time.Millisecond, func() { fired.Add(1) })

	d.Trigger()
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	if got := fired.Load(); got != 0 {
		t.Errorf("expected stop to cancel pending invocation, got %d", got)
	}

	// A trigger after Stop re-arms normally.
	d.Trigger()
	time.Sleep(60 * time.Millisecond)
	if got := fired.Load(); got != 1 {
		t.Errorf("expected trigger after stop to fire, got %d", got)
	}
}
