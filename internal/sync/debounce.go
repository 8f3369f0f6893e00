// ABOUTME: Trailing-edge debouncer for burst sync requests.
// ABOUTME: Each trigger cancels the pending timer and starts a fresh window.
package sync

import (
	"sync"
	"time"
)

// Debouncer collapses a burst of Trigger calls into one invocation of fn,
// fired once the burst has been quiet for the full interval.
type Debouncer struct {
	mu       sync.Mutex
	interval time.Duration
	timer    *time.Timer
	fn       func()
}

// NewDebouncer returns a debouncer that runs fn after interval of quiet.
func NewDebouncer(interval time.Duration, fn func()) *Debouncer {
	return &Debouncer{interval: interval, fn: fn}
}

// Trigger arms (or re-arms) the timer. The countdown restarts from zero on
// every call, so fn fires interval after the last trigger in a burst.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, d.fn)
}

// Stop cancels any pending invocation and reports whether one was pending.
func (d *Debouncer) Stop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer == nil {
		return false
	}
	pending := d.timer.Stop()
	d.timer = nil
	return pending
}
