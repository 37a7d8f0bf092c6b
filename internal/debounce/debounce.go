// Package debounce coalesces rapid repeated triggers into a single
// delayed invocation. Each trigger cancels the pending run and
// reschedules, so the wrapped action fires once per quiet period.
package debounce

import (
	"sync"
	"time"
)

// Debouncer wraps a zero-argument action behind a trailing-edge
// delay. It holds at most one pending run; Trigger resets the clock.
type Debouncer struct {
	mu      sync.Mutex
	fn      func()
	delay   time.Duration
	timer   *time.Timer
	stopped bool
}

// New creates a debouncer that runs fn delay after the most recent
// Trigger call.
func New(fn func(), delay time.Duration) *Debouncer {
	return &Debouncer{fn: fn, delay: delay}
}

// Trigger schedules (or reschedules) the action. Any invocation
// pending from an earlier Trigger is canceled.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.run)
}

func (d *Debouncer) run() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	fn := d.fn
	d.mu.Unlock()

	// Run outside the lock so the action may Trigger again.
	fn()
}

// Flush runs a pending action immediately, if any. Used on shutdown
// so an in-flight auto-save is not lost.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	pending := d.timer != nil && d.timer.Stop()
	if pending {
		d.timer = nil
	}
	fn := d.fn
	stopped := d.stopped
	d.mu.Unlock()

	if pending && !stopped {
		fn()
	}
}

// Stop cancels any pending run and rejects further triggers.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
