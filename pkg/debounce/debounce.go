package debounce

import (
	"sync"
	"time"
)

// Debouncer delays a scheduled function until no new function has been
// scheduled for the configured wait. It holds at most one scheduled function
// at a time. Safe for concurrent use.
type Debouncer struct {
	wait time.Duration

	mu    sync.Mutex
	timer *time.Timer
	gen   uint64 // bumped on every Schedule/Stop so stale timer callbacks become no-ops
}

// New creates a Debouncer with the given quiet period. A non-positive wait
// makes scheduled functions run on the next timer tick.
func New(wait time.Duration) *Debouncer {
	return &Debouncer{wait: wait}
}

// Schedule arms the debouncer to run fn after the quiet period. A previously
// scheduled function is discarded, whether or not its timer already fired.
func (d *Debouncer) Schedule(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}

	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.wait, func() {
		d.mu.Lock()
		if gen != d.gen {
			// Superseded between firing and running.
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()

		// Outside the lock: fn may call Schedule or Stop.
		fn()
	})
}

// Stop discards the scheduled function, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Pending reports whether a function is currently waiting to run.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Wait returns the configured quiet period.
func (d *Debouncer) Wait() time.Duration {
	return d.wait
}
