package datatable

import (
	"sync"
	"time"
)

// Debounce delays for the two input variants used across the admin screens.
const (
	SearchDebounce = 300 * time.Millisecond
	LookupDebounce = 500 * time.Millisecond
)

// Debouncer coalesces rapid successive terms into a single callback carrying
// the latest term. Each Trigger resets the timer, so typing "ab" then "abc"
// within the delay fires exactly once, with "abc".
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	fn    func(term string)
	term  string
}

func NewDebouncer(delay time.Duration, fn func(term string)) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Trigger schedules the callback with term after the delay, replacing any
// pending invocation.
func (d *Debouncer) Trigger(term string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.term = term
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		t := d.term
		d.mu.Unlock()
		d.fn(t)
	})
}

// Flush fires any pending invocation immediately.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	pending := d.timer != nil && d.timer.Stop()
	t := d.term
	d.timer = nil
	d.mu.Unlock()

	if pending {
		d.fn(t)
	}
}

// Stop discards any pending invocation.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
