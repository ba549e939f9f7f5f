package controller

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// Debouncer runs a function once a quiet period has elapsed after the last
// call. Every call resets the countdown, so the final event is never dropped.
type Debouncer struct {
	mu       sync.Mutex
	clock    clock.Clock
	timer    *clock.Timer
	duration time.Duration
}

func NewDebouncer(clk clock.Clock, duration time.Duration) *Debouncer {
	return &Debouncer{
		clock:    clk,
		duration: duration,
	}
}

// Debounce schedules fn, replacing any call still pending.
func (d *Debouncer) Debounce(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = d.clock.AfterFunc(d.duration, fn)
}

// Cancel drops the pending call, if any.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
