package watcher

import (
	"sync"
	"time"
)

// debouncer coalesces rapid bumps into one callback per quiet window.
type debouncer struct {
	mu     sync.Mutex
	timer  *time.Timer
	window time.Duration
	fn     func()
}

func newDebouncer(window time.Duration, fn func()) *debouncer {
	return &debouncer{window: window, fn: fn}
}

// bump (re)starts the quiet window; the callback fires once it elapses.
func (d *debouncer) bump() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fn)
}

// stop cancels any pending callback.
func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
