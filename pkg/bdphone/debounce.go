package bdphone

import (
	"sync"
	"time"
)

// DefaultDebounceDelay is used when NewDebounced receives a non-positive
// delay.
const DefaultDebounceDelay = 300 * time.Millisecond

// Debounced wraps a Validator for live-input use: each Schedule call cancels
// the pending one, so for a burst of keystrokes only the last input is
// validated and delivered. A Debounced owns exactly one timer handle; state
// is never shared between instances.
type Debounced struct {
	validator *Validator
	delay     time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

// NewDebounced creates a debounced wrapper firing after delay of inactivity.
func (v *Validator) NewDebounced(delay time.Duration) *Debounced {
	if delay <= 0 {
		delay = DefaultDebounceDelay
	}
	return &Debounced{validator: v, delay: delay}
}

// Schedule queues phone for validation after the debounce delay, cancelling
// any previously pending call. The callback runs on the timer's goroutine
// with the classification result; callbacks of superseded calls are never
// invoked. Once the timer has fired, the (synchronous) classification always
// runs to completion: there is no post-fire cancellation.
func (d *Debounced) Schedule(phone string, callback func(Result)) {
	if callback == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	if d.timer != nil {
		d.timer.Stop()
		d.validator.logger.Debug("debounced validation superseded", "delay", d.delay)
	}
	d.timer = time.AfterFunc(d.delay, func() {
		callback(d.validator.Validate(phone))
	})
}

// Stop cancels any pending validation and retires the wrapper. Subsequent
// Schedule calls are no-ops. Stop does not wait for a callback that has
// already started.
func (d *Debounced) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.stopped = true
}
