// Package common provides the timer primitive and duration rendering shared by
// the timing forms.
package common

import (
	"time"
)

// Clock returns the current instant. time.Now carries a monotonic reading, so
// the difference of two of its values is unaffected by wall-clock changes.
type Clock func() time.Time

// Timer measures the span between its creation and Stop.
type Timer struct {
	clock    Clock
	start    time.Time
	duration time.Duration
}

// NewTimer creates a new timer started on the system monotonic clock.
func NewTimer() *Timer {
	return NewTimerWithClock(time.Now)
}

// NewTimerWithClock creates a new timer started on the given clock.
func NewTimerWithClock(clock Clock) *Timer {
	return &Timer{
		clock: clock,
		start: clock(),
	}
}

// Stop stops the timer and returns the elapsed duration.
func (t *Timer) Stop() time.Duration {
	t.duration = max(t.clock().Sub(t.start), 0)
	return t.duration
}

// Duration returns the recorded duration (only valid after Stop()).
func (t *Timer) Duration() time.Duration {
	return t.duration
}
