package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// steppingClock returns base, base+steps[0], base+steps[0]+steps[1], ...
// and counts how often it was read.
type steppingClock struct {
	now   time.Time
	steps []time.Duration
	reads int
}

func (c *steppingClock) Now() time.Time {
	if c.reads > 0 && c.reads <= len(c.steps) {
		c.now = c.now.Add(c.steps[c.reads-1])
	}
	c.reads++
	return c.now
}

func TestTimer(t *testing.T) {
	timer := NewTimer()

	// Sleep for a short duration
	time.Sleep(10 * time.Millisecond)

	duration := timer.Stop()
	assert.GreaterOrEqual(t, duration, 10*time.Millisecond)
	assert.Equal(t, duration, timer.Duration())
}

func TestTimerWithClock(t *testing.T) {
	clock := &steppingClock{now: time.Unix(1700000000, 0), steps: []time.Duration{1500 * time.Microsecond}}

	timer := NewTimerWithClock(clock.Now)
	assert.Equal(t, 1, clock.reads, "start is captured on creation")
	assert.Zero(t, timer.Duration())

	assert.Equal(t, 1500*time.Microsecond, timer.Stop())
	assert.Equal(t, 2, clock.reads)
	assert.Equal(t, 1500*time.Microsecond, timer.Duration())
}

func TestTimerNeverNegative(t *testing.T) {
	clock := &steppingClock{now: time.Unix(1700000000, 0), steps: []time.Duration{-time.Second}}

	timer := NewTimerWithClock(clock.Now)
	assert.Equal(t, time.Duration(0), timer.Stop())
}
