package timeit

import (
	"time"

	"github.com/MeKo-Tech/timeit/internal/common"
)

// now is the clock every form reads. Tests replace it.
var now common.Clock = time.Now

// Measure calls fn once and returns how long it took together with its result.
func Measure[T any](fn func() T) (time.Duration, T) {
	timer := common.NewTimerWithClock(now)
	result := fn()
	return timer.Stop(), result
}

// MeasureErr calls fn once. If fn fails, the duration is zero and fn's value
// and error are returned unchanged.
func MeasureErr[T any](fn func() (T, error)) (time.Duration, T, error) {
	timer := common.NewTimerWithClock(now)
	result, err := fn()
	if err != nil {
		return 0, result, err
	}
	return timer.Stop(), result, nil
}

// Render formats d as nanoseconds below 1µs, and otherwise as microseconds,
// milliseconds or seconds with three fractional digits ("42.123µs", "1.500s").
func Render(d time.Duration) string {
	return common.FormatDuration(d)
}
