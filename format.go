package timeit

import (
	"github.com/MeKo-Tech/timeit/internal/common"
)

// Format calls fn once and returns "Execution time: <duration>" with its result.
func Format[T any](fn func() T) (string, T) {
	elapsed, result := Measure(fn)
	return common.Message("", false, elapsed), result
}

// FormatNamed is like Format but prefixes the message with "<label> - ".
func FormatNamed[T any](label string, fn func() T) (string, T) {
	elapsed, result := Measure(fn)
	return common.Message(label, true, elapsed), result
}

// FormatErr is the error-returning form of Format. On failure the message is
// empty.
func FormatErr[T any](fn func() (T, error)) (string, T, error) {
	elapsed, result, err := MeasureErr(fn)
	if err != nil {
		return "", result, err
	}
	return common.Message("", false, elapsed), result, nil
}

// FormatNamedErr is the error-returning form of FormatNamed.
func FormatNamedErr[T any](label string, fn func() (T, error)) (string, T, error) {
	elapsed, result, err := MeasureErr(fn)
	if err != nil {
		return "", result, err
	}
	return common.Message(label, true, elapsed), result, nil
}
