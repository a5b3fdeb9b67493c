package timeit

import (
	"fmt"
	"os"
)

// Log calls fn once, writes its timing message to stderr and returns its
// result.
func Log[T any](fn func() T) T {
	msg, result := Format(fn)
	writeLine(msg)
	return result
}

// LogNamed is like Log with a labeled message.
func LogNamed[T any](label string, fn func() T) T {
	msg, result := FormatNamed(label, fn)
	writeLine(msg)
	return result
}

// LogErr is the error-returning form of Log. Nothing is written when fn fails.
func LogErr[T any](fn func() (T, error)) (T, error) {
	msg, result, err := FormatErr(fn)
	if err != nil {
		return result, err
	}
	writeLine(msg)
	return result, nil
}

// LogNamedErr is the error-returning form of LogNamed.
func LogNamedErr[T any](label string, fn func() (T, error)) (T, error) {
	msg, result, err := FormatNamedErr(label, fn)
	if err != nil {
		return result, err
	}
	writeLine(msg)
	return result, nil
}

// writeLine emits one line on stderr. A failed write has nowhere left to be
// reported and is dropped, as with the log package.
func writeLine(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, msg)
}
