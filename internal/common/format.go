package common

import (
	"fmt"
	"strconv"
	"time"
)

const (
	// ExecutionTimePhrase precedes every rendered duration in a message.
	ExecutionTimePhrase = "Execution time: "

	// LabelSeparator joins a label and ExecutionTimePhrase.
	LabelSeparator = " - "

	// fractionDigits is the fixed precision used for µs, ms and s.
	fractionDigits = 3
	fractionScale  = 1_000
)

// FormatDuration renders d in the largest unit that keeps the integer part
// non-zero: ns below 1µs, then µs, ms and s. Every unit above ns carries
// exactly three fractional digits, truncated so that a value just under a
// threshold never rounds up into the next unit. Negative input renders as 0ns.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	switch {
	case d < time.Microsecond:
		return strconv.FormatInt(int64(d), 10) + "ns"
	case d < time.Millisecond:
		return fixed(d, time.Microsecond) + "µs"
	case d < time.Second:
		return fixed(d, time.Millisecond) + "ms"
	default:
		return fixed(d, time.Second) + "s"
	}
}

func fixed(d, unit time.Duration) string {
	whole := int64(d / unit)
	frac := int64(d%unit) * fractionScale / int64(unit)
	return fmt.Sprintf("%d.%0*d", whole, fractionDigits, frac)
}

// Message builds the timing line for d. A named message is prefixed with
// label and LabelSeparator even when label is empty.
func Message(label string, named bool, d time.Duration) string {
	if named {
		return label + LabelSeparator + ExecutionTimePhrase + FormatDuration(d)
	}
	return ExecutionTimePhrase + FormatDuration(d)
}
