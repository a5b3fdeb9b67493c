package common

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var renderedPattern = regexp.MustCompile(`^\d+(\.\d{3})?(ns|µs|ms|s)$`)

// unitFor returns the unit suffix FormatDuration must pick for d.
func unitFor(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return "ns"
	case d < time.Millisecond:
		return "µs"
	case d < time.Second:
		return "ms"
	default:
		return "s"
	}
}

// TestFormatDuration_UnitLadder verifies the unit follows the magnitude.
func TestFormatDuration_UnitLadder(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("unit suffix matches magnitude", prop.ForAll(
		func(ns int64) bool {
			d := time.Duration(ns)
			out := FormatDuration(d)
			want := unitFor(d)
			if !strings.HasSuffix(out, want) {
				return false
			}
			// "ms" and "µs" also end in "s"; make sure seconds are really seconds.
			if want == "s" && (strings.HasSuffix(out, "ms") || strings.HasSuffix(out, "µs") || strings.HasSuffix(out, "ns")) {
				return false
			}
			return renderedPattern.MatchString(out)
		},
		gen.Int64Range(0, int64(10*time.Hour)),
	))

	properties.TestingRun(t)
}

// TestFormatDuration_Truncates verifies the rendered value is d truncated
// to a thousandth of the chosen unit.
func TestFormatDuration_Truncates(t *testing.T) {
	units := map[string]time.Duration{"ns": time.Nanosecond, "µs": time.Microsecond, "ms": time.Millisecond, "s": time.Second}
	properties := gopter.NewProperties(nil)

	properties.Property("rendered value equals truncated duration", prop.ForAll(
		func(ns int64) bool {
			d := time.Duration(ns)
			suffix := unitFor(d)
			unit := units[suffix]
			number := strings.TrimSuffix(FormatDuration(d), suffix)

			whole, frac, _ := strings.Cut(number, ".")
			w, err := strconv.ParseInt(whole, 10, 64)
			if err != nil {
				return false
			}
			got := time.Duration(w) * unit
			if frac != "" {
				f, err := strconv.ParseInt(frac, 10, 64)
				if err != nil {
					return false
				}
				got += time.Duration(f) * unit / 1000
			}

			step := max(unit/1000, time.Nanosecond)
			return got == d-d%step
		},
		gen.Int64Range(0, int64(time.Hour)),
	))

	properties.TestingRun(t)
}
