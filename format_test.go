package timeit

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const messagePattern = `^(.*- )?Execution time: \d+(\.\d+)?(ns|µs|ms|s)$`

func TestFormat(t *testing.T) {
	useFakeClock(t, 42_123*time.Nanosecond)

	msg, result := Format(func() int { return sumTo(1000) })

	assert.Equal(t, 500500, result)
	assert.Equal(t, "Execution time: 42.123µs", msg)
}

func TestFormatNamed(t *testing.T) {
	useFakeClock(t, 1500*time.Millisecond)

	msg, result := FormatNamed("Computing sum", func() int { return sumTo(1000) })

	assert.Equal(t, 500500, result)
	assert.Equal(t, "Computing sum - Execution time: 1.500s", msg)
}

func TestFormatNamedEmptyLabel(t *testing.T) {
	useFakeClock(t, 123)

	msg, _ := FormatNamed("", func() bool { return true })

	assert.Equal(t, " - Execution time: 123ns", msg)
}

func TestFormatMatchesRender(t *testing.T) {
	for _, elapsed := range []time.Duration{0, 999, 1_000, 999_999, 1_000_000, 999_999_999, 1_000_000_000, 3 * time.Minute} {
		useFakeClock(t, elapsed)
		msg, _ := Format(func() int { return 0 })
		assert.Equal(t, "Execution time: "+Render(elapsed), msg)

		useFakeClock(t, elapsed)
		msg, _ = FormatNamed("step", func() int { return 0 })
		assert.Equal(t, "step - Execution time: "+Render(elapsed), msg)
	}
}

func TestFormatRealClock(t *testing.T) {
	msg, result := FormatNamed("Database query", func() int { return 200 })
	assert.Equal(t, 200, result)
	assert.Regexp(t, messagePattern, msg)

	msg, result = Format(func() int { return 2 + 2 })
	assert.Equal(t, 4, result)
	assert.Regexp(t, messagePattern, msg)
}

func TestFormatPassesPanicThrough(t *testing.T) {
	assert.PanicsWithValue(t, "kaboom", func() {
		Format(func() int { panic("kaboom") })
	})
	assert.PanicsWithValue(t, "kaboom", func() {
		FormatNamed("label", func() int { panic("kaboom") })
	})
}

func TestFormatErr(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		useFakeClock(t, 2*time.Millisecond)

		msg, result, err := FormatErr(func() (string, error) { return "ok", nil })

		require.NoError(t, err)
		assert.Equal(t, "ok", result)
		assert.Equal(t, "Execution time: 2.000ms", msg)
	})

	t.Run("named success", func(t *testing.T) {
		useFakeClock(t, 2*time.Millisecond)

		msg, _, err := FormatNamedErr("fetch", func() (string, error) { return "ok", nil })

		require.NoError(t, err)
		assert.Equal(t, "fetch - Execution time: 2.000ms", msg)
	})

	t.Run("failure", func(t *testing.T) {
		wantErr := errors.New("fetch failed")

		msg, result, err := FormatErr(func() (string, error) { return "", wantErr })
		assert.Same(t, wantErr, err)
		assert.Empty(t, msg)
		assert.Empty(t, result)

		msg, _, err = FormatNamedErr("fetch", func() (string, error) { return "", wantErr })
		assert.ErrorIs(t, err, wantErr)
		assert.Empty(t, msg)
	})
}
