package testutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProjectRoot(t *testing.T) {
	root, err := GetProjectRoot()
	require.NoError(t, err)
	assert.NotEmpty(t, root)
	assert.True(t, FileExists(filepath.Join(root, "go.mod")))
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := WriteFile(t, dir, "present.txt", "x")

	assert.True(t, FileExists(path))
	assert.False(t, FileExists(filepath.Join(dir, "missing.txt")))
}

func TestCaptureStderr(t *testing.T) {
	orig := os.Stderr

	out := CaptureStderr(t, func() {
		fmt.Fprintln(os.Stderr, "first")
		fmt.Fprint(os.Stderr, "second")
	})

	assert.Equal(t, "first\nsecond", out)
	assert.Same(t, orig, os.Stderr)
}

func TestRunCapturingStderrReturnsError(t *testing.T) {
	wantErr := errors.New("boom")

	out, err := RunCapturingStderr(func() error {
		fmt.Fprint(os.Stderr, "partial")
		return wantErr
	})

	assert.Same(t, wantErr, err)
	assert.Equal(t, "partial", out)
}

func TestRunCapturingStderrRestoresOnPanic(t *testing.T) {
	orig := os.Stderr

	assert.PanicsWithValue(t, "kaboom", func() {
		_, _ = RunCapturingStderr(func() error {
			panic("kaboom")
		})
	})
	assert.Same(t, orig, os.Stderr)
}
