// Package testutil holds helpers shared by the package and integration tests.
package testutil

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// GetProjectRoot returns the project root directory by finding go.mod.
func GetProjectRoot() (string, error) {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return "", errors.New("failed to get caller information")
	}
	dir := filepath.Dir(filename)

	// Walk up the directory tree to find go.mod
	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("could not find go.mod file starting from %s", filepath.Dir(filename))
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// WriteFile writes content to name inside dir and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// RunCapturingStderr runs fn with os.Stderr redirected to a pipe and returns
// everything written to it. os.Stderr is restored even if fn panics, in which
// case the panic continues after restoration.
func RunCapturingStderr(fn func() error) (string, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return "", fmt.Errorf("failed to create stderr pipe: %w", err)
	}
	defer func() { _ = r.Close() }()

	done := make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		done <- buf.String()
	}()

	orig := os.Stderr
	os.Stderr = w
	var fnErr error
	func() {
		defer func() {
			os.Stderr = orig
			_ = w.Close()
		}()
		fnErr = fn()
	}()

	return <-done, fnErr
}

// CaptureStderr runs fn and returns what it wrote to os.Stderr.
func CaptureStderr(t *testing.T, fn func()) string {
	t.Helper()

	out, err := RunCapturingStderr(func() error {
		fn()
		return nil
	})
	require.NoError(t, err)
	return out
}
