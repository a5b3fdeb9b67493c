// Package support holds the step definitions of the CLI feature tests.
package support

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// TestContext holds the state of one scenario.
type TestContext struct {
	BinPath string

	// Command execution state
	LastCommand   string
	LastStdout    string
	LastStderr    string
	LastError     error
	LastExitCode  int
	LastStartTime time.Time
	LastDuration  time.Duration

	// Test environment
	TempDir string
	EnvVars []string
}

// NewTestContext creates a new test context running binPath inside a fresh
// temporary directory that also serves as HOME.
func NewTestContext(binPath string) (*TestContext, error) {
	tempDir, err := os.MkdirTemp("", "timeit-cli-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}

	return &TestContext{
		BinPath: binPath,
		TempDir: tempDir,
		EnvVars: []string{
			"HOME=" + tempDir,
			"XDG_CONFIG_HOME=" + filepath.Join(tempDir, "xdg"),
		},
	}, nil
}

// Cleanup removes everything the scenario created.
func (testCtx *TestContext) Cleanup() error {
	if testCtx.TempDir == "" {
		return nil
	}
	if err := os.RemoveAll(testCtx.TempDir); err != nil {
		return fmt.Errorf("failed to remove temp directory: %w", err)
	}
	return nil
}
