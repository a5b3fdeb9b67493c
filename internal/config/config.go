package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// Sum modes select which timing form the sum command uses.
const (
	ModeMeasure = "measure"
	ModeFormat  = "format"
	ModeLog     = "log"

	// MaxSumN keeps n(n+1)/2 within int64.
	MaxSumN int64 = 4_000_000_000
)

var (
	// ErrInvalidLogLevel is returned for a log level outside validLogLevels.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrEmptyShell is returned when no shell is configured for run -c.
	ErrEmptyShell = errors.New("shell must not be empty")
	// ErrInvalidSum is returned for unusable sum settings.
	ErrInvalidSum = errors.New("invalid sum settings")
)

var (
	validLogLevels = []string{"debug", "info", "warn", "error"}
	validModes     = []string{ModeMeasure, ModeFormat, ModeLog}
)

// Config represents the configuration of the timeit command.
// It is loaded from configuration files, environment variables and
// command-line flags.
type Config struct {
	// Label prefixes timing messages. Empty means unlabeled.
	Label    string `mapstructure:"label" yaml:"label" json:"label"`
	Shell    string `mapstructure:"shell" yaml:"shell" json:"shell"`
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Verbose  bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`

	Sum SumConfig `mapstructure:"sum" yaml:"sum" json:"sum"`
}

// SumConfig contains settings for the sum command.
type SumConfig struct {
	N    int64  `mapstructure:"n" yaml:"n" json:"n"`
	Mode string `mapstructure:"mode" yaml:"mode" json:"mode"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Label:    "",
		Shell:    "/bin/sh",
		LogLevel: "info",
		Verbose:  false,
		Sum: SumConfig{
			N:    1000,
			Mode: ModeLog,
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if !slices.Contains(validLogLevels, c.LogLevel) {
		return fmt.Errorf("%w: %s (must be one of: %s)", ErrInvalidLogLevel, c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	if strings.TrimSpace(c.Shell) == "" {
		return ErrEmptyShell
	}

	if c.Sum.N < 0 || c.Sum.N > MaxSumN {
		return fmt.Errorf("%w: n %d (must be between 0 and %d)", ErrInvalidSum, c.Sum.N, MaxSumN)
	}
	if !slices.Contains(validModes, c.Sum.Mode) {
		return fmt.Errorf("%w: mode %s (must be one of: %s)", ErrInvalidSum, c.Sum.Mode, strings.Join(validModes, ", "))
	}

	return nil
}

// SlogLevel returns the slog level for the configuration. Verbose wins over
// LogLevel.
func (c *Config) SlogLevel() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}

	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
