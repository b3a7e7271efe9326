// Package config loads undercover settings from the project options file,
// the environment and command-line flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/mouse-blink/undercover/internal/controller"
)

// ErrInvalidConfig is returned when a setting fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the resolved configuration of one run.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	LCOV       string   `mapstructure:"lcov"`
	Path       string   `mapstructure:"path"`
	GitDir     string   `mapstructure:"git_dir"`
	Compare    string   `mapstructure:"compare"`
	Formatters []string `mapstructure:"formatters"`
	Parallel   int      `mapstructure:"parallel"`
	LogLevel   string   `mapstructure:"log_level"`
	// File is the options file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

// Validate checks that the configuration can drive a run. Unknown formatter
// names are rejected here so a run fails before any scoring.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Path) == "" {
		return fmt.Errorf("%w: path must not be empty", ErrInvalidConfig)
	}

	if c.Parallel < 1 {
		return fmt.Errorf("%w: parallel must be at least 1, got %d", ErrInvalidConfig, c.Parallel)
	}

	for _, name := range c.Formatters {
		if _, err := controller.ParseFormatterKind(name); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// ResolveLCOV fills LCOV with the conventional report location when unset:
// <project>/coverage/lcov/<project dir name>.lcov.
func (c *Config) ResolveLCOV() error {
	if c.LCOV != "" {
		return nil
	}

	root, err := filepath.Abs(c.Path)
	if err != nil {
		return fmt.Errorf("resolve project path: %w", err)
	}

	c.LCOV = GuessLCOVPath(root)

	return nil
}

// GuessLCOVPath returns the default report path for an absolute project root.
func GuessLCOVPath(root string) string {
	return filepath.Join(root, "coverage", "lcov", filepath.Base(root)+".lcov")
}

// ParseLogLevel maps a level name to a slog.Level.
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}
