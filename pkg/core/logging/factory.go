// ============================================================================
// helper - Utility CLI and Libraries
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating Foundation loggers
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	herror "github.com/msto63/helper/foundation/core/error"
	hlog "github.com/msto63/helper/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service name
	ServiceName string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format: "json", "text" or "console" (default: text)
	Format string

	// Output is the primary writer (default: stderr)
	Output io.Writer

	// EnableCaller records file:line of the log call
	EnableCaller bool

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "info",
		Format:      "text",
	}
}

// NewLogger creates a new Foundation logger
func NewLogger(cfg LoggerConfig) *hlog.Logger {
	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	// Add additional outputs if specified
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return hlog.NewWithConfig(hlog.Config{
		Level:        parseLevel(cfg.Level),
		Format:       parseFormat(cfg.Format),
		Output:       output,
		Name:         cfg.ServiceName,
		EnableCaller: cfg.EnableCaller,
	})
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(serviceName string) *hlog.Logger {
	return NewLogger(DefaultLoggerConfig(serviceName))
}

// OpenLogFile opens path for appending, creating parent directories
func OpenLogFile(path string) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, herror.Wrap(err, fmt.Sprintf("failed to create log directory for %s", path)).
			WithCode(herror.CodeFileIO).
			WithOperation("logging.OpenLogFile")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, herror.Wrap(err, fmt.Sprintf("failed to open log file %s", path)).
			WithCode(herror.CodeFileIO).
			WithOperation("logging.OpenLogFile")
	}
	return f, nil
}

// parseLevel converts a string level, falling back to info
func parseLevel(level string) hlog.Level {
	parsed, err := hlog.ParseLevel(level)
	if err != nil {
		return hlog.LevelInfo
	}
	return parsed
}

// parseFormat converts a string format, falling back to text
func parseFormat(format string) hlog.Format {
	parsed, err := hlog.ParseFormat(format)
	if err != nil {
		return hlog.FormatText
	}
	return parsed
}
