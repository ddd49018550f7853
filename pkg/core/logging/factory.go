// ============================================================================
// utcdate - UTC datetime string toolkit
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating Foundation loggers from
//              configuration strings
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	utclog "github.com/msto63/utcdate/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Component name written as the logger name
	ServiceName string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format: "json", "text" or "logfmt" (default: text)
	Format string

	// Correlation ID attached to every entry; generated when empty
	CorrelationID string

	// Primary output (default: stderr)
	Output io.Writer

	// Additional outputs (besides the primary one)
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "warn",
		Format:      "text",
	}
}

// NewLogger creates a Foundation logger. Unknown levels fall back to info
// and unknown formats to text; configuration validation reports them earlier.
func NewLogger(cfg LoggerConfig) *utclog.Logger {
	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	correlationID := cfg.CorrelationID
	if correlationID == "" {
		correlationID = NewCorrelationID()
	}

	return utclog.NewWithConfig(utclog.Config{
		Level:  parseLevel(cfg.Level),
		Format: parseFormat(cfg.Format),
		Output: output,
		Name:   cfg.ServiceName,
	}).WithCorrelationID(correlationID)
}

// NewCorrelationID returns a random ID tying together the entries of one
// invocation
func NewCorrelationID() string {
	return uuid.NewString()
}

// parseLevel converts a string level to utclog.Level
func parseLevel(level string) utclog.Level {
	parsed, err := utclog.ParseLevel(level)
	if err != nil {
		return utclog.LevelInfo
	}
	return parsed
}

// parseFormat converts a string format to utclog.Format
func parseFormat(format string) utclog.Format {
	if strings.TrimSpace(format) == "" {
		return utclog.FormatText
	}
	parsed, err := utclog.ParseFormat(format)
	if err != nil {
		return utclog.FormatText
	}
	return parsed
}
