// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger maps severities
//              to log levels when an error is logged.
// Author: msto63
// Version: v0.1.1
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-19 v0.1.1: Severity mapping for datetime codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates invalid caller input
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates an error in the runtime environment, such as a
	// missing timezone database
	SeverityHigh

	// SeverityCritical makes the process unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeEnvironmentError:
		return SeverityCritical

	case CodeInternal, CodeConfigError:
		return SeverityHigh

	case CodeInvalidInput, CodeNotFound, CodeInvalidConfig,
		CodeInvalidDateTime, CodeInvalidFieldValue, CodeInvalidAmount,
		CodeInvalidTimeZone, CodeInvalidInstant:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
