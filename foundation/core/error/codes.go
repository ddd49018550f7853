// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify failures. The datetime
//              category carries the codes reported by the utcdate library.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Added datetime codes, dropped service/database codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Configuration and environment
	CodeConfigError      Code = "CONFIG_ERROR"
	CodeInvalidConfig    Code = "INVALID_CONFIG"
	CodeEnvironmentError Code = "ENVIRONMENT_ERROR"

	// Datetime
	CodeInvalidDateTime   Code = "INVALID_DATETIME"
	CodeInvalidFieldValue Code = "INVALID_FIELD_VALUE"
	CodeInvalidAmount     Code = "INVALID_AMOUNT"
	CodeInvalidTimeZone   Code = "INVALID_TIMEZONE"
	CodeInvalidInstant    Code = "INVALID_INSTANT"
)

// CategoryDateTime is the category shared by all codes raised by utcdate.
const CategoryDateTime = "datetime"

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeConfigError, CodeInvalidConfig, CodeEnvironmentError,
		CodeInvalidDateTime, CodeInvalidFieldValue, CodeInvalidAmount,
		CodeInvalidTimeZone, CodeInvalidInstant:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeConfigError, CodeInvalidConfig, CodeEnvironmentError:
		return "configuration"
	case CodeInvalidDateTime, CodeInvalidFieldValue, CodeInvalidAmount,
		CodeInvalidTimeZone, CodeInvalidInstant:
		return CategoryDateTime
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status a CLI should use for this code
func (c Code) ExitCode() int {
	switch c.Category() {
	case CategoryDateTime:
		return 2
	case "configuration":
		return 3
	default:
		return 1
	}
}
