// Package error provides the structured error type used across utcdate.
//
// Package: error
// Title: utcdate Error Handling
// Description: This package implements a tagged error type with error codes,
//              severity levels, details and stack traces. The utcdate library
//              reports every failure through this type, so callers can branch on
//              the error kind instead of parsing messages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Datetime code category, errors.As based lookups, trimmed
//                       request/user metadata
//
// Usage:
//
//	import utcerror "github.com/msto63/utcdate/foundation/core/error"
//
//	err := utcerror.New("invalid datetime string").
//		WithCode(utcerror.CodeInvalidDateTime).
//		WithOperation("utcdate.SetDay").
//		WithDetail("value", "2024-02-30 00:00:00")
//
//	if utcerror.HasCode(err, utcerror.CodeInvalidDateTime) {
//		// handle
//	}
package error
