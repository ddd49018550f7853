// ============================================================================
// utcdate - UTC datetime string toolkit
// ============================================================================
//
// Package:     utcdate
// Description: UTCError kind and constructors for datetime failures
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package utcdate

import (
	"fmt"

	utcerror "github.com/msto63/utcdate/foundation/core/error"
)

// UTCError is the single error kind returned by this package. Its Code tells
// which input was rejected.
type UTCError = utcerror.Error

// Error codes carried by UTCError.
const (
	CodeInvalidDateTime   = utcerror.CodeInvalidDateTime
	CodeInvalidFieldValue = utcerror.CodeInvalidFieldValue
	CodeInvalidAmount     = utcerror.CodeInvalidAmount
	CodeInvalidTimeZone   = utcerror.CodeInvalidTimeZone
	CodeInvalidInstant    = utcerror.CodeInvalidInstant
)

// IsUTCError reports whether err, or an error it wraps, was raised by this
// package.
func IsUTCError(err error) bool {
	e, ok := utcerror.As(err)
	return ok && e.Code().Category() == utcerror.CategoryDateTime
}

func newError(op string, code utcerror.Code, format string, args ...interface{}) *UTCError {
	return utcerror.New(fmt.Sprintf(format, args...)).
		WithCode(code).
		WithOperation("utcdate." + op)
}

func invalidDateTime(op, value string) *UTCError {
	return newError(op, CodeInvalidDateTime, "invalid datetime %q, expected YYYY-MM-DD hh:mm:ss", value).
		WithDetail("value", value)
}
