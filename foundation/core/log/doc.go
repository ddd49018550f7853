// Package log provides structured logging for utcdate.
//
// Package: log
// Title: utcdate Structured Logging
// Description: This package implements a structured logger with levels, custom
//              fields, correlation IDs and JSON, text and logfmt output. It knows
//              about the error package and logs tagged errors at a level derived
//              from their severity.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.2.0: Removed async buffering and request/user context, sorted
//                       field output
//
// Usage:
//
//	import utclog "github.com/msto63/utcdate/foundation/core/log"
//
//	logger := utclog.New().
//		WithLevel(utclog.LevelDebug).
//		WithFormat(utclog.FormatText).
//		WithName("utcdate")
//
//	logger.Debug("resolved offset", utclog.Fields{"zone": "Asia/Tokyo", "offset_s": 32400})
//	logger.LogError(err)
//
//	timer := logger.StartTimer("toutc")
//	defer timer.Stop()
package log
