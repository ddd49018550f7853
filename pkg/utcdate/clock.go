// ============================================================================
// utcdate - UTC datetime string toolkit
// ============================================================================
//
// Package:     utcdate
// Description: Clock abstraction supplying the current instant
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package utcdate

import "time"

// Clock supplies the current instant when no datetime is passed.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock reads the host wall clock.
type SystemClock struct{}

// Now returns time.Now in UTC.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock returns a clock that always reports t.
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}
