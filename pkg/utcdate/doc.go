// ============================================================================
// utcdate - UTC datetime string toolkit
// ============================================================================
//
// Package:     utcdate
// Description: Package documentation for the UTC datetime string library
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package utcdate gets, sets, shifts, parses and converts UTC datetime strings.
//
// Every datetime handled by this package is a string of the exact form
// "YYYY-MM-DD hh:mm:ss" read as a UTC wall-clock reading. Inputs are validated
// strictly, field arithmetic follows Go's calendar normalisation (a day that
// does not exist in the target month carries into the next one), and results
// are always freshly formatted strings.
//
// The package-level functions use a default Calendar backed by the system
// clock. Build a Calendar with New to inject a clock, a timezone resolver or
// a logger:
//
//	cal := utcdate.New(utcdate.WithClock(utcdate.FixedClock(t)))
//	next, err := cal.AddMonths(1)
//
// Functions whose datetime argument is optional take it as a trailing
// variadic parameter; when it is omitted the calendar's clock supplies now.
//
// ToUTC converts a wall-clock reading in an IANA zone to UTC by offset
// differencing: the reading is rendered in the zone, the difference between
// the rendered and the original fields is the zone offset, and a second
// lookup at the candidate instant settles readings that fall on the far side
// of a DST transition.
//
// All failures are *UTCError values; use IsUTCError to recognise them. Error
// messages are not part of the API.
package utcdate
