// ============================================================================
// utcdate - UTC datetime string toolkit
// ============================================================================
//
// Package:     utcdate
// Description: Formatting of instants and parsing of datetime strings
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package utcdate

import (
	"time"
)

// FormatInstant renders t, converted to UTC, in Layout. Sub-second precision
// is dropped. Instants outside years 0000..9999 cannot be represented and
// fail with CodeInvalidInstant.
func FormatInstant(t time.Time) (string, error) {
	return formatInstant("FormatInstant", t)
}

func formatInstant(op string, t time.Time) (string, error) {
	u := t.UTC()
	if y := u.Year(); y < MinYear || y > MaxYear {
		return "", newError(op, CodeInvalidInstant, "instant %s is outside years %04d..%04d", u.Format(time.RFC3339), MinYear, MaxYear).
			WithDetail("year", y)
	}
	return u.Format(Layout), nil
}

// FormatDate renders a time.Time or non-nil *time.Time in Layout. Any other
// value fails with CodeInvalidInstant.
func FormatDate(v interface{}) (string, error) {
	const op = "FormatDate"
	switch t := v.(type) {
	case time.Time:
		return formatInstant(op, t)
	case *time.Time:
		if t != nil {
			return formatInstant(op, *t)
		}
	}
	return "", newError(op, CodeInvalidInstant, "cannot format %T as an instant", v)
}

// Parse validates dt and returns the UTC instant it names.
func Parse(dt string) (time.Time, error) {
	return parse("Parse", dt)
}

func parse(op, dt string) (time.Time, error) {
	if !IsDateTimeString(dt) {
		return time.Time{}, invalidDateTime(op, dt)
	}
	t, err := time.ParseInLocation(Layout, dt, time.UTC)
	if err != nil {
		return time.Time{}, invalidDateTime(op, dt)
	}
	return t, nil
}

// ParseDate returns the "YYYY-MM-DD" part of a valid datetime string.
func ParseDate(dt string) (string, error) {
	if !IsDateTimeString(dt) {
		return "", invalidDateTime("ParseDate", dt)
	}
	return dt[:len(DateLayout)], nil
}

// ParseTime returns the "hh:mm:ss" part of a valid datetime string.
func ParseTime(dt string) (string, error) {
	if !IsDateTimeString(dt) {
		return "", invalidDateTime("ParseTime", dt)
	}
	return dt[len(DateLayout)+1:], nil
}
