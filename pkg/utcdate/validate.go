// ============================================================================
// utcdate - UTC datetime string toolkit
// ============================================================================
//
// Package:     utcdate
// Description: Validators for datetime strings and field values
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package utcdate

import (
	"regexp"
	"strings"
	"time"
)

// Layouts of the accepted string forms.
const (
	Layout     = "2006-01-02 15:04:05"
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// Year range representable by the four-digit layout.
const (
	MinYear = 0
	MaxYear = 9999
)

var (
	dateTimePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)
	datePattern     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern     = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`)
)

// IsDateTimeString reports whether s is a zero-padded "YYYY-MM-DD hh:mm:ss"
// string naming a real calendar date and time. 2024-02-30 is rejected.
func IsDateTimeString(s string) bool {
	return matches(dateTimePattern, Layout, s)
}

// IsDateString reports whether s is a valid "YYYY-MM-DD" date.
func IsDateString(s string) bool {
	return matches(datePattern, DateLayout, s)
}

// IsTimeString reports whether s is a valid "hh:mm:ss" time.
func IsTimeString(s string) bool {
	return matches(timePattern, TimeLayout, s)
}

// time.Parse enforces field ranges and month lengths; the pattern enforces
// zero padding, which time.Parse does not.
func matches(pattern *regexp.Regexp, layout, s string) bool {
	if !pattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(layout, s)
	return err == nil
}

// IsYear reports whether v is a year the layout can represent.
func IsYear(v int) bool { return FieldYear.Valid(v) }

// IsMonthIndex reports whether v is a zero-based month (0 = January).
func IsMonthIndex(v int) bool { return FieldMonth.Valid(v) }

// IsDay reports whether v is a nominal day of month. Month lengths are not
// checked here.
func IsDay(v int) bool { return FieldDay.Valid(v) }

// IsHour reports whether v is in 0..23.
func IsHour(v int) bool { return FieldHour.Valid(v) }

// IsMinute reports whether v is in 0..59.
func IsMinute(v int) bool { return FieldMinute.Valid(v) }

// IsSecond reports whether v is in 0..59.
func IsSecond(v int) bool { return FieldSecond.Valid(v) }

// IsAmount reports whether v may be used as a shift amount.
func IsAmount(v int) bool { return v >= 0 }

// IsTimeZoneName reports whether s is non-blank. Whether the zone exists is
// only known when it is resolved.
func IsTimeZoneName(s string) bool {
	return strings.TrimSpace(s) != ""
}
