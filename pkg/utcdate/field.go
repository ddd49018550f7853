// ============================================================================
// utcdate - UTC datetime string toolkit
// ============================================================================
//
// Package:     utcdate
// Description: Datetime fields with bounds, extraction and replacement
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package utcdate

import (
	"time"

	"github.com/msto63/utcdate/foundation/utils/timex"
)

// Field names one component of a datetime.
type Field int

const (
	FieldYear Field = iota
	FieldMonth
	FieldDay
	FieldHour
	FieldMinute
	FieldSecond
)

var fieldNames = [...]string{
	FieldYear:   "year",
	FieldMonth:  "month",
	FieldDay:    "day",
	FieldHour:   "hour",
	FieldMinute: "minute",
	FieldSecond: "second",
}

var fieldBounds = [...][2]int{
	FieldYear:   {MinYear, MaxYear},
	FieldMonth:  {0, 11},
	FieldDay:    {1, 31},
	FieldHour:   {0, 23},
	FieldMinute: {0, 59},
	FieldSecond: {0, 59},
}

func (f Field) String() string {
	if !f.known() {
		return "unknown"
	}
	return fieldNames[f]
}

func (f Field) known() bool {
	return f >= FieldYear && f <= FieldSecond
}

// unknownField reports a Field outside FieldYear..FieldSecond.
func unknownField(op string, f Field) *UTCError {
	return newError(op, CodeInvalidFieldValue, "unknown field %d", int(f)).
		WithDetail("field", int(f))
}

// Bounds returns the inclusive range accepted by the field's setter.
func (f Field) Bounds() (min, max int) {
	if !f.known() {
		return 0, -1
	}
	b := fieldBounds[f]
	return b[0], b[1]
}

// Valid reports whether v lies within the field's bounds.
func (f Field) Valid(v int) bool {
	min, max := f.Bounds()
	return v >= min && v <= max
}

// ParseField maps a field name such as "month" to its Field.
func ParseField(name string) (Field, bool) {
	for i, n := range fieldNames {
		if n == name {
			return Field(i), true
		}
	}
	return 0, false
}

// get reads the field from t. Months are zero-based.
func (f Field) get(t time.Time) int {
	w := timex.WallClockOf(t)
	switch f {
	case FieldYear:
		return w.Year
	case FieldMonth:
		return int(w.Month) - 1
	case FieldDay:
		return w.Day
	case FieldHour:
		return w.Hour
	case FieldMinute:
		return w.Minute
	default:
		return w.Second
	}
}

// set replaces the field and renormalises, so out-of-month days carry over.
func (f Field) set(t time.Time, v int) time.Time {
	w := timex.WallClockOf(t)
	switch f {
	case FieldYear:
		w.Year = v
	case FieldMonth:
		w.Month = time.Month(v + 1)
	case FieldDay:
		w.Day = v
	case FieldHour:
		w.Hour = v
	case FieldMinute:
		w.Minute = v
	default:
		w.Second = v
	}
	return w.In(time.UTC)
}

// add shifts the field by n with calendar carry.
func (f Field) add(t time.Time, n int) time.Time {
	return f.set(t, f.get(t)+n)
}
