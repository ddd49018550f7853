// ============================================================================
// utcdate - UTC datetime string toolkit
// ============================================================================
//
// Package:     utcdate
// Description: Mutators replacing a single datetime field
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package utcdate

// SetField replaces one field of datetime and returns the new datetime.
// The value must lie within the field's nominal bounds; a day that does not
// exist in the month carries into the following month.
func (c *Calendar) SetField(f Field, datetime string, value int) (string, error) {
	op := "Set" + opSuffix(f)
	if !f.known() {
		return "", unknownField(op, f)
	}

	t, err := parse(op, datetime)
	if err != nil {
		return "", err
	}

	if !f.Valid(value) {
		min, max := f.Bounds()
		return "", newError(op, CodeInvalidFieldValue, "invalid %s %d, expected %d..%d", f, value, min, max).
			WithDetail("field", f.String()).
			WithDetail("value", value)
	}

	return formatInstant(op, f.set(t, value))
}

// SetYear replaces the year (0..9999). Feb 29 in a common year becomes Mar 1.
func (c *Calendar) SetYear(datetime string, year int) (string, error) {
	return c.SetField(FieldYear, datetime, year)
}

// SetMonth replaces the zero-based month (0..11).
func (c *Calendar) SetMonth(datetime string, month int) (string, error) {
	return c.SetField(FieldMonth, datetime, month)
}

// SetDay replaces the day of month (1..31).
func (c *Calendar) SetDay(datetime string, day int) (string, error) {
	return c.SetField(FieldDay, datetime, day)
}

// SetHour replaces the hour (0..23).
func (c *Calendar) SetHour(datetime string, hour int) (string, error) {
	return c.SetField(FieldHour, datetime, hour)
}

// SetMinute replaces the minute (0..59).
func (c *Calendar) SetMinute(datetime string, minute int) (string, error) {
	return c.SetField(FieldMinute, datetime, minute)
}

// SetSecond replaces the second (0..59).
func (c *Calendar) SetSecond(datetime string, second int) (string, error) {
	return c.SetField(FieldSecond, datetime, second)
}
