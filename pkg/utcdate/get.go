// ============================================================================
// utcdate - UTC datetime string toolkit
// ============================================================================
//
// Package:     utcdate
// Description: Accessors for whole datetimes and single fields
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package utcdate

import "strings"

// GetDateTime returns the datetime, or now, as "YYYY-MM-DD hh:mm:ss".
func (c *Calendar) GetDateTime(datetime ...string) (string, error) {
	t, err := c.instant("GetDateTime", datetime)
	if err != nil {
		return "", err
	}
	return formatInstant("GetDateTime", t)
}

// GetDate returns the "YYYY-MM-DD" part of the datetime, or of now.
func (c *Calendar) GetDate(datetime ...string) (string, error) {
	s, err := c.GetDateTime(datetime...)
	if err != nil {
		return "", err
	}
	return s[:len(DateLayout)], nil
}

// GetTime returns the "hh:mm:ss" part of the datetime, or of now.
func (c *Calendar) GetTime(datetime ...string) (string, error) {
	s, err := c.GetDateTime(datetime...)
	if err != nil {
		return "", err
	}
	return s[len(DateLayout)+1:], nil
}

// GetField returns one field of the datetime, or of now. Months are
// zero-based.
func (c *Calendar) GetField(f Field, datetime ...string) (int, error) {
	op := "Get" + opSuffix(f)
	if !f.known() {
		return 0, unknownField(op, f)
	}
	t, err := c.instant(op, datetime)
	if err != nil {
		return 0, err
	}
	return f.get(t), nil
}

// GetYear returns the four-digit year.
func (c *Calendar) GetYear(datetime ...string) (int, error) {
	return c.GetField(FieldYear, datetime...)
}

// GetMonth returns the month, 0 for January through 11 for December.
func (c *Calendar) GetMonth(datetime ...string) (int, error) {
	return c.GetField(FieldMonth, datetime...)
}

// GetDay returns the day of month, 1..31.
func (c *Calendar) GetDay(datetime ...string) (int, error) {
	return c.GetField(FieldDay, datetime...)
}

// GetHour returns the hour, 0..23.
func (c *Calendar) GetHour(datetime ...string) (int, error) {
	return c.GetField(FieldHour, datetime...)
}

// GetMinute returns the minute, 0..59.
func (c *Calendar) GetMinute(datetime ...string) (int, error) {
	return c.GetField(FieldMinute, datetime...)
}

// GetSecond returns the second, 0..59.
func (c *Calendar) GetSecond(datetime ...string) (int, error) {
	return c.GetField(FieldSecond, datetime...)
}

func opSuffix(f Field) string {
	name := f.String()
	return strings.ToUpper(name[:1]) + name[1:]
}
