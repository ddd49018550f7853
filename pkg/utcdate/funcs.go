// ============================================================================
// utcdate - UTC datetime string toolkit
// ============================================================================
//
// Package:     utcdate
// Description: Package-level operations bound to the default Calendar
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package utcdate

// Package-level forms of the Calendar methods, bound to the default Calendar.

// Now returns the current UTC instant as a datetime string.
func Now() (string, error) { return std.Now() }

// GetDateTime returns the datetime, or now, after validating it.
func GetDateTime(datetime ...string) (string, error) { return std.GetDateTime(datetime...) }

// GetDate returns the "YYYY-MM-DD" part of the datetime, or of now.
func GetDate(datetime ...string) (string, error) { return std.GetDate(datetime...) }

// GetTime returns the "hh:mm:ss" part of the datetime, or of now.
func GetTime(datetime ...string) (string, error) { return std.GetTime(datetime...) }

// GetYear returns the year of the datetime, or of now.
func GetYear(datetime ...string) (int, error) { return std.GetYear(datetime...) }

// GetMonth returns the zero-based month (0..11) of the datetime, or of now.
func GetMonth(datetime ...string) (int, error) { return std.GetMonth(datetime...) }

// GetDay returns the day of month of the datetime, or of now.
func GetDay(datetime ...string) (int, error) { return std.GetDay(datetime...) }

// GetHour returns the hour of the datetime, or of now.
func GetHour(datetime ...string) (int, error) { return std.GetHour(datetime...) }

// GetMinute returns the minute of the datetime, or of now.
func GetMinute(datetime ...string) (int, error) { return std.GetMinute(datetime...) }

// GetSecond returns the second of the datetime, or of now.
func GetSecond(datetime ...string) (int, error) { return std.GetSecond(datetime...) }

// SetYear replaces the year (0..9999).
func SetYear(datetime string, year int) (string, error) { return std.SetYear(datetime, year) }

// SetMonth replaces the zero-based month (0..11).
func SetMonth(datetime string, month int) (string, error) { return std.SetMonth(datetime, month) }

// SetDay replaces the day of month (1..31).
func SetDay(datetime string, day int) (string, error) { return std.SetDay(datetime, day) }

// SetHour replaces the hour (0..23).
func SetHour(datetime string, hour int) (string, error) { return std.SetHour(datetime, hour) }

// SetMinute replaces the minute (0..59).
func SetMinute(datetime string, minute int) (string, error) { return std.SetMinute(datetime, minute) }

// SetSecond replaces the second (0..59).
func SetSecond(datetime string, second int) (string, error) { return std.SetSecond(datetime, second) }

// AddYears moves the datetime, or now, forward by amount years.
func AddYears(amount int, datetime ...string) (string, error) { return std.AddYears(amount, datetime...) }

// AddMonths moves the datetime, or now, forward by amount months.
func AddMonths(amount int, datetime ...string) (string, error) {
	return std.AddMonths(amount, datetime...)
}

// AddDays moves the datetime, or now, forward by amount days.
func AddDays(amount int, datetime ...string) (string, error) { return std.AddDays(amount, datetime...) }

// AddHours moves the datetime, or now, forward by amount hours.
func AddHours(amount int, datetime ...string) (string, error) { return std.AddHours(amount, datetime...) }

// AddMinutes moves the datetime, or now, forward by amount minutes.
func AddMinutes(amount int, datetime ...string) (string, error) {
	return std.AddMinutes(amount, datetime...)
}

// AddSeconds moves the datetime, or now, forward by amount seconds.
func AddSeconds(amount int, datetime ...string) (string, error) {
	return std.AddSeconds(amount, datetime...)
}

// RemoveYears moves the datetime, or now, backward by amount years.
func RemoveYears(amount int, datetime ...string) (string, error) {
	return std.RemoveYears(amount, datetime...)
}

// RemoveMonths moves the datetime, or now, backward by amount months.
func RemoveMonths(amount int, datetime ...string) (string, error) {
	return std.RemoveMonths(amount, datetime...)
}

// RemoveDays moves the datetime, or now, backward by amount days.
func RemoveDays(amount int, datetime ...string) (string, error) {
	return std.RemoveDays(amount, datetime...)
}

// RemoveHours moves the datetime, or now, backward by amount hours.
func RemoveHours(amount int, datetime ...string) (string, error) {
	return std.RemoveHours(amount, datetime...)
}

// RemoveMinutes moves the datetime, or now, backward by amount minutes.
func RemoveMinutes(amount int, datetime ...string) (string, error) {
	return std.RemoveMinutes(amount, datetime...)
}

// RemoveSeconds moves the datetime, or now, backward by amount seconds.
func RemoveSeconds(amount int, datetime ...string) (string, error) {
	return std.RemoveSeconds(amount, datetime...)
}

// ToUTC converts a civil datetime in zone to UTC using the default Calendar.
func ToUTC(civil, zone string) (string, error) { return std.ToUTC(civil, zone) }

// FromUTC renders a UTC datetime in zone using the default Calendar.
func FromUTC(utc, zone string) (string, error) { return std.FromUTC(utc, zone) }
