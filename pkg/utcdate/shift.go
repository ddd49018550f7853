// ============================================================================
// utcdate - UTC datetime string toolkit
// ============================================================================
//
// Package:     utcdate
// Description: Shifting datetimes forward and backward by calendar units
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package utcdate

// Unit names the calendar unit moved by a shift.
type Unit int

const (
	UnitYears Unit = iota
	UnitMonths
	UnitDays
	UnitHours
	UnitMinutes
	UnitSeconds
)

var unitNames = [...]string{
	UnitYears:   "years",
	UnitMonths:  "months",
	UnitDays:    "days",
	UnitHours:   "hours",
	UnitMinutes: "minutes",
	UnitSeconds: "seconds",
}

// Upper bound of each unit across the 0000..9999 range. Larger amounts can
// never produce a representable result.
const maxSpanDays = int64(MaxYear-MinYear+1) * 366

var unitSpans = [...]int64{
	UnitYears:   int64(MaxYear - MinYear + 1),
	UnitMonths:  int64(MaxYear-MinYear+1) * 12,
	UnitDays:    maxSpanDays,
	UnitHours:   maxSpanDays * 24,
	UnitMinutes: maxSpanDays * 24 * 60,
	UnitSeconds: maxSpanDays * 24 * 60 * 60,
}

func (u Unit) String() string {
	if !u.known() {
		return "unknown"
	}
	return unitNames[u]
}

func (u Unit) known() bool {
	return u >= UnitYears && u <= UnitSeconds
}

// Field returns the datetime field the unit moves.
func (u Unit) Field() Field {
	return Field(u)
}

// ParseUnit maps a unit name such as "months" to its Unit. The singular form
// is accepted too.
func ParseUnit(name string) (Unit, bool) {
	for i, n := range unitNames {
		if n == name || n[:len(n)-1] == name {
			return Unit(i), true
		}
	}
	return 0, false
}

// Add moves the datetime, or now, forward by amount units. Amount must not
// be negative; zero returns the datetime unchanged. Days that do not exist in
// the target month carry into the next one, so adding a month to Jan 31
// gives Mar 2 (Mar 1 in leap years).
func (c *Calendar) Add(u Unit, amount int, datetime ...string) (string, error) {
	return c.shift("Add"+opUnit(u), u, amount, 1, datetime)
}

// Remove moves the datetime, or now, backward by amount units.
func (c *Calendar) Remove(u Unit, amount int, datetime ...string) (string, error) {
	return c.shift("Remove"+opUnit(u), u, amount, -1, datetime)
}

func (c *Calendar) shift(op string, u Unit, amount, sign int, datetime []string) (string, error) {
	if !u.known() {
		return "", newError(op, CodeInvalidFieldValue, "unknown unit %d", int(u)).
			WithDetail("unit", int(u))
	}
	if !IsAmount(amount) {
		return "", newError(op, CodeInvalidAmount, "invalid amount of %s %d, expected a non-negative integer", u, amount).
			WithDetail("unit", u.String()).
			WithDetail("amount", amount)
	}

	t, err := c.instant(op, datetime)
	if err != nil {
		return "", err
	}

	if int64(amount) > unitSpans[u] {
		return "", newError(op, CodeInvalidInstant, "shifting by %d %s leaves years %04d..%04d", amount, u, MinYear, MaxYear).
			WithDetail("unit", u.String()).
			WithDetail("amount", amount)
	}

	return formatInstant(op, u.Field().add(t, sign*amount))
}

func opUnit(u Unit) string {
	return opSuffix(u.Field()) + "s"
}

// AddYears adds amount years.
func (c *Calendar) AddYears(amount int, datetime ...string) (string, error) {
	return c.Add(UnitYears, amount, datetime...)
}

// AddMonths adds amount months.
func (c *Calendar) AddMonths(amount int, datetime ...string) (string, error) {
	return c.Add(UnitMonths, amount, datetime...)
}

// AddDays adds amount days.
func (c *Calendar) AddDays(amount int, datetime ...string) (string, error) {
	return c.Add(UnitDays, amount, datetime...)
}

// AddHours adds amount hours.
func (c *Calendar) AddHours(amount int, datetime ...string) (string, error) {
	return c.Add(UnitHours, amount, datetime...)
}

// AddMinutes adds amount minutes.
func (c *Calendar) AddMinutes(amount int, datetime ...string) (string, error) {
	return c.Add(UnitMinutes, amount, datetime...)
}

// AddSeconds adds amount seconds.
func (c *Calendar) AddSeconds(amount int, datetime ...string) (string, error) {
	return c.Add(UnitSeconds, amount, datetime...)
}

// RemoveYears subtracts amount years.
func (c *Calendar) RemoveYears(amount int, datetime ...string) (string, error) {
	return c.Remove(UnitYears, amount, datetime...)
}

// RemoveMonths subtracts amount months.
func (c *Calendar) RemoveMonths(amount int, datetime ...string) (string, error) {
	return c.Remove(UnitMonths, amount, datetime...)
}

// RemoveDays subtracts amount days.
func (c *Calendar) RemoveDays(amount int, datetime ...string) (string, error) {
	return c.Remove(UnitDays, amount, datetime...)
}

// RemoveHours subtracts amount hours.
func (c *Calendar) RemoveHours(amount int, datetime ...string) (string, error) {
	return c.Remove(UnitHours, amount, datetime...)
}

// RemoveMinutes subtracts amount minutes.
func (c *Calendar) RemoveMinutes(amount int, datetime ...string) (string, error) {
	return c.Remove(UnitMinutes, amount, datetime...)
}

// RemoveSeconds subtracts amount seconds.
func (c *Calendar) RemoveSeconds(amount int, datetime ...string) (string, error) {
	return c.Remove(UnitSeconds, amount, datetime...)
}
