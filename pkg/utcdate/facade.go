// ============================================================================
// utcdate - UTC datetime string toolkit
// ============================================================================
//
// Package:     utcdate
// Description: Read-only operation groups and the operation name map
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package utcdate

// Getters groups the accessors of one Calendar.
type Getters struct {
	DateTime func(datetime ...string) (string, error)
	Date     func(datetime ...string) (string, error)
	Time     func(datetime ...string) (string, error)
	Year     func(datetime ...string) (int, error)
	Month    func(datetime ...string) (int, error)
	Day      func(datetime ...string) (int, error)
	Hour     func(datetime ...string) (int, error)
	Minute   func(datetime ...string) (int, error)
	Second   func(datetime ...string) (int, error)
}

// Setters groups the mutators of one Calendar.
type Setters struct {
	Year   func(datetime string, value int) (string, error)
	Month  func(datetime string, value int) (string, error)
	Day    func(datetime string, value int) (string, error)
	Hour   func(datetime string, value int) (string, error)
	Minute func(datetime string, value int) (string, error)
	Second func(datetime string, value int) (string, error)
}

// Shifters groups the forward or backward shifts of one Calendar.
type Shifters struct {
	Years   func(amount int, datetime ...string) (string, error)
	Months  func(amount int, datetime ...string) (string, error)
	Days    func(amount int, datetime ...string) (string, error)
	Hours   func(amount int, datetime ...string) (string, error)
	Minutes func(amount int, datetime ...string) (string, error)
	Seconds func(amount int, datetime ...string) (string, error)
}

// Get returns the accessors bound to c.
func (c *Calendar) Get() Getters {
	return Getters{
		DateTime: c.GetDateTime,
		Date:     c.GetDate,
		Time:     c.GetTime,
		Year:     c.GetYear,
		Month:    c.GetMonth,
		Day:      c.GetDay,
		Hour:     c.GetHour,
		Minute:   c.GetMinute,
		Second:   c.GetSecond,
	}
}

// Set returns the mutators bound to c.
func (c *Calendar) Set() Setters {
	return Setters{
		Year:   c.SetYear,
		Month:  c.SetMonth,
		Day:    c.SetDay,
		Hour:   c.SetHour,
		Minute: c.SetMinute,
		Second: c.SetSecond,
	}
}

// Future returns the Add shifters bound to c.
func (c *Calendar) Future() Shifters {
	return Shifters{
		Years:   c.AddYears,
		Months:  c.AddMonths,
		Days:    c.AddDays,
		Hours:   c.AddHours,
		Minutes: c.AddMinutes,
		Seconds: c.AddSeconds,
	}
}

// Past returns the Remove shifters bound to c.
func (c *Calendar) Past() Shifters {
	return Shifters{
		Years:   c.RemoveYears,
		Months:  c.RemoveMonths,
		Days:    c.RemoveDays,
		Hours:   c.RemoveHours,
		Minutes: c.RemoveMinutes,
		Seconds: c.RemoveSeconds,
	}
}

// Get returns the accessors of the default Calendar.
func Get() Getters { return std.Get() }

// Set returns the mutators of the default Calendar.
func Set() Setters { return std.Set() }

// Future returns the Add shifters of the default Calendar.
func Future() Shifters { return std.Future() }

// Past returns the Remove shifters of the default Calendar.
func Past() Shifters { return std.Past() }

// Operations lists every facade operation by its dotted name, such as
// "future.months", with a short description.
func Operations() map[string]string {
	ops := map[string]string{
		"get.datetime": "full datetime of the input or now",
		"get.date":     "YYYY-MM-DD part",
		"get.time":     "hh:mm:ss part",
	}
	for f := FieldYear; f <= FieldSecond; f++ {
		ops["get."+f.String()] = f.String() + " of the input or now"
		ops["set."+f.String()] = "replace the " + f.String()
	}
	for u := UnitYears; u <= UnitSeconds; u++ {
		ops["future."+u.String()] = "add " + u.String()
		ops["past."+u.String()] = "remove " + u.String()
	}
	return ops
}
