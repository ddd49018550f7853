package utcdate

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	utcerror "github.com/msto63/utcdate/foundation/core/error"
	utclog "github.com/msto63/utcdate/foundation/core/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.June, 15, 12, 34, 56, 0, time.UTC)

func fixedCalendar() *Calendar {
	return New(WithClock(FixedClock(fixedNow)))
}

func requireCode(t *testing.T, err error, code utcerror.Code) {
	t.Helper()
	require.Error(t, err)
	require.True(t, IsUTCError(err), "not a UTCError: %v", err)
	assert.Equal(t, code, utcerror.GetCode(err))
}

func TestIsDateTimeString(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name  string
		input string
		exp   bool
	}{
		{"canonical", "2024-06-15 12:34:56", true},
		{"leap_day", "2024-02-29 00:00:00", true},
		{"last_instant", "9999-12-31 23:59:59", true},
		{"common_year_leap_day", "2023-02-29 00:00:00", false},
		{"february_30", "2024-02-30 10:00:00", false},
		{"april_31", "2024-04-31 10:00:00", false},
		{"month_13", "2024-13-01 00:00:00", false},
		{"month_00", "2024-00-10 00:00:00", false},
		{"day_00", "2024-01-00 00:00:00", false},
		{"hour_24", "2024-01-05 24:00:00", false},
		{"minute_60", "2024-01-05 10:60:00", false},
		{"second_60", "2024-01-05 10:00:60", false},
		{"unpadded_month", "2024-1-05 10:00:00", false},
		{"unpadded_hour", "2024-01-05 7:00:00", false},
		{"iso_t_separator", "2024-01-05T10:00:00", false},
		{"trailing_zone", "2024-01-05 10:00:00Z", false},
		{"leading_space", " 2024-01-05 10:00:00", false},
		{"fraction", "2024-01-05 10:00:00.5", false},
		{"date_only", "2024-01-05", false},
		{"wide_digits", "２０２４-01-05 10:00:00", false},
		{"empty", "", false},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.exp, IsDateTimeString(tc.input))
		})
	}
}

func TestIsDateAndTimeString(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	a.True(IsDateString("2024-02-29"))
	a.False(IsDateString("2024-02-30"))
	a.False(IsDateString("2024-2-01"))
	a.False(IsDateString("2024-02-01 00:00:00"))

	a.True(IsTimeString("00:00:00"))
	a.True(IsTimeString("23:59:59"))
	a.False(IsTimeString("7:00:00"))
	a.False(IsTimeString("24:00:00"))
	a.False(IsTimeString("12:00"))
}

func TestFieldValidators(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name  string
		check func(int) bool
		valid []int
		bad   []int
	}{
		{"year", IsYear, []int{0, 1970, 9999}, []int{-1, 10000}},
		{"month", IsMonthIndex, []int{0, 11}, []int{-1, 12}},
		{"day", IsDay, []int{1, 31}, []int{0, 32}},
		{"hour", IsHour, []int{0, 23}, []int{-1, 24}},
		{"minute", IsMinute, []int{0, 59}, []int{-1, 60}},
		{"second", IsSecond, []int{0, 59}, []int{-1, 60}},
		{"amount", IsAmount, []int{0, 1, 1 << 20}, []int{-1, -3}},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			for _, v := range tc.valid {
				assert.True(t, tc.check(v), "%d should be valid", v)
			}
			for _, v := range tc.bad {
				assert.False(t, tc.check(v), "%d should be invalid", v)
			}
		})
	}

	assert.True(t, IsTimeZoneName("Europe/Paris"))
	assert.False(t, IsTimeZoneName("  "))
}

func TestParseFieldAndUnit(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	f, ok := ParseField("minute")
	a.True(ok)
	a.Equal(FieldMinute, f)
	_, ok = ParseField("week")
	a.False(ok)
	a.Equal("unknown", Field(17).String())

	u, ok := ParseUnit("months")
	a.True(ok)
	a.Equal(UnitMonths, u)
	u, ok = ParseUnit("day")
	a.True(ok)
	a.Equal(UnitDays, u)
	_, ok = ParseUnit("fortnights")
	a.False(ok)
	a.Equal(FieldHour, UnitHours.Field())
}

func TestGetters(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)
	cal := fixedCalendar()

	const d = "2024-03-09 07:05:03"

	s, err := cal.GetDateTime(d)
	r.NoError(err)
	a.Equal(d, s)

	s, err = cal.GetDate(d)
	r.NoError(err)
	a.Equal("2024-03-09", s)

	s, err = cal.GetTime(d)
	r.NoError(err)
	a.Equal("07:05:03", s)

	for _, tc := range []struct {
		get func(...string) (int, error)
		exp int
	}{
		{cal.GetYear, 2024},
		{cal.GetMonth, 2},
		{cal.GetDay, 9},
		{cal.GetHour, 7},
		{cal.GetMinute, 5},
		{cal.GetSecond, 3},
	} {
		v, err := tc.get(d)
		r.NoError(err)
		a.Equal(tc.exp, v)
	}

	month, err := cal.GetMonth("2024-01-15 00:00:00")
	r.NoError(err)
	a.Equal(0, month)
	month, err = cal.GetMonth("2024-12-15 00:00:00")
	r.NoError(err)
	a.Equal(11, month)
}

func TestGettersUseClock(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	tokyo, err := time.LoadLocation("Asia/Tokyo")
	r.NoError(err)
	cal := New(WithClock(FixedClock(time.Date(2024, 6, 15, 21, 34, 56, 999, tokyo))))

	s, err := cal.GetDateTime()
	r.NoError(err)
	a.Equal("2024-06-15 12:34:56", s)

	s, err = cal.Now()
	r.NoError(err)
	a.Equal("2024-06-15 12:34:56", s)

	hour, err := cal.GetHour()
	r.NoError(err)
	a.Equal(12, hour)

	date, err := cal.GetDate()
	r.NoError(err)
	a.Equal("2024-06-15", date)
}

func TestGettersRejectInput(t *testing.T) {
	t.Parallel()
	cal := fixedCalendar()

	_, err := cal.GetDate("2024-02-30 00:00:00")
	requireCode(t, err, CodeInvalidDateTime)

	_, err = cal.GetYear("not a date")
	requireCode(t, err, CodeInvalidDateTime)

	_, err = cal.GetYear("2024-01-01 00:00:00", "2024-01-02 00:00:00")
	requireCode(t, err, CodeInvalidDateTime)

	e, ok := utcerror.As(err)
	require.True(t, ok)
	assert.Equal(t, "utcdate.GetYear", e.Operation())
	assert.Equal(t, 2, e.Details()["count"])

	for _, f := range []Field{Field(-1), Field(6), Field(9)} {
		got, err := cal.GetField(f, "2024-06-15 12:34:56")
		assert.Zero(t, got)
		requireCode(t, err, CodeInvalidFieldValue)
		e, ok := utcerror.As(err)
		require.True(t, ok)
		assert.Equal(t, int(f), e.Details()["field"])
	}
}

func TestSetters(t *testing.T) {
	t.Parallel()
	cal := fixedCalendar()

	for _, tc := range []struct {
		name  string
		set   func(string, int) (string, error)
		input string
		value int
		exp   string
	}{
		{"day_31_in_january", cal.SetDay, "2024-01-12 10:00:00", 31, "2024-01-31 10:00:00"},
		{"day_31_in_april_carries", cal.SetDay, "2024-04-12 10:00:00", 31, "2024-05-01 10:00:00"},
		{"month_0_is_january", cal.SetMonth, "2024-06-15 10:00:00", 0, "2024-01-15 10:00:00"},
		{"month_11_is_december", cal.SetMonth, "2024-06-15 10:00:00", 11, "2024-12-15 10:00:00"},
		{"month_carries_day", cal.SetMonth, "2024-01-31 00:00:00", 1, "2024-03-02 00:00:00"},
		{"year_from_leap_day", cal.SetYear, "2024-02-29 08:00:00", 2023, "2023-03-01 08:00:00"},
		{"year_to_leap_year", cal.SetYear, "2023-02-28 08:00:00", 2024, "2024-02-28 08:00:00"},
		{"hour", cal.SetHour, "2024-06-15 10:20:30", 23, "2024-06-15 23:20:30"},
		{"minute", cal.SetMinute, "2024-06-15 10:20:30", 0, "2024-06-15 10:00:30"},
		{"second", cal.SetSecond, "2024-06-15 10:20:30", 59, "2024-06-15 10:20:59"},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := tc.set(tc.input, tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.exp, got)
			assert.True(t, IsDateTimeString(got))
		})
	}
}

func TestSettersRejectInput(t *testing.T) {
	t.Parallel()
	cal := fixedCalendar()

	for _, tc := range []struct {
		name  string
		set   func(string, int) (string, error)
		input string
		value int
		code  utcerror.Code
	}{
		{"month_12", cal.SetMonth, "2024-11-27 10:00:00", 12, CodeInvalidFieldValue},
		{"month_negative", cal.SetMonth, "2024-11-27 10:00:00", -1, CodeInvalidFieldValue},
		{"day_0", cal.SetDay, "2024-11-27 10:00:00", 0, CodeInvalidFieldValue},
		{"day_32", cal.SetDay, "2024-11-27 10:00:00", 32, CodeInvalidFieldValue},
		{"hour_24", cal.SetHour, "2024-11-27 10:00:00", 24, CodeInvalidFieldValue},
		{"minute_60", cal.SetMinute, "2024-11-27 10:00:00", 60, CodeInvalidFieldValue},
		{"second_60", cal.SetSecond, "2024-11-27 10:00:00", 60, CodeInvalidFieldValue},
		{"year_10000", cal.SetYear, "2024-11-27 10:00:00", 10000, CodeInvalidFieldValue},
		{"year_negative", cal.SetYear, "2024-11-27 10:00:00", -1, CodeInvalidFieldValue},
		{"bad_datetime_first", cal.SetDay, "2024-11-31 10:00:00", 0, CodeInvalidDateTime},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := tc.set(tc.input, tc.value)
			assert.Empty(t, got)
			requireCode(t, err, tc.code)
		})
	}

	_, err := cal.SetMonth("2024-11-27 10:00:00", 12)
	e, ok := utcerror.As(err)
	require.True(t, ok)
	assert.Equal(t, "month", e.Details()["field"])
	assert.Equal(t, 12, e.Details()["value"])
	assert.Equal(t, "utcdate.SetMonth", e.Operation())

	got, err := cal.SetField(Field(9), "2024-11-27 10:00:00", 0)
	assert.Empty(t, got)
	requireCode(t, err, CodeInvalidFieldValue)
}

func TestShifters(t *testing.T) {
	t.Parallel()
	cal := fixedCalendar()

	for _, tc := range []struct {
		name   string
		shift  func(int, ...string) (string, error)
		amount int
		input  string
		exp    string
	}{
		{"add_zero", cal.AddYears, 0, "2024-06-15 10:00:00", "2024-06-15 10:00:00"},
		{"add_years", cal.AddYears, 3, "2024-06-15 10:00:00", "2027-06-15 10:00:00"},
		{"add_year_to_leap_day", cal.AddYears, 1, "2024-02-29 00:00:00", "2025-03-01 00:00:00"},
		{"add_month_from_jan_31", cal.AddMonths, 1, "2024-01-31 10:00:00", "2024-03-02 10:00:00"},
		{"add_months_across_year", cal.AddMonths, 14, "2024-11-15 10:00:00", "2026-01-15 10:00:00"},
		{"add_day_across_year", cal.AddDays, 1, "2024-12-31 23:00:00", "2025-01-01 23:00:00"},
		{"add_hours_into_leap_day", cal.AddHours, 25, "2024-02-28 00:00:00", "2024-02-29 01:00:00"},
		{"add_minutes", cal.AddMinutes, 90, "2024-06-15 23:00:00", "2024-06-16 00:30:00"},
		{"add_second_across_year", cal.AddSeconds, 1, "2024-12-31 23:59:59", "2025-01-01 00:00:00"},
		{"remove_years_from_leap_day", cal.RemoveYears, 1, "2024-02-29 00:00:00", "2023-03-01 00:00:00"},
		{"remove_month_from_mar_31", cal.RemoveMonths, 1, "2024-03-31 00:00:00", "2024-03-02 00:00:00"},
		{"remove_days", cal.RemoveDays, 1, "2024-03-01 00:00:00", "2024-02-29 00:00:00"},
		{"remove_hours", cal.RemoveHours, 1, "2024-01-01 00:30:00", "2023-12-31 23:30:00"},
		{"remove_minutes", cal.RemoveMinutes, 61, "2024-01-01 01:00:00", "2023-12-31 23:59:00"},
		{"remove_seconds", cal.RemoveSeconds, 86400, "2024-03-01 12:00:00", "2024-02-29 12:00:00"},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := tc.shift(tc.amount, tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.exp, got)
		})
	}
}

func TestShiftersUseClock(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)
	cal := fixedCalendar()

	got, err := cal.AddDays(1)
	r.NoError(err)
	a.Equal("2024-06-16 12:34:56", got)

	got, err = cal.RemoveMonths(6)
	r.NoError(err)
	a.Equal("2023-12-15 12:34:56", got)
}

func TestShiftersRejectInput(t *testing.T) {
	t.Parallel()
	cal := fixedCalendar()

	_, err := cal.AddMonths(-3)
	requireCode(t, err, CodeInvalidAmount)
	e, ok := utcerror.As(err)
	require.True(t, ok)
	assert.Equal(t, "months", e.Details()["unit"])
	assert.Equal(t, -3, e.Details()["amount"])
	assert.Contains(t, e.Error(), "months")

	_, err = cal.RemoveSeconds(-1, "garbage")
	requireCode(t, err, CodeInvalidAmount)

	_, err = cal.AddDays(1, "2024-02-30 00:00:00")
	requireCode(t, err, CodeInvalidDateTime)

	_, err = cal.AddYears(1, "9999-06-01 00:00:00")
	requireCode(t, err, CodeInvalidInstant)

	_, err = cal.AddYears(20000, "2024-06-01 00:00:00")
	requireCode(t, err, CodeInvalidInstant)

	_, err = cal.RemoveYears(2025, "2024-06-01 00:00:00")
	requireCode(t, err, CodeInvalidInstant)

	for _, u := range []Unit{Unit(-1), Unit(6), Unit(9)} {
		got, err := cal.Add(u, 1, "2024-06-15 12:00:00")
		assert.Empty(t, got)
		requireCode(t, err, CodeInvalidFieldValue)

		got, err = cal.Remove(u, 1, "2024-06-15 12:00:00")
		assert.Empty(t, got)
		requireCode(t, err, CodeInvalidFieldValue)
		e, ok := utcerror.As(err)
		require.True(t, ok)
		assert.Equal(t, int(u), e.Details()["unit"])
	}
}

func TestAddRemoveRoundTrip(t *testing.T) {
	t.Parallel()
	cal := fixedCalendar()
	const d = "2024-06-15 10:20:30"

	for u := UnitYears; u <= UnitSeconds; u++ {
		u := u
		t.Run(u.String(), func(t *testing.T) {
			t.Parallel()
			for _, n := range []int{0, 1, 7, 59} {
				forward, err := cal.Add(u, n, d)
				require.NoError(t, err)
				back, err := cal.Remove(u, n, forward)
				require.NoError(t, err)
				assert.Equal(t, d, back, "%d %s", n, u)
			}
		})
	}
}

func TestSetGetIdentity(t *testing.T) {
	t.Parallel()
	cal := fixedCalendar()

	for _, d := range []string{
		"2024-02-29 23:59:59",
		"1970-01-01 00:00:00",
		"2023-12-31 12:30:45",
		"9999-12-31 23:59:59",
	} {
		for f := FieldYear; f <= FieldSecond; f++ {
			v, err := cal.GetField(f, d)
			require.NoError(t, err)
			got, err := cal.SetField(f, d, v)
			require.NoError(t, err)
			assert.Equal(t, d, got, "%s of %s", f, d)
		}
	}
}

func TestParseDateAndTime(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	for _, d := range []string{"2024-02-29 23:59:59", "1999-12-31 00:00:01"} {
		date, err := ParseDate(d)
		r.NoError(err)
		tm, err := ParseTime(d)
		r.NoError(err)
		a.Equal(d, date+" "+tm)
	}

	_, err := ParseDate("2024-02-30 00:00:00")
	requireCode(t, err, CodeInvalidDateTime)
	_, err = ParseTime("12:00:00")
	requireCode(t, err, CodeInvalidDateTime)

	parsed, err := Parse("2024-06-15 12:34:56")
	r.NoError(err)
	a.True(parsed.Equal(fixedNow))
	a.Equal(time.UTC, parsed.Location())
}

func TestFormat(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	tokyo, err := time.LoadLocation("Asia/Tokyo")
	r.NoError(err)

	s, err := FormatInstant(time.Date(2024, 6, 15, 12, 0, 0, 500_000_000, tokyo))
	r.NoError(err)
	a.Equal("2024-06-15 03:00:00", s)

	s, err = FormatInstant(time.Time{})
	r.NoError(err)
	a.Equal("0001-01-01 00:00:00", s)

	_, err = FormatInstant(time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC))
	requireCode(t, err, CodeInvalidInstant)

	s, err = FormatDate(fixedNow)
	r.NoError(err)
	a.Equal("2024-06-15 12:34:56", s)

	now := fixedNow
	s, err = FormatDate(&now)
	r.NoError(err)
	a.Equal("2024-06-15 12:34:56", s)

	for _, v := range []interface{}{"not-a-date", nil, (*time.Time)(nil), 1718454896} {
		_, err = FormatDate(v)
		requireCode(t, err, CodeInvalidInstant)
	}
}

func TestToUTC(t *testing.T) {
	t.Parallel()
	cal := fixedCalendar()

	for _, tc := range []struct {
		name  string
		civil string
		zone  string
		exp   string
	}{
		{"utc_identity", "2024-06-15 12:00:00", "UTC", "2024-06-15 12:00:00"},
		{"tokyo", "2024-06-15 12:00:00", "Asia/Tokyo", "2024-06-15 03:00:00"},
		{"kolkata", "2024-06-15 12:00:00", "Asia/Kolkata", "2024-06-15 06:30:00"},
		{"kathmandu", "2024-06-15 12:00:00", "Asia/Kathmandu", "2024-06-15 06:15:00"},
		{"chatham_standard", "2024-06-15 12:00:00", "Pacific/Chatham", "2024-06-14 23:15:00"},
		{"chatham_daylight", "2024-01-15 12:00:00", "Pacific/Chatham", "2024-01-14 22:15:00"},
		{"new_york_winter", "2024-12-15 15:00:00", "America/New_York", "2024-12-15 20:00:00"},
		{"new_york_summer", "2024-07-01 08:00:00", "America/New_York", "2024-07-01 12:00:00"},
		{"london_dst_gap", "2024-03-31 01:30:00", "Europe/London", "2024-03-31 00:30:00"},
		{"london_after_gap", "2024-03-31 02:30:00", "Europe/London", "2024-03-31 01:30:00"},
		{"london_overlap", "2024-10-27 01:30:00", "Europe/London", "2024-10-27 01:30:00"},
		{"tokyo_previous_day", "2024-01-01 05:00:00", "Asia/Tokyo", "2023-12-31 20:00:00"},
		{"padded_zone", "2024-06-15 12:00:00", " Asia/Tokyo ", "2024-06-15 03:00:00"},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := cal.ToUTC(tc.civil, tc.zone)
			require.NoError(t, err)
			assert.Equal(t, tc.exp, got)
		})
	}
}

func TestToUTCRejectsInput(t *testing.T) {
	t.Parallel()
	cal := fixedCalendar()

	_, err := cal.ToUTC("2024-06-15", "UTC")
	requireCode(t, err, CodeInvalidDateTime)

	_, err = cal.ToUTC("bad", "")
	requireCode(t, err, CodeInvalidDateTime)

	_, err = cal.ToUTC("2024-06-15 12:00:00", "")
	requireCode(t, err, CodeInvalidTimeZone)

	_, err = cal.ToUTC("2024-06-15 12:00:00", "Mars/Olympus_Mons")
	requireCode(t, err, CodeInvalidTimeZone)
	e, ok := utcerror.As(err)
	require.True(t, ok)
	assert.Equal(t, "Mars/Olympus_Mons", e.Details()["zone"])
	assert.NotNil(t, e.Unwrap())

	_, err = cal.ToUTC("9999-12-31 23:00:00", "America/New_York")
	requireCode(t, err, CodeInvalidInstant)
}

func TestFromUTC(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)
	cal := fixedCalendar()

	got, err := cal.FromUTC("2024-06-15 03:00:00", "Asia/Tokyo")
	r.NoError(err)
	a.Equal("2024-06-15 12:00:00", got)

	got, err = cal.FromUTC("2024-12-15 20:00:00", "America/New_York")
	r.NoError(err)
	a.Equal("2024-12-15 15:00:00", got)

	back, err := cal.ToUTC(got, "America/New_York")
	r.NoError(err)
	a.Equal("2024-12-15 20:00:00", back)

	_, err = cal.FromUTC("9999-12-31 23:00:00", "Asia/Tokyo")
	requireCode(t, err, CodeInvalidInstant)

	_, err = cal.FromUTC("2024-12-15 20:00:00", "Nowhere")
	requireCode(t, err, CodeInvalidTimeZone)
}

func TestToUTCConcurrent(t *testing.T) {
	t.Parallel()
	cal := New()
	zones := []string{"Asia/Tokyo", "Asia/Kolkata", "America/New_York", "UTC"}
	exp := []string{"2024-06-15 03:00:00", "2024-06-15 06:30:00", "2024-06-15 16:00:00", "2024-06-15 12:00:00"}

	errs := make(chan error, 40)
	for i := 0; i < cap(errs); i++ {
		go func(i int) {
			got, err := cal.ToUTC("2024-06-15 12:00:00", zones[i%len(zones)])
			if err == nil && got != exp[i%len(exp)] {
				err = fmt.Errorf("%s: got %s, want %s", zones[i%len(zones)], got, exp[i%len(exp)])
			}
			errs <- err
		}(i)
	}
	for i := 0; i < cap(errs); i++ {
		assert.NoError(t, <-errs)
	}
}

func TestZoneConversionConcurrentLogging(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := utclog.NewWithConfig(utclog.Config{
		Level:  utclog.LevelDebug,
		Format: utclog.FormatLogfmt,
		Output: &buf,
	})
	cal := New(WithLogger(logger))

	const calls = 50
	var wg sync.WaitGroup
	for i := 0; i < calls; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				_, _ = cal.ToUTC("2024-06-15 12:00:00", "Asia/Tokyo")
			} else {
				_, _ = cal.FromUTC("2024-06-15 03:00:00", "Asia/Tokyo")
			}
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, calls)
	for _, line := range lines {
		assert.Equal(t, 1, strings.Count(line, "level=debug"), line)
		assert.Contains(t, line, `zone="Asia/Tokyo"`)
	}
}

func TestIsUTCError(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	_, err := SetDay("2024-01-01 00:00:00", 0)
	a.True(IsUTCError(err))
	a.True(IsUTCError(fmt.Errorf("wrapped: %w", err)))
	a.False(IsUTCError(nil))
	a.False(IsUTCError(errors.New("plain")))
	a.False(IsUTCError(utcerror.New("config").WithCode(utcerror.CodeConfigError)))
}

func TestDefaultCalendar(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	a.Same(Default(), std)

	got, err := AddDays(1, "2024-02-28 00:00:00")
	r.NoError(err)
	a.Equal("2024-02-29 00:00:00", got)

	got, err = ToUTC("2024-06-15 12:00:00", "Asia/Tokyo")
	r.NoError(err)
	a.Equal("2024-06-15 03:00:00", got)

	now, err := Now()
	r.NoError(err)
	a.True(IsDateTimeString(now))
}
