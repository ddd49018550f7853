package utcdate

import (
	"bytes"
	"testing"

	utclog "github.com/msto63/utcdate/foundation/core/log"
	"github.com/msto63/utcdate/foundation/utils/timex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacade(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)
	cal := fixedCalendar()

	month, err := cal.Get().Month("2024-03-01 00:00:00")
	r.NoError(err)
	a.Equal(2, month)

	now, err := cal.Get().DateTime()
	r.NoError(err)
	a.Equal("2024-06-15 12:34:56", now)

	s, err := cal.Set().Day("2024-01-12 10:00:00", 31)
	r.NoError(err)
	a.Equal("2024-01-31 10:00:00", s)

	s, err = cal.Future().Months(1)
	r.NoError(err)
	a.Equal("2024-07-15 12:34:56", s)

	s, err = cal.Past().Days(15)
	r.NoError(err)
	a.Equal("2024-05-31 12:34:56", s)

	s, err = Past().Hours(1, "2024-01-01 00:00:00")
	r.NoError(err)
	a.Equal("2023-12-31 23:00:00", s)

	_, err = Future().Seconds(-1)
	requireCode(t, err, CodeInvalidAmount)

	s, err = Get().Time("2024-01-01 08:09:10")
	r.NoError(err)
	a.Equal("08:09:10", s)

	s, err = Set().Month("2024-01-01 08:09:10", 11)
	r.NoError(err)
	a.Equal("2024-12-01 08:09:10", s)
}

func TestOperations(t *testing.T) {
	t.Parallel()
	ops := Operations()

	assert.Len(t, ops, 27)
	for _, name := range []string{"get.datetime", "get.month", "set.second", "future.months", "past.years"} {
		assert.Contains(t, ops, name)
	}
	assert.NotContains(t, ops, "set.date")
}

func TestCalendarOptions(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	var buf bytes.Buffer
	logger := utclog.NewWithConfig(utclog.Config{
		Level:  utclog.LevelDebug,
		Format: utclog.FormatLogfmt,
		Output: &buf,
		Name:   "utcdate",
	})
	resolver := timex.NewResolver()

	cal := New(WithLogger(logger), WithResolver(resolver), WithClock(nil), WithLogger(nil))

	got, err := cal.ToUTC("2024-06-15 12:00:00", "Asia/Tokyo")
	r.NoError(err)
	a.Equal("2024-06-15 03:00:00", got)
	a.Equal(1, resolver.Cached())

	out := buf.String()
	a.Contains(out, `message="resolved zone offset"`)
	a.Contains(out, "offset_s=32400")

	buf.Reset()
	_, err = cal.ToUTC("2024-06-15 12:00:00", "Atlantis/Capital")
	requireCode(t, err, CodeInvalidTimeZone)
	a.Contains(buf.String(), `message="zone lookup failed"`)

	// A nil clock option keeps the system clock.
	now, err := cal.Now()
	r.NoError(err)
	a.True(IsDateTimeString(now))
}
