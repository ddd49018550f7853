// ============================================================================
// utcdate - UTC datetime string toolkit
// ============================================================================
//
// Package:     utcdate
// Description: Calendar type binding clock, timezone resolver and logger
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package utcdate

import (
	"time"

	utclog "github.com/msto63/utcdate/foundation/core/log"
	"github.com/msto63/utcdate/foundation/utils/timex"
)

// Calendar runs every operation against an injected clock and timezone
// resolver. A Calendar is immutable and safe for concurrent use.
type Calendar struct {
	clock    Clock
	resolver *timex.Resolver
	logger   *utclog.Logger
}

// Option configures a Calendar.
type Option func(*Calendar)

// WithClock sets the source of "now" for calls that omit the datetime.
func WithClock(c Clock) Option {
	return func(cal *Calendar) {
		if c != nil {
			cal.clock = c
		}
	}
}

// WithResolver sets the timezone resolver used by ToUTC and FromUTC.
func WithResolver(r *timex.Resolver) Option {
	return func(cal *Calendar) {
		if r != nil {
			cal.resolver = r
		}
	}
}

// WithLogger sets the logger receiving debug traces of zone conversions.
func WithLogger(l *utclog.Logger) Option {
	return func(cal *Calendar) {
		if l != nil {
			cal.logger = l
		}
	}
}

// New creates a Calendar. Without options it uses the system clock, the
// process-wide resolver and a discarding logger.
func New(opts ...Option) *Calendar {
	cal := &Calendar{
		clock:    SystemClock{},
		resolver: timex.DefaultResolver(),
		logger:   utclog.Discard(),
	}
	for _, opt := range opts {
		opt(cal)
	}
	return cal
}

var std = New()

// Default returns the Calendar behind the package-level functions.
func Default() *Calendar {
	return std
}

// Now returns the clock's current instant as a datetime string.
func (c *Calendar) Now() (string, error) {
	return formatInstant("Now", c.now())
}

func (c *Calendar) now() time.Time {
	return c.clock.Now().UTC().Truncate(time.Second)
}

// instant resolves the optional datetime argument of getters and shifters.
func (c *Calendar) instant(op string, datetime []string) (time.Time, error) {
	switch len(datetime) {
	case 0:
		return c.now(), nil
	case 1:
		return parse(op, datetime[0])
	default:
		return time.Time{}, newError(op, CodeInvalidDateTime, "expected at most one datetime, got %d", len(datetime)).
			WithDetail("count", len(datetime))
	}
}
