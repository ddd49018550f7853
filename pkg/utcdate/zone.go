// ============================================================================
// utcdate - UTC datetime string toolkit
// ============================================================================
//
// Package:     utcdate
// Description: Conversion between IANA zone wall clock time and UTC
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package utcdate

import (
	"fmt"
	"time"

	utcerror "github.com/msto63/utcdate/foundation/core/error"
	utclog "github.com/msto63/utcdate/foundation/core/log"
	"github.com/msto63/utcdate/foundation/utils/timex"
)

// ToUTC converts a civil datetime, read as wall clock time in the IANA zone,
// to UTC.
//
// The zone offset is found by differencing: the civil fields are taken as a
// UTC probe, the probe is rendered in zone and the rendered fields are read
// back as UTC. Their difference is the offset at the probe. When the offset
// at the resulting instant differs (the probe and the result straddle a
// transition), the conversion is retried with that offset and the retry is
// kept only if it is self-consistent. Civil times inside a DST gap have no
// consistent offset and keep the first candidate, so London 01:30 on
// 2024-03-31 becomes 00:30 UTC.
func (c *Calendar) ToUTC(civil, zone string) (string, error) {
	const op = "ToUTC"

	probe, err := parse(op, civil)
	if err != nil {
		return "", err
	}
	loc, err := c.location(op, zone)
	if err != nil {
		return "", err
	}

	offset := differenceOffset(probe, loc)
	result := probe.Add(-offset)

	if actual := timex.Offset(result, loc); actual != offset {
		retry := probe.Add(-actual)
		if timex.Offset(retry, loc) == actual {
			result = retry
			offset = actual
		}
	}

	c.logger.Debug("resolved zone offset", utclog.Fields{
		"operation": op,
		"zone":      loc.String(),
		"civil":     civil,
		"offset_s":  int(offset / time.Second),
	})

	return formatInstant(op, result)
}

// FromUTC renders a UTC datetime as the wall clock reading in the IANA zone.
// Outside DST transitions it is the inverse of ToUTC.
func (c *Calendar) FromUTC(utc, zone string) (string, error) {
	const op = "FromUTC"

	t, err := parse(op, utc)
	if err != nil {
		return "", err
	}
	loc, err := c.location(op, zone)
	if err != nil {
		return "", err
	}

	wall := timex.WallClockIn(t, loc)
	c.logger.Debug("rendered wall clock", utclog.Fields{
		"operation": op,
		"zone":      loc.String(),
		"utc":       utc,
		"offset_s":  int(timex.Offset(t, loc) / time.Second),
	})

	return formatInstant(op, wall.In(time.UTC))
}

func (c *Calendar) location(op, zone string) (*time.Location, error) {
	if !IsTimeZoneName(zone) {
		return nil, newError(op, CodeInvalidTimeZone, "invalid time zone %q, expected a non-empty IANA name", zone).
			WithDetail("zone", zone)
	}

	loc, err := c.resolver.Location(zone)
	if err != nil {
		wrapped := utcerror.Wrap(err, fmt.Sprintf("invalid time zone %q", zone)).
			WithCode(CodeInvalidTimeZone).
			WithOperation("utcdate." + op).
			WithDetail("zone", zone)
		c.logger.DebugWithErr("zone lookup failed", wrapped, utclog.Fields{"zone": zone})
		return nil, wrapped
	}
	return loc, nil
}

// differenceOffset is the zone's offset at t, derived from the rendered wall
// clock rather than from the zone abbreviation table.
func differenceOffset(t time.Time, loc *time.Location) time.Duration {
	rendered := timex.WallClockIn(t, loc).In(time.UTC)
	return rendered.Sub(t)
}
