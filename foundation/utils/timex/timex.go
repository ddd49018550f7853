// File: timex.go
// Title: Timezone Resolver
// Description: Implements cached IANA location loading, wall-clock rendering
//              in a named zone and UTC offset lookup.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time utilities
// - 2026-10-19 v0.2.0: Resolver type replacing the package-level cache, wall
//                       clock rendering for offset differencing
// - 2026-10-19 v0.2.1: WallClockIn and Offset take a resolved location

package timex

import (
	"fmt"
	"strings"
	"sync"
	"time"

	// Embedded zoneinfo for hosts without a system database
	_ "time/tzdata"
)

// WallClock holds the civil fields of an instant as read in one zone.
type WallClock struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Second int
}

// In returns the instant that has these fields in loc.
func (w WallClock) In(loc *time.Location) time.Time {
	return time.Date(w.Year, w.Month, w.Day, w.Hour, w.Minute, w.Second, 0, loc)
}

// String returns the fields in the "2006-01-02 15:04:05" layout
func (w WallClock) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", w.Year, int(w.Month), w.Day, w.Hour, w.Minute, w.Second)
}

// WallClockIn decomposes t as read in loc.
func WallClockIn(t time.Time, loc *time.Location) WallClock {
	return WallClockOf(t.In(loc))
}

// Offset returns loc's UTC offset at instant t
func Offset(t time.Time, loc *time.Location) time.Duration {
	_, seconds := t.In(loc).Zone()
	return time.Duration(seconds) * time.Second
}

// WallClockOf decomposes t as read in its own location.
func WallClockOf(t time.Time) WallClock {
	year, month, day := t.Date()
	hour, minute, second := t.Clock()
	return WallClock{
		Year:   year,
		Month:  month,
		Day:    day,
		Hour:   hour,
		Minute: minute,
		Second: second,
	}
}

// Resolver loads IANA locations and caches them by name.
type Resolver struct {
	mu    sync.RWMutex
	cache map[string]*time.Location
	load  func(name string) (*time.Location, error)
}

// NewResolver creates a resolver backed by time.LoadLocation
func NewResolver() *Resolver {
	return &Resolver{
		cache: make(map[string]*time.Location),
		load:  time.LoadLocation,
	}
}

var defaultResolver = NewResolver()

// DefaultResolver returns the process-wide resolver
func DefaultResolver() *Resolver {
	return defaultResolver
}

// Location returns the cached location for name or loads and caches it
func (r *Resolver) Location(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("timezone name cannot be empty")
	}

	r.mu.RLock()
	if loc, exists := r.cache[name]; exists {
		r.mu.RUnlock()
		return loc, nil
	}
	r.mu.RUnlock()

	// time.LoadLocation treats "" and "UTC" specially and "Local" as the host
	// zone; only real database names are accepted here besides "UTC".
	if name == "Local" {
		return nil, fmt.Errorf("unknown time zone %s", name)
	}

	loc, err := r.load(name)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.cache[name] = loc
	r.mu.Unlock()

	return loc, nil
}

// Cached reports how many locations are cached
func (r *Resolver) Cached() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.cache)
}
