// Package timex resolves IANA timezone names for utcdate.
//
// Package: timex
// Title: Timezone Resolution Utilities
// Description: This package loads and caches *time.Location values for IANA
//              zone names and renders instants as wall-clock fields in a named
//              zone. It is the only place utcdate touches the timezone
//              database; the Go runtime's zoneinfo is used, with the embedded
//              time/tzdata copy as fallback on hosts that ship none.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time operations
// - 2026-10-19 v0.2.0: Reduced to the timezone resolver used by utcdate
//
// # Resolver
//
// A Resolver caches every successfully loaded location:
//
//	r := timex.NewResolver()
//	loc, err := r.Location("Asia/Kolkata")
//	wall := timex.WallClockIn(t, loc)
//	offset := timex.Offset(t, loc)
//
// Unknown names fail with the error returned by time.LoadLocation. Loading is
// safe for concurrent use.
package timex
