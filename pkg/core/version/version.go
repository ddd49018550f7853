// ============================================================================
// utcdate - UTC datetime string toolkit
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and the CLI
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import "fmt"

// Version constants
const (
	// Platform version
	Platform = "1.0.0"

	// Component versions
	Library = "1.0.0"
	CLI     = "1.0.0"
)

// Set at build time with -ldflags "-X .../version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ServiceVersion returns the version for a given component name
func ServiceVersion(name string) string {
	switch name {
	case "utcdate", "library":
		return Library
	case "cli":
		return CLI
	default:
		return Platform
	}
}

// String returns the one-line version banner printed by the CLI
func String() string {
	return fmt.Sprintf("utcdate %s (library %s, commit %s, built %s)",
		ServiceVersion("cli"), ServiceVersion("library"), Commit, BuildDate)
}
