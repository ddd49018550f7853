// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads the utcdate settings from TOML or YAML
//              files with environment overrides and validation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: Typed Settings, discovery order of the utcdate CLI

/*
Package config provides configuration loading for utcdate.

Files are TOML (BurntSushi/toml) or YAML (gopkg.in/yaml.v3), chosen by
extension. Values are read with dot notation; an environment variable built
from the prefix and the key overrides the file value, so with the prefix
UTCDATE the key general.default_zone is overridden by
UTCDATE_GENERAL_DEFAULT_ZONE.

# Settings

	[general]
	default_zone = "Europe/Berlin"
	log_level    = "error"
	log_format   = "text"

	[output]
	color = true

LoadSettings searches the explicit path, $UTCDATE_CONFIG, ./utcdate.toml,
./utcdate.yaml and $HOME/.config/utcdate/config.toml in that order. A missing
file is not an error unless it was named explicitly; the defaults apply.

	settings, err := config.LoadSettings(flagPath, timex.DefaultResolver())
	if err != nil {
		return err
	}

Validation rejects unknown log levels and formats and zones the resolver
cannot load. Failures carry the INVALID_CONFIG code.
*/
package config
