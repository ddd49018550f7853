// File: settings.go
// Title: utcdate Settings
// Description: Typed settings of the utcdate CLI built from a Config with
//              defaults, environment overrides and validation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package config

import (
	"strings"

	utclog "github.com/msto63/utcdate/foundation/core/log"
	"github.com/msto63/utcdate/foundation/utils/timex"
)

// Configuration keys
const (
	KeyDefaultZone = "general.default_zone"
	KeyLogLevel    = "general.log_level"
	KeyLogFormat   = "general.log_format"
	KeyColor       = "output.color"
)

// Settings holds the resolved CLI settings
type Settings struct {
	General GeneralSettings `toml:"general" yaml:"general"`
	Output  OutputSettings  `toml:"output" yaml:"output"`

	// Source is the file the settings were read from, empty for defaults
	Source string `toml:"-" yaml:"-"`
}

// GeneralSettings holds the [general] section
type GeneralSettings struct {
	DefaultZone string `toml:"default_zone" yaml:"default_zone"`
	LogLevel    string `toml:"log_level" yaml:"log_level"`
	LogFormat   string `toml:"log_format" yaml:"log_format"`
}

// OutputSettings holds the [output] section
type OutputSettings struct {
	Color bool `toml:"color" yaml:"color"`
}

// DefaultSettings returns the settings used when nothing is configured
func DefaultSettings() Settings {
	return Settings{
		General: GeneralSettings{
			DefaultZone: "UTC",
			LogLevel:    "error",
			LogFormat:   "text",
		},
		Output: OutputSettings{
			Color: true,
		},
	}
}

// Rules returns the validation rules for the settings keys. Zones are
// checked against resolver.
func Rules(resolver *timex.Resolver) ValidationRules {
	return ValidationRules{
		KeyDefaultZone: {
			Type: "string",
			Check: func(value string) error {
				_, err := resolver.Location(value)
				return err
			},
		},
		KeyLogLevel: {
			Type: "string",
			Check: func(value string) error {
				_, err := utclog.ParseLevel(value)
				return err
			},
		},
		KeyLogFormat: {
			Type:  "string",
			OneOf: []string{"json", "text", "logfmt"},
		},
		KeyColor: {
			Type: "bool",
		},
	}
}

// SettingsFrom validates cfg and reads the settings, falling back to the
// defaults for absent keys.
func SettingsFrom(cfg *Config, resolver *timex.Resolver) (Settings, error) {
	if err := cfg.Validate(Rules(resolver)).Err(); err != nil {
		return Settings{}, err
	}

	def := DefaultSettings()
	return Settings{
		General: GeneralSettings{
			DefaultZone: strings.TrimSpace(cfg.GetString(KeyDefaultZone, def.General.DefaultZone)),
			LogLevel:    cfg.GetString(KeyLogLevel, def.General.LogLevel),
			LogFormat:   cfg.GetString(KeyLogFormat, def.General.LogFormat),
		},
		Output: OutputSettings{
			Color: cfg.GetBool(KeyColor, def.Output.Color),
		},
		Source: cfg.FilePath(),
	}, nil
}

// LoadSettings discovers the configuration file and resolves the settings.
// explicit is the path passed on the command line, if any.
func LoadSettings(explicit string, resolver *timex.Resolver) (Settings, error) {
	cfg, err := Discover(DefaultDiscoveryOptions(explicit))
	if err != nil {
		return Settings{}, err
	}
	return SettingsFrom(cfg, resolver)
}
