// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Implements configuration file discovery across an ordered
//              list of candidate paths.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2026-10-19 v0.2.0: Explicit path and path variable take precedence over
//                       the search list; missing optional files yield an
//                       empty config

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	utcerror "github.com/msto63/utcdate/foundation/core/error"
)

// DiscoveryOptions defines options for configuration file discovery
type DiscoveryOptions struct {
	Explicit   string   // Path given on the command line; must exist when set
	PathEnv    string   // Environment variable naming a config path; must exist when set
	Paths      []string // Directories to search for config files
	Filenames  []string // Base filenames to look for (without extension)
	Extensions []string // File extensions to try (.toml, .yaml, .yml)
	EnvPrefix  string   // Environment variable prefix for overrides
	Required   bool     // Whether finding a config file is required
}

// DefaultDiscoveryOptions returns the discovery order of the utcdate CLI:
// the explicit path, $UTCDATE_CONFIG, ./utcdate.toml, ./utcdate.yaml and
// $HOME/.config/utcdate/config.toml.
func DefaultDiscoveryOptions(explicit string) DiscoveryOptions {
	paths := []string{"."}
	filenames := []string{"utcdate"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "utcdate"))
		filenames = append(filenames, "config")
	}

	return DiscoveryOptions{
		Explicit:   explicit,
		PathEnv:    "UTCDATE_CONFIG",
		Paths:      paths,
		Filenames:  filenames,
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  "UTCDATE",
		Required:   false,
	}
}

// Discover finds and loads the first configuration file. When no file is
// found and none is required, an empty configuration carrying the
// environment prefix is returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	path, err := FindConfigFile(options)
	if err != nil {
		if !options.Required && utcerror.HasCode(err, utcerror.CodeNotFound) && !pinned(options) {
			return Empty(options.EnvPrefix), nil
		}
		return nil, err
	}

	cfg, err := LoadWithOptions(path, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
	})
	if err != nil {
		return nil, utcerror.Wrap(err, fmt.Sprintf("found config file %s but failed to load", path)).
			WithOperation("config.Discover").
			WithDetail("configPath", path)
	}
	return cfg, nil
}

// FindConfigFile returns the first existing configuration file
func FindConfigFile(options DiscoveryOptions) (string, error) {
	if options.Explicit != "" {
		return existing(options.Explicit, "flag")
	}
	if options.PathEnv != "" {
		if path := os.Getenv(options.PathEnv); path != "" {
			return existing(path, options.PathEnv)
		}
	}

	candidates := ListPossibleConfigFiles(options)
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	return "", utcerror.New(fmt.Sprintf("no configuration file found in paths: %s", strings.Join(candidates, ", "))).
		WithCode(utcerror.CodeNotFound).
		WithOperation("config.FindConfigFile").
		WithDetail("searchPaths", candidates)
}

// ListPossibleConfigFiles returns the search list in discovery order. Each
// filename is paired with the directory at the same index when the lists
// have equal length, otherwise every combination is listed.
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string

	if len(options.Paths) == len(options.Filenames) {
		for i, dir := range options.Paths {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(dir, options.Filenames[i]+ext))
			}
		}
		return paths
	}

	for _, dir := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(dir, filename+ext))
			}
		}
	}
	return paths
}

func existing(path, source string) (string, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", utcerror.New(fmt.Sprintf("config file not found: %s", path)).
			WithCode(utcerror.CodeNotFound).
			WithOperation("config.FindConfigFile").
			WithDetail("filePath", path).
			WithDetail("source", source)
	}
	return path, nil
}

// pinned reports whether the caller named a file that has to exist
func pinned(options DiscoveryOptions) bool {
	if options.Explicit != "" {
		return true
	}
	return options.PathEnv != "" && os.Getenv(options.PathEnv) != ""
}
