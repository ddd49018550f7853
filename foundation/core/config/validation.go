// File: validation.go
// Title: Configuration Validation Implementation
// Description: Implements rule-based validation for configuration values
//              including type checking, required fields, allowed values and
//              custom checks.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation
// - 2026-10-19 v0.2.0: Allowed-value lists and check functions replace
//                       numeric bounds and patterns

package config

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	utcerror "github.com/msto63/utcdate/foundation/core/error"
)

// ValidationRule defines validation criteria for configuration values
type ValidationRule struct {
	Required bool                     // Whether the field is required
	Type     string                   // Expected type: "string" or "bool"
	OneOf    []string                 // Allowed values, compared case-insensitively
	Check    func(value string) error // Custom check on the string form
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Err converts a failed result into a configuration error
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return utcerror.New("invalid configuration: "+strings.Join(r.Errors, "; ")).
		WithCode(utcerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("errors", r.Errors)
}

// Validate validates the configuration against the provided rules. Keys are
// checked in sorted order so messages are stable.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	result := &ValidationResult{
		Valid:  true,
		Errors: make([]string, 0),
	}

	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}

	return result
}

// validateField validates a single configuration field
func (c *Config) validateField(key string, rule ValidationRule) error {
	c.mu.RLock()
	value := c.getValue(key)
	env := c.getEnvValue(key)
	c.mu.RUnlock()

	if value == nil && env == "" {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		return nil
	}

	// Environment overrides are strings; type checks apply to file values only
	if env == "" && rule.Type != "" {
		if err := validateType(key, value, rule.Type); err != nil {
			return err
		}
	}

	str := c.GetString(key)

	if len(rule.OneOf) > 0 {
		allowed := false
		for _, option := range rule.OneOf {
			if strings.EqualFold(strings.TrimSpace(str), option) {
				allowed = true
				break
			}
		}
		if !allowed {
			return fmt.Errorf("field '%s' must be one of [%s], got '%s'", key, strings.Join(rule.OneOf, ", "), str)
		}
	}

	if rule.Check != nil {
		if err := rule.Check(str); err != nil {
			return fmt.Errorf("field '%s': %v", key, err)
		}
	}

	return nil
}

// validateType validates the type of a configuration value
func validateType(key string, value interface{}, expectedType string) error {
	kind := reflect.TypeOf(value).Kind()

	switch expectedType {
	case "string":
		if kind != reflect.String {
			return fmt.Errorf("field '%s' must be a string, got %s", key, kind)
		}
	case "bool":
		if kind != reflect.Bool {
			return fmt.Errorf("field '%s' must be a boolean, got %s", key, kind)
		}
	default:
		return fmt.Errorf("unknown validation type: %s", expectedType)
	}

	return nil
}
