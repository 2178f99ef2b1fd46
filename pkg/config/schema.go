// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"
	"net/url"
	"regexp"
	"time"
)

// urlPattern is the loose format check shared by URL-valued keys
const urlPattern = "^https?://"

// ScopeConstraints defines per-scope validation rules for a configuration key
type ScopeConstraints struct {
	Forbidden  bool     // If true, this key cannot be set in this scope
	EnumValues []string // Valid enum values for this scope (overrides global EnumValues if set)
	Pattern    string   // Regex pattern for this scope (overrides global Pattern if set)
}

// ConfigKeyDefinition defines metadata for a configuration key
type ConfigKeyDefinition struct {
	Key         string      // Configuration key (dot notation)
	Type        string      // "string", "bool", "enum", "int"
	Default     interface{} // Default value
	Description string      // Help text
	Sensitive   bool        // Masked when displayed

	// Global constraints (apply unless overridden by scope-specific constraints)
	EnumValues []string // Valid values for enum type (if Type="enum")
	Pattern    string   // Regex pattern for validation (if Type="string")

	// Per-scope constraints (optional - if nil, key is allowed in scope with global constraints)
	UserConstraints    *ScopeConstraints // Constraints when setting in user config
	ProjectConstraints *ScopeConstraints // Constraints when setting in project config
}

// ConfigRegistry holds all known configuration keys with per-scope constraints.
//
// Constraint System:
//   - No constraints: Key can be set in any scope with same validation rules
//   - Forbidden constraint: Key cannot be set in the specified scope
//   - Scope-specific EnumValues: Different allowed values per scope
//   - Scope-specific Pattern: Different regex validation per scope
var ConfigRegistry = map[string]ConfigKeyDefinition{
	"use-tui": {
		Key:         "use-tui",
		Type:        "bool",
		Default:     true,
		Description: "Use TUI for interactive prompts",
	},

	"log-level": {
		Key:         "log-level",
		Type:        "enum",
		Default:     "info",
		Description: "Log verbosity level",
		EnumValues:  []string{"disabled", "debug", "info", "warn", "error"},
	},

	"api.url": {
		Key:         "api.url",
		Type:        "string",
		Default:     DefaultAPIURL,
		Description: "Base URL of the key service (also used in example commands)",
		Pattern:     urlPattern,
	},

	"api.id": {
		Key:         "api.id",
		Type:        "string",
		Default:     "",
		Description: "API identifier new keys are created for",
		Pattern:     "^[A-Za-z0-9_-]+$",
	},

	"api.token": {
		Key:         "api.token",
		Type:        "string",
		Default:     "",
		Description: "Workspace token used to create root keys",
		Sensitive:   true,
		ProjectConstraints: &ScopeConstraints{
			Forbidden: true,
		},
	},

	"api.timeout": {
		Key:         "api.timeout",
		Type:        "string",
		Default:     DefaultTimeout.String(),
		Description: "Per-request timeout for key service calls (Go duration, e.g. 30s)",
	},

	"links.docs": {
		Key:         "links.docs",
		Type:        "string",
		Default:     DefaultDocsURL,
		Description: "Documentation link offered when onboarding finishes",
		Pattern:     urlPattern,
	},

	"links.app": {
		Key:         "links.app",
		Type:        "string",
		Default:     DefaultAppURL,
		Description: "Dashboard link offered when onboarding finishes",
		Pattern:     urlPattern,
	},
}

// GetKeyDefinition returns the definition for a key, or nil if not found
func GetKeyDefinition(key string) *ConfigKeyDefinition {
	if def, ok := ConfigRegistry[key]; ok {
		return &def
	}
	return nil
}

// constraintsFor returns the scope-specific constraints of a definition
func constraintsFor(def *ConfigKeyDefinition, scope ConfigScope) *ScopeConstraints {
	switch scope {
	case ScopeUser:
		return def.UserConstraints
	case ScopeProject:
		return def.ProjectConstraints
	}
	return nil
}

// ValidateKeyScope checks if a key can be set in the given scope
// Returns an error if the key is forbidden in the specified scope
func ValidateKeyScope(key string, scope ConfigScope) error {
	def := GetKeyDefinition(key)
	if def == nil {
		return fmt.Errorf("unknown configuration key: %s", key)
	}

	constraints := constraintsFor(def, scope)
	if constraints == nil || !constraints.Forbidden {
		return nil
	}

	switch scope {
	case ScopeUser:
		return fmt.Errorf(
			"key '%s' cannot be set in user config\n\n"+
				"Hint: Remove --global flag:\n"+
				"  ward config set %s <value>\n\n"+
				"This key must be set in project config: ./ward.yaml",
			key,
			key,
		)
	default:
		return fmt.Errorf(
			"key '%s' cannot be set in project config (sensitive setting)\n\n"+
				"Hint: Use --global flag:\n"+
				"  ward config set --global %s <value>\n\n"+
				"User config: ~/.config/ward/config.yaml\n"+
				"This setting must NOT be committed to version control.",
			key,
			key,
		)
	}
}

// ValidateValue checks if a value is valid for the given key in the specified scope
// Applies per-scope constraints if defined, otherwise uses global constraints
func ValidateValue(key string, value interface{}, scope ConfigScope) error {
	def := GetKeyDefinition(key)
	if def == nil {
		return fmt.Errorf("unknown configuration key: %s", key)
	}

	constraints := constraintsFor(def, scope)

	switch def.Type {
	case "bool":
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("key '%s' must be a boolean", key)
		}

	case "int":
		if _, ok := value.(int); !ok {
			return fmt.Errorf("key '%s' must be an integer", key)
		}

	case "string":
		str, ok := value.(string)
		if !ok {
			return fmt.Errorf("key '%s' must be a string", key)
		}

		pattern := def.Pattern
		if constraints != nil && constraints.Pattern != "" {
			pattern = constraints.Pattern
		}

		if pattern != "" {
			matched, err := regexp.MatchString(pattern, str)
			if err != nil {
				return fmt.Errorf("pattern validation error: %w", err)
			}
			if !matched {
				return fmt.Errorf(
					"key '%s' value '%s' does not match required format for %s scope",
					key,
					str,
					getScopeName(scope),
				)
			}
		}

	case "enum":
		str, ok := value.(string)
		if !ok {
			return fmt.Errorf("key '%s' must be a string", key)
		}

		enumValues := def.EnumValues
		if constraints != nil && constraints.EnumValues != nil {
			enumValues = constraints.EnumValues
		}

		valid := false
		for _, enumVal := range enumValues {
			if str == enumVal {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf(
				"key '%s' must be one of %v in %s scope (got '%s')",
				key,
				enumValues,
				getScopeName(scope),
				str,
			)
		}
	}

	// Custom validation for specific keys
	switch key {
	case "api.timeout":
		if err := validateDuration(value); err != nil {
			return fmt.Errorf("key '%s': %w", key, err)
		}
	case "api.url", "links.docs", "links.app":
		if err := validateURL(value); err != nil {
			return fmt.Errorf("key '%s': %w", key, err)
		}
	}

	return nil
}

// validateDuration checks the value parses as a positive Go duration
func validateDuration(value interface{}) error {
	str, _ := value.(string)
	d, err := time.ParseDuration(str)
	if err != nil {
		return fmt.Errorf("invalid duration %q (examples: 10s, 1m30s)", str)
	}
	if d <= 0 {
		return fmt.Errorf("duration must be positive, got %s", d)
	}
	return nil
}

// validateURL checks the value is an absolute http(s) URL with a host
func validateURL(value interface{}) error {
	str, _ := value.(string)
	u, err := url.Parse(str)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Host == "" {
		return fmt.Errorf("URL must include a host, got %q", str)
	}
	return nil
}
