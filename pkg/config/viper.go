// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// InitViper initializes Viper configuration with defaults and search paths
// Precedence order: ENV > project-conf > user-conf > defaults
func InitViper() {
	// Set config type
	viper.SetConfigType(ConfigType)

	// Set defaults (lowest precedence)
	viper.SetDefault("use-tui", true)
	viper.SetDefault("log-level", "info")
	viper.SetDefault("api.url", DefaultAPIURL)
	viper.SetDefault("api.id", "")
	viper.SetDefault("api.token", "") // No default for sensitive keys
	viper.SetDefault("api.timeout", DefaultTimeout.String())
	viper.SetDefault("links.docs", DefaultDocsURL)
	viper.SetDefault("links.app", DefaultAppURL)

	// Enable environment variable support (highest precedence)
	// api.url -> WARD_API_URL, use-tui -> WARD_USE_TUI
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()
}

// LoadConfig reads config files in precedence order
// Precedence: ENV > ./ward.yaml > ~/.config/ward/config.yaml > defaults
func LoadConfig() error {
	// First, try to read user config from XDG config directory
	viper.SetConfigName(ConfigFileName)
	viper.AddConfigPath(GlobalPaths.ConfigDir)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read user config file: %w", err)
		}
		// Config file not found is OK
	} else {
		warnMisplacedKeys(GlobalPaths.ConfigDir, "user")
	}

	// Then, try to merge in project config (overrides user config)
	viper.SetConfigName(LocalConfigFile)
	viper.AddConfigPath(".")

	if err := viper.MergeInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read project config file: %w", err)
		}
	} else {
		// Project config is usually committed, so it must not carry secrets
		if err := validateConfigFile(".", ScopeProject); err != nil {
			return err
		}
		warnMisplacedKeys(".", "project")
	}

	return nil
}

// GetUseTUI returns the use-tui configuration value
func GetUseTUI() bool {
	return viper.GetBool("use-tui")
}

// GetLogLevel returns the log-level configuration value
func GetLogLevel() string {
	return viper.GetString("log-level")
}

// validateConfigFile validates that a config file doesn't contain forbidden
// keys or invalid values for the given scope
func validateConfigFile(configDir string, scope ConfigScope) error {
	var configPath string
	if scope == ScopeUser {
		configPath = filepath.Join(configDir, ConfigFileName+DefaultConfigExt)
	} else {
		configPath = filepath.Join(configDir, LocalConfigFile+DefaultConfigExt)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil // No config file, nothing to validate
	}

	// Create a temporary Viper instance to read just this config file
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType(ConfigType)

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file for validation: %w", err)
	}

	keys := flattenKeys(v.AllSettings(), "")
	for _, key := range keys {
		if err := ValidateKeyScope(key, scope); err != nil {
			return fmt.Errorf("invalid key in config file %s: %w", configPath, err)
		}

		if err := ValidateValue(key, v.Get(key), scope); err != nil {
			return fmt.Errorf("invalid value in config file %s: %w", configPath, err)
		}
	}

	return nil
}

// warnMisplacedKeys logs keys that sit in an unconventional scope.
// All keys may be set in any scope they are not forbidden from; this only
// informs at debug level.
func warnMisplacedKeys(configDir, scopeName string) {
	var configPath string
	var currentScope ConfigScope
	if scopeName == "user" {
		configPath = filepath.Join(configDir, ConfigFileName+DefaultConfigExt)
		currentScope = ScopeUser
	} else {
		configPath = filepath.Join(configDir, LocalConfigFile+DefaultConfigExt)
		currentScope = ScopeProject
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType(ConfigType)

	if err := v.ReadInConfig(); err != nil {
		return
	}

	for _, key := range flattenKeys(v.AllSettings(), "") {
		def := GetKeyDefinition(key)
		if def == nil {
			continue
		}

		var recommended ConfigScope
		switch {
		case def.ProjectConstraints != nil && def.ProjectConstraints.Forbidden:
			recommended = ScopeUser
		case def.UserConstraints != nil && def.UserConstraints.Forbidden:
			recommended = ScopeProject
		default:
			continue
		}

		if recommended != currentScope {
			log.Debugf("Key '%s' in %s config (typically in %s config: %s)",
				key, scopeName, getScopeName(recommended), getConfigPath(recommended))
		}
	}
}

// BindFlags binds all relevant cobra flags to Viper
func BindFlags(flags *pflag.FlagSet) error {
	flagsToBind := map[string]string{
		"use-tui":   "use-tui",
		"log-level": "log-level",
		"api-url":   "api.url",
	}

	for flagName, key := range flagsToBind {
		flag := flags.Lookup(flagName)
		if flag == nil {
			continue
		}
		if err := viper.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", flagName, err)
		}
	}

	return nil
}
