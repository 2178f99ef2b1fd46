// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const (
	// Key service defaults
	DefaultAPIURL  = "https://api.unkey.dev"
	DefaultDocsURL = "https://docs.unkey.dev"
	DefaultAppURL  = "https://app.unkey.dev/app"
	DefaultTimeout = 30 * time.Second
	AppName        = "ward"

	// Configuration
	EnvPrefix        = "WARD"   // Environment variable prefix for Viper
	ConfigFileName   = "config" // Config file name for XDG config dir (without extension)
	LocalConfigFile  = "ward"   // Config file name for current directory (without extension)
	ConfigType       = "yaml"   // Config file type
	DefaultConfigExt = ".yaml"  // Default config file extension
)

// Paths holds all XDG-compliant directory paths
type Paths struct {
	DataDir   string
	ConfigDir string
}

var (
	// GlobalPaths is the global paths instance
	GlobalPaths *Paths
)

func init() {
	GlobalPaths = GetPaths()
}

// GetPaths returns XDG-compliant directory paths
func GetPaths() *Paths {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to get home directory: %v\n", err)
			os.Exit(1)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to get home directory: %v\n", err)
			os.Exit(1)
		}
		configHome = filepath.Join(home, ".config")
	}

	return &Paths{
		DataDir:   filepath.Join(dataHome, AppName),
		ConfigDir: filepath.Join(configHome, AppName),
	}
}

// IsProjectMode returns true when a ward.yaml exists in the current
// working directory
func IsProjectMode() bool {
	_, err := os.Stat(filepath.Join(".", LocalConfigFile+DefaultConfigExt))
	return err == nil
}

// InitDirs creates all necessary directories
func InitDirs() error {
	dirs := []string{
		GlobalPaths.ConfigDir,
		GlobalPaths.DataDir,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// GetAPIURL returns the key service base URL
// Priority: ENV:WARD_API_URL > project config > user config > default
func GetAPIURL() string {
	if url := viper.GetString("api.url"); url != "" {
		return url
	}
	return DefaultAPIURL
}

// GetAPIID returns the API identifier new keys are created for
func GetAPIID() string {
	return viper.GetString("api.id")
}

// GetAPIToken returns the workspace token used to call the key service
func GetAPIToken() string {
	return viper.GetString("api.token")
}

// GetAPITimeout returns the per-request timeout, falling back to
// DefaultTimeout when unset or unparseable
func GetAPITimeout() time.Duration {
	d, err := time.ParseDuration(viper.GetString("api.timeout"))
	if err != nil || d <= 0 {
		return DefaultTimeout
	}
	return d
}

// GetDocsURL returns the documentation link shown at the end of onboarding
func GetDocsURL() string {
	return viper.GetString("links.docs")
}

// GetAppURL returns the dashboard link shown at the end of onboarding
func GetAppURL() string {
	return viper.GetString("links.app")
}
