// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"

	"github.com/Work-Fort/Ward/pkg/config"
	"github.com/Work-Fort/Ward/pkg/onboarding"
	"github.com/spf13/cobra"
)

var (
	// globalFlag determines whether to operate on user config vs project config
	globalFlag bool
)

// NewConfigCmd creates the config command and its subcommands
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage ward configuration",
		Long: `Manage ward configuration settings.

Configuration precedence (highest to lowest):
  1. Environment variables (WARD_*)
  2. Project config (./ward.yaml)
  3. User config (~/.config/ward/config.yaml)
  4. Defaults

By default, config commands operate on project config (./ward.yaml).
Use --global to operate on user config instead. The workspace token
(api.token) can only live in user config.`,
		Example: `  # Set project config
  ward config set api.id api_3ZfGhJk
  ward config set api.url https://api.unkey.dev

  # Set user config
  ward config set --global api.token unkey_xxxxx
  ward config set --global use-tui false

  # Get configuration value
  ward config get api.id

  # Remove configuration value
  ward config unset api.id
  ward config unset --global api.token

  # List all configuration
  ward config list`,
	}

	// Add subcommands
	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newUnsetCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newSchemaCmd())

	return cmd
}

// addGlobalFlag adds the --global flag to a command
func addGlobalFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&globalFlag, "global", false, "Operate on user config instead of project config")
}

// selectedScope maps --global to a config scope
func selectedScope() config.ConfigScope {
	if globalFlag {
		return config.ScopeUser
	}
	return config.ScopeProject
}

// scopeLabel returns the scope name and file shown in confirmations
func scopeLabel() (string, string) {
	if globalFlag {
		return "global", "~/.config/" + config.AppName + "/" + config.ConfigFileName + config.DefaultConfigExt
	}
	return "project", config.LocalConfigFile + config.DefaultConfigExt
}

// displayValue formats a value for output, masking sensitive keys
func displayValue(key string, value interface{}) string {
	str := fmt.Sprintf("%v", value)
	if config.IsSensitive(key) {
		return onboarding.MaskKey(str)
	}
	return str
}
