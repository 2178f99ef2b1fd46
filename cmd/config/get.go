// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"

	"github.com/Work-Fort/Ward/pkg/config"
	"github.com/spf13/cobra"
)

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [key]",
		Short: "Get configuration value",
		Long: `Get a configuration value and show its source.

The source indicates where the value comes from in precedence order:
  - ENV: Environment variable (WARD_*)
  - Project: Project config file (./ward.yaml)
  - User: User config file (~/.config/ward/config.yaml)
  - Default: Built-in default value

Sensitive values such as api.token are printed masked.`,
		Args: cobra.ExactArgs(1),
		Example: `  # Get a configuration value
  ward config get api.url

  # Output shows value and source:
  # api.url = https://api.unkey.dev (default)
  # api.id = api_3ZfGhJk (from ./ward.yaml)
  # api.token = unkey_******** (from ~/.config/ward/config.yaml)
  # log-level = debug (from ENV: WARD_LOG_LEVEL)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			configValue, err := config.GetConfigValue(key)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s (%s)\n", configValue.Key, displayValue(configValue.Key, configValue.Value), configValue.Source)

			return nil
		},
	}

	return cmd
}
