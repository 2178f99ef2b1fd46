// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"

	"github.com/Work-Fort/Ward/pkg/config"
	"github.com/spf13/cobra"
)

func newUnsetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unset [key]",
		Short: "Remove configuration value",
		Long: `Remove a configuration key from a config file.

Keys use dot notation for nested values (e.g., api.id).

**Note:**
  - Removing a parent key removes all nested values (e.g., unsetting 'api' removes 'api.url' and all other children)
  - Environment variables and defaults will still apply after removal`,
		Args: cobra.ExactArgs(1),
		Example: `  # Remove from project config
  ward config unset api.id

  # Remove from user config
  ward config unset --global api.token

  # Remove parent (removes all children)
  ward config unset links`,
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			if err := config.UnsetConfigValue(key, selectedScope()); err != nil {
				return err
			}

			scopeName, configFile := scopeLabel()
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from %s config (%s)\n", key, scopeName, configFile)

			return nil
		},
	}

	addGlobalFlag(cmd)
	return cmd
}
