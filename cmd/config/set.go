// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"

	"github.com/Work-Fort/Ward/pkg/config"
	"github.com/spf13/cobra"
)

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set [key] [value]",
		Short: "Set configuration value",
		Long: `Set a configuration key to a value.

Keys use dot notation for nested values (e.g., api.url).

Boolean values support natural language:
  - true:  true, yes, on, enable, enabled
  - false: false, no, off, disable, disabled

String keys such as api.id are stored as given, even when numeric.`,
		Args: cobra.ExactArgs(2),
		Example: `  # Set boolean values (multiple formats supported)
  ward config set use-tui true
  ward config set use-tui enable

  # Set string values
  ward config set log-level debug
  ward config set api.id api_3ZfGhJk
  ward config set api.timeout 45s

  # Set in user config instead of project
  ward config set --global api.token unkey_xxxxx`,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			scope := selectedScope()
			creating := scope == config.ScopeProject && !config.IsProjectMode()

			if err := config.SetConfigValue(key, value, scope); err != nil {
				return err
			}

			scopeName, configFile := scopeLabel()
			out := cmd.OutOrStdout()
			if creating {
				fmt.Fprintf(out, "Created %s in the current directory\n", configFile)
			}
			fmt.Fprintf(out, "Set %s = %s (%s: %s)\n", key, displayValue(key, value), scopeName, configFile)

			return nil
		},
	}

	addGlobalFlag(cmd)
	return cmd
}
