// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"

	"github.com/Work-Fort/Ward/pkg/config"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all configuration values",
		Long: `List all configuration values with their sources.

Shows all configuration keys currently set, along with their values
and where they come from (ENV, project config, user config, or default).

Output format: key = value (source)`,
		Example: `  # List all configuration
  ward config list

  # Example output:
  # api.id = api_3ZfGhJk (from ./ward.yaml)
  # api.timeout = 30s (default)
  # api.token = unkey_******** (from ~/.config/ward/config.yaml)
  # api.url = https://api.unkey.dev (default)
  # use-tui = false (from ENV: WARD_USE_TUI)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			values, err := config.ListConfigValues()
			if err != nil {
				return err
			}

			if len(values) == 0 {
				fmt.Fprintln(out, "No configuration set")
				return nil
			}

			for _, cv := range values {
				fmt.Fprintf(out, "%s = %s (%s)\n", cv.Key, displayValue(cv.Key, cv.Value), cv.Source)
			}

			fmt.Fprintln(out, "\n"+config.CurrentTheme.SubtleStyle().Render("Configuration precedence: ENV > project config > user config > defaults"))

			return nil
		},
	}

	return cmd
}
