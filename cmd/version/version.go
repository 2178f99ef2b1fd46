// SPDX-License-Identifier: Apache-2.0
package version

import (
	"fmt"
	"runtime"

	"github.com/Work-Fort/Ward/pkg/config"
	"github.com/spf13/cobra"
)

// NewVersionCmd creates the version command
func NewVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the current version of ward.`,
		Run: func(cmd *cobra.Command, args []string) {
			if version == "" {
				version = "dev"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (%s/%s)\n", config.AppName, version, runtime.GOOS, runtime.GOARCH)
		},
	}
}
