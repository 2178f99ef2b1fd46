// SPDX-License-Identifier: Apache-2.0
package keys

import (
	"context"
	"fmt"
	"io"

	"github.com/Work-Fort/Ward/pkg/api"
	"github.com/Work-Fort/Ward/pkg/config"
	"github.com/Work-Fort/Ward/pkg/onboarding"
	"github.com/spf13/cobra"
)

// keyVerifier is the client subset used by the verify subcommand
type keyVerifier interface {
	VerifyKey(ctx context.Context, req api.VerifyKeyRequest) (*api.VerifyKeyResponse, error)
}

// NewKeysCmd creates the keys command and its subcommands
func NewKeysCmd() *cobra.Command {
	var reveal bool

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Create and verify keys",
		Long:  `Create root keys and regular keys, and verify keys against the key service.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help by default
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVar(&reveal, "reveal", false, "Print keys unmasked")

	cmd.AddCommand(newCreateRootCmd(&reveal))
	cmd.AddCommand(newCreateCmd(&reveal))
	cmd.AddCommand(newVerifyCmd(&reveal))

	return cmd
}

// printKey prints a labelled key, masked unless reveal
func printKey(out io.Writer, label string, resp *api.KeyResponse, reveal bool) {
	theme := config.CurrentTheme
	labelStyle := theme.SubtleStyle()
	valueStyle := theme.InfoStyle()

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s %s created\n", theme.CompleteIndicator(), label)
	if resp.KeyID != "" {
		fmt.Fprintf(out, "  %s %s\n", labelStyle.Render("ID: "), valueStyle.Render(resp.KeyID))
	}
	fmt.Fprintf(out, "  %s %s\n", labelStyle.Render("Key:"), valueStyle.Render(onboarding.DisplayKey(resp.Key, reveal)))
	if !reveal {
		fmt.Fprintln(out, labelStyle.Render("  Run again with --reveal to print the full key. It is only shown once."))
	}
	fmt.Fprintln(out)
}
