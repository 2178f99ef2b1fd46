// SPDX-License-Identifier: Apache-2.0
package keys

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/Work-Fort/Ward/cmd/cmdutil"
	"github.com/Work-Fort/Ward/pkg/api"
	"github.com/Work-Fort/Ward/pkg/onboarding"
	"github.com/spf13/cobra"
)

func newCreateRootCmd(reveal *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "create-root",
		Short: "Create a root key",
		Long: `Create a root key for your workspace.

Root keys create resources such as keys or APIs. Never give one to your users.
Requires api.token (WARD_API_TOKEN).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreateRoot(cmd.Context(), cmdutil.NewClient(), cmd.OutOrStdout(), *reveal)
		},
	}
}

// runCreateRoot creates a root key and prints it
func runCreateRoot(ctx context.Context, service api.KeyService, out io.Writer, reveal bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	resp, err := service.CreateRootKey(ctx)
	if err != nil {
		return fmt.Errorf("failed to create root key: %w", err)
	}
	if resp.Key == "" {
		return fmt.Errorf("failed to create root key: %w", onboarding.ErrEmptyKey)
	}

	log.Info("root key created", "key_id", resp.KeyID, "key", onboarding.MaskKey(resp.Key))
	printKey(out, "Root key", resp, reveal)
	return nil
}
