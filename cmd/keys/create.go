// SPDX-License-Identifier: Apache-2.0
package keys

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/Work-Fort/Ward/cmd/cmdutil"
	"github.com/Work-Fort/Ward/pkg/api"
	"github.com/Work-Fort/Ward/pkg/config"
	"github.com/Work-Fort/Ward/pkg/onboarding"
	"github.com/spf13/cobra"
)

func newCreateCmd(reveal *bool) *cobra.Command {
	var apiID string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a key for your users",
		Long:  `Create a regular key for an API. Regular keys are handed to your users.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiID == "" {
				apiID = config.GetAPIID()
			}
			return runCreate(cmd.Context(), cmdutil.NewClient(), cmd.OutOrStdout(), apiID, *reveal)
		},
	}

	cmd.Flags().StringVar(&apiID, "api-id", "", "API to create the key for (defaults to api.id)")

	return cmd
}

// runCreate creates a regular key and prints it
func runCreate(ctx context.Context, service api.KeyService, out io.Writer, apiID string, reveal bool) error {
	if apiID == "" {
		return errors.New("--api-id is required (or set api.id)")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	resp, err := service.CreateKey(ctx, api.CreateKeyRequest{APIID: apiID})
	if err != nil {
		return fmt.Errorf("failed to create key: %w", err)
	}
	if resp.Key == "" {
		return fmt.Errorf("failed to create key: %w", onboarding.ErrEmptyKey)
	}

	log.Info("key created", "api_id", apiID, "key_id", resp.KeyID, "key", onboarding.MaskKey(resp.Key))
	printKey(out, "Key", resp, reveal)
	return nil
}
