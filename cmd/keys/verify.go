// SPDX-License-Identifier: Apache-2.0
package keys

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/Work-Fort/Ward/cmd/cmdutil"
	"github.com/Work-Fort/Ward/pkg/api"
	"github.com/Work-Fort/Ward/pkg/config"
	"github.com/Work-Fort/Ward/pkg/onboarding"
	"github.com/Work-Fort/Ward/pkg/ui"
	"github.com/spf13/cobra"
)

func newVerifyCmd(reveal *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "verify [key]",
		Short: "Verify a key",
		Long: `Verify a key against the key service.

When no key is given it is read from a masked prompt, or from stdin when
piped, so it does not end up in shell history.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var key string
			if len(args) == 1 {
				key = args[0]
			} else {
				var err error
				key, err = ui.SecretInput("Key to verify", "unkey_...")
				if err != nil {
					return err
				}
			}
			return runVerify(cmd.Context(), cmdutil.NewClient(), cmd.OutOrStdout(), key, *reveal)
		},
	}
}

// runVerify verifies key and prints the outcome. An invalid key is an error.
func runVerify(ctx context.Context, verifier keyVerifier, out io.Writer, key string, reveal bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	theme := config.CurrentTheme
	labelStyle := theme.SubtleStyle()
	valueStyle := theme.InfoStyle()

	fmt.Fprintln(out)
	fmt.Fprintln(out, labelStyle.Render("Verifying key..."))
	fmt.Fprintf(out, "  %s %s\n", labelStyle.Render("Key:"), valueStyle.Render(onboarding.DisplayKey(key, reveal)))
	fmt.Fprintln(out)

	resp, err := verifier.VerifyKey(ctx, api.VerifyKeyRequest{Key: key})
	if err != nil {
		return fmt.Errorf("failed to verify key: %w", err)
	}

	log.Info("key verified", "key", onboarding.MaskKey(key), "valid", resp.Valid, "code", resp.Code)

	if !resp.Valid {
		if resp.Code != "" {
			return fmt.Errorf("key is not valid (%s)", resp.Code)
		}
		return fmt.Errorf("key is not valid")
	}

	fmt.Fprintf(out, "%s Key is valid\n", theme.SuccessStyle().Render("✓"))
	if resp.KeyID != "" {
		fmt.Fprintf(out, "  %s %s\n", labelStyle.Render("ID:   "), valueStyle.Render(resp.KeyID))
	}
	if resp.OwnerID != "" {
		fmt.Fprintf(out, "  %s %s\n", labelStyle.Render("Owner:"), valueStyle.Render(resp.OwnerID))
	}
	fmt.Fprintln(out)

	return nil
}
