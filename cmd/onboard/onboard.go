// SPDX-License-Identifier: Apache-2.0
package onboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/Work-Fort/Ward/cmd/cmdutil"
	"github.com/Work-Fort/Ward/pkg/api"
	"github.com/Work-Fort/Ward/pkg/config"
	"github.com/Work-Fort/Ward/pkg/onboarding"
	"github.com/Work-Fort/Ward/pkg/ui"
	"github.com/spf13/cobra"
)

// Options holds the CLI flags of the onboard command
type Options struct {
	APIID         string
	SkipCreateKey bool
	Reveal        bool
}

// NewOnboardCmd returns the cobra command for the onboard subcommand
func NewOnboardCmd() *cobra.Command {
	var opts Options

	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "Create your first root key and API key",
		Long: `Walks through creating a root key, creating a key for your users and
verifying it.

Interactive mode (default when stdin is a terminal and use-tui is true):
  Launches a three step wizard. Keys are masked until revealed, and every
  key and example command can be copied to the clipboard.

Non-interactive mode (--api-id or api.id required):
  Creates a root key and a key, then prints both with example commands.
  Keys are masked unless --reveal is given.`,
		Example: `  # Interactive wizard (when stdin is a TTY)
  ward onboard

  # Non-interactive
  WARD_API_TOKEN=... ward onboard --use-tui=false --api-id api_123

  # Create only the root key and print the example commands
  ward onboard --use-tui=false --api-id api_123 --skip-create-key`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnboard(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.APIID, "api-id", "", "API to create keys for (defaults to api.id)")
	cmd.Flags().BoolVar(&opts.SkipCreateKey, "skip-create-key", false, "Do not create a key (non-interactive mode)")
	cmd.Flags().BoolVar(&opts.Reveal, "reveal", false, "Print keys unmasked (non-interactive mode)")

	return cmd
}

// runOnboard picks interactive or non-interactive mode
func runOnboard(cmd *cobra.Command, opts Options) error {
	if opts.APIID == "" {
		opts.APIID = config.GetAPIID()
	}

	if cmdutil.IsInteractive() {
		return runInteractive(opts)
	}

	client := cmdutil.NewClient()
	report, err := runNonInteractive(cmd.Context(), client, client.BaseURL(), opts)
	// A partial report still carries an issued root key
	if report != "" {
		cmdutil.RenderMarkdown(report)
	}
	return err
}

// runInteractive prompts for missing settings and launches the Bubble Tea wizard
func runInteractive(opts Options) error {
	if opts.APIID == "" {
		apiID, err := promptAPIID()
		if err != nil {
			return err
		}
		opts.APIID = apiID
	}

	if config.GetAPIToken() == "" {
		token, err := ui.SecretInput("Workspace token", "Used to create the root key")
		if err != nil {
			return fmt.Errorf("workspace token required: %w", err)
		}
		cmdutil.SetAPIToken(token)
	}

	client := cmdutil.NewClient()
	model := NewWizardModel(client, opts.APIID, client.BaseURL(), config.GetAPITimeout())

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("wizard failed: %w", err)
	}

	if m, ok := final.(WizardModel); ok {
		printOutcome(m.Outcome())
	}
	return nil
}

// promptAPIID asks for the API id and offers to remember it
func promptAPIID() (string, error) {
	apiID, err := ui.TextInput(
		"API id",
		"Keys created during onboarding belong to this API.",
		"api_...",
		func(s string) error {
			return config.ValidateValue("api.id", strings.TrimSpace(s), config.ScopeUser)
		},
	)
	if err != nil {
		return "", err
	}

	save, err := ui.Confirm("Save this API id to your user config?")
	if err != nil {
		return "", err
	}
	if save {
		if err := config.SetConfigValue("api.id", apiID, config.ScopeUser); err != nil {
			log.Warn("failed to save api.id", "error", err)
			fmt.Println(config.CurrentTheme.WarningMessage("Could not save api.id: " + err.Error()))
		}
	}

	return apiID, nil
}

// printOutcome prints the link chosen on the final step
func printOutcome(outcome Outcome) {
	theme := config.CurrentTheme
	switch outcome {
	case OutcomeApp:
		fmt.Println(theme.SuccessMessage("You're all set. Open your dashboard:"))
		fmt.Println("  " + config.GetAppURL())
	case OutcomeDocs:
		fmt.Println(theme.InfoMessage("Read more in the documentation:"))
		fmt.Println("  " + config.GetDocsURL())
	}
}

// runNonInteractive runs the whole flow without prompts and returns a
// markdown report. Secrets in the report are masked unless opts.Reveal.
// If key creation fails the report written so far is returned with the
// error, since the root key can not be fetched again.
func runNonInteractive(ctx context.Context, service api.KeyService, baseURL string, opts Options) (string, error) {
	if opts.APIID == "" {
		return "", errors.New("--api-id is required in non-interactive mode (or set api.id)")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	timeout := config.GetAPITimeout()
	flow := onboarding.NewFlow(opts.APIID, baseURL)

	rootKey, err := callWithTimeout(ctx, timeout, func(ctx context.Context) (*api.KeyResponse, error) {
		return service.CreateRootKey(ctx)
	})
	if err != nil {
		return "", fmt.Errorf("failed to create root key: %w", err)
	}
	if err := flow.RootKeyCreated(rootKey.Key); err != nil {
		return "", err
	}
	log.Info("root key created", "key", onboarding.MaskKey(rootKey.Key))

	var md strings.Builder
	md.WriteString("# Onboarding\n\n")
	md.WriteString("## Root key\n\n")
	md.WriteString("This key is only shown once and can not be recovered.\n\n")
	writeCode(&md, "", onboarding.DisplayKey(rootKey.Key, opts.Reveal))
	md.WriteString("Create a new API key for your users:\n\n")
	createSnippet, _ := flow.CreateKeySnippet()
	writeCode(&md, "sh", createSnippet.Display(opts.Reveal))

	if opts.SkipCreateKey {
		if err := flow.SkipKeyCreation(); err != nil {
			return "", err
		}
	} else {
		key, err := callWithTimeout(ctx, timeout, func(ctx context.Context) (*api.KeyResponse, error) {
			return service.CreateKey(ctx, api.CreateKeyRequest{APIID: opts.APIID})
		})
		if err != nil {
			md.WriteString("## Key\n\n")
			md.WriteString(fmt.Sprintf("Key creation failed: %s. Use the root key above to retry.\n\n", errorMessage(err)))
			return md.String(), fmt.Errorf("failed to create key: %w", err)
		}
		if err := flow.KeyCreated(key.Key); err != nil {
			return "", err
		}
		log.Info("key created", "key", onboarding.MaskKey(key.Key))

		md.WriteString("## Key\n\n")
		writeCode(&md, "", onboarding.DisplayKey(key.Key, opts.Reveal))
	}

	md.WriteString("## Verify a key\n\n")
	verifySnippet, _ := flow.VerifyKeySnippet()
	writeCode(&md, "sh", verifySnippet.Display(opts.Reveal))

	md.WriteString("## Next steps\n\n")
	md.WriteString(fmt.Sprintf("- Dashboard: %s\n", config.GetAppURL()))
	md.WriteString(fmt.Sprintf("- Documentation: %s\n", config.GetDocsURL()))

	return md.String(), nil
}

// callWithTimeout bounds a single remote call
func callWithTimeout(ctx context.Context, timeout time.Duration, fn func(context.Context) (*api.KeyResponse, error)) (*api.KeyResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return fn(ctx)
}

// writeCode writes a fenced code block
func writeCode(md *strings.Builder, lang, code string) {
	md.WriteString("```" + lang + "\n")
	md.WriteString(strings.TrimRight(code, "\n"))
	md.WriteString("\n```\n\n")
}
