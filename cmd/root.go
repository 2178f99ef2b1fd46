// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/Work-Fort/Ward/cmd/cmdutil"
	configCmd "github.com/Work-Fort/Ward/cmd/config"
	"github.com/Work-Fort/Ward/cmd/keys"
	"github.com/Work-Fort/Ward/cmd/onboard"
	"github.com/Work-Fort/Ward/cmd/version"
	"github.com/Work-Fort/Ward/pkg/config"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time via ldflags
	// -ldflags "-X github.com/Work-Fort/Ward/cmd.Version=x.y.z"
	Version string

	logLevel    string
	useTUI      bool
	apiURL      string
	debugLogger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ward",
	Short: "API key onboarding for your workspace",
	Long: `Ward - API key onboarding for your workspace

Walks you through creating a root key, creating a key for your users,
and verifying it, with copyable example commands at every step.
Run "ward onboard" to start the wizard, or use "ward keys" for
the individual operations.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize directories before any command runs
		if err := config.InitDirs(); err != nil {
			return err
		}

		// Load config files now that directories exist
		if err := config.LoadConfig(); err != nil {
			return err
		}

		// Update flag values from Viper (respects config file and env vars)
		useTUI = config.GetUseTUI()
		logLevel = config.GetLogLevel()

		// Handle disabled logging first
		if logLevel == "disabled" {
			// Disable all logging
			log.SetOutput(io.Discard)
			return nil
		}

		level, err := log.ParseLevel(logLevel)
		if err != nil {
			level = log.InfoLevel
		}

		// Always log to file in JSON format; the terminal belongs to the wizard
		logFile := filepath.Join(config.GlobalPaths.DataDir, "debug.log")
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}

		// Create file logger with JSON formatting
		debugLogger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "2006-01-02T15:04:05.000Z07:00",
			Level:           level,
			ReportCaller:    true,
			Formatter:       log.JSONFormatter,
			Prefix:          config.AppName,
		})

		// Set as default logger
		log.SetDefault(debugLogger)

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Print error with styling
		theme := config.CurrentTheme
		errorStyle := theme.ErrorStyle()
		fmt.Fprintf(os.Stderr, "%s %s\n", errorStyle.Render("Error:"), err.Error())
		os.Exit(1)
	}
}

func init() {
	// Configure logging - will be redirected to file in PersistentPreRunE
	log.SetReportTimestamp(false)
	log.SetLevel(log.InfoLevel)

	// Initialize Viper configuration
	config.InitViper()

	// Add global flags
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "Log level: disabled, debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&useTUI, "use-tui", true, "Enable terminal UI mode")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", config.DefaultAPIURL, "Base URL of the key service")

	// Bind flags to Viper for config file and environment variable support
	if err := config.BindFlags(rootCmd.PersistentFlags()); err != nil {
		log.Fatal("failed to bind flags", "err", err)
	}

	userAgent := Version
	if userAgent == "" {
		userAgent = "dev"
	}
	cmdutil.UserAgent = config.AppName + "/" + userAgent

	// Add subcommands using factory functions
	rootCmd.AddCommand(onboard.NewOnboardCmd())
	rootCmd.AddCommand(keys.NewKeysCmd())
	rootCmd.AddCommand(configCmd.NewConfigCmd())
	rootCmd.AddCommand(version.NewVersionCmd(Version))

	// Set custom help, usage, and error functions
	rootCmd.SetHelpFunc(styledHelpFunc)
	rootCmd.SetUsageFunc(styledUsageFunc)
	rootCmd.SilenceUsage = true  // Don't show usage on errors
	rootCmd.SilenceErrors = true // We'll handle error printing ourselves
}

// styledHelpFunc renders help output as markdown through glamour
func styledHelpFunc(cmd *cobra.Command, args []string) {
	markdown := generateHelpMarkdown(cmd)
	cmdutil.RenderMarkdown(markdown)
}

// styledUsageFunc renders usage output as markdown through glamour
func styledUsageFunc(cmd *cobra.Command) error {
	markdown := generateUsageMarkdown(cmd)
	cmdutil.RenderMarkdown(markdown)
	return nil
}

// generateHelpMarkdown creates markdown for the help output
func generateHelpMarkdown(cmd *cobra.Command) string {
	var md strings.Builder

	fmt.Fprintf(&md, "# %s\n\n", cmd.Name())
	if desc := cmd.Long; desc != "" {
		fmt.Fprintf(&md, "%s\n\n", desc)
	} else if cmd.Short != "" {
		fmt.Fprintf(&md, "%s\n\n", cmd.Short)
	}

	if len(cmd.Aliases) > 0 {
		fmt.Fprintf(&md, "## Aliases\n\n`%s`\n\n", strings.Join(cmd.Aliases, "`, `"))
	}

	writeCommandSections(&md, cmd, "##", true)

	if hasHelpSubCommands(cmd) {
		md.WriteString("## Additional Help Topics\n\n")
		for _, subCmd := range cmd.Commands() {
			if subCmd.IsAdditionalHelpTopicCommand() {
				fmt.Fprintf(&md, "- **%s** - %s\n", subCmd.CommandPath(), subCmd.Short)
			}
		}
		md.WriteString("\n")
	}

	if !cmd.HasParent() {
		fmt.Fprintf(&md, "Every setting can also come from a `%s_*` environment variable; see `%s config list`.\n\n", config.EnvPrefix, cmd.Name())
	}
	fmt.Fprintf(&md, "Use `%s [command] --help` for more information about a command.\n", cmd.CommandPath())

	return md.String()
}

// generateUsageMarkdown creates markdown for the usage output
func generateUsageMarkdown(cmd *cobra.Command) string {
	var md strings.Builder
	md.WriteString("## Usage\n\n")
	writeCommandSections(&md, cmd, "###", false)
	return md.String()
}

// writeCommandSections writes the usage line, subcommands and flags under
// headings of the given level
func writeCommandSections(md *strings.Builder, cmd *cobra.Command, level string, usageHeading bool) {
	if cmd.Runnable() {
		if usageHeading {
			fmt.Fprintf(md, "%s Usage\n\n", level)
		}
		fmt.Fprintf(md, "```\n%s\n```\n\n", cmd.UseLine())
	}

	if hasSubCommands(cmd) {
		fmt.Fprintf(md, "%s Available Commands\n\n", level)
		for _, subCmd := range cmd.Commands() {
			if subCmd.IsAvailableCommand() && !subCmd.IsAdditionalHelpTopicCommand() {
				fmt.Fprintf(md, "- **%s** - %s\n", subCmd.Name(), subCmd.Short)
			}
		}
		md.WriteString("\n")
	}

	if cmd.HasAvailableLocalFlags() {
		fmt.Fprintf(md, "%s Flags\n\n```\n%s\n```\n\n", level, cmd.LocalFlags().FlagUsages())
	}
	if cmd.HasAvailableInheritedFlags() {
		fmt.Fprintf(md, "%s Global Flags\n\n```\n%s\n```\n\n", level, cmd.InheritedFlags().FlagUsages())
	}
}

// hasSubCommands checks if command has available subcommands
func hasSubCommands(cmd *cobra.Command) bool {
	for _, subCmd := range cmd.Commands() {
		if subCmd.IsAvailableCommand() && !subCmd.IsAdditionalHelpTopicCommand() {
			return true
		}
	}
	return false
}

// hasHelpSubCommands checks if command has help subcommands
func hasHelpSubCommands(cmd *cobra.Command) bool {
	for _, subCmd := range cmd.Commands() {
		if subCmd.IsAdditionalHelpTopicCommand() {
			return true
		}
	}
	return false
}
