// SPDX-License-Identifier: Apache-2.0
package cmdutil

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/Work-Fort/Ward/pkg/api"
	"github.com/Work-Fort/Ward/pkg/config"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// UserAgent is sent with every key service request; the root command
// appends the build version
var UserAgent = config.AppName

// IsInteractive checks if stdin is connected to a terminal AND the user wants TUI mode
func IsInteractive() bool {
	// Check both terminal capability and user preference
	return term.IsTerminal(int(os.Stdin.Fd())) && config.GetUseTUI()
}

// NewClient creates a key service client from the loaded configuration
func NewClient() *api.Client {
	return api.NewClient(
		config.GetAPIURL(),
		config.GetAPIToken(),
		api.WithTimeout(config.GetAPITimeout()),
		api.WithUserAgent(UserAgent),
	)
}

// SetAPIToken overrides the workspace token for this process only.
// Nothing is written to disk.
func SetAPIToken(token string) {
	viper.Set("api.token", token)
}

// terminalWidth returns the stdout width, or 100 when stdout is not a terminal
func terminalWidth() int {
	width := 100 // Default fallback
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		}
	}
	return width
}

// RenderMarkdownToString renders markdown through glamour and returns the string
func RenderMarkdownToString(markdown string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(terminalWidth()),
	)
	if err != nil {
		return "", err
	}

	return r.Render(markdown)
}

// RenderMarkdown renders markdown through glamour and prints it, falling
// back to the raw markdown if rendering fails
func RenderMarkdown(markdown string) {
	rendered, err := RenderMarkdownToString(markdown)
	if err != nil {
		fmt.Println(markdown)
		return
	}

	// Trim trailing whitespace and print
	fmt.Print(strings.TrimRight(rendered, " \n"))
	fmt.Println() // Single newline at end
}
