// SPDX-License-Identifier: Apache-2.0
package onboard

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/Work-Fort/Ward/pkg/api"
	"github.com/Work-Fort/Ward/pkg/config"
	"github.com/Work-Fort/Ward/pkg/ui"
)

// stepTab is implemented by every wizard tab
type stepTab interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (stepTab, tea.Cmd)
	View(width int) string
	GetState() ui.TabState
	Busy() bool
	Spinner() spinner.Model
	Bindings() ui.KeyBindingSet
}

// newSpinner creates the spinner shown while a request is in flight
func newSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(config.CurrentTheme.GetSecondaryColor())
	return s
}

// requestContext bounds a single remote call
func requestContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}
	return context.WithTimeout(context.Background(), timeout)
}

// remoteFailure logs a failed remote call and returns the toast reporting it.
// The step does not change; the user can retry with the same key.
func remoteFailure(title string, err error) tea.Cmd {
	if apiErr, ok := api.AsError(err); ok {
		log.Error(title, "op", apiErr.Op, "status", apiErr.Status, "code", apiErr.Code, "error", apiErr.Message)
	} else {
		log.Error(title, "error", err)
	}
	return ui.ErrorToast(title, errorMessage(err))
}

// errorMessage returns the text shown to the user for err
func errorMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

// renderStep lays out a step title, description and body
func renderStep(title, description string, body ...string) string {
	theme := config.CurrentTheme

	parts := []string{
		theme.TitleStyle().Render(title),
		theme.SubtleStyle().Render(description),
		"",
	}
	parts = append(parts, body...)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
