// SPDX-License-Identifier: Apache-2.0
package onboard

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/Work-Fort/Ward/pkg/api"
	"github.com/Work-Fort/Ward/pkg/config"
	"github.com/Work-Fort/Ward/pkg/onboarding"
	"github.com/Work-Fort/Ward/pkg/ui"
)

// RootKeyTab asks the service for a root key
type RootKeyTab struct {
	flow     *onboarding.Flow
	service  api.KeyService
	timeout  time.Duration
	creating bool
	complete bool
	err      error
	spinner  spinner.Model
}

// NewRootKeyTab creates the first step of the wizard
func NewRootKeyTab(flow *onboarding.Flow, service api.KeyService, timeout time.Duration) *RootKeyTab {
	return &RootKeyTab{
		flow:    flow,
		service: service,
		timeout: timeout,
		spinner: newSpinner(),
	}
}

// Init implements stepTab
func (t *RootKeyTab) Init() tea.Cmd {
	return nil
}

// Update implements stepTab
func (t *RootKeyTab) Update(msg tea.Msg) (stepTab, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() != "enter" {
			return t, nil
		}
		// Ignore re-submission while a request is in flight
		if t.creating || t.complete {
			return t, nil
		}
		t.creating = true
		t.err = nil
		log.Debug("creating root key")
		return t, tea.Batch(t.spinner.Tick, t.createRootKey())

	case rootKeyCreatedMsg:
		t.creating = false
		if msg.err == nil {
			msg.err = t.flow.RootKeyCreated(msg.key)
		}
		if msg.err != nil {
			t.err = msg.err
			return t, remoteFailure("Root key creation failed", msg.err)
		}
		t.complete = true
		log.Info("root key created", "key", onboarding.MaskKey(msg.key))
		return t, func() tea.Msg { return TabCompleteMsg{TabIndex: 0} }

	case spinner.TickMsg:
		if t.creating {
			var cmd tea.Cmd
			t.spinner, cmd = t.spinner.Update(msg)
			return t, cmd
		}
	}

	return t, nil
}

// createRootKey performs the remote call
func (t *RootKeyTab) createRootKey() tea.Cmd {
	service, timeout := t.service, t.timeout
	return func() tea.Msg {
		ctx, cancel := requestContext(timeout)
		defer cancel()

		resp, err := service.CreateRootKey(ctx)
		if err != nil {
			return rootKeyCreatedMsg{err: err}
		}
		return rootKeyCreatedMsg{key: resp.Key}
	}
}

// View implements stepTab
func (t *RootKeyTab) View(width int) string {
	theme := config.CurrentTheme

	status := ""
	switch {
	case t.creating:
		status = t.spinner.View() + " Creating root key..."
	case t.complete:
		status = theme.SuccessMessage("Root key created")
	case t.err != nil:
		status = theme.ErrorMessage("Last attempt failed: " + errorMessage(t.err))
	}

	return renderStep(
		"Let's begin by creating a root key",
		"A root key lets you create keys for your users.",
		lipgloss.NewStyle().Width(width).Render(status),
	)
}

// Bindings implements stepTab
func (t *RootKeyTab) Bindings() ui.KeyBindingSet {
	if t.creating {
		return ui.KeyBindingSet{}
	}
	return ui.RootKeyBindings()
}

// Busy implements stepTab
func (t *RootKeyTab) Busy() bool {
	return t.creating
}

// Spinner implements stepTab
func (t *RootKeyTab) Spinner() spinner.Model {
	return t.spinner
}

// GetState implements stepTab
func (t *RootKeyTab) GetState() ui.TabState {
	if t.complete {
		return ui.TabComplete
	}
	if t.err != nil && !t.creating {
		return ui.TabError
	}
	return ui.TabActive
}
