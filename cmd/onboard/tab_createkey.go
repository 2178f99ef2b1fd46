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

// CreateKeyTab shows the root key and a create-key example, and can create
// the key on the user's behalf
type CreateKeyTab struct {
	flow     *onboarding.Flow
	reveal   *onboarding.Reveal
	service  api.KeyService
	timeout  time.Duration
	creating bool
	complete bool
	err      error
	spinner  spinner.Model
}

// NewCreateKeyTab creates the second step of the wizard
func NewCreateKeyTab(flow *onboarding.Flow, reveal *onboarding.Reveal, service api.KeyService, timeout time.Duration) *CreateKeyTab {
	return &CreateKeyTab{
		flow:    flow,
		reveal:  reveal,
		service: service,
		timeout: timeout,
		spinner: newSpinner(),
	}
}

// Init implements stepTab
func (t *CreateKeyTab) Init() tea.Cmd {
	return nil
}

// rootKey returns the root key held by the flow
func (t *CreateKeyTab) rootKey() string {
	if s, ok := t.flow.Step().(onboarding.CreateKey); ok {
		return s.RootKey
	}
	return ""
}

// Update implements stepTab
func (t *CreateKeyTab) Update(msg tea.Msg) (stepTab, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if t.complete {
			return t, nil
		}
		return t.handleKey(msg)

	case keyCreatedMsg:
		t.creating = false
		if msg.err == nil {
			msg.err = t.flow.KeyCreated(msg.key)
		}
		if msg.err != nil {
			t.err = msg.err
			return t, remoteFailure("Key creation failed", msg.err)
		}
		t.complete = true
		log.Info("key created", "key", onboarding.MaskKey(msg.key))
		return t, func() tea.Msg { return TabCompleteMsg{TabIndex: 1} }

	case spinner.TickMsg:
		if t.creating {
			var cmd tea.Cmd
			t.spinner, cmd = t.spinner.Update(msg)
			return t, cmd
		}
	}

	return t, nil
}

// handleKey maps key presses to step actions
func (t *CreateKeyTab) handleKey(msg tea.KeyMsg) (stepTab, tea.Cmd) {
	switch msg.String() {
	case "v":
		t.reveal.ToggleKey()
	case "c":
		return t, ui.CopyCmd("Root key", t.rootKey())
	case "s":
		t.reveal.ToggleSnippet()
	case "y":
		snippet, ok := t.flow.CreateKeySnippet()
		if ok {
			return t, ui.CopyCmd("Command", snippet.Copy())
		}

	case "n":
		if t.creating {
			return t, nil
		}
		if t.flow.APIID() == "" {
			return t, ui.ErrorToast("Key creation failed", "no API id configured (set api.id or pass --api-id)")
		}
		t.creating = true
		t.err = nil
		log.Debug("creating key", "api_id", t.flow.APIID())
		return t, tea.Batch(t.spinner.Tick, t.createKey())

	case "enter":
		if t.creating {
			return t, nil
		}
		if err := t.flow.SkipKeyCreation(); err != nil {
			return t, ui.ErrorToast("Cannot continue", err.Error())
		}
		t.complete = true
		log.Info("key creation skipped")
		return t, func() tea.Msg { return TabCompleteMsg{TabIndex: 1} }
	}

	return t, nil
}

// createKey performs the remote call
func (t *CreateKeyTab) createKey() tea.Cmd {
	service, timeout, apiID := t.service, t.timeout, t.flow.APIID()
	return func() tea.Msg {
		ctx, cancel := requestContext(timeout)
		defer cancel()

		resp, err := service.CreateKey(ctx, api.CreateKeyRequest{APIID: apiID})
		if err != nil {
			return keyCreatedMsg{err: err}
		}
		return keyCreatedMsg{key: resp.Key}
	}
}

// View implements stepTab
func (t *CreateKeyTab) View(width int) string {
	theme := config.CurrentTheme
	rootKey := t.rootKey()
	if rootKey == "" {
		return ""
	}

	snippet, _ := t.flow.CreateKeySnippet()

	body := []string{
		ui.RenderField("Root key",
			onboarding.DisplayKey(rootKey, t.reveal.ShowKey),
			ui.SecretKeyBindings(t.reveal.ShowKey),
			width),
		"",
		"Try creating a new API key for your users:",
		ui.RenderField("",
			snippet.Display(t.reveal.ShowKeyInSnippet),
			ui.SnippetKeyBindings(snippet.HasSecret(), t.reveal.ShowKeyInSnippet),
			width),
	}

	if t.creating {
		body = append(body, "", t.spinner.View()+" Creating key...")
	} else if t.err != nil {
		body = append(body, "", theme.ErrorMessage("Last attempt failed: "+errorMessage(t.err)))
	}

	return lipgloss.NewStyle().Width(width).Render(renderStep(
		"Create a key for your users",
		"This key is only shown once and can not be recovered.",
		body...,
	))
}

// Bindings implements stepTab
func (t *CreateKeyTab) Bindings() ui.KeyBindingSet {
	if t.creating {
		return ui.KeyBindingSet{}
	}
	return ui.CreateKeyBindings()
}

// Busy implements stepTab
func (t *CreateKeyTab) Busy() bool {
	return t.creating
}

// Spinner implements stepTab
func (t *CreateKeyTab) Spinner() spinner.Model {
	return t.spinner
}

// GetState implements stepTab
func (t *CreateKeyTab) GetState() ui.TabState {
	if t.complete {
		return ui.TabComplete
	}
	if t.err != nil && !t.creating {
		return ui.TabError
	}
	return ui.TabActive
}
