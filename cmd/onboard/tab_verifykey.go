// SPDX-License-Identifier: Apache-2.0
package onboard

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/Work-Fort/Ward/pkg/onboarding"
	"github.com/Work-Fort/Ward/pkg/ui"
)

// VerifyKeyTab shows the issued key, if any, and a verify example
type VerifyKeyTab struct {
	flow     *onboarding.Flow
	reveal   *onboarding.Reveal
	finished bool
}

// NewVerifyKeyTab creates the final step of the wizard
func NewVerifyKeyTab(flow *onboarding.Flow, reveal *onboarding.Reveal) *VerifyKeyTab {
	return &VerifyKeyTab{
		flow:   flow,
		reveal: reveal,
	}
}

// Init implements stepTab
func (t *VerifyKeyTab) Init() tea.Cmd {
	return nil
}

// key returns the key issued by the wizard, or an empty string
func (t *VerifyKeyTab) key() string {
	if s, ok := t.flow.Step().(onboarding.VerifyKey); ok {
		return s.Key
	}
	return ""
}

// Update implements stepTab
func (t *VerifyKeyTab) Update(msg tea.Msg) (stepTab, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || t.finished {
		return t, nil
	}

	key := t.key()
	switch keyMsg.String() {
	case "v":
		if key != "" {
			t.reveal.ToggleKey()
		}
	case "c":
		if key != "" {
			return t, ui.CopyCmd("Key", key)
		}
	case "s":
		if key != "" {
			t.reveal.ToggleSnippet()
		}
	case "y":
		if snippet, ok := t.flow.VerifyKeySnippet(); ok {
			return t, ui.CopyCmd("Command", snippet.Copy())
		}
	case "enter":
		t.finished = true
		return t, func() tea.Msg { return FinishMsg{Outcome: OutcomeApp} }
	case "r":
		t.finished = true
		return t, func() tea.Msg { return FinishMsg{Outcome: OutcomeDocs} }
	}

	return t, nil
}

// View implements stepTab
func (t *VerifyKeyTab) View(width int) string {
	snippet, ok := t.flow.VerifyKeySnippet()
	if !ok {
		return ""
	}

	var body []string
	if key := t.key(); key != "" {
		body = append(body,
			ui.RenderField("Key",
				onboarding.DisplayKey(key, t.reveal.ShowKey),
				ui.SecretKeyBindings(t.reveal.ShowKey),
				width),
			"",
		)
	}

	body = append(body, ui.RenderField("",
		snippet.Display(t.reveal.ShowKeyInSnippet),
		ui.SnippetKeyBindings(snippet.HasSecret(), t.reveal.ShowKeyInSnippet),
		width))

	return lipgloss.NewStyle().Width(width).Render(renderStep(
		"Verify a key",
		"Use the key you created and verify it.",
		body...,
	))
}

// Bindings implements stepTab
func (t *VerifyKeyTab) Bindings() ui.KeyBindingSet {
	return ui.VerifyKeyBindings()
}

// Busy implements stepTab
func (t *VerifyKeyTab) Busy() bool {
	return false
}

// Spinner implements stepTab
func (t *VerifyKeyTab) Spinner() spinner.Model {
	return spinner.New()
}

// GetState implements stepTab
func (t *VerifyKeyTab) GetState() ui.TabState {
	if t.finished {
		return ui.TabComplete
	}
	return ui.TabActive
}
