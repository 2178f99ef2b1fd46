// SPDX-License-Identifier: Apache-2.0
package onboard

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/Work-Fort/Ward/pkg/api"
	"github.com/Work-Fort/Ward/pkg/config"
	"github.com/Work-Fort/Ward/pkg/onboarding"
	"github.com/Work-Fort/Ward/pkg/ui"
)

// WizardModel orchestrates the onboarding tabs
type WizardModel struct {
	width  int
	height int

	tabs      []ui.Tab
	activeTab int
	steps     []stepTab
	toast     ui.ToastModel

	flow   *onboarding.Flow
	reveal *onboarding.Reveal

	quitting bool
	outcome  Outcome
}

// NewWizardModel creates the onboarding wizard for apiID, calling service
// for remote operations. baseURL is used in the example commands.
func NewWizardModel(service api.KeyService, apiID, baseURL string, timeout time.Duration) WizardModel {
	flow := onboarding.NewFlow(apiID, baseURL)
	reveal := &onboarding.Reveal{}

	var tabs []ui.Tab
	for i, name := range onboarding.StepNames() {
		state := ui.TabPending
		if i == 0 {
			state = ui.TabActive
		}
		tabs = append(tabs, ui.Tab{Title: name, State: state, Spinner: newSpinner()})
	}

	return WizardModel{
		tabs:      tabs,
		activeTab: 0,
		steps: []stepTab{
			NewRootKeyTab(flow, service, timeout),
			NewCreateKeyTab(flow, reveal, service, timeout),
			NewVerifyKeyTab(flow, reveal),
		},
		toast:  ui.NewToastModel(ui.DefaultToastDuration),
		flow:   flow,
		reveal: reveal,
	}
}

// Init implements tea.Model
func (m WizardModel) Init() tea.Cmd {
	return m.steps[0].Init()
}

// Update implements tea.Model
func (m WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	log.Debugf("wizard.Update: msg=%T activeTab=%d w=%d h=%d", msg, m.activeTab, m.width, m.height)

	// Toasts are independent of the active tab
	var toastCmd tea.Cmd
	m.toast, toastCmd = m.toast.Update(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Allow Ctrl+C to quit anytime
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

		// Only allow quitting with q from the final step
		if msg.String() == "q" && m.flow.Done() {
			m.quitting = true
			return m, tea.Quit
		}

	case ui.ToastMsg:
		return m, toastCmd

	case TabCompleteMsg:
		m.tabs[msg.TabIndex].State = ui.TabComplete
		m.tabs[msg.TabIndex].Busy = false

		next := m.flow.Step().Index()
		log.Debugf("wizard.TabCompleteMsg: tabIndex=%d advancing to %d", msg.TabIndex, next)
		if next != msg.TabIndex {
			m.activeTab = next
			m.tabs[next].State = ui.TabActive
			return m, m.steps[next].Init()
		}
		return m, nil

	case FinishMsg:
		m.outcome = msg.Outcome
		m.tabs[m.activeTab].State = ui.TabComplete
		m.quitting = true
		return m, tea.Quit
	}

	// Delegate to active tab
	var cmd tea.Cmd
	m.steps[m.activeTab], cmd = m.steps[m.activeTab].Update(msg)

	// Mirror the tab's state in the tab strip
	active := m.steps[m.activeTab]
	m.tabs[m.activeTab].State = active.GetState()
	m.tabs[m.activeTab].Busy = active.Busy()
	m.tabs[m.activeTab].Spinner = active.Spinner()

	return m, tea.Batch(cmd, toastCmd)
}

// View implements tea.Model
func (m WizardModel) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	theme := config.CurrentTheme

	tabsView := ui.RenderTabs(m.tabs, ui.TabsConfig{
		ActiveIndex: m.activeTab,
		Width:       m.width,
	})

	dims := ui.CalculateSidePanelDimensions(m.width, m.height)
	active := m.steps[m.activeTab]

	main := active.View(dims.MainContentWidth)
	side := ""
	if dims.ShowSidePanel {
		side = renderSidePanel(dims.SideContentWidth)
	}

	hints := active.Bindings().With(ui.GlobalKeyBindings()).Render(theme.SubtleStyle())
	parts := []string{ui.JoinWithSidePanel(main, side, dims), "", hints}
	if toast := m.toast.View(); toast != "" {
		parts = append(parts, "", toast)
	}

	contentHeight := m.height - 6 // Account for header, tabs, footer and padding
	content := ui.RenderTabContent(
		lipgloss.JoinVertical(lipgloss.Left, parts...),
		m.width-2,
		contentHeight,
	)

	step := m.flow.Step()
	footer := fmt.Sprintf("Step %d of %d: %s", step.Index()+1, onboarding.StepCount, step.Name())

	return ui.FillTerminal(lipgloss.JoinVertical(
		lipgloss.Left,
		theme.RenderHeader(m.width, "ONBOARDING", m.flow.APIID()),
		tabsView,
		content,
		theme.RenderFooter(m.width, footer),
	), m.width, m.height)
}

// Outcome returns the link chosen on the final step, if any
func (m WizardModel) Outcome() Outcome {
	return m.outcome
}

// Flow returns the onboarding flow driven by the wizard
func (m WizardModel) Flow() *onboarding.Flow {
	return m.flow
}

// Toast returns the visible toast, or nil
func (m WizardModel) Toast() *ui.Toast {
	return m.toast.Current()
}
