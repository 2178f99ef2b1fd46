// SPDX-License-Identifier: Apache-2.0
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/Work-Fort/Ward/pkg/config"
)

// DefaultToastDuration is how long a toast stays on screen
const DefaultToastDuration = 3 * time.Second

// ToastKind selects the toast color
type ToastKind int

const (
	ToastSuccess ToastKind = iota
	ToastError
)

// Toast is a short transient notification
type Toast struct {
	Kind    ToastKind
	Title   string
	Message string
}

// ToastMsg asks the toast model to show a notification
type ToastMsg struct {
	Toast Toast
}

// toastDismissMsg expires the toast with the matching sequence number
type toastDismissMsg struct {
	seq int
}

// ErrorToast returns a command showing an error notification
func ErrorToast(title, message string) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{Toast: Toast{Kind: ToastError, Title: title, Message: message}}
	}
}

// ToastModel holds at most one visible toast.
// A newer toast replaces the current one; stale dismiss ticks are ignored.
type ToastModel struct {
	current  *Toast
	seq      int
	duration time.Duration
}

// NewToastModel creates a toast model whose notifications expire after d
func NewToastModel(d time.Duration) ToastModel {
	if d <= 0 {
		d = DefaultToastDuration
	}
	return ToastModel{duration: d}
}

// Update handles ToastMsg and expiry ticks; other messages are ignored
func (m ToastModel) Update(msg tea.Msg) (ToastModel, tea.Cmd) {
	switch msg := msg.(type) {
	case ToastMsg:
		t := msg.Toast
		m.current = &t
		m.seq++
		seq := m.seq
		return m, tea.Tick(m.duration, func(time.Time) tea.Msg {
			return toastDismissMsg{seq: seq}
		})

	case toastDismissMsg:
		if msg.seq == m.seq {
			m.current = nil
		}
	}

	return m, nil
}

// Current returns the visible toast, or nil
func (m ToastModel) Current() *Toast {
	return m.current
}

// View renders the visible toast, or an empty string
func (m ToastModel) View() string {
	if m.current == nil {
		return ""
	}

	theme := config.CurrentTheme
	color := theme.GetSuccessColor()
	indicator := theme.CompleteIndicator()
	if m.current.Kind == ToastError {
		color = theme.GetErrorColor()
		indicator = theme.ErrorIndicator()
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(color).Render(m.current.Title)
	body := indicator + " " + title
	if m.current.Message != "" {
		body += "\n" + m.current.Message
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 2).
		Render(body)
}
