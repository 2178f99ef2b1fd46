// SPDX-License-Identifier: Apache-2.0
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/Work-Fort/Ward/pkg/config"
)

// TabState is the progress of one wizard step
type TabState int

const (
	TabPending TabState = iota
	TabActive
	TabComplete
	TabError
)

// Tab is one step in the strip above the content pane
type Tab struct {
	Title   string
	State   TabState
	Busy    bool // Active tab waiting on a remote call; shows the spinner
	Spinner spinner.Model
}

// TabsConfig holds configuration for tab rendering
type TabsConfig struct {
	ActiveIndex int
	Width       int // Total width available for all tabs
}

// stateLook returns the border color and leading indicator for a tab
func stateLook(tab Tab) (lipgloss.Color, string) {
	theme := config.CurrentTheme
	switch tab.State {
	case TabActive:
		if tab.Busy {
			return theme.GetSecondaryColor(), tab.Spinner.View()
		}
		return theme.GetSecondaryColor(), theme.ActiveIndicator()
	case TabComplete:
		return theme.GetSuccessColor(), theme.CompleteIndicator()
	case TabError:
		return theme.GetErrorColor(), theme.ErrorIndicator()
	}
	return theme.GetMutedColor(), theme.PendingIndicator()
}

// tabBorder returns the rounded border of tab i. The viewed tab opens
// onto the content pane; the others close over it.
func tabBorder(i int, viewed bool) lipgloss.Border {
	b := lipgloss.RoundedBorder()
	b.Bottom = "─"
	b.BottomLeft, b.BottomRight = "┴", "┴"

	if viewed {
		b.Bottom = " "
		b.BottomLeft, b.BottomRight = "┘", "└"
	}
	if i == 0 {
		if viewed {
			b.BottomLeft = "│"
		} else {
			b.BottomLeft = "├"
		}
	}
	return b
}

// RenderTabs renders the numbered step strip. Remaining width is filled
// with a rule that meets the right edge of the content pane.
func RenderTabs(tabs []Tab, cfg TabsConfig) string {
	rendered := make([]string, 0, len(tabs))
	for i, tab := range tabs {
		color, indicator := stateLook(tab)
		style := lipgloss.NewStyle().
			Border(tabBorder(i, i == cfg.ActiveIndex), true).
			BorderForeground(color).
			Padding(0, 1)
		rendered = append(rendered, style.Render(fmt.Sprintf("%s %d. %s", indicator, i+1, tab.Title)))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	fill := cfg.Width - lipgloss.Width(row)
	if fill <= 0 {
		return row
	}

	// Tabs are three lines tall; only the last line carries the rule
	blank := strings.Repeat(" ", fill)
	rule := lipgloss.NewStyle().
		Foreground(config.CurrentTheme.GetPrimaryColor()).
		Render(strings.Repeat("─", fill-1) + "┐")

	return lipgloss.JoinHorizontal(lipgloss.Top, row, lipgloss.JoinVertical(lipgloss.Left, blank, blank, rule))
}

// RenderTabContent frames the active step below the strip
func RenderTabContent(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderTop(false).
		BorderForeground(config.CurrentTheme.GetPrimaryColor()).
		Width(width).
		Height(height).
		Padding(1, 2).
		Render(content)
}
