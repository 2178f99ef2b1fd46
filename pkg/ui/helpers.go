// SPDX-License-Identifier: Apache-2.0
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// LayoutDimensions holds calculated dimensions for a TUI layout
type LayoutDimensions struct {
	Width             int
	Height            int
	MainContentWidth  int
	SideContentWidth  int
	SideRenderedWidth int
	ShowSidePanel     bool
}

const (
	sidePanelWidth    = 36 // rendered width of the explanation panel
	minMainWidth      = 50 // below this the side panel is hidden
	splitGap          = 2
	paneBorderWidth   = 2 // All border types are 2 chars wide (1 per side)
	tabContentPadding = 4 // RenderTabContent pads 2 columns per side
)

// CalculateSidePanelDimensions splits the content pane into a main column and
// a fixed-width side panel.
//
// Lipgloss width behavior (as of v1.1.1):
//   - Style.Width(w) sets content width INCLUDING padding (padding is inside)
//   - Border is rendered OUTSIDE of Style.Width() (adds to final render)
//
// The side panel is dropped when it would squeeze the main column under
// minMainWidth, so narrow terminals still show the step.
func CalculateSidePanelDimensions(terminalWidth, terminalHeight int) LayoutDimensions {
	inner := terminalWidth - paneBorderWidth - tabContentPadding
	dims := LayoutDimensions{
		Width:            terminalWidth,
		Height:           terminalHeight,
		MainContentWidth: inner,
	}

	if inner-sidePanelWidth-splitGap < minMainWidth {
		return dims
	}

	dims.ShowSidePanel = true
	dims.SideRenderedWidth = sidePanelWidth
	dims.SideContentWidth = sidePanelWidth - paneBorderWidth
	dims.MainContentWidth = inner - sidePanelWidth - splitGap
	return dims
}

// CreatePaneStyle creates a styled pane based on active state
// Uses ThickBorder for active, NormalBorder for inactive (both 2 chars wide)
func CreatePaneStyle(isActive bool, accentColor, mutedColor lipgloss.Color, contentWidth int) lipgloss.Style {
	if isActive {
		return lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(accentColor).
			Width(contentWidth).
			Padding(0, 1)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(mutedColor).
		Width(contentWidth).
		Padding(0, 1)
}

// JoinWithSidePanel places main and side next to each other when the layout
// has room for the panel, otherwise returns main unchanged
func JoinWithSidePanel(main, side string, dims LayoutDimensions) string {
	if !dims.ShowSidePanel || side == "" {
		return main
	}

	left := lipgloss.NewStyle().Width(dims.MainContentWidth).Render(main)
	gap := lipgloss.NewStyle().Width(splitGap).Render("")
	return lipgloss.JoinHorizontal(lipgloss.Top, left, gap, side)
}

// FillTerminal uses lipgloss.Place to fill terminal dimensions and eliminate gaps
func FillTerminal(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, content)
}
