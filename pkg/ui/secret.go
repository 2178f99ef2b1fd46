// SPDX-License-Identifier: Apache-2.0
package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/Work-Fort/Ward/pkg/config"
)

// RenderField renders a labelled code block with its key hints underneath.
// Callers pass the display form of the value, already masked if needed.
// An empty label renders the block alone.
func RenderField(label, display string, hints KeyBindingSet, width int) string {
	theme := config.CurrentTheme

	var parts []string
	if label != "" {
		parts = append(parts, lipgloss.NewStyle().Bold(true).Render(label))
	}
	parts = append(parts, RenderCodeBlock(display, width))
	if len(hints.Bindings) > 0 {
		parts = append(parts, hints.Render(theme.SubtleStyle()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// RenderCodeBlock frames text in the theme's code block style.
// Width includes the border; non-positive widths size to the content.
func RenderCodeBlock(text string, width int) string {
	contentWidth := 0
	if width > paneBorderWidth {
		contentWidth = width - paneBorderWidth
	}
	return config.CurrentTheme.CodeBlockStyle(contentWidth).Render(text)
}
