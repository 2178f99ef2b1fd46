// SPDX-License-Identifier: Apache-2.0
package onboard

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/Work-Fort/Ward/pkg/config"
	"github.com/Work-Fort/Ward/pkg/ui"
)

// sideNote is one explanation block of the side panel
type sideNote struct {
	title string
	body  string
}

var sideNotes = []sideNote{
	{
		title: "Root Keys",
		body: "Root keys create resources such as keys or APIs. " +
			"You should never give this to your users.",
	},
	{
		title: "Regular Keys",
		body: "Regular API keys are used to authenticate your users. " +
			"You can use your root key to create regular API keys and give them to your users.",
	},
}

// renderSidePanel renders the root/regular key explanations
func renderSidePanel(contentWidth int) string {
	theme := config.CurrentTheme

	var blocks []string
	for i, note := range sideNotes {
		if i > 0 {
			blocks = append(blocks, "")
		}
		blocks = append(blocks,
			theme.TitleStyle().Render(note.title),
			theme.SubtleStyle().Width(contentWidth-2).Render(note.body),
		)
	}

	style := ui.CreatePaneStyle(false, theme.GetPrimaryColor(), theme.GetMutedColor(), contentWidth)
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, blocks...))
}
