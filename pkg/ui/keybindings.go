// SPDX-License-Identifier: Apache-2.0
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// KeyBinding represents a single key action
type KeyBinding struct {
	Key         string   // Display name: "ENTER", "V", "CTRL+C"
	Keys        []string // Actual keys to match: ["enter"], ["v"], ["ctrl+c"]
	Description string   // What it does
}

// KeyBindingSet is a collection of related key bindings
type KeyBindingSet struct {
	Bindings []KeyBinding
}

// With returns a new set holding the bindings of kbs followed by others
func (kbs KeyBindingSet) With(others ...KeyBindingSet) KeyBindingSet {
	merged := KeyBindingSet{Bindings: append([]KeyBinding(nil), kbs.Bindings...)}
	for _, o := range others {
		merged.Bindings = append(merged.Bindings, o.Bindings...)
	}
	return merged
}

// Render formats key bindings for display
// Format: "[KEY] Action  •  [KEY] Action"
func (kbs KeyBindingSet) Render(style lipgloss.Style) string {
	if len(kbs.Bindings) == 0 {
		return ""
	}

	parts := make([]string, len(kbs.Bindings))
	for i, binding := range kbs.Bindings {
		parts[i] = fmt.Sprintf("[%s] %s", binding.Key, binding.Description)
	}

	return style.Render(strings.Join(parts, "  •  "))
}

// RenderInline formats key bindings for inline display (more compact)
// Format: "Key: action | Key: action"
func (kbs KeyBindingSet) RenderInline(style lipgloss.Style) string {
	if len(kbs.Bindings) == 0 {
		return ""
	}

	parts := make([]string, len(kbs.Bindings))
	caser := cases.Title(language.Und, cases.NoLower)
	for i, binding := range kbs.Bindings {
		// Use first key alias for display (e.g., "enter" instead of showing all)
		keyName := caser.String(binding.Keys[0])
		parts[i] = fmt.Sprintf("%s: %s", keyName, strings.ToLower(binding.Description))
	}

	return style.Render(strings.Join(parts, " | "))
}

// Key binding sets for the onboarding wizard

// GlobalKeyBindings returns the bindings that work on every step
func GlobalKeyBindings() KeyBindingSet {
	return KeyBindingSet{
		Bindings: []KeyBinding{
			{Key: "CTRL+C", Keys: []string{"ctrl+c"}, Description: "Quit"},
		},
	}
}

// RootKeyBindings returns the bindings of the root key step
func RootKeyBindings() KeyBindingSet {
	return KeyBindingSet{
		Bindings: []KeyBinding{
			{Key: "ENTER", Keys: []string{"enter"}, Description: "Create Root Key"},
		},
	}
}

// SecretKeyBindings returns the show/hide and copy bindings of a key field
func SecretKeyBindings(shown bool) KeyBindingSet {
	toggle := "Show"
	if shown {
		toggle = "Hide"
	}
	return KeyBindingSet{
		Bindings: []KeyBinding{
			{Key: "V", Keys: []string{"v"}, Description: toggle},
			{Key: "C", Keys: []string{"c"}, Description: "Copy"},
		},
	}
}

// SnippetKeyBindings returns the bindings of an example command.
// The reveal toggle is only offered when the snippet embeds a key.
func SnippetKeyBindings(hasSecret, shown bool) KeyBindingSet {
	set := KeyBindingSet{}
	if hasSecret {
		toggle := "Show Key"
		if shown {
			toggle = "Hide Key"
		}
		set.Bindings = append(set.Bindings, KeyBinding{Key: "S", Keys: []string{"s"}, Description: toggle})
	}
	set.Bindings = append(set.Bindings, KeyBinding{Key: "Y", Keys: []string{"y"}, Description: "Copy Command"})
	return set
}

// CreateKeyBindings returns the step actions of the key creation step
func CreateKeyBindings() KeyBindingSet {
	return KeyBindingSet{
		Bindings: []KeyBinding{
			{Key: "N", Keys: []string{"n"}, Description: "Create Key For Me"},
			{Key: "ENTER", Keys: []string{"enter"}, Description: "I Have Created A Key"},
		},
	}
}

// VerifyKeyBindings returns the step actions of the final step
func VerifyKeyBindings() KeyBindingSet {
	return KeyBindingSet{
		Bindings: []KeyBinding{
			{Key: "ENTER", Keys: []string{"enter"}, Description: "Let's Go"},
			{Key: "R", Keys: []string{"r"}, Description: "Read More"},
			{Key: "Q", Keys: []string{"q"}, Description: "Quit"},
		},
	}
}
