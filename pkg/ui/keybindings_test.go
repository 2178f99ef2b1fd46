// SPDX-License-Identifier: Apache-2.0
package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

// findBinding returns the binding in set bound to key, or nil
func findBinding(set KeyBindingSet, key string) *KeyBinding {
	for i := range set.Bindings {
		for _, k := range set.Bindings[i].Keys {
			if k == key {
				return &set.Bindings[i]
			}
		}
	}
	return nil
}

func TestKeyBindingSet_With(t *testing.T) {
	set := RootKeyBindings().With(GlobalKeyBindings())

	if b := findBinding(set, "enter"); b == nil || b.Description != "Create Root Key" {
		t.Errorf("enter binding = %+v", b)
	}
	if b := findBinding(set, "ctrl+c"); b == nil {
		t.Error("merged set should contain ctrl+c")
	}
	if b := findBinding(set, "x"); b != nil {
		t.Errorf("x binding = %+v, want nil", b)
	}
}

func TestKeyBindingSet_WithDoesNotAlias(t *testing.T) {
	base := KeyBindingSet{Bindings: make([]KeyBinding, 1, 4)}
	base.Bindings[0] = KeyBinding{Key: "A", Keys: []string{"a"}, Description: "a"}

	x := base.With(KeyBindingSet{Bindings: []KeyBinding{{Key: "X", Keys: []string{"x"}}}})
	y := base.With(KeyBindingSet{Bindings: []KeyBinding{{Key: "Y", Keys: []string{"y"}}}})

	if x.Bindings[1].Key != "X" || y.Bindings[1].Key != "Y" {
		t.Errorf("With should copy, got x=%v y=%v", x.Bindings[1].Key, y.Bindings[1].Key)
	}
}

func TestSecretKeyBindings_Toggle(t *testing.T) {
	if got := findBinding(SecretKeyBindings(false), "v").Description; got != "Show" {
		t.Errorf("hidden toggle = %q, want Show", got)
	}
	if got := findBinding(SecretKeyBindings(true), "v").Description; got != "Hide" {
		t.Errorf("shown toggle = %q, want Hide", got)
	}
}

func TestSnippetKeyBindings(t *testing.T) {
	if findBinding(SnippetKeyBindings(false, false), "s") != nil {
		t.Error("reveal toggle should be absent when the snippet has no key")
	}
	if findBinding(SnippetKeyBindings(true, false), "s") == nil {
		t.Error("reveal toggle should be present when the snippet has a key")
	}
	if findBinding(SnippetKeyBindings(false, false), "y") == nil {
		t.Error("copy should always be offered")
	}
}

func TestKeyBindingSet_Render(t *testing.T) {
	style := lipgloss.NewStyle()

	got := VerifyKeyBindings().Render(style)
	for _, want := range []string{"[ENTER] Let's Go", "[R] Read More", "[Q] Quit"} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() = %q, missing %q", got, want)
		}
	}

	inline := CreateKeyBindings().RenderInline(style)
	if !strings.Contains(inline, "N: create key for me") {
		t.Errorf("RenderInline() = %q", inline)
	}

	if (KeyBindingSet{}).Render(style) != "" {
		t.Error("empty set should render empty")
	}
}
