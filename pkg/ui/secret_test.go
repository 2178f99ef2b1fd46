// SPDX-License-Identifier: Apache-2.0
package ui

import (
	"strings"
	"testing"
)

func TestRenderField(t *testing.T) {
	out := RenderField("Root key", "unkey_******", SecretKeyBindings(false), 40)

	for _, want := range []string{"Root key", "unkey_******", "[V] Show", "[C] Copy"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderField() missing %q:\n%s", want, out)
		}
	}
}

func TestRenderField_NoLabelNoHints(t *testing.T) {
	out := RenderField("", "curl ...", KeyBindingSet{}, 0)

	if strings.HasPrefix(out, "\n") {
		t.Error("empty label should not leave a blank first line")
	}
	if strings.Contains(out, "[") {
		t.Errorf("no hints expected:\n%s", out)
	}
}
