// SPDX-License-Identifier: Apache-2.0
package onboarding

import (
	"strings"
	"testing"
)

func TestMaskKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{
			name: "prefix and body",
			key:  "unkey_3ZfGhJk",
			want: "unkey_*******",
		},
		{
			name: "multiple delimiters keep every prefix segment",
			key:  "unkey_root_abc123",
			want: "unkey_root_******",
		},
		{
			name: "no delimiter masks everything",
			key:  "abcdef",
			want: "******",
		},
		{
			name: "trailing delimiter has nothing to mask",
			key:  "api_",
			want: "api_",
		},
		{
			name: "leading delimiter",
			key:  "_secret",
			want: "_******",
		},
		{
			name: "empty key",
			key:  "",
			want: "",
		},
		{
			name: "multibyte body counted in characters",
			key:  "pfx_ключ",
			want: "pfx_****",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskKey(tt.key); got != tt.want {
				t.Errorf("MaskKey(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestMaskKey_PreservesLength(t *testing.T) {
	keys := []string{"a", "a_b", "unkey_root_abc123", "x_y_z_0123456789", "nodelimiter"}
	for _, key := range keys {
		masked := MaskKey(key)
		if len(masked) != len(key) {
			t.Errorf("MaskKey(%q) length = %d, want %d", key, len(masked), len(key))
		}
	}
}

func TestMaskKey_PrefixBodyProperty(t *testing.T) {
	prefixes := []string{"unkey", "api", "sk"}
	bodies := []string{"a", "3ZfGhJk", "0123456789abcdefghij"}

	for _, p := range prefixes {
		for _, b := range bodies {
			got := MaskKey(p + "_" + b)
			want := p + "_" + strings.Repeat("*", len(b))
			if got != want {
				t.Errorf("MaskKey(%q) = %q, want %q", p+"_"+b, got, want)
			}
		}
	}
}

func TestDisplayKey(t *testing.T) {
	key := "unkey_abc"

	if got := DisplayKey(key, true); got != key {
		t.Errorf("DisplayKey(reveal) = %q, want %q", got, key)
	}
	if got := DisplayKey(key, false); got != "unkey_***" {
		t.Errorf("DisplayKey(hidden) = %q, want %q", got, "unkey_***")
	}

	// Toggling on and off restores the identical masked form
	first := DisplayKey(key, false)
	_ = DisplayKey(key, true)
	if again := DisplayKey(key, false); again != first {
		t.Errorf("masked form changed after toggle: %q != %q", again, first)
	}
}
