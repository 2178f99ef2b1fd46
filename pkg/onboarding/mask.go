// SPDX-License-Identifier: Apache-2.0
package onboarding

import "strings"

const (
	// KeyDelimiter separates a key prefix from its body, e.g. "unkey_3ZfG..."
	KeyDelimiter = "_"

	// MaskChar replaces each hidden character
	MaskChar = "*"
)

// MaskKey hides the body of a secret while keeping its prefix and length.
// The prefix runs up to and including the last delimiter, so
// "unkey_root_abc123" becomes "unkey_root_******". A secret without a
// delimiter is masked entirely.
func MaskKey(key string) string {
	i := strings.LastIndex(key, KeyDelimiter)
	if i < 0 {
		return strings.Repeat(MaskChar, runeCount(key))
	}
	prefix := key[:i+len(KeyDelimiter)]
	body := key[i+len(KeyDelimiter):]
	return prefix + strings.Repeat(MaskChar, runeCount(body))
}

// DisplayKey returns the key itself when reveal is set, the masked form otherwise
func DisplayKey(key string, reveal bool) string {
	if reveal {
		return key
	}
	return MaskKey(key)
}

func runeCount(s string) int {
	return len([]rune(s))
}
