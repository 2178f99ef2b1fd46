// SPDX-License-Identifier: Apache-2.0
package ui

import (
	"errors"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// ErrClipboardUnavailable is returned when no clipboard utility is installed
var ErrClipboardUnavailable = errors.New("clipboard not available (install xclip, xsel or wl-clipboard)")

// writeClipboard is swapped in tests
var writeClipboard = func(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	return clipboard.WriteAll(text)
}

// SetClipboardWriter replaces the clipboard writer and returns a function
// restoring the previous one
func SetClipboardWriter(fn func(string) error) (restore func()) {
	prev := writeClipboard
	writeClipboard = fn
	return func() { writeClipboard = prev }
}

// CopyCmd copies text and reports the outcome as a toast. The label names
// what was copied; the text itself is never logged.
func CopyCmd(label, text string) tea.Cmd {
	return func() tea.Msg {
		if strings.TrimSpace(text) == "" {
			return ToastMsg{Toast: Toast{Kind: ToastError, Title: "Nothing to copy"}}
		}
		if err := writeClipboard(text); err != nil {
			log.Warn("clipboard write failed", "label", label, "error", err)
			return ToastMsg{Toast: Toast{Kind: ToastError, Title: "Copy failed", Message: err.Error()}}
		}
		log.Debug("copied to clipboard", "label", label)
		return ToastMsg{Toast: Toast{Kind: ToastSuccess, Title: "Copied", Message: label + " copied to clipboard"}}
	}
}
