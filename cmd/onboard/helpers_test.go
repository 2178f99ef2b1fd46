// SPDX-License-Identifier: Apache-2.0
package onboard

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/Work-Fort/Ward/pkg/api"
)

// fakeService is an in-memory api.KeyService
type fakeService struct {
	rootKey string
	rootErr error
	key     string
	keyErr  error

	rootCalls int
	keyCalls  int
	lastAPIID string
}

func (f *fakeService) CreateRootKey(ctx context.Context) (*api.KeyResponse, error) {
	f.rootCalls++
	if f.rootErr != nil {
		return nil, f.rootErr
	}
	return &api.KeyResponse{KeyID: "key_root", Key: f.rootKey}, nil
}

func (f *fakeService) CreateKey(ctx context.Context, req api.CreateKeyRequest) (*api.KeyResponse, error) {
	f.keyCalls++
	f.lastAPIID = req.APIID
	if f.keyErr != nil {
		return nil, f.keyErr
	}
	return &api.KeyResponse{KeyID: "key_1", Key: f.key}, nil
}

// runCmd executes cmd and flattens batches into the produced messages.
// Only call it on commands that do not sleep (no tea.Tick).
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, runCmd(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

// findMsg returns the first message of type T
func findMsg[T any](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if m, ok := msg.(T); ok {
			return m, true
		}
	}
	var zero T
	return zero, false
}

func keyPress(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}
