// SPDX-License-Identifier: Apache-2.0
package ui

import (
	"strings"
	"testing"
	"time"
)

func TestToastModel_ShowAndExpire(t *testing.T) {
	m := NewToastModel(time.Second)

	m, cmd := m.Update(ToastMsg{Toast: Toast{Kind: ToastError, Title: "Key creation failed", Message: "quota exceeded"}})
	if cmd == nil {
		t.Fatal("showing a toast should schedule its dismissal")
	}
	if m.Current() == nil || m.Current().Message != "quota exceeded" {
		t.Fatalf("Current() = %+v, want quota exceeded toast", m.Current())
	}
	if !strings.Contains(m.View(), "quota exceeded") {
		t.Errorf("View() should contain the message, got %q", m.View())
	}

	m, _ = m.Update(toastDismissMsg{seq: m.seq})
	if m.Current() != nil {
		t.Error("toast should be dismissed")
	}
	if m.View() != "" {
		t.Errorf("View() after dismissal = %q, want empty", m.View())
	}
}

func TestToastModel_StaleDismissIgnored(t *testing.T) {
	m := NewToastModel(time.Second)

	m, _ = m.Update(ToastMsg{Toast: Toast{Title: "first"}})
	first := m.seq
	m, _ = m.Update(ToastMsg{Toast: Toast{Title: "second"}})

	m, _ = m.Update(toastDismissMsg{seq: first})
	if m.Current() == nil || m.Current().Title != "second" {
		t.Errorf("newer toast should survive an older dismiss tick, got %+v", m.Current())
	}
}

func TestToastModel_DefaultDuration(t *testing.T) {
	if m := NewToastModel(0); m.duration != DefaultToastDuration {
		t.Errorf("duration = %v, want %v", m.duration, DefaultToastDuration)
	}
}

func TestErrorToast(t *testing.T) {
	msg := ErrorToast("Failed", "y")().(ToastMsg)
	if msg.Toast.Kind != ToastError || msg.Toast.Title != "Failed" || msg.Toast.Message != "y" {
		t.Errorf("ErrorToast() = %+v", msg.Toast)
	}
}
