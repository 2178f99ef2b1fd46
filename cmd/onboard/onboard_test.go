// SPDX-License-Identifier: Apache-2.0
package onboard

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Work-Fort/Ward/pkg/api"
	"github.com/Work-Fort/Ward/pkg/config"
	"github.com/Work-Fort/Ward/pkg/onboarding"
)

func TestRunNonInteractive(t *testing.T) {
	config.InitViper()

	const (
		rootKey = "unkey_root_abc123"
		key     = "unkey_3ZfGhJk"
	)

	tests := []struct {
		name        string
		opts        Options
		wantContain []string
		wantAbsent  []string
		wantKeyCall bool
	}{
		{
			name:        "masked by default",
			opts:        Options{APIID: "api_123"},
			wantContain: []string{onboarding.MaskKey(rootKey), onboarding.MaskKey(key), `"apiId": "api_123"`, "## Verify a key"},
			wantAbsent:  []string{rootKey, key},
			wantKeyCall: true,
		},
		{
			name:        "revealed",
			opts:        Options{APIID: "api_123", Reveal: true},
			wantContain: []string{"Bearer " + rootKey, `"key": "` + key + `"`},
			wantKeyCall: true,
		},
		{
			name:        "skip key creation",
			opts:        Options{APIID: "api_123", SkipCreateKey: true},
			wantContain: []string{onboarding.KeyPlaceholder},
			wantAbsent:  []string{"## Key\n"},
			wantKeyCall: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{rootKey: rootKey, key: key}

			report, err := runNonInteractive(context.Background(), svc, testBaseURL, tt.opts)
			if err != nil {
				t.Fatalf("runNonInteractive() error = %v", err)
			}

			for _, want := range tt.wantContain {
				if !strings.Contains(report, want) {
					t.Errorf("report missing %q:\n%s", want, report)
				}
			}
			for _, absent := range tt.wantAbsent {
				if strings.Contains(report, absent) {
					t.Errorf("report must not contain %q:\n%s", absent, report)
				}
			}
			if (svc.keyCalls > 0) != tt.wantKeyCall {
				t.Errorf("CreateKey calls = %d, wantKeyCall %v", svc.keyCalls, tt.wantKeyCall)
			}
		})
	}
}

func TestRunNonInteractive_RequiresAPIID(t *testing.T) {
	svc := &fakeService{rootKey: "unkey_root_abc"}

	_, err := runNonInteractive(context.Background(), svc, testBaseURL, Options{})
	if err == nil || !strings.Contains(err.Error(), "--api-id") {
		t.Errorf("error = %v, want --api-id hint", err)
	}
	if svc.rootCalls != 0 {
		t.Error("no request should be sent without an API id")
	}
}

func TestRunNonInteractive_Failures(t *testing.T) {
	quota := &api.Error{Op: "create key", Status: 429, Message: "quota exceeded"}

	tests := []struct {
		name       string
		svc        *fakeService
		opts       Options
		wantErr    string
		wantReport []string
	}{
		{
			name:    "root key failure",
			svc:     &fakeService{rootErr: errors.New("connection refused")},
			opts:    Options{APIID: "api_1"},
			wantErr: "failed to create root key: connection refused",
		},
		{
			name:       "key failure keeps the root key",
			svc:        &fakeService{rootKey: "unkey_root_abc123", keyErr: quota},
			opts:       Options{APIID: "api_1", Reveal: true},
			wantErr:    "failed to create key: quota exceeded",
			wantReport: []string{"## Root key", "unkey_root_abc123", "Bearer unkey_root_abc123", "quota exceeded"},
		},
		{
			name:       "key failure masked",
			svc:        &fakeService{rootKey: "unkey_root_abc123", keyErr: quota},
			opts:       Options{APIID: "api_1"},
			wantErr:    "failed to create key: quota exceeded",
			wantReport: []string{onboarding.MaskKey("unkey_root_abc123")},
		},
		{
			name:    "empty root key",
			svc:     &fakeService{rootKey: ""},
			opts:    Options{APIID: "api_1"},
			wantErr: "empty key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := runNonInteractive(context.Background(), tt.svc, testBaseURL, tt.opts)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
			if len(tt.wantReport) == 0 && report != "" {
				t.Errorf("report should be empty when no key was issued:\n%s", report)
			}
			for _, want := range tt.wantReport {
				if !strings.Contains(report, want) {
					t.Errorf("report missing %q:\n%s", want, report)
				}
			}
		})
	}

	svc := &fakeService{rootKey: "unkey_root_abc", keyErr: quota}
	_, err := runNonInteractive(context.Background(), svc, testBaseURL, Options{APIID: "api_1"})
	var apiErr *api.Error
	if !errors.As(err, &apiErr) || apiErr.Status != 429 {
		t.Errorf("wrapped error should expose *api.Error, got %v", err)
	}
}

func TestNewOnboardCmd_Flags(t *testing.T) {
	cmd := NewOnboardCmd()

	for _, name := range []string{"api-id", "skip-create-key", "reveal"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("missing --%s", name)
		}
	}

	if err := cmd.ParseFlags([]string{"--api-id", "api_9", "--reveal"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if got := cmd.Flags().Lookup("api-id").Value.String(); got != "api_9" {
		t.Errorf("api-id = %q, want api_9", got)
	}
}
