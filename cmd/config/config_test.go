// SPDX-License-Identifier: Apache-2.0
package config

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Work-Fort/Ward/pkg/config"
)

func TestDisplayValue(t *testing.T) {
	tests := []struct {
		key   string
		value interface{}
		want  string
	}{
		{key: "api.token", value: "unkey_abc123", want: "unkey_******"},
		{key: "api.id", value: "api_123", want: "api_123"},
		{key: "use-tui", value: true, want: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := displayValue(tt.key, tt.value); got != tt.want {
				t.Errorf("displayValue(%s) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestSelectedScope(t *testing.T) {
	defer func() { globalFlag = false }()

	globalFlag = false
	if selectedScope() != config.ScopeProject {
		t.Error("default scope should be project")
	}
	name, file := scopeLabel()
	if name != "project" || file != "ward.yaml" {
		t.Errorf("scopeLabel() = %q, %q", name, file)
	}

	globalFlag = true
	if selectedScope() != config.ScopeUser {
		t.Error("--global should select user scope")
	}
	name, file = scopeLabel()
	if name != "global" || !strings.HasSuffix(file, "ward/config.yaml") {
		t.Errorf("scopeLabel() = %q, %q", name, file)
	}
}

func TestSchemaCmd_RejectsUnknownScope(t *testing.T) {
	cmd := NewConfigCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"schema", "--scope", "repo"})

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "invalid scope") {
		t.Errorf("error = %v, want invalid scope", err)
	}
}

func TestSchemaCmd_ProjectScope(t *testing.T) {
	cmd := NewConfigCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"schema", "--scope", "project"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("schema: %v", err)
	}
	if strings.Contains(out.String(), `"token"`) {
		t.Error("project schema must not include api.token")
	}
	if !strings.Contains(out.String(), `"id"`) {
		t.Error("project schema should include api.id")
	}
}

func TestSetCmd_ReportsNewProjectConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	globalFlag = false

	run := func() string {
		cmd := NewConfigCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"set", "api.id", "api_1"})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("set: %v", err)
		}
		return out.String()
	}

	if first := run(); !strings.Contains(first, "Created ward.yaml") {
		t.Errorf("first set should report the new file:\n%s", first)
	}
	if second := run(); strings.Contains(second, "Created") {
		t.Errorf("second set should not report a new file:\n%s", second)
	}
}
