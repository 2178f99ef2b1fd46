// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"strings"
	"testing"
)

func TestRootCommand_Subcommands(t *testing.T) {
	root := rootCmd

	for _, name := range []string{"onboard", "keys", "config", "version"} {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing %q", name)
		}
	}
}

func TestRootCommand_PersistentFlags(t *testing.T) {
	root := rootCmd

	tests := []struct {
		name string
		def  string
	}{
		{name: "log-level", def: "info"},
		{name: "use-tui", def: "true"},
		{name: "api-url", def: "https://api.unkey.dev"},
	}

	for _, tt := range tests {
		flag := root.PersistentFlags().Lookup(tt.name)
		if flag == nil {
			t.Errorf("missing --%s", tt.name)
			continue
		}
		if flag.DefValue != tt.def {
			t.Errorf("--%s default = %q, want %q", tt.name, flag.DefValue, tt.def)
		}
	}
}

func TestGenerateHelpMarkdown(t *testing.T) {
	md := generateHelpMarkdown(rootCmd)

	for _, want := range []string{"# ward", "## Available Commands", "**onboard**", "**keys**", "## Flags", "`WARD_*`"} {
		if !strings.Contains(md, want) {
			t.Errorf("help markdown missing %q:\n%s", want, md)
		}
	}
}

func TestGenerateUsageMarkdown_Subcommand(t *testing.T) {
	root := rootCmd
	keysCmd, _, err := root.Find([]string{"keys", "create"})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}

	md := generateUsageMarkdown(keysCmd)
	if !strings.Contains(md, "ward keys create") {
		t.Errorf("usage should contain the command path:\n%s", md)
	}
	if !strings.Contains(md, "--api-id") {
		t.Errorf("usage should list --api-id:\n%s", md)
	}
	if !strings.Contains(md, "### Global Flags") {
		t.Errorf("usage should list inherited flags:\n%s", md)
	}
}

func TestGenerateHelpMarkdown_Subcommand(t *testing.T) {
	keysCmd, _, err := rootCmd.Find([]string{"keys", "verify"})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}

	md := generateHelpMarkdown(keysCmd)
	if !strings.Contains(md, "## Usage") || !strings.Contains(md, "ward keys verify [key]") {
		t.Errorf("help should show the usage line:\n%s", md)
	}
	if strings.Contains(md, "WARD_*") {
		t.Errorf("environment note belongs on the root command only:\n%s", md)
	}
}
