// SPDX-License-Identifier: Apache-2.0
package version

import (
	"bytes"
	"strings"
	"testing"
)

func TestVersionCmd(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{version: "v1.2.3", want: "ward version v1.2.3"},
		{version: "", want: "ward version dev"},
	}

	for _, tt := range tests {
		cmd := NewVersionCmd(tt.version)
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs(nil)

		if err := cmd.Execute(); err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if !strings.HasPrefix(out.String(), tt.want) {
			t.Errorf("output = %q, want prefix %q", out.String(), tt.want)
		}
	}
}
