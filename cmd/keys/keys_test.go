// SPDX-License-Identifier: Apache-2.0
package keys

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Work-Fort/Ward/pkg/api"
)

type fakeService struct {
	resp      *api.KeyResponse
	err       error
	verify    *api.VerifyKeyResponse
	lastAPIID string
	lastKey   string
}

func (f *fakeService) CreateRootKey(ctx context.Context) (*api.KeyResponse, error) {
	return f.resp, f.err
}

func (f *fakeService) CreateKey(ctx context.Context, req api.CreateKeyRequest) (*api.KeyResponse, error) {
	f.lastAPIID = req.APIID
	return f.resp, f.err
}

func (f *fakeService) VerifyKey(ctx context.Context, req api.VerifyKeyRequest) (*api.VerifyKeyResponse, error) {
	f.lastKey = req.Key
	return f.verify, f.err
}

func TestRunCreateRoot(t *testing.T) {
	tests := []struct {
		name       string
		reveal     bool
		wantOutput string
		wantAbsent string
	}{
		{name: "masked", wantOutput: "unkey_root_******", wantAbsent: "abc123"},
		{name: "revealed", reveal: true, wantOutput: "unkey_root_abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{resp: &api.KeyResponse{KeyID: "key_1", Key: "unkey_root_abc123"}}
			var out bytes.Buffer

			if err := runCreateRoot(context.Background(), svc, &out, tt.reveal); err != nil {
				t.Fatalf("runCreateRoot() error = %v", err)
			}
			if !strings.Contains(out.String(), tt.wantOutput) {
				t.Errorf("output missing %q:\n%s", tt.wantOutput, out.String())
			}
			if tt.wantAbsent != "" && strings.Contains(out.String(), tt.wantAbsent) {
				t.Errorf("output must not contain %q:\n%s", tt.wantAbsent, out.String())
			}
		})
	}
}

func TestRunCreateRoot_Errors(t *testing.T) {
	var out bytes.Buffer

	err := runCreateRoot(context.Background(), &fakeService{err: &api.Error{Message: "unauthorized"}}, &out, false)
	if err == nil || !strings.Contains(err.Error(), "unauthorized") {
		t.Errorf("error = %v, want unauthorized", err)
	}

	err = runCreateRoot(context.Background(), &fakeService{resp: &api.KeyResponse{}}, &out, false)
	if err == nil || !strings.Contains(err.Error(), "empty key") {
		t.Errorf("error = %v, want empty key", err)
	}
}

func TestRunCreate(t *testing.T) {
	svc := &fakeService{resp: &api.KeyResponse{KeyID: "key_2", Key: "unkey_xyz"}}
	var out bytes.Buffer

	if err := runCreate(context.Background(), svc, &out, "api_123", false); err != nil {
		t.Fatalf("runCreate() error = %v", err)
	}
	if svc.lastAPIID != "api_123" {
		t.Errorf("apiId = %q, want api_123", svc.lastAPIID)
	}
	if !strings.Contains(out.String(), "unkey_***") {
		t.Errorf("output should contain the masked key:\n%s", out.String())
	}

	if err := runCreate(context.Background(), svc, &out, "", false); err == nil {
		t.Error("missing API id should fail")
	}
}

func TestRunVerify(t *testing.T) {
	tests := []struct {
		name    string
		resp    *api.VerifyKeyResponse
		err     error
		wantErr string
	}{
		{name: "valid", resp: &api.VerifyKeyResponse{Valid: true, KeyID: "key_1", OwnerID: "user_1"}},
		{name: "invalid with code", resp: &api.VerifyKeyResponse{Valid: false, Code: "NOT_FOUND"}, wantErr: "key is not valid (NOT_FOUND)"},
		{name: "invalid", resp: &api.VerifyKeyResponse{Valid: false}, wantErr: "key is not valid"},
		{name: "remote failure", err: errors.New("connection refused"), wantErr: "failed to verify key: connection refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{verify: tt.resp, err: tt.err}
			var out bytes.Buffer

			err := runVerify(context.Background(), svc, &out, "unkey_abc", false)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if !strings.Contains(out.String(), "Key is valid") {
					t.Errorf("output:\n%s", out.String())
				}
			} else if err == nil || err.Error() != tt.wantErr {
				t.Errorf("error = %v, want %q", err, tt.wantErr)
			}

			if svc.lastKey != "unkey_abc" {
				t.Errorf("verified key = %q", svc.lastKey)
			}
			if strings.Contains(out.String(), "unkey_abc") {
				t.Error("key should be masked in output")
			}
		})
	}
}
