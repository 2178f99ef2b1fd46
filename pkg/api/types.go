// SPDX-License-Identifier: Apache-2.0
package api

import "context"

// KeyResponse is returned by both key creation endpoints
type KeyResponse struct {
	KeyID string `json:"keyId"`
	Key   string `json:"key"`
}

// CreateKeyRequest asks the service for a regular key bound to an API
type CreateKeyRequest struct {
	APIID string `json:"apiId" validate:"required"`
}

// VerifyKeyRequest asks the service whether a key is valid
type VerifyKeyRequest struct {
	Key string `json:"key" validate:"required"`
}

// VerifyKeyResponse reports the outcome of a verification
type VerifyKeyResponse struct {
	Valid   bool   `json:"valid"`
	KeyID   string `json:"keyId,omitempty"`
	OwnerID string `json:"ownerId,omitempty"`
	Code    string `json:"code,omitempty"`
}

// errorEnvelope is the service's JSON error body
type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// KeyService is the subset of the client the onboarding wizard drives
type KeyService interface {
	CreateRootKey(ctx context.Context) (*KeyResponse, error)
	CreateKey(ctx context.Context, req CreateKeyRequest) (*KeyResponse, error)
}

var _ KeyService = (*Client)(nil)
