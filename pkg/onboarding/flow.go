// SPDX-License-Identifier: Apache-2.0
package onboarding

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition is returned when an event does not apply to the current step
	ErrInvalidTransition = errors.New("invalid onboarding transition")

	// ErrEmptyKey is returned when the backend hands back an empty secret
	ErrEmptyKey = errors.New("empty key")
)

// Flow drives a single onboarding session. It only moves forward:
// CreateRootKey -> CreateKey -> VerifyKey.
type Flow struct {
	apiID   string
	baseURL string
	step    Step
}

// NewFlow creates a flow positioned at CreateRootKey
func NewFlow(apiID, baseURL string) *Flow {
	return &Flow{
		apiID:   apiID,
		baseURL: baseURL,
		step:    CreateRootKey{},
	}
}

// Step returns the current step
func (f *Flow) Step() Step {
	return f.step
}

// APIID returns the API identifier keys are created for
func (f *Flow) APIID() string {
	return f.apiID
}

// BaseURL returns the API base URL used in snippets
func (f *Flow) BaseURL() string {
	return f.baseURL
}

// Done reports whether the flow reached its terminal step
func (f *Flow) Done() bool {
	_, ok := f.step.(VerifyKey)
	return ok
}

// RootKeyCreated moves CreateRootKey to CreateKey carrying the new root key
func (f *Flow) RootKeyCreated(rootKey string) error {
	if _, ok := f.step.(CreateRootKey); !ok {
		return fmt.Errorf("%w: root key created while in %s", ErrInvalidTransition, f.step.Name())
	}
	if rootKey == "" {
		return fmt.Errorf("root key: %w", ErrEmptyKey)
	}
	f.step = CreateKey{RootKey: rootKey}
	return nil
}

// KeyCreated moves CreateKey to VerifyKey carrying the new regular key
func (f *Flow) KeyCreated(key string) error {
	if _, ok := f.step.(CreateKey); !ok {
		return fmt.Errorf("%w: key created while in %s", ErrInvalidTransition, f.step.Name())
	}
	if key == "" {
		return fmt.Errorf("key: %w", ErrEmptyKey)
	}
	f.step = VerifyKey{Key: key}
	return nil
}

// SkipKeyCreation moves CreateKey to VerifyKey without a key, for users
// who created their key outside the wizard
func (f *Flow) SkipKeyCreation() error {
	if _, ok := f.step.(CreateKey); !ok {
		return fmt.Errorf("%w: skip while in %s", ErrInvalidTransition, f.step.Name())
	}
	f.step = VerifyKey{}
	return nil
}

// CreateKeySnippet returns the create-key example for the current step.
// ok is false outside the CreateKey step.
func (f *Flow) CreateKeySnippet() (snippet Snippet, ok bool) {
	s, ok := f.step.(CreateKey)
	if !ok {
		return Snippet{}, false
	}
	return CreateKeySnippet(f.baseURL, s.RootKey, f.apiID), true
}

// VerifyKeySnippet returns the verify-key example for the current step.
// ok is false outside the VerifyKey step.
func (f *Flow) VerifyKeySnippet() (snippet Snippet, ok bool) {
	s, ok := f.step.(VerifyKey)
	if !ok {
		return Snippet{}, false
	}
	return VerifyKeySnippet(f.baseURL, s.Key), true
}

// Reveal holds the two view-only visibility toggles. They never affect the step.
type Reveal struct {
	ShowKey          bool
	ShowKeyInSnippet bool
}

// ToggleKey flips visibility of the displayed secret
func (r *Reveal) ToggleKey() {
	r.ShowKey = !r.ShowKey
}

// ToggleSnippet flips visibility of the secret embedded in the snippet
func (r *Reveal) ToggleSnippet() {
	r.ShowKeyInSnippet = !r.ShowKeyInSnippet
}
