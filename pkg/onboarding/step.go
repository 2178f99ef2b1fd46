// SPDX-License-Identifier: Apache-2.0

// Package onboarding models the three-step key onboarding flow: create a
// root key, create a regular key, verify it.
package onboarding

// Step is the current position in the onboarding flow. The set of
// implementations is closed: CreateRootKey, CreateKey and VerifyKey.
type Step interface {
	// Name returns a short human-readable step name
	Name() string
	// Index returns the zero-based position of the step in the flow
	Index() int

	step()
}

// CreateRootKey is the initial step, waiting for a root key to be requested
type CreateRootKey struct{}

// CreateKey holds the freshly issued root key while waiting for a regular
// key to be created or for the user to confirm they created one themselves
type CreateKey struct {
	RootKey string
}

// VerifyKey is the terminal step. Key is empty when the user skipped
// automatic key creation.
type VerifyKey struct {
	Key string
}

// HasKey reports whether a regular key was issued by the wizard
func (v VerifyKey) HasKey() bool {
	return v.Key != ""
}

func (CreateRootKey) Name() string { return "Root Key" }
func (CreateKey) Name() string     { return "Create Key" }
func (VerifyKey) Name() string     { return "Verify Key" }

func (CreateRootKey) Index() int { return 0 }
func (CreateKey) Index() int     { return 1 }
func (VerifyKey) Index() int     { return 2 }

func (CreateRootKey) step() {}
func (CreateKey) step()     {}
func (VerifyKey) step()     {}

// StepCount is the number of steps in the flow
const StepCount = 3

// StepNames returns the step names in flow order
func StepNames() []string {
	return []string{
		CreateRootKey{}.Name(),
		CreateKey{}.Name(),
		VerifyKey{}.Name(),
	}
}
