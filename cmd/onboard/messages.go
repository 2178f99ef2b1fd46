// SPDX-License-Identifier: Apache-2.0
package onboard

// TabCompleteMsg signals a tab has completed and the flow moved on
type TabCompleteMsg struct {
	TabIndex int
}

// Outcome is the link the user chose on the final step
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeApp          // "Let's go"
	OutcomeDocs         // "Read more"
)

// FinishMsg ends the wizard with the chosen outcome
type FinishMsg struct {
	Outcome Outcome
}

// rootKeyCreatedMsg carries the result of the root key request
type rootKeyCreatedMsg struct {
	key string
	err error
}

// keyCreatedMsg carries the result of the key creation request
type keyCreatedMsg struct {
	key string
	err error
}
