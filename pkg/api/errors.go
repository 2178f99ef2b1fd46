// SPDX-License-Identifier: Apache-2.0
package api

import (
	"errors"
	"fmt"
)

// Error is the single failure kind for key service calls.
// Error() yields only Message so it can be shown to users as-is.
type Error struct {
	Op      string // operation name, e.g. "create key"
	Status  int    // HTTP status, 0 when no response was received
	Code    string // service error code, if any
	Message string
	Err     error // underlying transport or decode error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Detail returns the message prefixed with the operation and status, for logs
func (e *Error) Detail() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s: %d %s", e.Op, e.Status, e.Message)
}

// AsError extracts an *Error from err
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
