// SPDX-License-Identifier: Apache-2.0
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	rootKeysPath  = "/v1/internal/rootkeys"
	keysPath      = "/v1/keys"
	verifyKeyPath = "/v1/keys/verify"

	// maxErrorBody bounds how much of a failed response is read
	maxErrorBody = 64 << 10
)

// Client handles key service API requests
type Client struct {
	baseURL   string
	token     string
	userAgent string
	http      *http.Client
	validate  *validator.Validate
}

// Option configures a Client
type Option func(*Client)

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithUserAgent sets the User-Agent header sent with every request
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a new key service client
func NewClient(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		token:     token,
		userAgent: "ward",
		http:      &http.Client{},
		validate:  newValidator(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// newValidator reports field errors by their JSON names
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// BaseURL returns the normalized service URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// CreateRootKey creates a root key for the caller's workspace
func (c *Client) CreateRootKey(ctx context.Context) (*KeyResponse, error) {
	var out KeyResponse
	if err := c.do(ctx, "create root key", rootKeysPath, struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateKey creates a regular key for an API
func (c *Client) CreateKey(ctx context.Context, req CreateKeyRequest) (*KeyResponse, error) {
	const op = "create key"
	if err := c.check(op, req); err != nil {
		return nil, err
	}

	var out KeyResponse
	if err := c.do(ctx, op, keysPath, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyKey checks a key against the service
func (c *Client) VerifyKey(ctx context.Context, req VerifyKeyRequest) (*VerifyKeyResponse, error) {
	const op = "verify key"
	if err := c.check(op, req); err != nil {
		return nil, err
	}

	var out VerifyKeyResponse
	if err := c.do(ctx, op, verifyKeyPath, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// check validates a request body before anything is sent
func (c *Client) check(op string, req interface{}) error {
	err := c.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &Error{Op: op, Code: "invalid_request", Message: err.Error(), Err: err}
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()))
	}
	return &Error{Op: op, Code: "invalid_request", Message: strings.Join(msgs, ", "), Err: err}
}

// do sends a single POST request and decodes the JSON response into out.
// There is no retry; a failure is returned to the caller as an *Error.
func (c *Client) do(ctx context.Context, op, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &Error{Op: op, Message: fmt.Sprintf("failed to encode request: %v", err), Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return &Error{Op: op, Message: fmt.Sprintf("failed to create request: %v", err), Err: err}
	}

	requestID := uuid.New().String()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-Id", requestID)

	resp, err := c.DoRequest(req)
	if err != nil {
		log.Debug("key service request failed", "op", op, "request_id", requestID, "error", err)
		return &Error{Op: op, Message: transportMessage(err), Err: err}
	}
	defer resp.Body.Close()

	log.Debug("key service response", "op", op, "request_id", requestID, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(op, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Op: op, Status: resp.StatusCode, Message: fmt.Sprintf("failed to decode response: %v", err), Err: err}
	}

	return nil
}

// DoRequest executes an HTTP request with automatic token injection
func (c *Client) DoRequest(req *http.Request) (*http.Response, error) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	return c.http.Do(req)
}

// decodeError builds an *Error from a non-2xx response, preferring the
// service's error envelope over the bare status text
func decodeError(op string, resp *http.Response) error {
	apiErr := &Error{
		Op:      op,
		Status:  resp.StatusCode,
		Message: strings.ToLower(http.StatusText(resp.StatusCode)),
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil {
		apiErr.Code = envelope.Error.Code
		if envelope.Error.Message != "" {
			apiErr.Message = envelope.Error.Message
		}
	}

	if apiErr.Message == "" {
		apiErr.Message = fmt.Sprintf("unexpected status %d", resp.StatusCode)
	}

	return apiErr
}

// transportMessage turns a transport failure into a short user-facing message
func transportMessage(err error) string {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "request timed out"
	case errors.As(err, &netErr) && netErr.Timeout():
		return "request timed out"
	case errors.Is(err, context.Canceled):
		return "request canceled"
	}
	return err.Error()
}
