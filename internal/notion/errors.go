// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notion

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport marks network failures and non-2xx responses.
	ErrTransport = errors.New("notion transport error")

	// ErrProtocol marks response bodies that are not valid JSON or do not
	// have the expected shape.
	ErrProtocol = errors.New("notion protocol error")
)

// APIError is a non-2xx response. Notion returns a JSON error object with a
// machine-readable code (e.g. "object_not_found", "rate_limited") which is
// captured when present.
type APIError struct {
	Method  string
	Path    string
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("%s %s: HTTP %d", e.Method, e.Path, e.Status)
	if e.Code != "" {
		msg += " " + e.Code
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap lets callers match any API error with errors.Is(err, ErrTransport).
func (e *APIError) Unwrap() error { return ErrTransport }
