// Copyright (c) Microsoft. All rights reserved.

package openai

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is.
var (
	// ErrTransport indicates the request could not be built, sent, or its
	// response body read. The underlying error remains in the chain.
	ErrTransport = errors.New("transport error")

	// ErrStatus indicates the service answered with a non-2xx status.
	// The error chain carries a [*StatusError].
	ErrStatus = errors.New("status error")

	// ErrAuth indicates an authentication or authorization failure (401/403).
	ErrAuth = fmt.Errorf("%w: authentication", ErrStatus)

	// ErrDecode indicates a successful response whose body is not a single
	// JSON value.
	ErrDecode = errors.New("decode error")

	// ErrUnknownModel is returned by [ParseModel] for unrecognized identifiers.
	ErrUnknownModel = errors.New("unknown model")
)

// StatusError describes a non-2xx response. Use errors.As to extract it.
type StatusError struct {
	StatusCode int
	RequestID  string

	// Message, Type and Code come from the provider's {"error": {...}}
	// payload when present. Otherwise Message holds the body text.
	Message string
	Type    string
	Code    string

	// Body is the raw response body.
	Body []byte

	Err error
}

func (e *StatusError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("status %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Message)
}

func (e *StatusError) Unwrap() error { return e.Err }
