// Copyright (c) Microsoft. All rights reserved.

package openai_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/Lavryniukk/openai-lib/openai"
)

func TestErrorSentinelChain(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		match  bool
	}{
		{"ErrAuth wraps ErrStatus", openai.ErrAuth, openai.ErrStatus, true},
		{"ErrStatus does not wrap ErrAuth", openai.ErrStatus, openai.ErrAuth, false},
		{"ErrDecode does not wrap ErrStatus", openai.ErrDecode, openai.ErrStatus, false},
		{"ErrTransport does not wrap ErrDecode", openai.ErrTransport, openai.ErrDecode, false},
		{"ErrAuth does not wrap ErrTransport", openai.ErrAuth, openai.ErrTransport, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := errors.Is(tc.err, tc.target); got != tc.match {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", tc.err, tc.target, got, tc.match)
			}
		})
	}
}

func TestStatusError(t *testing.T) {
	statusErr := &openai.StatusError{
		StatusCode: 429,
		Message:    "rate limited",
		Code:       "rate_limit_exceeded",
		Err:        openai.ErrStatus,
	}

	msg := statusErr.Error()
	if !strings.Contains(msg, "429") || !strings.Contains(msg, "rate_limit_exceeded") {
		t.Errorf("Error() = %q", msg)
	}

	if !errors.Is(statusErr, openai.ErrStatus) {
		t.Error("StatusError should wrap ErrStatus")
	}

	var extracted *openai.StatusError
	if !errors.As(statusErr, &extracted) {
		t.Fatal("errors.As should extract StatusError")
	}
	if extracted.StatusCode != 429 {
		t.Errorf("StatusCode = %d", extracted.StatusCode)
	}

	noCode := &openai.StatusError{StatusCode: 500, Message: "boom", Err: openai.ErrStatus}
	if noCode.Error() != "status 500: boom" {
		t.Errorf("Error() = %q", noCode.Error())
	}
}
