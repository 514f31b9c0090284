// Copyright (c) Microsoft. All rights reserved.

package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/google/uuid"
)

const (
	defaultBaseURL    = "https://api.openai.com/v1"
	defaultAzureScope = "https://cognitiveservices.azure.com/.default"

	requestIDHeader = "X-Client-Request-Id"
)

// transport is an unexported interface for HTTP communication.
// The default implementation uses net/http; tests inject a mock.
type transport interface {
	do(ctx context.Context, method, path string, body any) (*http.Response, error)
}

// httpTransport is the default transport using net/http.
type httpTransport struct {
	client          *http.Client
	baseURL         string
	apiKey          string
	org             string
	headers         map[string]string
	azureCredential azcore.TokenCredential
	azureScopes     []string
	logger          *slog.Logger
}

func newHTTPTransport(apiKey string, opts *clientConfig) *httpTransport {
	t := &httpTransport{
		client:          opts.httpClient,
		baseURL:         strings.TrimRight(opts.baseURL, "/"),
		apiKey:          apiKey,
		org:             opts.organization,
		headers:         opts.headers,
		azureCredential: opts.azureCredential,
		azureScopes:     opts.azureScopes,
		logger:          opts.logger,
	}
	if t.client == nil {
		t.client = http.DefaultClient
	}
	if t.baseURL == "" {
		t.baseURL = defaultBaseURL
	}
	if len(t.azureScopes) == 0 {
		t.azureScopes = []string{defaultAzureScope}
	}
	if t.logger == nil {
		t.logger = slog.Default()
	}
	return t
}

// do sends one request. A non-2xx response is closed and returned as a
// *StatusError; the caller owns the body of any response it gets back.
func (t *httpTransport) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: marshal request: %w", ErrTransport, err)
		}
		bodyReader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, t.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", ErrTransport, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(requestIDHeader, requestID)

	if t.azureCredential != nil {
		token, err := t.azureCredential.GetToken(ctx, policy.TokenRequestOptions{
			Scopes: t.azureScopes,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: get azure token: %w", ErrTransport, err)
		}
		t.logger.DebugContext(ctx, "using Azure AD token authentication",
			"request_id", requestID,
			"token_expires_on", token.ExpiresOn,
		)
		req.Header.Set("Authorization", "Bearer "+token.Token)
	} else if _, ok := t.headers["api-key"]; !ok {
		req.Header.Set("Authorization", "Bearer "+t.apiKey)
	}

	if t.org != "" {
		req.Header.Set("OpenAI-Organization", t.org)
	}
	for k, v := range t.headers {
		req.Header.Set(k, v)
	}

	t.logger.DebugContext(ctx, "sending request",
		"request_id", requestID,
		"method", method,
		"path", path,
	)

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: http request: %w", ErrTransport, err)
	}

	t.logger.DebugContext(ctx, "response received",
		"request_id", requestID,
		"status", resp.StatusCode,
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		return nil, parseErrorResponse(resp, requestID, t.apiKey)
	}

	return resp, nil
}

// parseErrorResponse reads an error response body and returns a *StatusError.
// Occurrences of apiKey in the message are redacted.
func parseErrorResponse(resp *http.Response, requestID, apiKey string) error {
	body, _ := io.ReadAll(resp.Body)

	var apiErr struct {
		Error struct {
			Message string `json:"message"`
			Type    string `json:"type"`
			Code    any    `json:"code"`
		} `json:"error"`
	}
	_ = json.Unmarshal(body, &apiErr)

	msg := apiErr.Error.Message
	if msg == "" {
		msg = strings.TrimSpace(string(body))
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	if apiKey != "" {
		msg = strings.ReplaceAll(msg, apiKey, "[REDACTED]")
	}

	// code is a string on OpenAI and sometimes a number on compatible servers.
	var code string
	switch v := apiErr.Error.Code.(type) {
	case string:
		code = v
	case float64:
		code = fmt.Sprint(v)
	}

	statusErr := &StatusError{
		StatusCode: resp.StatusCode,
		RequestID:  requestID,
		Message:    msg,
		Type:       apiErr.Error.Type,
		Code:       code,
		Body:       body,
		Err:        ErrStatus,
	}
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		statusErr.Err = ErrAuth
	}
	return statusErr
}
