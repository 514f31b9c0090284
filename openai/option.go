// Copyright (c) Microsoft. All rights reserved.

package openai

import (
	"log/slog"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

// clientConfig holds resolved configuration for the OpenAI client.
type clientConfig struct {
	baseURL         string
	organization    string
	httpClient      *http.Client
	headers         map[string]string
	azureCredential azcore.TokenCredential
	azureScopes     []string
	logger          *slog.Logger
	middleware      []Middleware
}

// Option configures an OpenAI [Client].
type Option func(*clientConfig)

// WithBaseURL overrides the API base URL (e.g., for Azure OpenAI or proxies).
func WithBaseURL(url string) Option {
	return func(c *clientConfig) { c.baseURL = url }
}

// WithOrganization sets the OpenAI organization header.
func WithOrganization(org string) Option {
	return func(c *clientConfig) { c.organization = org }
}

// WithHTTPClient provides a custom http.Client for requests.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) { c.httpClient = client }
}

// WithHeaders adds custom headers to every request. An "api-key" header
// replaces bearer authentication, as Azure OpenAI key auth expects.
func WithHeaders(headers map[string]string) Option {
	return func(c *clientConfig) {
		if c.headers == nil {
			c.headers = make(map[string]string, len(headers))
		}
		for k, v := range headers {
			c.headers[k] = v
		}
	}
}

// WithAzureCredential authenticates with a token from cred instead of the
// API key. A token is requested from cred on every call; caching and
// refresh are left to the credential. Scopes default to Cognitive Services.
func WithAzureCredential(cred azcore.TokenCredential, scopes ...string) Option {
	return func(c *clientConfig) {
		c.azureCredential = cred
		c.azureScopes = scopes
	}
}

// WithLogger sets the logger used for transport debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) { c.logger = logger }
}

// WithMiddleware adds middleware to the request pipeline.
// Middleware is applied in the order provided (first = outermost).
func WithMiddleware(mw ...Middleware) Option {
	return func(c *clientConfig) { c.middleware = append(c.middleware, mw...) }
}
