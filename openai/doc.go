// Copyright (c) Microsoft. All rights reserved.

// Package openai is a small client for the OpenAI Chat Completions API.
//
// Create a client for a key and a [Model], then send an ordered list of
// messages:
//
//	client := openai.New(os.Getenv("OPENAI_API_KEY"), openai.GPT35Turbo)
//
//	resp, err := client.ChatCompletion(ctx, []openai.Message{
//	    openai.NewSystemMessage("You are terse."),
//	    openai.NewUserMessage("Hello!"),
//	})
//
// The response is the decoded JSON body (usually a map[string]any) and is
// not validated against a schema. Extract the fields you need.
//
// # Errors
//
// Every failure wraps one of [ErrTransport], [ErrStatus] or [ErrDecode].
// Non-2xx responses also carry a [*StatusError] with the status code,
// the provider's error fields and the raw body. Nothing is retried.
//
// # Configuration
//
// Use functional options to configure the client:
//
//   - [WithBaseURL]: override the API endpoint (e.g., Azure OpenAI)
//   - [WithOrganization]: set the OpenAI organization header
//   - [WithHTTPClient]: provide a custom http.Client
//   - [WithHeaders]: add custom headers to every request
//   - [WithAzureCredential]: authenticate with an Azure AD token
//   - [WithLogger]: set the logger for transport debug records
//   - [WithMiddleware]: wrap the request pipeline
//
// # Testing
//
// The client uses an unexported transport interface internally.
// For testing, provide a mock http.Client via [WithHTTPClient]
// with a custom RoundTripper.
package openai
