// Copyright (c) Microsoft. All rights reserved.

package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

const chatCompletionsPath = "/chat/completions"

// Client sends chat completion requests for a fixed API key and [Model].
// It holds no mutable state and is safe for concurrent use. Use [New] to
// create one.
type Client struct {
	apiKey  string
	model   Model
	tp      transport
	handler ChatHandler
}

// New creates a [Client] for the given API key and model. It performs no
// I/O and does not validate the key.
//
//	client := openai.New(os.Getenv("OPENAI_API_KEY"), openai.GPT35Turbo)
func New(apiKey string, model Model, opts ...Option) *Client {
	cfg := &clientConfig{}
	for _, o := range opts {
		o(cfg)
	}
	c := &Client{
		apiKey: apiKey,
		model:  model,
		tp:     newHTTPTransport(apiKey, cfg),
	}
	c.handler = chainMiddleware(c.send, cfg.middleware...)
	return c
}

// newWithTransport creates a Client with a custom transport (for testing).
func newWithTransport(tp transport, apiKey string, model Model) *Client {
	c := &Client{apiKey: apiKey, model: model, tp: tp}
	c.handler = c.send
	return c
}

// APIKey returns the key the client was created with.
func (c *Client) APIKey() string { return c.apiKey }

// Model returns the model the client targets.
func (c *Client) Model() Model { return c.model }

// ChatCompletion sends messages, in order and unmodified, to the Chat
// Completions endpoint and returns the decoded JSON response body.
//
// It makes exactly one HTTP round trip and never retries. Failures wrap
// [ErrTransport], [ErrStatus] (with a [*StatusError]) or [ErrDecode].
// An empty messages slice is sent as-is for the service to judge.
func (c *Client) ChatCompletion(ctx context.Context, messages []Message) (any, error) {
	return c.handler(ctx, newChatRequest(c.model, messages))
}

// send is the innermost handler of the middleware chain.
func (c *Client) send(ctx context.Context, req *ChatRequest) (any, error) {
	resp, err := c.tp.do(ctx, "POST", chatCompletionsPath, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response body: %w", ErrTransport, err)
	}

	return decodeBody(body)
}

// decodeBody decodes exactly one JSON value from body. Numbers are kept
// as json.Number so they pass through without loss.
func decodeBody(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty response body", ErrDecode)
		}
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after JSON value", ErrDecode)
	}
	return v, nil
}
