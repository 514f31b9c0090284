// Copyright (c) Microsoft. All rights reserved.

package openai

import (
	"context"
	"log/slog"
	"time"
)

// ChatHandler is the function signature for processing a chat request.
type ChatHandler func(ctx context.Context, req *ChatRequest) (any, error)

// Middleware wraps a [ChatHandler] to add cross-cutting behavior.
// Middleware should call next to continue the chain, or return early to short-circuit.
type Middleware func(next ChatHandler) ChatHandler

// chainMiddleware applies middleware in order (first in list = outermost wrapper).
func chainMiddleware(handler ChatHandler, mws ...Middleware) ChatHandler {
	for i := len(mws) - 1; i >= 0; i-- {
		handler = mws[i](handler)
	}
	return handler
}

// LoggingMiddleware returns a [Middleware] that logs chat completions using slog.
// Message contents are not logged.
func LoggingMiddleware(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next ChatHandler) ChatHandler {
		return func(ctx context.Context, req *ChatRequest) (any, error) {
			start := time.Now()
			logger.InfoContext(ctx, "chat completion started",
				"model", req.Model,
				"message_count", len(req.Messages),
			)

			resp, err := next(ctx, req)

			duration := time.Since(start)
			if err != nil {
				logger.ErrorContext(ctx, "chat completion failed",
					"model", req.Model,
					"duration", duration,
					"error", err,
				)
				return nil, err
			}

			logger.InfoContext(ctx, "chat completion completed",
				"model", req.Model,
				"duration", duration,
			)
			return resp, nil
		}
	}
}
