// Copyright (c) 2026 Verbum. All rights reserved.

// Package ctxutil provides helpers for interacting with values stored in [context.Context].
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/verbum/verbum/internal/platform/ctxkey"
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger retrieves the logger from the context.
// If no logger is found, it returns the global default logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}

// # Viewer Identity

// WithViewerToken returns a new context with the opaque viewer token attached.
func WithViewerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyViewerToken, token)
}

// GetViewerToken retrieves the viewer token from the [context.Context].
// Returns an empty string if the middleware did not assign one.
func GetViewerToken(ctx context.Context) string {
	token, _ := ctx.Value(ctxkey.KeyViewerToken).(string)
	return token
}
