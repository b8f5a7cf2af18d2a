// Copyright (c) 2026 Verbum. All rights reserved.

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/verbum/verbum/internal/platform/ctxutil"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	requestID := "test-request-id"

	// 1. Initially should be empty
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithRequestID(ctx, requestID)
	assert.Equal(t, requestID, ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies that a custom logger can be stored in context.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// 1. Initially should return the default logger
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_ViewerToken verifies that viewer tokens can be stored in context.
*/
func TestContext_ViewerToken(t *testing.T) {
	ctx := context.Background()
	token := "0192a7e4-5f3c-7000-8000-8a1b2c3d4e5f"

	// 1. Initially should be empty
	assert.Empty(t, ctxutil.GetViewerToken(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithViewerToken(ctx, token)
	assert.Equal(t, token, ctxutil.GetViewerToken(ctx))
}
