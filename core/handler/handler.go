package handler

import (
	"context"
	"net/http"
)

// Context is the per-request value handed to handlers and middleware.
// It is a context.Context whose values live on the underlying request,
// so anything stored with SetValue is visible to later pipeline steps.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	Param(key string) string
	// SetValue attaches a request-scoped value.
	SetValue(key, val any)
}

// Response writes headers, status and body.
// A non-nil error is passed to the router's error handler.
type Response func(w http.ResponseWriter, r *http.Request) error

// HandlerFunc handles a request and returns the response to write.
type HandlerFunc[C Context] func(ctx C) Response

// ErrorHandler turns an error into an HTTP response.
type ErrorHandler[C Context] func(ctx C, err error)

// Middleware wraps a handler. Middleware runs in registration order.
type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]
