package handler

import (
	"context"
	"net/http"
)

// Context is what every handler and middleware receives: the request
// context plus access to the request, the writer and route parameters.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	// Param returns a path wildcard value, e.g. "catalog" in /v1/catalogs/{catalog}.
	Param(key string) string
	// SetValue stores val on the request context so later middleware and
	// handlers see it through Value.
	SetValue(key, val any)
}

// Response writes a result. Returning an error hands it to the router's
// error handler instead of writing anything.
type Response func(w http.ResponseWriter, r *http.Request) error

// HandlerFunc handles one request.
type HandlerFunc[C Context] func(ctx C) Response

// ErrorHandler renders errors returned by handlers and responses.
type ErrorHandler[C Context] func(ctx C, err error)

// Middleware wraps a handler.
type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]

// Chain wraps h so that middlewares[0] is the outermost and runs first.
func Chain[C Context](h HandlerFunc[C], middlewares ...Middleware[C]) HandlerFunc[C] {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
