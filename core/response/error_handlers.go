package response

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/formcatalog/core/handler"
)

type statusCoder interface {
	StatusCode() int
}

// toHTTPError resolves err in this order: an HTTPError anywhere in the
// chain, then any error with a StatusCode method, then 500.
// Causes are only attached below 500 so internal errors never reach clients.
func toHTTPError(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	status := http.StatusInternalServerError
	var sc statusCoder
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}

	base := StatusError(status)
	if base.Status >= http.StatusInternalServerError {
		return base
	}
	return base.WithError(err)
}

// ErrorHandler renders errors as plain text.
func ErrorHandler[C handler.Context](ctx C, err error) {
	httpErr := toHTTPError(err)
	Render(ctx, StringWithStatus(httpErr.Message, httpErr.Status))
}

// JSONErrorHandler renders errors as {"code", "message", "details"} JSON.
func JSONErrorHandler[C handler.Context](ctx C, err error) {
	httpErr := toHTTPError(err)
	Render(ctx, JSONWithStatus(httpErr, httpErr.Status))
}
