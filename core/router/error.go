package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/formcatalog/core/handler"
)

// Registration errors panic at setup time; the rest reach the error handler.
var (
	ErrNoContextFactory = errors.New("router: no context factory")
	ErrInvalidMethod    = errors.New("router: invalid http method")
	ErrInvalidPattern   = errors.New("router: invalid route pattern")
	ErrNilResponse      = errors.New("router: handler returned nil response")

	ErrNotFound         error = statusError(http.StatusNotFound)
	ErrMethodNotAllowed error = statusError(http.StatusMethodNotAllowed)
)

// statusError is a routing failure identified by its HTTP status.
type statusError int

func (e statusError) Error() string   { return http.StatusText(int(e)) }
func (e statusError) StatusCode() int { return int(e) }

// defaultErrorHandler writes err as plain text unless the handler already
// started the response.
func defaultErrorHandler[C handler.Context](ctx C, err error) {
	w := ctx.ResponseWriter()
	if ww, ok := w.(*responseWriter); ok && ww.Written() {
		return
	}

	status := http.StatusInternalServerError
	var sc interface{ StatusCode() int }
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}
	http.Error(w, err.Error(), status)
}

// PanicError is what the error handler receives when a handler panics.
type PanicError interface {
	error
	Value() any
	Stack() []byte
}

type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string { return fmt.Sprintf("panic: %v", e.value) }
func (e *panicError) Value() any    { return e.value }
func (e *panicError) Stack() []byte { return e.stack }

// Unwrap exposes a panicked error value to errors.Is and errors.As.
func (e *panicError) Unwrap() error {
	err, _ := e.value.(error)
	return err
}
