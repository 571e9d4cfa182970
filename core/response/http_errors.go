package response

import (
	"net/http"
	"strings"
)

// HTTPError is the JSON error body: {"code", "message", "details"}.
// Status is sent as the response code only.
type HTTPError struct {
	Status  int            `json:"-"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func (e HTTPError) Error() string   { return e.Message }
func (e HTTPError) StatusCode() int { return e.Status }

// WithMessage returns a copy with a custom message.
func (e HTTPError) WithMessage(message string) HTTPError {
	e.Message = message
	return e
}

// WithDetails returns a copy carrying details. The map is not cloned.
func (e HTTPError) WithDetails(details map[string]any) HTTPError {
	e.Details = details
	return e
}

// WithError returns a copy with err's text under details["cause"].
func (e HTTPError) WithError(err error) HTTPError {
	details := make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details["cause"] = err.Error()
	e.Details = details
	return e
}

// StatusError builds the canonical error for a status, with a snake_case code
// derived from http.StatusText. Unknown codes collapse to 500.
func StatusError(status int) HTTPError {
	text := http.StatusText(status)
	if text == "" || status < http.StatusBadRequest {
		status, text = http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
	code := strings.Map(func(r rune) rune {
		switch {
		case r == ' ' || r == '-':
			return '_'
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		case r >= 'a' && r <= 'z':
			return r
		}
		return -1
	}, text)
	return HTTPError{Status: status, Code: code, Message: text}
}

var (
	ErrBadRequest          = StatusError(http.StatusBadRequest)
	ErrNotFound            = StatusError(http.StatusNotFound)
	ErrUnprocessableEntity = StatusError(http.StatusUnprocessableEntity)
	ErrInternalServerError = StatusError(http.StatusInternalServerError)
)
