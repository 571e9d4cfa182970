package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcatalog/core/response"
	"github.com/dmitrymomot/formcatalog/core/router"
)

func newContext(method, target string) (*router.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	return router.NewContext(w, httptest.NewRequest(method, target, nil)), w
}

func TestJSON(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		ctx, w := newContext(http.MethodGet, "/")
		response.Render(ctx, response.JSON(map[string]string{"name": "Food & Staples"}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"name":"Food & Staples"}`, w.Body.String())
		assert.Contains(t, w.Body.String(), "&")
	})

	t.Run("nil with zero status", func(t *testing.T) {
		ctx, w := newContext(http.MethodGet, "/")
		response.Render(ctx, response.JSONWithStatus(nil, 0))
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})
}

func TestString(t *testing.T) {
	ctx, w := newContext(http.MethodGet, "/")
	response.Render(ctx, response.StringWithStatus("nope", http.StatusTeapot))
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "nope", w.Body.String())
}

func TestWrite(t *testing.T) {
	t.Run("attachment", func(t *testing.T) {
		ctx, w := newContext(http.MethodGet, "/")
		response.Render(ctx, response.Write("text/csv; charset=utf-8", "general.csv", func(w io.Writer) error {
			_, err := io.WriteString(w, "key,en\n")
			return err
		}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "key,en\n", w.Body.String())
		assert.Equal(t, "7", w.Header().Get("Content-Length"))
		assert.Equal(t, `attachment; filename=general.csv`, w.Header().Get("Content-Disposition"))
	})

	t.Run("error before any byte", func(t *testing.T) {
		boom := errors.New("boom")
		resp := response.Write("text/plain", "", func(w io.Writer) error {
			_, _ = io.WriteString(w, "partial")
			return boom
		})

		w := httptest.NewRecorder()
		err := resp(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.ErrorIs(t, err, boom)
		assert.Empty(t, w.Body.String())
		assert.False(t, w.Flushed)
	})
}

type coded struct{ status int }

func (c coded) Error() string   { return "coded" }
func (c coded) StatusCode() int { return c.status }

func TestJSONErrorHandler(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"http error", response.ErrUnprocessableEntity.WithMessage("not an option set"), http.StatusUnprocessableEntity, "unprocessable_entity"},
		{"custom code", response.HTTPError{Status: http.StatusBadRequest, Code: "unsupported_locale", Message: "x"}, http.StatusBadRequest, "unsupported_locale"},
		{"wrapped http error", fmt.Errorf("wrap: %w", response.ErrNotFound), http.StatusNotFound, "not_found"},
		{"status code interface", fmt.Errorf("wrap: %w", coded{http.StatusServiceUnavailable}), http.StatusServiceUnavailable, "service_unavailable"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "internal_server_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, w := newContext(http.MethodGet, "/")
			response.JSONErrorHandler(ctx, tt.err)

			assert.Equal(t, tt.status, w.Code)
			var body response.HTTPError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
		})
	}
}

func TestHTTPError(t *testing.T) {
	err := response.ErrNotFound.WithError(errors.New("missing")).WithDetails(map[string]any{"key": "a.b"})
	assert.Equal(t, http.StatusNotFound, err.StatusCode())
	assert.Equal(t, "a.b", err.Details["key"])
	assert.Nil(t, response.ErrNotFound.Details, "predefined errors stay untouched")
}

func TestStatusError(t *testing.T) {
	tests := []struct {
		status int
		want   int
		code   string
	}{
		{http.StatusNotFound, http.StatusNotFound, "not_found"},
		{http.StatusMethodNotAllowed, http.StatusMethodNotAllowed, "method_not_allowed"},
		{http.StatusRequestURITooLong, http.StatusRequestURITooLong, "request_uri_too_long"},
		{http.StatusOK, http.StatusInternalServerError, "internal_server_error"},
		{799, http.StatusInternalServerError, "internal_server_error"},
	}
	for _, tt := range tests {
		err := response.StatusError(tt.status)
		assert.Equal(t, tt.want, err.Status)
		assert.Equal(t, tt.code, err.Code)
	}
}
