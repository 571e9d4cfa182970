package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcatalog/core/handler"
	"github.com/dmitrymomot/formcatalog/core/health"
	"github.com/dmitrymomot/formcatalog/core/router"
)

type Ctx = *router.Context

func call(h handler.HandlerFunc[Ctx]) (*httptest.ResponseRecorder, health.Status) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	_ = h(router.NewContext(w, r))(w, r)

	var body health.Status
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestLiveness(t *testing.T) {
	w, body := call(health.Liveness[Ctx])
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, health.StatusAlive, body.Status)
}

func TestReadiness(t *testing.T) {
	ok := func(context.Context) error { return nil }
	fail := func(context.Context) error { return errors.New("connection refused") }

	t.Run("no checks", func(t *testing.T) {
		h := health.Readiness[Ctx](nil)
		w, body := call(h)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, health.StatusReady, body.Status)
		assert.Empty(t, body.Checks)
	})

	t.Run("all pass, nil skipped", func(t *testing.T) {
		h := health.Readiness[Ctx](nil,
			health.Check{Name: "postgres", Fn: ok},
			health.Check{Name: "mongo"},
		)
		w, body := call(h)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, map[string]string{"postgres": "ok"}, body.Checks)
	})

	t.Run("one fails", func(t *testing.T) {
		h := health.Readiness[Ctx](nil,
			health.Check{Name: "postgres", Fn: ok},
			health.Check{Name: "mongo", Fn: fail},
		)
		w, body := call(h)
		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, health.StatusUnavailable, body.Status)
		assert.Equal(t, "ok", body.Checks["postgres"])
		assert.Equal(t, "connection refused", body.Checks["mongo"])
	})
}
