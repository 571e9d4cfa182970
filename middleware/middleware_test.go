package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcatalog/core/catalog"
	"github.com/dmitrymomot/formcatalog/core/handler"
	"github.com/dmitrymomot/formcatalog/core/logger"
	"github.com/dmitrymomot/formcatalog/core/response"
	"github.com/dmitrymomot/formcatalog/core/router"
	"github.com/dmitrymomot/formcatalog/middleware"
)

type Ctx = *router.Context

func newRouter(mws ...handler.Middleware[Ctx]) *router.Router[Ctx] {
	r := router.New[Ctx](router.WithErrorHandler(response.JSONErrorHandler[Ctx]))
	r.Use(mws...)
	r.Get("/echo", func(ctx Ctx) handler.Response {
		id, _ := middleware.GetRequestID(ctx)
		locale, _ := middleware.GetLocale(ctx)
		return response.JSON(map[string]string{"id": id, "locale": string(locale)})
	})
	r.Get("/fail", func(ctx Ctx) handler.Response {
		return response.Error(response.ErrNotFound)
	})
	return r
}

func get(h http.Handler, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var out map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestRequestID(t *testing.T) {
	t.Run("generates uuid", func(t *testing.T) {
		w := get(newRouter(middleware.RequestID[Ctx]()), "/echo", nil)
		id := w.Header().Get("X-Request-ID")
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, decode(t, w)["id"])
	})

	t.Run("header present on errors", func(t *testing.T) {
		w := get(newRouter(middleware.RequestID[Ctx]()), "/fail", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("keeps existing when configured", func(t *testing.T) {
		mw := middleware.RequestIDWithConfig[Ctx](middleware.RequestIDConfig{UseExisting: true})
		w := get(newRouter(mw), "/echo", map[string]string{"X-Request-ID": "abc"})
		assert.Equal(t, "abc", w.Header().Get("X-Request-ID"))
	})

	t.Run("ignores incoming by default", func(t *testing.T) {
		w := get(newRouter(middleware.RequestID[Ctx]()), "/echo", map[string]string{"X-Request-ID": "abc"})
		assert.NotEqual(t, "abc", w.Header().Get("X-Request-ID"))
	})
}

func TestLocale(t *testing.T) {
	r := newRouter(middleware.Locale[Ctx]())

	tests := []struct {
		name    string
		target  string
		headers map[string]string
		want    catalog.Locale
	}{
		{"default", "/echo", nil, catalog.English},
		{"accept-language", "/echo", map[string]string{"Accept-Language": "ta-IN,ta;q=0.9,en;q=0.5"}, catalog.Tamil},
		{"query wins", "/echo?locale=gu", map[string]string{"Accept-Language": "hi"}, catalog.Gujarati},
		{"invalid query falls back", "/echo?locale=fr", nil, catalog.English},
		{"unsupported header", "/echo", map[string]string{"Accept-Language": "fr-FR"}, catalog.English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, tt.target, tt.headers)
			assert.Equal(t, string(tt.want), decode(t, w)["locale"])
			assert.Equal(t, string(tt.want), w.Header().Get("Content-Language"))
		})
	}

	t.Run("custom default", func(t *testing.T) {
		r := newRouter(middleware.LocaleWithConfig[Ctx](middleware.LocaleConfig{Default: catalog.Hindi}))
		assert.Equal(t, "hi", decode(t, get(r, "/echo", nil))["locale"])
	})
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithProduction("test"), logger.WithOutput(&buf))
	r := newRouter(middleware.RequestID[Ctx](), middleware.Locale[Ctx](), middleware.Logging[Ctx](log))

	t.Run("success", func(t *testing.T) {
		buf.Reset()
		w := get(r, "/echo?locale=te", nil)

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "INFO", rec["level"])
		assert.Equal(t, "/echo", rec["path"])
		assert.EqualValues(t, http.StatusOK, rec["status_code"])
		assert.Equal(t, "te", rec["locale"])
		assert.Equal(t, w.Header().Get("X-Request-ID"), rec["request_id"])
	})

	t.Run("error status from returned error", func(t *testing.T) {
		buf.Reset()
		get(r, "/fail", nil)

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "WARN", rec["level"])
		assert.EqualValues(t, http.StatusNotFound, rec["status_code"])
		assert.NotEmpty(t, rec["error"])
	})

	t.Run("unknown route", func(t *testing.T) {
		buf.Reset()
		get(r, "/nowhere", nil)

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.EqualValues(t, http.StatusNotFound, rec["status_code"])
	})
}

func TestCORS(t *testing.T) {
	t.Run("any origin", func(t *testing.T) {
		r := newRouter(middleware.CORS[Ctx](middleware.CORSConfig{}))
		w := get(r, "/echo", map[string]string{"Origin": "https://forms.example.com"})
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "X-Request-ID")
	})

	r := newRouter(middleware.CORS[Ctx](middleware.CORSConfig{
		AllowOrigins: []string{"https://forms.example.com"},
		MaxAge:       600,
	}))

	t.Run("listed origin", func(t *testing.T) {
		w := get(r, "/echo", map[string]string{"Origin": "https://forms.example.com"})
		assert.Equal(t, "https://forms.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unlisted origin", func(t *testing.T) {
		w := get(r, "/echo", map[string]string{"Origin": "https://evil.example.com"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/echo", nil)
		req.Header.Set("Origin", "https://forms.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodGet)
		assert.Equal(t, "600", w.Header().Get("Access-Control-Max-Age"))
	})
}
