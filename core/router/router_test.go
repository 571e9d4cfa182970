package router_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcatalog/core/handler"
	"github.com/dmitrymomot/formcatalog/core/response"
	"github.com/dmitrymomot/formcatalog/core/router"
)

type Ctx = *router.Context

func text(s string) handler.Response { return response.String(s) }

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestRouting(t *testing.T) {
	r := router.New[Ctx]()
	r.Get("/hello", func(ctx Ctx) handler.Response { return text("hi") })
	r.Get("/items/{id}", func(ctx Ctx) handler.Response { return text("item " + ctx.Param("id")) })
	r.Get("/files/{path...}", func(ctx Ctx) handler.Response { return text(ctx.Param("path")) })

	t.Run("static", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/hello")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "hi", w.Body.String())
	})

	t.Run("param", func(t *testing.T) {
		assert.Equal(t, "item 42", serve(r, http.MethodGet, "/items/42").Body.String())
	})

	t.Run("remainder wildcard", func(t *testing.T) {
		assert.Equal(t, "a/b.c", serve(r, http.MethodGet, "/files/a/b.c").Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/nope")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/hello")
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.Contains(t, w.Header().Get("Allow"), http.MethodGet)
	})

	t.Run("routes", func(t *testing.T) {
		routes := r.Routes()
		require.Len(t, routes, 3)
		assert.Equal(t, router.Route{Method: http.MethodGet, Pattern: "/hello"}, routes[0])
	})
}

func TestMiddleware(t *testing.T) {
	var order []string
	mw := func(name string) handler.Middleware[Ctx] {
		return func(next handler.HandlerFunc[Ctx]) handler.HandlerFunc[Ctx] {
			return func(ctx Ctx) handler.Response {
				order = append(order, name)
				return next(ctx)
			}
		}
	}

	r := router.New[Ctx](router.WithMiddleware(mw("option")))
	r.Use(mw("use"))
	r.Group("/v1", func(g *router.Group[Ctx]) {
		g.Get("/x", func(ctx Ctx) handler.Response { return text("x") })
	}, mw("group"))

	t.Run("order", func(t *testing.T) {
		order = nil
		w := serve(r, http.MethodGet, "/v1/x")
		assert.Equal(t, "x", w.Body.String())
		assert.Equal(t, []string{"option", "use", "group"}, order)
	})

	t.Run("fallback runs router middleware", func(t *testing.T) {
		order = nil
		serve(r, http.MethodGet, "/missing")
		assert.Equal(t, []string{"option", "use"}, order)
	})

	t.Run("use after routes panics", func(t *testing.T) {
		assert.Panics(t, func() { r.Use(mw("late")) })
	})
}

type ctxKey struct{}

func TestSetValue(t *testing.T) {
	r := router.New[Ctx]()
	r.Use(func(next handler.HandlerFunc[Ctx]) handler.HandlerFunc[Ctx] {
		return func(ctx Ctx) handler.Response {
			ctx.SetValue(ctxKey{}, "hi")
			return next(ctx)
		}
	})
	r.Get("/", func(ctx Ctx) handler.Response {
		v, _ := ctx.Value(ctxKey{}).(string)
		return func(w http.ResponseWriter, req *http.Request) error {
			fromReq, _ := req.Context().Value(ctxKey{}).(string)
			_, err := w.Write([]byte(v + " " + fromReq))
			return err
		}
	})

	assert.Equal(t, "hi hi", serve(r, http.MethodGet, "/").Body.String())
}

func TestErrors(t *testing.T) {
	var handled error
	r := router.New[Ctx](router.WithErrorHandler(func(ctx Ctx, err error) {
		handled = err
		response.JSONErrorHandler(ctx, err)
	}))

	r.Get("/fail", func(ctx Ctx) handler.Response {
		return response.Error(response.ErrUnprocessableEntity)
	})
	r.Get("/nil", func(ctx Ctx) handler.Response { return nil })
	r.Get("/panic", func(ctx Ctx) handler.Response { panic("kaboom") })

	t.Run("response error", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/fail")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "unprocessable_entity")
	})

	t.Run("nil response", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/nil")
		assert.ErrorIs(t, handled, router.ErrNilResponse)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("panic", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/panic")
		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var pe router.PanicError
		require.True(t, errors.As(handled, &pe))
		assert.Equal(t, "kaboom", pe.Value())
		assert.NotEmpty(t, pe.Stack())
	})

	t.Run("not found through error handler", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/missing")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "application/json"))
	})
}

func TestDefaultErrorHandler(t *testing.T) {
	r := router.New[Ctx]()
	r.Get("/fail", func(ctx Ctx) handler.Response {
		return response.Error(errors.New("boom"))
	})

	w := serve(r, http.MethodGet, "/fail")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "boom")
}

func TestInvalidRegistration(t *testing.T) {
	r := router.New[Ctx]()
	assert.Panics(t, func() { r.Get("nope", func(ctx Ctx) handler.Response { return nil }) })
	assert.Panics(t, func() { r.Method("BREW", "/x", func(ctx Ctx) handler.Response { return nil }) })
}

func TestResponseStatus(t *testing.T) {
	var status int
	r := router.New[Ctx]()
	r.Use(func(next handler.HandlerFunc[Ctx]) handler.HandlerFunc[Ctx] {
		return func(ctx Ctx) handler.Response {
			resp := next(ctx)
			return func(w http.ResponseWriter, req *http.Request) error {
				err := resp(w, req)
				status = router.ResponseStatus(w)
				return err
			}
		}
	})
	r.Get("/teapot", func(ctx Ctx) handler.Response { return response.Status(http.StatusTeapot) })

	serve(r, http.MethodGet, "/teapot")
	assert.Equal(t, http.StatusTeapot, status)
	assert.Zero(t, router.ResponseStatus(httptest.NewRecorder()))
}
