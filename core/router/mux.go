package router

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrymomot/formcatalog/core/handler"
)

// Route describes a registered route.
type Route struct {
	Method  string
	Pattern string
}

// Option configures a Router during creation.
type Option[C handler.Context] func(*Router[C])

// WithErrorHandler sets a custom error handler for the router.
func WithErrorHandler[C handler.Context](h handler.ErrorHandler[C]) Option[C] {
	return func(m *Router[C]) {
		if h != nil {
			m.errorHandler = h
		}
	}
}

// WithMiddleware adds middleware to the router.
func WithMiddleware[C handler.Context](middlewares ...handler.Middleware[C]) Option[C] {
	return func(m *Router[C]) {
		m.middlewares = append(m.middlewares, middlewares...)
	}
}

// WithContextFactory sets a custom context factory. Required unless C is *Context.
func WithContextFactory[C handler.Context](f func(http.ResponseWriter, *http.Request) C) Option[C] {
	return func(m *Router[C]) {
		m.newContext = f
	}
}

// WithLogger sets the logger used for panics that happen after the response started.
func WithLogger[C handler.Context](logger *slog.Logger) Option[C] {
	return func(m *Router[C]) {
		if logger != nil {
			m.logger = logger
		}
	}
}

var methods = []string{
	http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
	http.MethodPatch, http.MethodDelete, http.MethodOptions,
}

// Router dispatches requests through http.ServeMux patterns to typed handlers.
// Unknown paths and disallowed methods go through the error handler.
type Router[C handler.Context] struct {
	mux          *http.ServeMux
	middlewares  []handler.Middleware[C]
	errorHandler handler.ErrorHandler[C]
	newContext   func(http.ResponseWriter, *http.Request) C
	logger       *slog.Logger

	mu     sync.RWMutex
	routes []Route
	sealed bool
}

// New creates a router with the given options.
func New[C handler.Context](opts ...Option[C]) *Router[C] {
	m := &Router[C]{
		mux:          http.NewServeMux(),
		errorHandler: defaultErrorHandler[C],
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.newContext == nil {
		m.newContext = func(w http.ResponseWriter, r *http.Request) C {
			var zero C
			if _, ok := any(zero).(*Context); ok {
				return any(NewContext(w, r)).(C)
			}
			panic(ErrNoContextFactory)
		}
	}

	m.mux.Handle("/", m.serve(m.fallback, true))

	return m
}

// ServeHTTP implements http.Handler.
func (m *Router[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.mux.ServeHTTP(w, r)
}

// Use appends middleware. All middleware must be added before the first route.
func (m *Router[C]) Use(middlewares ...handler.Middleware[C]) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sealed {
		panic("router: all middlewares must be defined before routes")
	}
	m.middlewares = append(m.middlewares, middlewares...)
}

// Get registers a handler for GET (and HEAD) requests.
func (m *Router[C]) Get(pattern string, h handler.HandlerFunc[C]) {
	m.Method(http.MethodGet, pattern, h)
}

// Post registers a handler for POST requests.
func (m *Router[C]) Post(pattern string, h handler.HandlerFunc[C]) {
	m.Method(http.MethodPost, pattern, h)
}

// Method registers a handler for one HTTP method. pattern uses the
// http.ServeMux syntax without the method, e.g. "/v1/items/{id}".
func (m *Router[C]) Method(method, pattern string, h handler.HandlerFunc[C]) {
	method = strings.ToUpper(method)
	if !slices.Contains(methods, method) {
		panic(fmt.Errorf("%w: %s", ErrInvalidMethod, method))
	}
	if pattern == "" || pattern[0] != '/' {
		panic(fmt.Errorf("%w: '%s'", ErrInvalidPattern, pattern))
	}

	m.mu.Lock()
	m.sealed = true
	m.routes = append(m.routes, Route{Method: method, Pattern: pattern})
	m.mu.Unlock()

	m.mux.Handle(method+" "+pattern, m.serve(h, false))
}

// Group registers routes under a common path prefix with extra middleware
// that applies to those routes only.
func (m *Router[C]) Group(prefix string, fn func(g *Group[C]), middlewares ...handler.Middleware[C]) {
	fn(&Group[C]{router: m, prefix: strings.TrimSuffix(prefix, "/"), middlewares: middlewares})
}

// Routes returns the registered routes in registration order.
func (m *Router[C]) Routes() []Route {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.routes)
}

// serve adapts a typed handler to net/http. Router middleware wraps every
// handler, including the not-found fallback.
func (m *Router[C]) serve(h handler.HandlerFunc[C], fallback bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := newResponseWriter(w)
		ctx := m.newContext(ww, r)

		defer func() {
			if p := recover(); p != nil {
				panicErr := &panicError{value: p, stack: debug.Stack()}
				if ww.Written() {
					m.logger.Error("panic after response written",
						"value", panicErr.value,
						"stack", string(panicErr.stack),
						"path", r.URL.Path,
						"method", r.Method,
						"status", ww.Status(),
					)
					return
				}
				m.errorHandler(ctx, panicErr)
			}
		}()

		m.mu.RLock()
		mws := m.middlewares
		m.mu.RUnlock()

		fn := h
		if len(mws) > 0 {
			fn = handler.Chain(h, mws...)
		}

		resp := fn(ctx)
		if resp == nil {
			m.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := resp(ww, ctx.Request()); err != nil {
			m.errorHandler(ctx, err)
		}
	})
}

// fallback answers requests no pattern matched: 405 with an Allow header
// when the path exists for another method, 404 otherwise.
func (m *Router[C]) fallback(ctx C) handler.Response {
	r := ctx.Request()

	var allowed []string
	for _, method := range methods {
		if method == r.Method {
			continue
		}
		alt := r.Clone(r.Context())
		alt.Method = method
		if _, pattern := m.mux.Handler(alt); pattern != "" && pattern != "/" {
			allowed = append(allowed, method)
		}
	}

	return func(w http.ResponseWriter, _ *http.Request) error {
		if len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
			return ErrMethodNotAllowed
		}
		return ErrNotFound
	}
}

// Group is a set of routes sharing a path prefix and middleware.
type Group[C handler.Context] struct {
	router      *Router[C]
	prefix      string
	middlewares []handler.Middleware[C]
}

// Get registers a GET handler relative to the group prefix.
func (g *Group[C]) Get(pattern string, h handler.HandlerFunc[C]) {
	g.Method(http.MethodGet, pattern, h)
}

// Post registers a POST handler relative to the group prefix.
func (g *Group[C]) Post(pattern string, h handler.HandlerFunc[C]) {
	g.Method(http.MethodPost, pattern, h)
}

// Method registers a handler relative to the group prefix.
func (g *Group[C]) Method(method, pattern string, h handler.HandlerFunc[C]) {
	if len(g.middlewares) > 0 {
		h = handler.Chain(h, g.middlewares...)
	}
	g.router.Method(method, g.prefix+pattern, h)
}
