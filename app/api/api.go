// Package api serves the translation catalogs over HTTP as a read-only JSON API.
package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/formcatalog/core/catalog"
	"github.com/dmitrymomot/formcatalog/core/handler"
	"github.com/dmitrymomot/formcatalog/core/health"
	"github.com/dmitrymomot/formcatalog/core/logger"
	"github.com/dmitrymomot/formcatalog/core/response"
	"github.com/dmitrymomot/formcatalog/core/router"
	"github.com/dmitrymomot/formcatalog/forms"
	"github.com/dmitrymomot/formcatalog/middleware"
)

// Ctx is the request context type used by every handler in this package.
type Ctx = *router.Context

// API is the catalog read API. It implements http.Handler.
type API struct {
	catalogs []*catalog.Catalog
	byName   map[string]*catalog.Catalog
	checks   []health.Check
	cors     *middleware.CORSConfig
	locale   catalog.Locale
	logger   *slog.Logger
	router   *router.Router[Ctx]
}

// Option configures an API.
type Option func(*API) error

// WithLogger sets the request and error logger.
func WithLogger(log *slog.Logger) Option {
	return func(a *API) error {
		if log == nil {
			return errors.New("api: logger cannot be nil")
		}
		a.logger = log
		return nil
	}
}

// WithCatalogs replaces the served catalogs. Defaults to forms.All().
func WithCatalogs(cs ...*catalog.Catalog) Option {
	return func(a *API) error {
		if len(cs) == 0 {
			return errors.New("api: at least one catalog is required")
		}
		a.catalogs = cs
		return nil
	}
}

// WithHealthChecks adds readiness checks to GET /health.
func WithHealthChecks(checks ...health.Check) Option {
	return func(a *API) error {
		a.checks = append(a.checks, checks...)
		return nil
	}
}

// WithCORS enables cross-origin access for browser frontends.
func WithCORS(cfg middleware.CORSConfig) Option {
	return func(a *API) error {
		a.cors = &cfg
		return nil
	}
}

// WithDefaultLocale sets the locale used when a request expresses no preference.
func WithDefaultLocale(l catalog.Locale) Option {
	return func(a *API) error {
		if !l.Valid() {
			return &catalog.UnsupportedLocaleError{Locale: string(l)}
		}
		a.locale = l
		return nil
	}
}

// New builds the API and registers its routes.
func New(opts ...Option) (*API, error) {
	a := &API{
		catalogs: forms.All(),
		locale:   catalog.DefaultLocale,
		logger:   logger.Discard(),
	}

	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	a.byName = make(map[string]*catalog.Catalog, len(a.catalogs))
	for _, c := range a.catalogs {
		if _, dup := a.byName[c.Name()]; dup {
			return nil, errors.New("api: duplicate catalog " + c.Name())
		}
		a.byName[c.Name()] = c
	}

	mws := []handler.Middleware[Ctx]{
		middleware.RequestID[Ctx](),
		middleware.LocaleWithConfig[Ctx](middleware.LocaleConfig{Default: a.locale}),
		middleware.Logging[Ctx](a.logger),
	}
	if a.cors != nil {
		mws = append([]handler.Middleware[Ctx]{middleware.CORS[Ctx](*a.cors)}, mws...)
	}

	a.router = router.New[Ctx](
		router.WithErrorHandler(response.JSONErrorHandler[Ctx]),
		router.WithLogger[Ctx](a.logger),
		router.WithMiddleware(mws...),
	)
	a.routes()

	return a, nil
}

func (a *API) routes() {
	a.router.Get("/health", health.Readiness[Ctx](a.logger, a.checks...))
	a.router.Get("/health/live", health.Liveness[Ctx])

	a.router.Group("/v1", func(g *router.Group[Ctx]) {
		g.Get("/locales", a.listLocales)
		g.Get("/catalogs", a.listCatalogs)
		g.Get("/catalogs/{catalog}", a.describeCatalog)
		g.Get("/catalogs/{catalog}/lookup", a.lookup)
		g.Get("/catalogs/{catalog}/entries/{path...}", a.entry)
		g.Get("/catalogs/{catalog}/options/{path...}", a.options)
		g.Get("/catalogs/{catalog}/bundle/{locale}", a.bundle)
		g.Get("/catalogs/{catalog}/export.csv", a.exportCSV)
		g.Get("/catalogs/{catalog}/export.yaml", a.exportYAML)
	})
}

// ServeHTTP implements http.Handler.
func (a *API) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

// Routes lists the registered routes.
func (a *API) Routes() []router.Route {
	return a.router.Routes()
}
