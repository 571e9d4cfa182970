package middleware

import (
	"context"

	"github.com/dmitrymomot/formcatalog/core/catalog"
	"github.com/dmitrymomot/formcatalog/core/handler"
)

type localeContextKey struct{}

// LocaleConfig configures the locale middleware.
type LocaleConfig struct {
	// Skip bypasses the middleware for matching requests.
	Skip func(ctx handler.Context) bool
	// QueryParam overrides negotiation when present and valid (default: "locale").
	QueryParam string
	// Default is used when nothing matches (default: catalog.DefaultLocale).
	Default catalog.Locale
}

// Locale resolves the request locale and stores it in the context.
// An explicit ?locale= wins; otherwise Accept-Language is negotiated
// against the supported locales. The result is echoed in Content-Language.
func Locale[C handler.Context]() handler.Middleware[C] {
	return LocaleWithConfig[C](LocaleConfig{})
}

// LocaleWithConfig creates a locale middleware with custom configuration.
func LocaleWithConfig[C handler.Context](cfg LocaleConfig) handler.Middleware[C] {
	if cfg.QueryParam == "" {
		cfg.QueryParam = "locale"
	}
	if !cfg.Default.Valid() {
		cfg.Default = catalog.DefaultLocale
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			req := ctx.Request()
			locale := cfg.Default

			if q := req.URL.Query().Get(cfg.QueryParam); q != "" {
				if l, err := catalog.ParseLocale(q); err == nil {
					locale = l
				}
			} else if header := req.Header.Get("Accept-Language"); header != "" {
				locale = catalog.MatchLocale(header)
			}

			ctx.SetValue(localeContextKey{}, locale)
			ctx.ResponseWriter().Header().Set("Content-Language", string(locale))

			return next(ctx)
		}
	}
}

// GetLocale returns the locale stored by Locale.
func GetLocale(ctx context.Context) (catalog.Locale, bool) {
	l, ok := ctx.Value(localeContextKey{}).(catalog.Locale)
	return l, ok
}
