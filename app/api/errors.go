package api

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/formcatalog/core/catalog"
	"github.com/dmitrymomot/formcatalog/core/response"
)

var (
	errUnsupportedLocale = response.HTTPError{
		Status:  http.StatusBadRequest,
		Code:    "unsupported_locale",
		Message: "Unsupported locale",
	}
	errMissingKey = response.HTTPError{
		Status:  http.StatusNotFound,
		Code:    "missing_key",
		Message: "Key not found",
	}
	errNotOptionSet = response.HTTPError{
		Status:  http.StatusUnprocessableEntity,
		Code:    "not_option_set",
		Message: "Key is not an option set",
	}
	errCatalogNotFound = response.HTTPError{
		Status:  http.StatusNotFound,
		Code:    "catalog_not_found",
		Message: "Catalog not found",
	}
	errKeyRequired = response.ErrBadRequest.WithMessage("Query parameter 'key' is required")
)

// httpError maps catalog errors onto API error responses.
// Anything unknown is passed through and becomes a 500.
func httpError(err error) error {
	var (
		ul *catalog.UnsupportedLocaleError
		mk *catalog.MissingKeyError
	)

	switch {
	case errors.As(err, &ul):
		return errUnsupportedLocale.WithDetails(map[string]any{
			"locale":    ul.Locale,
			"supported": catalog.Locales(),
		})
	case errors.As(err, &mk):
		return errMissingKey.WithDetails(map[string]any{
			"catalog": mk.Catalog,
			"key":     mk.KeyPath,
			"group":   mk.Group,
		})
	case errors.Is(err, catalog.ErrNotOptionSet):
		return errNotOptionSet.WithError(err)
	}
	return err
}
