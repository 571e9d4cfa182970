package api

import (
	"io"

	"github.com/dmitrymomot/formcatalog/core/catalog"
	"github.com/dmitrymomot/formcatalog/core/handler"
	"github.com/dmitrymomot/formcatalog/core/response"
	"github.com/dmitrymomot/formcatalog/middleware"
	"github.com/dmitrymomot/formcatalog/pkg/export"
)

// CatalogInfo describes one served catalog.
type CatalogInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Entries     int    `json:"entries"`
	Checksum    string `json:"checksum"`
}

// LocalesResponse is the body of GET /v1/locales.
type LocalesResponse struct {
	Locales []catalog.Locale `json:"locales"`
	Default catalog.Locale   `json:"default"`
}

// TextResponse is the body of a single lookup.
type TextResponse struct {
	Catalog string         `json:"catalog"`
	Key     string         `json:"key"`
	Locale  catalog.Locale `json:"locale"`
	Text    string         `json:"text"`
}

// EntryResponse carries all five translations of a key.
type EntryResponse struct {
	Catalog string                  `json:"catalog"`
	Key     string                  `json:"key"`
	Text    catalog.LocalizedString `json:"text"`
}

// OptionsResponse is an option set resolved in one locale.
type OptionsResponse struct {
	Catalog string          `json:"catalog"`
	Key     string          `json:"key"`
	Locale  catalog.Locale  `json:"locale"`
	Options []catalog.Label `json:"options"`
}

func info(c *catalog.Catalog) CatalogInfo {
	return CatalogInfo{
		Name:        c.Name(),
		Description: c.Description(),
		Entries:     c.Len(),
		Checksum:    c.Checksum(),
	}
}

func (a *API) listLocales(ctx Ctx) handler.Response {
	return response.JSON(LocalesResponse{Locales: catalog.Locales(), Default: a.locale})
}

func (a *API) listCatalogs(ctx Ctx) handler.Response {
	out := make([]CatalogInfo, 0, len(a.catalogs))
	for _, c := range a.catalogs {
		out = append(out, info(c))
	}
	return response.JSON(out)
}

func (a *API) describeCatalog(ctx Ctx) handler.Response {
	c, err := a.catalog(ctx)
	if err != nil {
		return response.Error(err)
	}
	return response.JSON(info(c))
}

// lookup validates an explicit ?locale= strictly, unlike the locale
// middleware which ignores values it cannot use.
func (a *API) lookup(ctx Ctx) handler.Response {
	c, err := a.catalog(ctx)
	if err != nil {
		return response.Error(err)
	}

	key := ctx.Request().URL.Query().Get("key")
	if key == "" {
		return response.Error(errKeyRequired)
	}

	locale, err := a.requestLocale(ctx)
	if err != nil {
		return response.Error(httpError(err))
	}

	text, err := c.Lookup(key, locale)
	if err != nil {
		return response.Error(httpError(err))
	}

	return response.JSON(TextResponse{Catalog: c.Name(), Key: key, Locale: locale, Text: text})
}

func (a *API) entry(ctx Ctx) handler.Response {
	c, err := a.catalog(ctx)
	if err != nil {
		return response.Error(err)
	}

	key := ctx.Param("path")
	text, err := c.Entry(key)
	if err != nil {
		return response.Error(httpError(err))
	}

	return response.JSON(EntryResponse{Catalog: c.Name(), Key: key, Text: text})
}

func (a *API) options(ctx Ctx) handler.Response {
	c, err := a.catalog(ctx)
	if err != nil {
		return response.Error(err)
	}

	locale, err := a.requestLocale(ctx)
	if err != nil {
		return response.Error(httpError(err))
	}

	key := ctx.Param("path")
	labels, err := catalog.NewTranslator(c, locale).Options(key)
	if err != nil {
		return response.Error(httpError(err))
	}

	return response.JSON(OptionsResponse{Catalog: c.Name(), Key: key, Locale: locale, Options: labels})
}

func (a *API) bundle(ctx Ctx) handler.Response {
	c, err := a.catalog(ctx)
	if err != nil {
		return response.Error(err)
	}

	locale, err := catalog.ParseLocale(ctx.Param("locale"))
	if err != nil {
		return response.Error(httpError(err))
	}

	return response.Write("application/json; charset=utf-8", "", func(w io.Writer) error {
		return export.WriteJSON(w, c, locale)
	})
}

func (a *API) exportCSV(ctx Ctx) handler.Response {
	c, err := a.catalog(ctx)
	if err != nil {
		return response.Error(err)
	}

	return response.Write("text/csv; charset=utf-8", c.Name()+".csv", func(w io.Writer) error {
		return export.WriteCSV(w, c)
	})
}

func (a *API) exportYAML(ctx Ctx) handler.Response {
	c, err := a.catalog(ctx)
	if err != nil {
		return response.Error(err)
	}

	return response.Write("application/yaml; charset=utf-8", c.Name()+".yaml", func(w io.Writer) error {
		return export.WriteYAML(w, c)
	})
}

func (a *API) catalog(ctx Ctx) (*catalog.Catalog, error) {
	name := ctx.Param("catalog")
	c, ok := a.byName[name]
	if !ok {
		return nil, errCatalogNotFound.WithDetails(map[string]any{"catalog": name})
	}
	return c, nil
}

// requestLocale returns the explicit ?locale= value when present, otherwise
// the locale negotiated by the middleware.
func (a *API) requestLocale(ctx Ctx) (catalog.Locale, error) {
	if raw, ok := ctx.Request().URL.Query()["locale"]; ok {
		return catalog.ParseLocale(firstOf(raw))
	}
	if l, ok := middleware.GetLocale(ctx); ok {
		return l, nil
	}
	return a.locale, nil
}

func firstOf(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
