package health

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/formcatalog/core/handler"
	"github.com/dmitrymomot/formcatalog/core/logger"
	"github.com/dmitrymomot/formcatalog/core/response"
)

// Status values.
const (
	StatusAlive       = "alive"
	StatusReady       = "ready"
	StatusUnavailable = "unavailable"
)

// Check is a named dependency check.
type Check struct {
	Name string
	Fn   func(context.Context) error
}

// Status is the health response body.
type Status struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Readiness runs every check in order and reports each result.
// It answers 503 if any check fails. Checks with a nil Fn are skipped,
// so optional dependencies can be passed unconditionally.
func Readiness[C handler.Context](log *slog.Logger, checks ...Check) handler.HandlerFunc[C] {
	if log == nil {
		log = logger.Discard()
	}

	return func(ctx C) handler.Response {
		body := Status{Status: StatusReady}
		for _, c := range checks {
			if c.Fn == nil {
				continue
			}
			if body.Checks == nil {
				body.Checks = make(map[string]string, len(checks))
			}

			start := time.Now()
			if err := c.Fn(ctx); err != nil {
				log.ErrorContext(ctx, "readiness check failed",
					logger.Component(c.Name),
					logger.Elapsed(start),
					logger.Error(err),
				)
				body.Checks[c.Name] = err.Error()
				body.Status = StatusUnavailable
				continue
			}
			body.Checks[c.Name] = "ok"
		}

		if body.Status != StatusReady {
			return response.JSONWithStatus(body, http.StatusServiceUnavailable)
		}
		return response.JSON(body)
	}
}
