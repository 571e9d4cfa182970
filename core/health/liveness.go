package health

import (
	"github.com/dmitrymomot/formcatalog/core/handler"
	"github.com/dmitrymomot/formcatalog/core/response"
)

// Liveness always answers 200 with status "alive". No dependency checks.
func Liveness[C handler.Context](C) handler.Response {
	return response.JSON(Status{Status: StatusAlive})
}
