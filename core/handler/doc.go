// Package handler defines the typed handler, middleware and context contracts
// shared by the router, the response helpers and the middleware packages.
//
// A handler decides what to send and returns it as a Response; the router
// executes the Response and routes any error it returns to the ErrorHandler:
//
//	func lookup(ctx *router.Context) handler.Response {
//		text, err := c.Lookup(ctx.Param("key"), catalog.English)
//		if err != nil {
//			return response.Error(err)
//		}
//		return response.JSON(map[string]string{"text": text})
//	}
//
// Middleware wraps a HandlerFunc and may store request-scoped values with
// Context.SetValue:
//
//	func Tag[C handler.Context](next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
//		return func(ctx C) handler.Response {
//			ctx.SetValue(tagKey{}, "v1")
//			return next(ctx)
//		}
//	}
package handler
