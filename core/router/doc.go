// Package router maps HTTP requests to typed handlers on top of the
// standard http.ServeMux pattern syntax.
//
//	r := router.New[*router.Context](
//		router.WithErrorHandler(response.JSONErrorHandler[*router.Context]),
//	)
//	r.Use(middleware.RequestID[*router.Context]())
//
//	r.Get("/health", health)
//	r.Group("/v1/catalogs/{catalog}", func(g *router.Group[*router.Context]) {
//		g.Get("/lookup", lookup)
//		g.Get("/entries/{path...}", entry)
//	})
//
// Path wildcards are read with ctx.Param. Requests no route matches are passed
// to the error handler as ErrNotFound, or ErrMethodNotAllowed with an Allow
// header when the path exists for another method. Panics in handlers are
// recovered and reported as PanicError.
//
// Middleware added with Use wraps every route, including the not-found
// fallback, and must be registered before the first route.
package router
