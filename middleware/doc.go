// Package middleware provides the HTTP middleware used by the catalog API:
// request IDs, locale negotiation, access logging and CORS.
//
//	r.Use(
//		middleware.RequestID[*router.Context](),
//		middleware.Locale[*router.Context](),
//		middleware.Logging[*router.Context](log),
//		middleware.CORS[*router.Context](middleware.CORSConfig{}),
//	)
//
// Handlers read the negotiated locale with GetLocale and the request ID
// with GetRequestID.
package middleware
