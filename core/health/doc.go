// Package health provides HTTP handlers for service health monitoring.
//
// Liveness reports that the process is up. Readiness runs named dependency
// checks and answers 503 when any of them fails:
//
//	r.Get("/health/live", health.Liveness[*router.Context])
//	r.Get("/health", health.Readiness[*router.Context](log,
//		health.Check{Name: "postgres", Fn: pg.Healthcheck(pool)},
//		health.Check{Name: "mongo", Fn: mongo.Healthcheck(client)},
//	))
//
// A check must follow the func(context.Context) error signature.
package health
