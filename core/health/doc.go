// Package health provides liveness and readiness handlers.
//
//	r.Get("/live", health.Liveness[*router.Context])
//	r.Get("/ready", health.Readiness[*router.Context](log, v.Check))
//
// Readiness checks have the signature func(context.Context) error.
package health
