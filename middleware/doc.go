// Package middleware provides request pipeline middleware that pairs with
// the view package.
//
// RequestID assigns a UUID to every request, echoes it in the X-Request-ID
// response header and, with StateKey set, exposes it to templates:
//
//	r.Use(
//		middleware.RequestIDWithConfig[*router.Context](middleware.RequestIDConfig{
//			StateKey: "request_id",
//		}),
//		middleware.Logging[*router.Context](),
//		view.Middleware[*router.Context](v),
//	)
//
// Logging writes one structured record per request after the response is
// written, including the request id when RequestID runs first.
//
// Register RequestID before view.Middleware so the state is in place for
// the first render, and Logging before view.Middleware so the rendered page
// is the response it measures.
package middleware
