// Package response provides handler.Response constructors for plain text,
// HTML and error responses.
//
//	r.Get("/", func(ctx *router.Context) handler.Response {
//		return response.HTML("<p>hi</p>")
//	})
//
// Error responses are not written directly; the error is returned from the
// response function so the router's error handler decides the status code.
package response
