// Package router is a thin request pipeline on top of net/http's pattern
// matching. It adds generic handler contexts, an ordered middleware chain,
// panic recovery and a pluggable error handler.
//
//	r := router.New[*router.Context]()
//	r.Use(middleware.RequestID[*router.Context]())
//	r.Get("/users/{id}", func(ctx *router.Context) handler.Response {
//		return response.String("user " + ctx.Param("id"))
//	})
//	http.ListenAndServe(":8080", r)
//
// Patterns use the net/http syntax ("/posts/{slug}", "/static/{path...}").
// Routes registered with Get/Post/Put/Delete only match their method; Handle
// matches every method. Requests that match no pattern are answered by
// net/http (404 or 405).
//
// Handlers that return a nil Response, responses that return an error and
// recovered panics all go to the error handler. The default handler uses the
// error's StatusCode() method when present and 500 otherwise.
package router
