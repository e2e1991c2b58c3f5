// Package handler defines the request pipeline contract shared by the router,
// response helpers, middleware and the view renderer.
//
// Handlers receive a Context and return a Response. Responses are plain
// functions, so rendering is deferred until the whole middleware chain has
// returned:
//
//	func home(ctx handler.Context) handler.Response {
//		return response.HTML("<h1>Hello</h1>")
//	}
//
// Middleware is generic over the context type so custom contexts keep their
// concrete type through the chain:
//
//	func Timing[C handler.Context]() handler.Middleware[C] {
//		return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
//			return func(ctx C) handler.Response {
//				start := time.Now()
//				resp := next(ctx)
//				slog.Debug("handled", "elapsed", time.Since(start))
//				return resp
//			}
//		}
//	}
//
// Request-scoped values are stored with Context.SetValue and read back with
// Context.Value, exactly like context.Context values.
package handler
