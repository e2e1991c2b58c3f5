package router

import (
	"net/http"

	"github.com/dmitrymomot/viewkit/core/handler"
)

// Router is the host request pipeline: it matches requests against
// net/http method patterns and runs them through the middleware chain.
type Router[C handler.Context] interface {
	http.Handler

	Get(pattern string, h handler.HandlerFunc[C])
	Post(pattern string, h handler.HandlerFunc[C])
	Put(pattern string, h handler.HandlerFunc[C])
	Delete(pattern string, h handler.HandlerFunc[C])

	// Handle registers h for every method.
	Handle(pattern string, h handler.HandlerFunc[C])

	// Use appends middleware. Middleware must be added before routes.
	Use(middlewares ...handler.Middleware[C])
}

// New creates a router. Without WithContextFactory the context type must be *Context.
func New[C handler.Context](opts ...Option[C]) Router[C] {
	return newMux[C](opts...)
}
