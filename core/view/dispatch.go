package view

import (
	"context"
	"sync"

	"github.com/dmitrymomot/viewkit/core/handler"
	"github.com/dmitrymomot/viewkit/core/response"
)

// RenderFunc is the per-request render capability. vars may be nil.
type RenderFunc func(name string, vars map[string]any) (string, error)

type renderKey struct{ name string }

type stateKey struct{}

// Middleware installs the view's RenderFunc on every request under
// FunctionName and then calls the next handler.
//
// If a render function with the same name is already installed the request
// fails with a DispatchError of kind NameCollision.
//
// With WriteResponse enabled each render call stores its output as the
// pending response body (the last call wins). The pending body is sent as
// text/html when the downstream handler returns a nil Response; a non-nil
// Response from downstream always takes precedence.
func Middleware[C handler.Context](v *View) handler.Middleware[C] {
	if v == nil {
		panic("view: middleware requires a non-nil view")
	}
	key := renderKey{name: v.functionName}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if ctx.Value(key) != nil {
				return response.Error(&DispatchError{
					Kind:   NameCollision,
					Detail: "ctx." + v.functionName + " is already defined",
				})
			}

			out := &pendingBody{}
			ctx.SetValue(key, RenderFunc(func(name string, vars map[string]any) (string, error) {
				html, err := v.render(ctx, name, State(ctx), vars)
				if err != nil {
					return "", err
				}
				if v.writeResponse {
					out.set(html)
				}
				return html, nil
			}))

			resp := next(ctx)
			if resp == nil {
				if body, ok := out.get(); ok {
					return response.HTML(body)
				}
			}
			return resp
		}
	}
}

// Lookup returns the render function installed under name.
func Lookup(ctx context.Context, name string) (RenderFunc, bool) {
	fn, ok := ctx.Value(renderKey{name: name}).(RenderFunc)
	return fn, ok
}

// Render calls the render function installed under DefaultFunctionName.
func Render(ctx context.Context, name string, vars map[string]any) (string, error) {
	fn, ok := Lookup(ctx, DefaultFunctionName)
	if !ok {
		return "", ErrNotInstalled
	}
	return fn(name, vars)
}

// SetState stores a request-scoped template variable. Every later render on
// the request sees it unless the caller passes the same key.
func SetState(ctx handler.Context, key string, val any) {
	st, ok := ctx.Value(stateKey{}).(map[string]any)
	if !ok {
		st = make(map[string]any)
		ctx.SetValue(stateKey{}, st)
	}
	st[key] = val
}

// State returns the request-scoped template variables, or nil if none were set.
// The map is live; treat it as read-only.
func State(ctx context.Context) map[string]any {
	st, _ := ctx.Value(stateKey{}).(map[string]any)
	return st
}

type pendingBody struct {
	mu      sync.Mutex
	body    string
	written bool
}

func (p *pendingBody) set(body string) {
	p.mu.Lock()
	p.body, p.written = body, true
	p.mu.Unlock()
}

func (p *pendingBody) get() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.body, p.written
}
