package component

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/a-h/templ"
)

var (
	ErrUnknownOption     = errors.New("component: unknown engine option")
	ErrComponentNotFound = errors.New("component: not registered")
	ErrInvalidComponent  = errors.New("component: name and constructor are required")
)

// Func builds the component for one render from the merged template data.
type Func func(data map[string]any) templ.Component

// Engine renders registered templ components by name.
type Engine struct {
	mu         sync.RWMutex
	components map[string]Func
}

// New creates an engine with an initial set of components.
// This engine takes no options; any key in opts is rejected.
func New(components map[string]Func, opts map[string]any) (*Engine, error) {
	if len(opts) > 0 {
		keys := slices.Sorted(maps.Keys(opts))
		return nil, fmt.Errorf("%w: %s", ErrUnknownOption, strings.Join(keys, ", "))
	}

	e := &Engine{components: make(map[string]Func, len(components))}
	for name, fn := range components {
		if err := e.Register(name, fn); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Register adds or replaces the component for name.
func (e *Engine) Register(name string, fn Func) error {
	if name == "" || fn == nil {
		return ErrInvalidComponent
	}
	e.mu.Lock()
	e.components[name] = fn
	e.mu.Unlock()
	return nil
}

// Render builds the component for name and renders it with ctx.
func (e *Engine) Render(ctx context.Context, name string, data map[string]any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	e.mu.RLock()
	fn, ok := e.components[name]
	e.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrComponentNotFound, name)
	}

	var buf bytes.Buffer
	if err := fn(data).Render(ctx, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
