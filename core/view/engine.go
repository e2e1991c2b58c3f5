package view

import (
	"context"

	"github.com/dmitrymomot/viewkit/core/view/component"
	"github.com/dmitrymomot/viewkit/core/view/gotmpl"
	"github.com/dmitrymomot/viewkit/core/view/pongo"
)

// Engine renders a template found under the configured roots.
// A single Engine serves every request, so Render must be safe for
// concurrent use. Engines are configured before the first render and
// treated as read-only afterwards.
type Engine interface {
	Render(ctx context.Context, name string, data map[string]any) (string, error)
}

// EngineFactory builds an Engine for the given absolute roots.
// options is the caller's engine configuration, passed through untouched.
type EngineFactory func(roots []string, options map[string]any) (Engine, error)

// PongoEngine is the default factory: Django/Jinja-style templates via pongo2.
func PongoEngine(roots []string, options map[string]any) (Engine, error) {
	e, err := pongo.New(roots, options)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// GoTemplateEngine builds an html/template engine.
func GoTemplateEngine(roots []string, options map[string]any) (Engine, error) {
	e, err := gotmpl.New(roots, options)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// ComponentEngine returns a factory for compiled templ components keyed by
// template name. Roots are not used.
func ComponentEngine(components map[string]component.Func) EngineFactory {
	return func(_ []string, options map[string]any) (Engine, error) {
		e, err := component.New(components, options)
		if err != nil {
			return nil, err
		}
		return e, nil
	}
}
