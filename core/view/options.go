package view

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// Option configures a View.
type Option func(*settings)

// WithExt sets the extension appended to template names.
// An empty ext means names are used verbatim.
func WithExt(ext string) Option {
	return func(s *settings) {
		s.ext = ext
	}
}

// WithPath sets the template roots, searched in the given order.
func WithPath(paths ...string) Option {
	return func(s *settings) {
		s.paths = append([]string(nil), paths...)
	}
}

// WithWriteResponse controls whether renders become the response body.
func WithWriteResponse(write bool) Option {
	return func(s *settings) {
		s.writeResponse = write
	}
}

// WithFunctionName sets the name the render function is installed under.
func WithFunctionName(name string) Option {
	return func(s *settings) {
		if name != "" {
			s.functionName = name
		}
	}
}

// WithEngineConfig passes options to the engine factory untouched.
func WithEngineConfig(cfg map[string]any) Option {
	return func(s *settings) {
		s.engineConfig = cfg
	}
}

// WithConfigureEngine sets a hook called once with the engine after it is
// built, e.g. to register template functions. A non-nil error aborts construction.
func WithConfigureEngine(fn func(Engine) error) Option {
	return func(s *settings) {
		s.configureEngine = fn
	}
}

// WithMergeStrategy selects how request state and variables are combined.
func WithMergeStrategy(m MergeStrategy) Option {
	return func(s *settings) {
		if m != "" {
			s.merge = m
		}
	}
}

// WithEngineFactory replaces the default pongo2 engine.
func WithEngineFactory(f EngineFactory) Option {
	return func(s *settings) {
		if f != nil {
			s.factory = f
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTracerProvider sets the provider for render spans.
// The default is the global otel provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *settings) {
		if tp != nil {
			s.tracerProvider = tp
		}
	}
}
