package view

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/dmitrymomot/viewkit/core/logger"
	"github.com/dmitrymomot/viewkit/pkg/async"
)

const tracerName = "github.com/dmitrymomot/viewkit/core/view"

// View is a resolved, immutable rendering configuration bound to its engine.
// It is safe for concurrent use by any number of requests.
type View struct {
	ext           string
	roots         []string
	writeResponse bool
	functionName  string
	merge         MergeStrategy
	engineConfig  map[string]any
	engine        Engine
	logger        *slog.Logger
	tracer        trace.Tracer
}

// New builds a View from functional options over the defaults.
func New(opts ...Option) (*View, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(s)
	}
	return build(s)
}

func build(s *settings) (*View, error) {
	if _, err := ParseMergeStrategy(string(s.merge)); err != nil {
		return nil, &ConfigError{Kind: InvalidOption, Detail: err.Error()}
	}

	roots, err := NormalizeRoots(s.paths...)
	if err != nil {
		return nil, err
	}

	engineConfig := maps.Clone(s.engineConfig)
	if engineConfig == nil {
		engineConfig = map[string]any{}
	}

	engine, err := s.factory(roots, maps.Clone(engineConfig))
	if err != nil {
		return nil, err
	}
	if s.configureEngine != nil {
		if err := s.configureEngine(engine); err != nil {
			return nil, err
		}
	}

	log := s.logger
	if log == nil {
		log = logger.Nop()
	}
	tp := s.tracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	v := &View{
		ext:           NormalizeExt(s.ext),
		roots:         roots,
		writeResponse: s.writeResponse,
		functionName:  s.functionName,
		merge:         s.merge,
		engineConfig:  engineConfig,
		engine:        engine,
		logger:        log,
		tracer:        tp.Tracer(tracerName),
	}

	log.Info("template engine configured",
		logger.Component("view"),
		logger.Key("roots", roots),
		logger.Key("ext", v.ext),
		logger.Key("function", v.functionName),
		logger.Key("merge", v.merge.String()),
	)

	return v, nil
}

// Ext returns the normalized extension, "" when names are used verbatim.
func (v *View) Ext() string { return v.ext }

// Roots returns a copy of the absolute template roots in search order.
func (v *View) Roots() []string { return append([]string(nil), v.roots...) }

// WriteResponse reports whether renders become the pending response body.
func (v *View) WriteResponse() bool { return v.writeResponse }

// FunctionName returns the name the render function is installed under.
func (v *View) FunctionName() string { return v.functionName }

// MergeStrategy returns how request state and render variables are combined.
func (v *View) MergeStrategy() MergeStrategy { return v.merge }

// EngineConfig returns a copy of the options handed to the engine factory.
func (v *View) EngineConfig() map[string]any { return maps.Clone(v.engineConfig) }

// Engine returns the shared engine handle.
func (v *View) Engine() Engine { return v.engine }

// Check reports whether every template root is still a readable directory.
// It fits health.Readiness.
func (v *View) Check(ctx context.Context) error {
	for _, root := range v.roots {
		if err := ctx.Err(); err != nil {
			return err
		}
		info, err := os.Stat(root)
		if err != nil {
			return fmt.Errorf("view: template root: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("view: template root %s is not a directory", root)
		}
	}
	return nil
}

// Render renders name with vars layered over state, outside any request
// pipeline. Engine errors are returned unchanged.
func (v *View) Render(ctx context.Context, name string, state, vars map[string]any) (string, error) {
	return v.render(ctx, name, state, vars)
}

// render merges, appends the extension and runs the engine in its own
// goroutine. If ctx ends first the pending render is abandoned.
func (v *View) render(ctx context.Context, name string, state, vars map[string]any) (string, error) {
	data := v.merge.merge(state, vars)
	path := name + v.ext

	ctx, span := v.tracer.Start(ctx, "view.render",
		trace.WithAttributes(
			attribute.String("view.template", path),
			attribute.String("view.function", v.functionName),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)

	start := time.Now()
	html, err := async.Async(ctx, path, func(ctx context.Context, path string) (string, error) {
		return v.engine.Render(ctx, path, data)
	}).AwaitContext(ctx)

	endSpan(span, err)
	if err != nil {
		v.logger.DebugContext(ctx, "template render failed",
			logger.Component("view"),
			logger.Template(path),
			logger.Error(err),
		)
		return "", err
	}

	v.logger.DebugContext(ctx, "template rendered",
		logger.Component("view"),
		logger.Template(path),
		logger.Elapsed(start),
	)
	return html, nil
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
