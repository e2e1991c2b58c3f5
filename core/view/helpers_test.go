package view_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"

	"github.com/dmitrymomot/viewkit/core/view"
)

func writeTemplate(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// recordingEngine captures what the view hands to the engine.
type recordingEngine struct {
	roots   []string
	options map[string]any
	name    string
	data    map[string]any
}

func (e *recordingEngine) Render(_ context.Context, name string, data map[string]any) (string, error) {
	e.name = name
	e.data = data
	return "rendered " + name, nil
}

func recordingFactory(rec *recordingEngine) view.EngineFactory {
	return func(roots []string, options map[string]any) (view.Engine, error) {
		rec.roots = roots
		rec.options = options
		return rec, nil
	}
}

type engineFunc func(ctx context.Context, name string, data map[string]any) (string, error)

func (f engineFunc) Render(ctx context.Context, name string, data map[string]any) (string, error) {
	return f(ctx, name, data)
}

func attrString(key, value string) attribute.KeyValue {
	return attribute.String(key, value)
}
