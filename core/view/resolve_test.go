package view_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/viewkit/core/view"
)

func TestResolve_Defaults(t *testing.T) {
	t.Parallel()

	rec := &recordingEngine{}
	v, err := view.Resolve(map[string]any{}, view.WithEngineFactory(recordingFactory(rec)))
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)

	assert.Equal(t, ".html", v.Ext())
	assert.Equal(t, []string{cwd}, v.Roots())
	assert.True(t, v.WriteResponse())
	assert.Equal(t, "render", v.FunctionName())
	assert.Equal(t, view.MergeDeep, v.MergeStrategy())
	assert.Empty(t, v.EngineConfig())
	assert.Equal(t, []string{cwd}, rec.roots)
	assert.NotNil(t, rec.options)
	assert.Same(t, rec, v.Engine())
}

func TestResolve_NilMapUsesDefaults(t *testing.T) {
	t.Parallel()

	v, err := view.Resolve(nil, view.WithEngineFactory(recordingFactory(&recordingEngine{})))
	require.NoError(t, err)
	assert.Equal(t, ".html", v.Ext())
}

func TestResolve_UnknownKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		raw    map[string]any
		detail string
	}{
		{
			name:   "single",
			raw:    map[string]any{"foo": 1},
			detail: "foo",
		},
		{
			name:   "sorted list",
			raw:    map[string]any{"zeta": 1, "alpha": 2, "path": "x"},
			detail: "alpha, zeta",
		},
		{
			name:   "legacy keys",
			raw:    map[string]any{"writeResp": false, "autoescape": true, "noCache": true},
			detail: "autoescape, noCache, writeResp",
		},
		{
			name:   "case sensitive",
			raw:    map[string]any{"Ext": "html"},
			detail: "Ext",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			called := false
			factory := func([]string, map[string]any) (view.Engine, error) {
				called = true
				return &recordingEngine{}, nil
			}

			_, err := view.Resolve(tt.raw, view.WithEngineFactory(factory))
			require.Error(t, err)
			assert.ErrorIs(t, err, view.ErrUnknownOption)

			var cfgErr *view.ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, view.UnknownOption, cfgErr.Kind)
			assert.Equal(t, tt.detail, cfgErr.Detail)
			assert.Equal(t, "view: unknown option: "+tt.detail, err.Error())
			assert.False(t, called, "engine must not be built")
		})
	}
}

func TestResolve_InvalidValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  map[string]any
	}{
		{"ext true", map[string]any{"ext": true}},
		{"ext number", map[string]any{"ext": 1}},
		{"path number", map[string]any{"path": 42}},
		{"path mixed list", map[string]any{"path": []any{"a", 1}}},
		{"writeResponse string", map[string]any{"writeResponse": "yes"}},
		{"functionName empty", map[string]any{"functionName": ""}},
		{"functionName number", map[string]any{"functionName": 7}},
		{"engineConfig list", map[string]any{"engineConfig": []string{"a"}}},
		{"configureEngine string", map[string]any{"configureEngine": "fn"}},
		{"merge unknown", map[string]any{"merge": "replace"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := view.Resolve(tt.raw, view.WithEngineFactory(recordingFactory(&recordingEngine{})))
			require.Error(t, err)
			assert.ErrorIs(t, err, view.ErrInvalidOption)
			assert.NotErrorIs(t, err, view.ErrUnknownOption)
		})
	}
}

func TestResolve_Ext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ext  any
		want string
	}{
		{"bare", "njk", ".njk"},
		{"dotted", ".njk", ".njk"},
		{"empty", "", ""},
		{"false", false, ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v, err := view.Resolve(map[string]any{"ext": tt.ext}, view.WithEngineFactory(recordingFactory(&recordingEngine{})))
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Ext())
		})
	}
}

func TestNormalizeExt(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"html", ".html", "tpl.html", ""} {
		once := view.NormalizeExt(in)
		assert.Equal(t, once, view.NormalizeExt(once), in)
	}
	assert.Equal(t, ".tpl.html", view.NormalizeExt("tpl.html"))
}

func TestResolve_Path(t *testing.T) {
	t.Parallel()

	t.Run("single equals one element list", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		single, err := view.Resolve(map[string]any{"path": dir}, view.WithEngineFactory(recordingFactory(&recordingEngine{})))
		require.NoError(t, err)
		list, err := view.Resolve(map[string]any{"path": []string{dir}}, view.WithEngineFactory(recordingFactory(&recordingEngine{})))
		require.NoError(t, err)

		assert.Equal(t, list.Roots(), single.Roots())
	})

	t.Run("order kept and absolute", func(t *testing.T) {
		t.Parallel()

		a, b := t.TempDir(), t.TempDir()
		v, err := view.Resolve(map[string]any{"path": []any{b, a, "templates"}}, view.WithEngineFactory(recordingFactory(&recordingEngine{})))
		require.NoError(t, err)

		roots := v.Roots()
		require.Len(t, roots, 3)
		assert.Equal(t, b, roots[0])
		assert.Equal(t, a, roots[1])
		assert.True(t, filepath.IsAbs(roots[2]))
		assert.Equal(t, "templates", filepath.Base(roots[2]))
	})

	t.Run("roots are copied", func(t *testing.T) {
		t.Parallel()

		v, err := view.Resolve(map[string]any{"path": t.TempDir()}, view.WithEngineFactory(recordingFactory(&recordingEngine{})))
		require.NoError(t, err)

		roots := v.Roots()
		roots[0] = "mutated"
		assert.NotEqual(t, "mutated", v.Roots()[0])
	})
}

func TestResolve_EngineConfig(t *testing.T) {
	t.Parallel()

	cfg := map[string]any{"noCache": true, "custom": "x"}
	rec := &recordingEngine{}
	v, err := view.Resolve(map[string]any{"engineConfig": cfg}, view.WithEngineFactory(recordingFactory(rec)))
	require.NoError(t, err)

	assert.Equal(t, cfg, rec.options)
	assert.Equal(t, cfg, v.EngineConfig())

	cfg["custom"] = "changed"
	assert.Equal(t, "x", v.EngineConfig()["custom"])
}

func TestResolve_RawOverridesOptions(t *testing.T) {
	t.Parallel()

	v, err := view.Resolve(
		map[string]any{"functionName": "page", "merge": "shallow"},
		view.WithFunctionName("other"),
		view.WithWriteResponse(false),
		view.WithEngineFactory(recordingFactory(&recordingEngine{})),
	)
	require.NoError(t, err)

	assert.Equal(t, "page", v.FunctionName())
	assert.Equal(t, view.MergeShallow, v.MergeStrategy())
	assert.False(t, v.WriteResponse())
}

func TestResolve_ConfigureEngine(t *testing.T) {
	t.Parallel()

	t.Run("called once with the engine", func(t *testing.T) {
		t.Parallel()

		rec := &recordingEngine{}
		var got []view.Engine
		_, err := view.Resolve(map[string]any{
			"configureEngine": func(e view.Engine) error {
				got = append(got, e)
				return nil
			},
		}, view.WithEngineFactory(recordingFactory(rec)))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Same(t, rec, got[0])
	})

	t.Run("plain func accepted", func(t *testing.T) {
		t.Parallel()

		called := false
		_, err := view.Resolve(map[string]any{
			"configureEngine": func(view.Engine) { called = true },
		}, view.WithEngineFactory(recordingFactory(&recordingEngine{})))
		require.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("error propagates unchanged", func(t *testing.T) {
		t.Parallel()

		hookErr := errors.New("bad filter")
		_, err := view.Resolve(map[string]any{
			"configureEngine": func(view.Engine) error { return hookErr },
		}, view.WithEngineFactory(recordingFactory(&recordingEngine{})))
		assert.Same(t, hookErr, err)
	})
}

func TestResolve_EngineFactoryError(t *testing.T) {
	t.Parallel()

	factoryErr := errors.New("engine failed")
	_, err := view.Resolve(map[string]any{}, view.WithEngineFactory(func([]string, map[string]any) (view.Engine, error) {
		return nil, factoryErr
	}))
	assert.Same(t, factoryErr, err)
}

func TestResolve_DefaultEngineRejectsMissingRoot(t *testing.T) {
	t.Parallel()

	_, err := view.Resolve(map[string]any{"path": filepath.Join(t.TempDir(), "missing")})
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	t.Run("yaml options", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		tplDir := filepath.Join(dir, "views")
		require.NoError(t, os.Mkdir(tplDir, 0o755))

		file := filepath.Join(dir, "view.yaml")
		content := "ext: tpl\n" +
			"path:\n  - " + tplDir + "\n" +
			"writeResponse: false\n" +
			"functionName: page\n" +
			"merge: shallow\n" +
			"engineConfig:\n  noCache: true\n"
		require.NoError(t, os.WriteFile(file, []byte(content), 0o644))

		v, err := view.LoadFile(file)
		require.NoError(t, err)

		assert.Equal(t, ".tpl", v.Ext())
		assert.Equal(t, []string{tplDir}, v.Roots())
		assert.False(t, v.WriteResponse())
		assert.Equal(t, "page", v.FunctionName())
		assert.Equal(t, view.MergeShallow, v.MergeStrategy())
		assert.Equal(t, map[string]any{"noCache": true}, v.EngineConfig())
	})

	t.Run("unknown key in file", func(t *testing.T) {
		t.Parallel()

		file := filepath.Join(t.TempDir(), "view.yaml")
		require.NoError(t, os.WriteFile(file, []byte("writeResp: true\n"), 0o644))

		_, err := view.LoadFile(file)
		assert.ErrorIs(t, err, view.ErrUnknownOption)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := view.LoadFile(filepath.Join(t.TempDir(), "none.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		file := filepath.Join(t.TempDir(), "view.yaml")
		require.NoError(t, os.WriteFile(file, []byte("path: [unclosed\n"), 0o644))

		_, err := view.LoadFile(file)
		assert.Error(t, err)
	})
}
