package middleware_test

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/viewkit/core/handler"
	"github.com/dmitrymomot/viewkit/core/response"
	"github.com/dmitrymomot/viewkit/core/router"
	"github.com/dmitrymomot/viewkit/core/view"
	"github.com/dmitrymomot/viewkit/middleware"
)

func newLoggedRouter(cfg middleware.LoggingConfig, h handler.HandlerFunc[*router.Context]) (router.Router[*router.Context], *testLogHandler) {
	logs := &testLogHandler{}
	cfg.Logger = slog.New(logs)

	r := router.New[*router.Context]()
	r.Use(
		middleware.RequestIDWithConfig[*router.Context](middleware.RequestIDConfig{
			Generator: func() string { return "req-1" },
		}),
		middleware.LoggingWithConfig[*router.Context](cfg),
	)
	r.Get("/parks", h)
	return r, logs
}

func TestLoggingMiddleware(t *testing.T) {
	t.Parallel()

	r, logs := newLoggedRouter(middleware.LoggingConfig{}, func(ctx *router.Context) handler.Response {
		return response.String("hello")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/parks?state=ca", nil))
	require.Equal(t, http.StatusOK, w.Code)

	entry := logs.last(t)
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "request completed", entry["msg"])
	assert.Equal(t, "http", entry["component"])
	assert.Equal(t, http.MethodGet, entry["method"])
	assert.Equal(t, "/parks", entry["path"])
	assert.Equal(t, "state=ca", entry["query"])
	assert.EqualValues(t, http.StatusOK, entry["status_code"])
	assert.EqualValues(t, 5, entry["bytes_out"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Contains(t, entry, "duration")
}

func TestLoggingErrorResponse(t *testing.T) {
	t.Parallel()

	r, logs := newLoggedRouter(middleware.LoggingConfig{}, func(ctx *router.Context) handler.Response {
		return response.Error(errors.New("template missing"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/parks", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	entry := logs.last(t)
	assert.Equal(t, "ERROR", entry["level"])
	assert.EqualValues(t, http.StatusInternalServerError, entry["status_code"])
}

func TestLoggingClientError(t *testing.T) {
	t.Parallel()

	r, logs := newLoggedRouter(middleware.LoggingConfig{}, func(ctx *router.Context) handler.Response {
		return response.HTMLWithStatus("gone", http.StatusNotFound)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/parks", nil))
	assert.Equal(t, "WARN", logs.last(t)["level"])
}

func TestLoggingSlowRequest(t *testing.T) {
	t.Parallel()

	r, logs := newLoggedRouter(middleware.LoggingConfig{SlowRequestThreshold: time.Millisecond}, func(ctx *router.Context) handler.Response {
		time.Sleep(5 * time.Millisecond)
		return response.String("slow")
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/parks", nil))

	entry := logs.last(t)
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, true, entry["slow_request"])
}

func TestLoggingHeadersRedacted(t *testing.T) {
	t.Parallel()

	r, logs := newLoggedRouter(middleware.LoggingConfig{LogHeaders: true}, func(ctx *router.Context) handler.Response {
		return response.String("ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/parks", nil)
	req.Header.Set("Authorization", "Bearer secret")
	req.Header.Set("Accept", "text/html")
	r.ServeHTTP(httptest.NewRecorder(), req)

	headers, ok := logs.last(t)["request_headers"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "[REDACTED]", headers["Authorization"])
	assert.Equal(t, "text/html", headers["Accept"])
}

func TestLoggingSkip(t *testing.T) {
	t.Parallel()

	r, logs := newLoggedRouter(middleware.LoggingConfig{
		Skip: func(ctx handler.Context) bool { return true },
	}, func(ctx *router.Context) handler.Response {
		return response.String("ok")
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/parks", nil))
	assert.Empty(t, logs.entries)
}

func TestLoggingRenderedPage(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTemplate(t, dir, "parks.html", "<ul></ul>")

	v, err := view.New(view.WithPath(dir))
	require.NoError(t, err)

	logs := &testLogHandler{}
	r := router.New[*router.Context]()
	r.Use(
		middleware.LoggingWithLogger[*router.Context](slog.New(logs)),
		view.Middleware[*router.Context](v),
	)
	r.Get("/parks", func(ctx *router.Context) handler.Response {
		if _, err := view.Render(ctx, "parks", nil); err != nil {
			return response.Error(err)
		}
		return nil
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/parks", nil))

	assert.Equal(t, "<ul></ul>", w.Body.String())
	entry := logs.last(t)
	assert.EqualValues(t, http.StatusOK, entry["status_code"])
	assert.EqualValues(t, len("<ul></ul>"), entry["bytes_out"])
}
