// Command viewkit serves a directory of templates over HTTP.
//
// GET /{page...} renders the template named by the path, or VIEW_INDEX for
// "/", with the request path and id available as the path and request_id
// template variables. Options come from VIEW_* variables, or from the YAML
// file in VIEW_OPTIONS_FILE when it is set.
package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/viewkit/core/config"
	"github.com/dmitrymomot/viewkit/core/handler"
	"github.com/dmitrymomot/viewkit/core/health"
	"github.com/dmitrymomot/viewkit/core/logger"
	"github.com/dmitrymomot/viewkit/core/response"
	"github.com/dmitrymomot/viewkit/core/router"
	"github.com/dmitrymomot/viewkit/core/server"
	"github.com/dmitrymomot/viewkit/core/view"
	"github.com/dmitrymomot/viewkit/middleware"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg Config
	config.MustLoad(&cfg)

	logOpt := logger.WithDevelopment(cfg.AppName)
	if cfg.LogJSON {
		logOpt = logger.WithProduction(cfg.AppName)
	}
	log := logger.New(logOpt)

	var (
		v   *view.View
		err error
	)
	if cfg.Options != "" {
		v, err = view.LoadFile(cfg.Options, view.WithLogger(log))
	} else {
		v, err = view.FromConfig(cfg.View, view.WithLogger(log))
	}
	if err != nil {
		log.Error("failed to configure templates", logger.Component("view"), logger.Error(err))
		os.Exit(1)
	}

	r := router.New[*router.Context](
		router.WithLogger[*router.Context](log),
		router.WithMiddleware(
			middleware.RequestIDWithConfig[*router.Context](middleware.RequestIDConfig{
				UseExisting: true,
				StateKey:    "request_id",
			}),
			middleware.LoggingWithLogger[*router.Context](log.With(logger.Component("http.request"))),
			view.Middleware[*router.Context](v),
		),
	)

	r.Get("/live", health.Liveness[*router.Context])
	r.Get("/ready", health.Readiness[*router.Context](log, v.Check))
	r.Get("/{page...}", pageHandler(cfg.Index))

	s, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
	if err != nil {
		log.Error("failed to create server", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(s.Run(ctx, r))

	if err := eg.Wait(); err != nil {
		log.Error("server stopped with error", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}
	log.Info("application stopped")
}

func pageHandler(index string) handler.HandlerFunc[*router.Context] {
	return func(ctx *router.Context) handler.Response {
		name := strings.TrimSuffix(ctx.Param("page"), "/")
		if name == "" {
			name = index
		}

		view.SetState(ctx, "path", ctx.Request().URL.Path)
		if _, err := view.Render(ctx, name, nil); err != nil {
			return response.Error(err)
		}
		return nil
	}
}
