// Package view resolves template rendering options and installs a
// per-request render function on the router pipeline.
//
// A View is built once, at startup, from functional options, a raw option
// mapping (Resolve, LoadFile) or environment variables (FromConfig):
//
//	v, err := view.New(view.WithPath("./templates"))
//	if err != nil {
//		return err
//	}
//
//	r := router.New[*router.Context]()
//	r.Use(view.Middleware[*router.Context](v))
//	r.Get("/", func(ctx *router.Context) handler.Response {
//		if _, err := view.Render(ctx, "home", nil); err != nil {
//			return response.Error(err)
//		}
//		return nil // the rendered page becomes the body
//	})
//
// Recognized raw option keys are ext, path, writeResponse, functionName,
// engineConfig, configureEngine and merge. Any other key fails resolution.
//
// The render function combines the request state (SetState) with the
// variables passed to it, caller values winning, appends the configured
// extension to the name and renders through the engine. The default engine
// is pongo2; GoTemplateEngine selects html/template instead.
//
// With writeResponse enabled, the output of the last render becomes the
// text/html response body whenever the handler returns a nil Response.
package view
