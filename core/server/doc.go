// Package server runs an http.Handler with production timeouts and graceful
// shutdown.
//
//	s, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	eg, ctx := errgroup.WithContext(ctx)
//	eg.Go(s.Run(ctx, r))
//	return eg.Wait()
//
// Config is loadable with config.Load (SERVER_ADDR, SERVER_READ_TIMEOUT,
// SERVER_TLS_CERT_FILE and friends).
package server
