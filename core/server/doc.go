// Package server runs an http.Handler with sane timeouts and graceful shutdown.
//
//	var cfg server.Config
//	config.MustLoad(&cfg)
//
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	return srv.Run(ctx, handler)()
//
// Run blocks until ctx is canceled, then waits up to ShutdownTimeout for
// in-flight requests.
package server
