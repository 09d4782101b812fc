// Package httpserver runs an http.Server with graceful shutdown.
//
// Run blocks until its context is cancelled or the process receives SIGINT
// or SIGTERM, then drains in-flight requests within the shutdown timeout.
// Settings come from functional options or from Config, which is loaded
// from HTTP_* environment variables:
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// HealthCheckHandler answers liveness and readiness checks; failed readiness
// checks are answered with the standard 503 error envelope.
//
// Options never panic. Bad values surface from Run as ErrInvalidOption,
// listen and serve failures wrap ErrStart and drain failures ErrShutdown.
package httpserver
