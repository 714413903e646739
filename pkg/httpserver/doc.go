// Package httpserver wraps net/http with graceful shutdown, start/stop hooks,
// validated functional options and health-check handlers.
//
// # Usage
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg,
//	    httpserver.WithLogger(log),
//	    httpserver.WithStartHook(func(l *slog.Logger) { l.Info("listening") }),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// Run blocks until ctx is cancelled or the process receives SIGINT/SIGTERM,
// then calls Shutdown with the configured deadline.
//
// Options validate their arguments with guard rules and panic on invalid
// input (empty address, non-positive timeout, nil hook). Config.Validate
// reports the same problems as errors, so config.Load rejects a bad
// environment before any option is built.
//
// HealthCheckHandler serves liveness (no checks) or readiness (with checks)
// probes.
package httpserver
