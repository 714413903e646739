package httpserver

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/guardian/pkg/guard"
)

// Option configures the HTTP server.
// Options panic on invalid arguments: they are evaluated at start-up, where
// a bad value is a programming error.
type Option func(*config)

// WithAddr sets the address the server listens on.
func WithAddr(addr string) Option {
	addr = guard.Must(guard.NullOrWhiteSpace("addr", addr))
	return func(c *config) { c.addr = addr }
}

// WithReadTimeout sets the maximum duration for reading the entire request.
func WithReadTimeout(d time.Duration) Option {
	d = guard.Must(guard.NegativeOrZero("read_timeout", d))
	return func(c *config) { c.readTimeout = d }
}

// WithWriteTimeout sets the maximum duration before timing out writes of the response.
func WithWriteTimeout(d time.Duration) Option {
	d = guard.Must(guard.NegativeOrZero("write_timeout", d))
	return func(c *config) { c.writeTimeout = d }
}

// WithIdleTimeout sets how long to wait for the next request on a keep-alive connection.
func WithIdleTimeout(d time.Duration) Option {
	d = guard.Must(guard.NegativeOrZero("idle_timeout", d))
	return func(c *config) { c.idleTimeout = d }
}

// WithShutdownTimeout sets the time allowed for graceful shutdown.
func WithShutdownTimeout(d time.Duration) Option {
	d = guard.Must(guard.NegativeOrZero("shutdown_timeout", d))
	return func(c *config) { c.shutdownTimeout = d }
}

// WithServer uses the provided http.Server instance. Its Handler is replaced;
// timeouts already set on it take precedence over options.
func WithServer(srv *http.Server) Option {
	srv = guard.Must(guard.Null("server", srv))
	return func(c *config) { c.server = srv }
}

// WithLogger supplies a logger for lifecycle hooks. Nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithStartHook registers a callback that runs when the server begins listening.
func WithStartHook(h func(*slog.Logger)) Option {
	if err := guard.Condition("start_hook", h != nil, guard.WithMessage("hook cannot be nil")); err != nil {
		panic(err)
	}
	return func(c *config) { c.startHooks = append(c.startHooks, h) }
}

// WithStopHook registers a callback that runs after the server shuts down.
func WithStopHook(h func(*slog.Logger)) Option {
	if err := guard.Condition("stop_hook", h != nil, guard.WithMessage("hook cannot be nil")); err != nil {
		panic(err)
	}
	return func(c *config) { c.stopHooks = append(c.stopHooks, h) }
}
