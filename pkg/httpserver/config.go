package httpserver

import (
	"time"

	"github.com/dmitrymomot/guardian/pkg/guard"
)

type Config struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`          // Addr is the address the server listens on.
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`    // ReadTimeout is the maximum duration for reading the entire request.
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`   // WriteTimeout is the maximum duration before timing out writes of the response.
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`   // IdleTimeout is the keep-alive idle timeout.
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"` // ShutdownTimeout is the time allowed for graceful shutdown.
}

// Validate reports every invalid field. Zero timeouts are allowed and mean
// "not set"; negative ones are rejected.
func (c Config) Validate() error {
	return guard.Collect(
		guard.Err(guard.NullOrWhiteSpace("HTTP_ADDR", c.Addr)),
		guard.Err(guard.Negative("HTTP_READ_TIMEOUT", c.ReadTimeout)),
		guard.Err(guard.Negative("HTTP_WRITE_TIMEOUT", c.WriteTimeout)),
		guard.Err(guard.Negative("HTTP_IDLE_TIMEOUT", c.IdleTimeout)),
		guard.Err(guard.Negative("HTTP_SHUTDOWN_TIMEOUT", c.ShutdownTimeout)),
	)
}

// NewFromConfig creates a new Server from the provided Config.
// Only non-zero values from the config are applied.
func NewFromConfig(cfg Config, opts ...Option) *Server {
	configOpts := make([]Option, 0, 5+len(opts))

	if cfg.Addr != "" {
		configOpts = append(configOpts, WithAddr(cfg.Addr))
	}
	if cfg.ReadTimeout > 0 {
		configOpts = append(configOpts, WithReadTimeout(cfg.ReadTimeout))
	}
	if cfg.WriteTimeout > 0 {
		configOpts = append(configOpts, WithWriteTimeout(cfg.WriteTimeout))
	}
	if cfg.IdleTimeout > 0 {
		configOpts = append(configOpts, WithIdleTimeout(cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout > 0 {
		configOpts = append(configOpts, WithShutdownTimeout(cfg.ShutdownTimeout))
	}

	return New(append(configOpts, opts...)...)
}
