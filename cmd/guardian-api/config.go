package main

import (
	"github.com/dmitrymomot/guardian/pkg/environment"
	"github.com/dmitrymomot/guardian/pkg/guard"
	"github.com/dmitrymomot/guardian/pkg/httpserver"
)

type appConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	Service  string `env:"SERVICE_NAME" envDefault:"guardian-api"`
	SeedFile string `env:"SEED_FILE"` // empty uses the bundled seed
	NoSeed   bool   `env:"NO_SEED" envDefault:"false"`

	HTTP httpserver.Config
}

func (c *appConfig) Validate() error {
	return guard.Collect(
		guard.Err(environment.Parse(c.Env)),
		guard.Err(guard.InvalidLength("SERVICE_NAME", c.Service, 1, 64)),
		c.HTTP.Validate(),
	)
}
