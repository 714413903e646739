// Package config loads application configuration from environment variables
// into tagged structs.
//
// It wraps `github.com/joho/godotenv` (optional .env files) and
// `github.com/caarlos0/env/v11` (struct tag parsing), caches every parsed
// configuration type for the life of the process, and validates the result
// when the struct implements Validator. Validation is usually expressed with
// guard rules, so a bad value is reported with the variable name and the
// violated bound.
//
// # Usage
//
//	type APIConfig struct {
//	    Env         string `env:"APP_ENV" envDefault:"development"`
//	    MaxProducts int    `env:"MAX_PRODUCTS" envDefault:"1000"`
//	}
//
//	func (c *APIConfig) Validate() error {
//	    return guard.Collect(
//	        guard.Err(guard.NullOrWhiteSpace("APP_ENV", c.Env)),
//	        guard.Err(guard.OutOfRange("MAX_PRODUCTS", c.MaxProducts, 1, 100000)),
//	    )
//	}
//
//	func main() {
//	    var cfg APIConfig
//	    config.MustLoad(&cfg)
//	}
//
// # Error Handling
//
// Load returns errors joined with one of the package sentinels
// (ErrParsingConfig, ErrInvalidConfig, ErrNilPointer), so callers can use
// errors.Is to decide how to react. MustLoad panics instead.
//
// Failed loads are not cached; ResetCache clears successful ones.
package config
