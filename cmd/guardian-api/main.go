// Command guardian-api serves the sample catalog over HTTP.
//
// Configuration comes from the environment (and an optional .env file):
//
//	APP_ENV       development | staging | production
//	SERVICE_NAME  name attached to every log record
//	SEED_FILE     YAML file with sample products; the bundled set is used when empty
//	NO_SEED       start with an empty catalog
//	HTTP_ADDR, HTTP_*_TIMEOUT  see httpserver.Config
package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/guardian/internal/api"
	"github.com/dmitrymomot/guardian/internal/catalog"
	"github.com/dmitrymomot/guardian/pkg/config"
	"github.com/dmitrymomot/guardian/pkg/environment"
	"github.com/dmitrymomot/guardian/pkg/httpserver"
	"github.com/dmitrymomot/guardian/pkg/logger"
	"github.com/dmitrymomot/guardian/pkg/requestid"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	env, err := environment.Parse(cfg.Env)
	if err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(env, cfg.Service),
		logger.WithContextExtractors(requestid.LoggerExtractor(), environment.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	products := catalog.NewProductService()
	if !cfg.NoSeed {
		n, err := seed(ctx, products, cfg.SeedFile)
		if err != nil {
			return fmt.Errorf("seeding catalog: %w", err)
		}
		log.Info("catalog seeded", slog.Int("products", n))
	}

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Info("server started", slog.String("addr", cfg.HTTP.Addr))
		}),
		httpserver.WithStopHook(func(l *slog.Logger) {
			l.Info("server stopped")
		}),
	)

	router := api.NewRouter(products, catalog.NewOrderService(), log)
	if err := srv.Run(ctx, environment.Middleware(env)(router)); err != nil {
		log.Error("server failed", logger.Error(err))
		return err
	}
	return nil
}

func seed(ctx context.Context, products *catalog.ProductService, path string) (int, error) {
	var r io.Reader = bytes.NewReader(catalog.DefaultSeed())
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return 0, err
		}
		defer f.Close()
		r = f
	}

	reqs, err := catalog.LoadSeed(r)
	if err != nil {
		return 0, err
	}
	if err := products.Seed(ctx, reqs); err != nil {
		return 0, err
	}
	return len(reqs), nil
}
