package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/guardian/pkg/logger"
)

// HealthCheckHandler serves liveness and readiness probes.
//
//   - Without checks it answers 200 "ALIVE".
//   - With checks it behaves like ReadinessHandler.
func HealthCheckHandler(log *slog.Logger, checks ...func(context.Context) error) http.HandlerFunc {
	if len(checks) > 0 {
		return ReadinessHandler(log, checks...)
	}
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ALIVE"))
	}
}

// ReadinessHandler runs each check with the request context and answers
// 200 "READY", or 503 "NOT_READY" on the first failure. Without checks the
// server is ready as soon as it accepts requests.
func ReadinessHandler(log *slog.Logger, checks ...func(context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, check := range checks {
			if check == nil {
				continue
			}
			if err := check(r.Context()); err != nil {
				if log != nil {
					log.ErrorContext(r.Context(), "readiness check failed", logger.Error(err))
				}
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
