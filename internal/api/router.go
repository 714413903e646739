package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/guardian/internal/catalog"
	"github.com/dmitrymomot/guardian/pkg/httpserver"
	"github.com/dmitrymomot/guardian/pkg/logger"
	"github.com/dmitrymomot/guardian/pkg/requestid"
)

// NewRouter mounts the product and order endpoints:
//
//	GET    /api/products
//	POST   /api/products
//	GET    /api/products/{id}
//	DELETE /api/products/{id}
//	PUT    /api/products/{id}/price
//	PUT    /api/products/{id}/stock
//	POST   /api/products/{id}/stock/add
//	POST   /api/products/{id}/stock/remove
//	GET    /api/orders
//	POST   /api/orders
//	GET    /api/orders/{id}
//	DELETE /api/orders/{id}
//	PUT    /api/orders/{id}/status
//
// plus /health/live and /health/ready probes. A nil log discards output.
func NewRouter(products *catalog.ProductService, orders *catalog.OrderService, log *slog.Logger, readiness ...func(context.Context) error) http.Handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	log = log.With(logger.Component("api"))

	ph := productHandlers{products: products}
	oh := orderHandlers{orders: orders}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(log))

	r.Get("/health/live", httpserver.HealthCheckHandler(log))
	r.Get("/health/ready", httpserver.ReadinessHandler(log, readiness...))

	r.NotFound(wrap(log, "not_found", func(*http.Request) Response { return JSONError(ErrNotFound) }))

	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", wrap(log, "products.list", ph.list))
		r.Post("/", wrap(log, "products.create", ph.create))
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", wrap(log, "products.get", ph.get))
			r.Delete("/", wrap(log, "products.delete", ph.delete))
			r.Put("/price", wrap(log, "products.update_price", ph.updatePrice))
			r.Put("/stock", wrap(log, "products.update_stock", ph.stock(products.UpdateStock)))
			r.Post("/stock/add", wrap(log, "products.add_stock", ph.stock(products.AddStock)))
			r.Post("/stock/remove", wrap(log, "products.remove_stock", ph.stock(products.RemoveStock)))
		})
	})

	r.Route("/api/orders", func(r chi.Router) {
		r.Get("/", wrap(log, "orders.list", oh.list))
		r.Post("/", wrap(log, "orders.create", oh.create))
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", wrap(log, "orders.get", oh.get))
			r.Delete("/", wrap(log, "orders.delete", oh.delete))
			r.Put("/status", wrap(log, "orders.update_status", oh.updateStatus))
		})
	})

	return r
}

// requestLogger logs one record per request with its status and duration.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			level := slog.LevelInfo
			if ww.Status() >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			log.LogAttrs(r.Context(), level, "request completed",
				logger.Method(r.Method),
				logger.Path(r.URL.Path),
				logger.Status(ww.Status()),
				logger.Duration(time.Since(start)),
			)
		})
	}
}
