package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/catalog-backend/internal/config"
	"github.com/heartmarshall/catalog-backend/internal/transport/middleware"
)

// RouterDeps holds everything the HTTP router serves.
type RouterDeps struct {
	Catalog *CatalogHandler
	Health  *HealthHandler
	CORS    config.CORSConfig
	Metrics config.MetricsConfig
	// Registry receives the HTTP collectors and backs the metrics endpoint.
	// Ignored when metrics are disabled.
	Registry *prometheus.Registry
	Log      *slog.Logger
	// WriteLimit wraps POST, PUT and DELETE /api/items. Nil means unlimited.
	WriteLimit middleware.Middleware
}

// NewRouter builds the HTTP handler: global middleware, CORS, health
// probes, the catalog API under /api/items and, when enabled, the
// Prometheus endpoint.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	var metrics middleware.Middleware
	if deps.Metrics.Enabled {
		metrics = middleware.NewMetrics("catalog", deps.Registry).Handler()
	}
	r.Use(middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(deps.Log),
		middleware.Logger(deps.Log),
		metrics,
	))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.CORS.Origins(),
		AllowedMethods:   deps.CORS.Methods(),
		AllowedHeaders:   deps.CORS.Headers(),
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: deps.CORS.AllowCredentials,
		MaxAge:           deps.CORS.MaxAge,
	}))

	r.Get("/live", deps.Health.Live)
	r.Get("/ready", deps.Health.Ready)
	r.Get("/health", deps.Health.Health)

	if deps.Metrics.Enabled {
		r.Method(http.MethodGet, deps.Metrics.Path, promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/items", func(r chi.Router) {
		deps.Catalog.Routes(r, deps.WriteLimit)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "route not found", Code: "NOT_FOUND"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "method not allowed", Code: "METHOD_NOT_ALLOWED"})
	})

	return r
}
