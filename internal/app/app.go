package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/catalog-backend/internal/config"
	"github.com/heartmarshall/catalog-backend/internal/transport/middleware"
	"github.com/heartmarshall/catalog-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires the
// catalog and serves HTTP until ctx is cancelled, then shuts the server
// down gracefully within server.shutdown_timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	cat, err := OpenCatalog(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cat.Close()

	// stopHandler runs in the shutdown path below; the defer covers early returns.
	handler, stopHandler := newHandler(cfg, cat, logger)
	defer stopHandler()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		err := srv.Shutdown(shutdownCtx)
		stopHandler()
		if err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("stopped")
	return nil
}

// newHandler builds the HTTP handler. The returned func stops the write
// rate limiter's sweeper and must run on shutdown.
func newHandler(cfg *config.Config, cat *Catalog, logger *slog.Logger) (http.Handler, func()) {
	reg := prometheus.NewRegistry()
	if cfg.Metrics.Enabled {
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			buildInfoGauge(),
		)
	}

	stop := func() {}
	var writeLimit middleware.Middleware
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		writeLimit = limiter.Limit(cfg.RateLimit.WritesPerMinute)
		stop = limiter.Stop
	}

	return rest.NewRouter(rest.RouterDeps{
		Catalog:    rest.NewCatalogHandler(cat.Service, logger),
		Health:     rest.NewHealthHandler(cat.Pool, cat.Service, BuildVersion()),
		CORS:       cfg.CORS,
		Metrics:    cfg.Metrics,
		Registry:   reg,
		Log:        logger,
		WriteLimit: writeLimit,
	}), stop
}
