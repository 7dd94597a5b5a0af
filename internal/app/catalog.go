package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/heartmarshall/catalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/catalog-backend/internal/adapter/postgres/category"
	"github.com/heartmarshall/catalog-backend/internal/adapter/postgres/item"
	"github.com/heartmarshall/catalog-backend/internal/adapter/postgres/relation"
	"github.com/heartmarshall/catalog-backend/internal/config"
	"github.com/heartmarshall/catalog-backend/internal/service/catalog"
	"github.com/heartmarshall/catalog-backend/migrations"
)

// Catalog is the wired catalog service with the pool it runs on.
type Catalog struct {
	Pool    *pgxpool.Pool
	Service *catalog.Service
}

// OpenCatalog connects to the database, applies migrations when
// database.auto_migrate is set and wires the repositories into the
// catalog service. Writes run in serializable transactions.
func OpenCatalog(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Catalog, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if cfg.Database.AutoMigrate {
		if err := Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		logger.Info("migrations applied")
	}

	svc := catalog.NewService(
		logger,
		item.New(pool),
		category.New(pool),
		relation.New(pool),
		item.NewFilterRunner(pool),
		postgres.NewTxManager(pool, pgx.Serializable),
		cfg.Catalog,
	)

	return &Catalog{Pool: pool, Service: svc}, nil
}

// Close releases the pool.
func (c *Catalog) Close() {
	c.Pool.Close()
}

// Migrate applies every pending migration through a database/sql handle
// borrowed from pool.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := migrations.Up(ctx, db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
