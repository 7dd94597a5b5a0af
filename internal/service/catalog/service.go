// Package catalog implements the item catalog: the filtered items table,
// item lookups, and transactional create/update/delete with category
// relation synchronization.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/catalog-backend/internal/config"
	"github.com/heartmarshall/catalog-backend/internal/domain"
)

type itemRepo interface {
	GetByCode(ctx context.Context, code string) (*domain.Item, error)
	GetByCodes(ctx context.Context, codes []string) ([]domain.Item, error)
	GetByName(ctx context.Context, name string) ([]domain.Item, error)
	Create(ctx context.Context, item domain.Item) error
	Update(ctx context.Context, item domain.Item) error
	DeleteByCodes(ctx context.Context, codes []string) (int64, error)
}

type categoryRepo interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Category, error)
	GetByItemCode(ctx context.Context, code string) ([]domain.Category, error)
	GetByItemCodes(ctx context.Context, codes []string) ([]domain.ItemCategory, error)
}

type relationRepo interface {
	GetByItemCodes(ctx context.Context, codes []string) ([]domain.Relation, error)
	CreateBatch(ctx context.Context, rels []domain.Relation) error
	DeleteBatch(ctx context.Context, rels []domain.Relation) error
	DeleteByItemCodes(ctx context.Context, codes []string) error
}

type filterRunner interface {
	CountItems(ctx context.Context, preds []domain.Predicate) (int64, error)
	ListItemRows(ctx context.Context, q domain.ItemQuery) ([]domain.ItemRow, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides catalog operations.
type Service struct {
	items      itemRepo
	categories categoryRepo
	relations  relationRepo
	filter     filterRunner
	tx         txManager
	cfg        config.CatalogConfig
	log        *slog.Logger
	now        func() time.Time
}

// NewService creates a new catalog service. tx must run its callback in a
// serializable transaction.
func NewService(
	log *slog.Logger,
	items itemRepo,
	categories categoryRepo,
	relations relationRepo,
	filter filterRunner,
	tx txManager,
	cfg config.CatalogConfig,
) *Service {
	return &Service{
		items:      items,
		categories: categories,
		relations:  relations,
		filter:     filter,
		tx:         tx,
		cfg:        cfg,
		log:        log.With("service", "catalog"),
		now:        time.Now,
	}
}

// storeErr wraps a store error with op. Errors that carry no domain
// sentinel are store failures and additionally wrap domain.ErrQueryFailed.
func storeErr(op string, err error) error {
	if domain.IsKnown(err) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrQueryFailed, err)
}
