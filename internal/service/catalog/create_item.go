package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/catalog-backend/internal/domain"
)

// CreateItem creates an item and links it to the requested categories in
// one serializable transaction. Relations are stored and returned in request order.
func (s *Service) CreateItem(ctx context.Context, input CreateItemInput) (*ItemDetails, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	item := input.item()

	var cats []domain.Category
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		_, getErr := s.items.GetByCode(txCtx, item.Code)
		switch {
		case getErr == nil:
			return fmt.Errorf("item %s: %w", item.Code, domain.ErrAlreadyExists)
		case !errors.Is(getErr, domain.ErrNotFound):
			return storeErr("get item", getErr)
		}

		if err := s.checkReleaseYear(item.ReleaseYear); err != nil {
			return err
		}

		var resolveErr error
		cats, resolveErr = s.resolveCategories(txCtx, input.CategoryIDs)
		if resolveErr != nil {
			return resolveErr
		}

		if err := s.items.Create(txCtx, item); err != nil {
			return storeErr("create item", err)
		}

		if err := s.relations.CreateBatch(txCtx, relationsFor(item.Code, input.CategoryIDs)); err != nil {
			return storeErr("create relations", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "item created",
		slog.String("code", item.Code),
		slog.Int("categories", len(cats)),
	)

	return &ItemDetails{Item: item, Categories: cats}, nil
}

// checkReleaseYear rejects years after the current calendar year.
func (s *Service) checkReleaseYear(year int) error {
	if year > s.now().Year() {
		return domain.NewValidationError("release_year", "must not be in the future")
	}
	return nil
}
