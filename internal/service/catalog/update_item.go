package catalog

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/catalog-backend/internal/domain"
)

// UpdateItem overwrites the fields of an existing item and reconciles its
// categories in one serializable transaction. The item row is written only
// when a field changed; relations only when the ordered category ids differ.
func (s *Service) UpdateItem(ctx context.Context, input UpdateItemInput) (*ItemDetails, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	item := input.item()

	var (
		cats          []domain.Category
		fieldsWritten bool
		relsWritten   bool
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, getErr := s.items.GetByCode(txCtx, item.Code)
		if getErr != nil {
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

		if !current.SameFields(item) {
			if err := s.items.Update(txCtx, item); err != nil {
				return storeErr("update item", err)
			}
			fieldsWritten = true
		}

		var syncErr error
		relsWritten, syncErr = s.syncCategories(txCtx, item.Code, input.CategoryIDs)
		return syncErr
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "item updated",
		slog.String("code", item.Code),
		slog.Bool("fields_changed", fieldsWritten),
		slog.Bool("categories_changed", relsWritten),
	)

	return &ItemDetails{Item: item, Categories: cats}, nil
}
