package catalog

import (
	"context"

	"github.com/heartmarshall/catalog-backend/internal/domain"
)

// Categories returns every category ordered by id.
func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	cats, err := s.categories.List(ctx)
	if err != nil {
		return nil, storeErr("list categories", err)
	}
	return cats, nil
}

// resolveCategories loads the categories for ids and returns them in the
// order of ids. Empty and partially unknown id lists are validation errors.
func (s *Service) resolveCategories(ctx context.Context, ids []int64) ([]domain.Category, error) {
	if len(ids) == 0 {
		return nil, domain.NewValidationError("categories", "at least one category is required")
	}

	found, err := s.categories.GetByIDs(ctx, ids)
	if err != nil {
		return nil, storeErr("get categories", err)
	}
	if len(found) != len(ids) {
		return nil, domain.NewValidationError("categories", "some categories do not exist")
	}

	byID := make(map[int64]domain.Category, len(found))
	for _, c := range found {
		byID[c.ID] = c
	}

	ordered := make([]domain.Category, len(ids))
	for i, id := range ids {
		c, ok := byID[id]
		if !ok {
			return nil, domain.NewValidationError("categories", "some categories do not exist")
		}
		ordered[i] = c
	}

	return ordered, nil
}
