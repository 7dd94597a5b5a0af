package catalog

import (
	"context"
	"strings"

	"github.com/heartmarshall/catalog-backend/internal/domain"
)

// GetItem returns the item with the given code and its categories.
func (s *Service) GetItem(ctx context.Context, code string) (*ItemDetails, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.NewValidationError("code", "required")
	}

	item, err := s.items.GetByCode(ctx, code)
	if err != nil {
		return nil, storeErr("get item", err)
	}

	cats, err := s.categories.GetByItemCode(ctx, code)
	if err != nil {
		return nil, storeErr("get item categories", err)
	}

	return &ItemDetails{Item: *item, Categories: cats}, nil
}

// GetItemsByName returns every item whose name equals name, ordered by
// code, each with its categories. No match yields an empty slice.
func (s *Service) GetItemsByName(ctx context.Context, name string) ([]ItemDetails, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "required")
	}

	items, err := s.items.GetByName(ctx, name)
	if err != nil {
		return nil, storeErr("get items by name", err)
	}
	if len(items) == 0 {
		return []ItemDetails{}, nil
	}

	codes := make([]string, len(items))
	for i, it := range items {
		codes[i] = it.Code
	}

	rows, err := s.categories.GetByItemCodes(ctx, codes)
	if err != nil {
		return nil, storeErr("get items categories", err)
	}
	grouped := groupCategories(rows)

	result := make([]ItemDetails, len(items))
	for i, it := range items {
		cats := grouped[it.Code]
		if cats == nil {
			cats = []domain.Category{}
		}
		result[i] = ItemDetails{Item: it, Categories: cats}
	}

	return result, nil
}
