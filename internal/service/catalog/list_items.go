package catalog

import (
	"context"

	"github.com/heartmarshall/catalog-backend/internal/domain"
)

// ItemsTable returns one page of the items table matching input.
// When nothing matches, the listing query is skipped and the page is empty
// with zero total pages.
func (s *Service) ItemsTable(ctx context.Context, input ListItemsInput) (*domain.ItemTable, error) {
	if err := input.Validate(s.cfg.MaxPageSize); err != nil {
		return nil, err
	}

	filter := input.filter(s.cfg.DefaultPageSize)
	preds := filter.Predicates()

	total, err := s.filter.CountItems(ctx, preds)
	if err != nil {
		return nil, storeErr("count items", err)
	}

	table := &domain.ItemTable{
		Rows:       []domain.ItemRow{},
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalItems: total,
		TotalPages: domain.TotalPages(total, filter.PageSize),
	}
	if total == 0 {
		return table, nil
	}

	rows, err := s.filter.ListItemRows(ctx, filter.Query())
	if err != nil {
		return nil, storeErr("list items", err)
	}
	table.Rows = rows

	return table, nil
}
