package catalog

import "github.com/heartmarshall/catalog-backend/internal/domain"

// ItemDetails is an item together with its categories in relation order.
type ItemDetails struct {
	Item       domain.Item
	Categories []domain.Category
}

func groupCategories(rows []domain.ItemCategory) map[string][]domain.Category {
	grouped := make(map[string][]domain.Category)
	for _, r := range rows {
		grouped[r.ItemCode] = append(grouped[r.ItemCode], r.Category)
	}
	return grouped
}
