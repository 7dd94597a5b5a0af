package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/catalog-backend/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
// Tests share one database, so listing tests filter on codes carrying the suffix.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedCategory inserts a category with a unique name and returns it.
func SeedCategory(t *testing.T, pool *pgxpool.Pool) domain.Category {
	t.Helper()

	c := domain.Category{Name: "Category " + UniqueSuffix()}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO categories (name) VALUES ($1) RETURNING id`,
		c.Name,
	).Scan(&c.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory insert: %v", err)
	}

	return c
}

// SeedItem inserts an active item with the given code and default fields.
func SeedItem(t *testing.T, pool *pgxpool.Pool, code string) domain.Item {
	t.Helper()

	return SeedItemCustom(t, pool, domain.Item{
		Code:        code,
		Name:        "Item " + code,
		Rating:      5,
		ReleaseYear: 2000,
		Status:      domain.ItemStatusActive,
	})
}

// SeedItemCustom inserts item as given.
func SeedItemCustom(t *testing.T, pool *pgxpool.Pool, item domain.Item) domain.Item {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO items (code, name, rating, release_year, status)
		 VALUES ($1, $2, $3, $4, $5)`,
		item.Code, item.Name, item.Rating, item.ReleaseYear, string(item.Status),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedItem insert %s: %v", item.Code, err)
	}

	return item
}

// SeedRelations links the item to categoryIDs in the given order.
func SeedRelations(t *testing.T, pool *pgxpool.Pool, itemCode string, categoryIDs ...int64) {
	t.Helper()

	for _, id := range categoryIDs {
		_, err := pool.Exec(context.Background(),
			`INSERT INTO item_categories (item_code, category_id) VALUES ($1, $2)`,
			itemCode, id,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedRelations insert (%s, %d): %v", itemCode, id, err)
		}
	}
}

// ItemExists reports whether an item row with the given code exists.
func ItemExists(t *testing.T, pool *pgxpool.Pool, code string) bool {
	t.Helper()

	var exists bool
	err := pool.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM items WHERE code = $1)`,
		code,
	).Scan(&exists)
	if err != nil {
		t.Fatalf("testhelper: ItemExists query: %v", err)
	}

	return exists
}

// RelationCategoryIDs returns the category ids of an item in insertion order.
func RelationCategoryIDs(t *testing.T, pool *pgxpool.Pool, itemCode string) []int64 {
	t.Helper()

	rows, err := pool.Query(context.Background(),
		`SELECT category_id FROM item_categories WHERE item_code = $1 ORDER BY seq`,
		itemCode,
	)
	if err != nil {
		t.Fatalf("testhelper: RelationCategoryIDs query: %v", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			t.Fatalf("testhelper: RelationCategoryIDs scan: %v", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("testhelper: RelationCategoryIDs rows: %v", err)
	}

	return ids
}
