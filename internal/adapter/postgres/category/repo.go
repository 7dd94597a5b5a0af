// Package category implements the read-only Category repository using PostgreSQL.
// Categories are seed data; relations to items live in item_categories.
package category

import (
	"context"
	"strconv"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/catalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/catalog-backend/internal/domain"
)

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new category repository. db is normally the pool; inside
// RunInTx the transaction from the context is used instead.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type categoryRow struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

type itemCategoryRow struct {
	ItemCode string `db:"item_code"`
	ID       int64  `db:"id"`
	Name     string `db:"name"`
}

// List returns every category ordered by id.
func (r *Repo) List(ctx context.Context) ([]domain.Category, error) {
	query := postgres.Builder.
		Select("id", "name").
		From("categories").
		OrderBy("id")

	return r.selectCategories(ctx, query, "all")
}

// GetByIDs returns the categories whose id is in ids, ordered by id.
// Unknown ids are silently absent from the result.
func (r *Repo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Category, error) {
	if len(ids) == 0 {
		return []domain.Category{}, nil
	}

	query := postgres.Builder.
		Select("id", "name").
		From("categories").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id")

	return r.selectCategories(ctx, query, idsKey(ids))
}

// GetByItemCode returns the categories attached to an item in the order
// the relations were inserted.
func (r *Repo) GetByItemCode(ctx context.Context, code string) ([]domain.Category, error) {
	query := postgres.Builder.
		Select("c.id", "c.name").
		From("item_categories ic").
		Join("categories c ON c.id = ic.category_id").
		Where(squirrel.Eq{"ic.item_code": code}).
		OrderBy("ic.seq")

	return r.selectCategories(ctx, query, code)
}

// GetByItemCodes returns the categories of several items at once, ordered
// by item code and then by relation insertion order.
func (r *Repo) GetByItemCodes(ctx context.Context, codes []string) ([]domain.ItemCategory, error) {
	if len(codes) == 0 {
		return []domain.ItemCategory{}, nil
	}

	sql, args, err := postgres.Builder.
		Select("ic.item_code", "c.id", "c.name").
		From("item_categories ic").
		Join("categories c ON c.id = ic.category_id").
		Where(squirrel.Eq{"ic.item_code": codes}).
		OrderBy("ic.item_code", "ic.seq").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "categories", "by item codes")
	}

	var rows []itemCategoryRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "categories", "by item codes")
	}

	result := make([]domain.ItemCategory, len(rows))
	for i, row := range rows {
		result[i] = domain.ItemCategory{
			ItemCode: row.ItemCode,
			Category: domain.Category{ID: row.ID, Name: row.Name},
		}
	}

	return result, nil
}

func (r *Repo) selectCategories(ctx context.Context, query squirrel.SelectBuilder, key string) ([]domain.Category, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "categories", key)
	}

	var rows []categoryRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "categories", key)
	}

	result := make([]domain.Category, len(rows))
	for i, row := range rows {
		result[i] = domain.Category{ID: row.ID, Name: row.Name}
	}

	return result, nil
}

func idsKey(ids []int64) string {
	key := make([]byte, 0, len(ids)*3)
	for i, id := range ids {
		if i > 0 {
			key = append(key, ',')
		}
		key = strconv.AppendInt(key, id, 10)
	}
	return string(key)
}
