// Package relation implements the item_categories bridge repository using PostgreSQL.
package relation

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/catalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/catalog-backend/internal/domain"
)

// Repo provides (item, category) relation persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new relation repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type relationRow struct {
	ItemCode   string `db:"item_code"`
	CategoryID int64  `db:"category_id"`
}

// GetByItemCodes returns the relations of the given items ordered by item
// code and then by insertion order.
func (r *Repo) GetByItemCodes(ctx context.Context, codes []string) ([]domain.Relation, error) {
	if len(codes) == 0 {
		return []domain.Relation{}, nil
	}

	key := strings.Join(codes, ",")
	sql, args, err := postgres.Builder.
		Select("item_code", "category_id").
		From("item_categories").
		Where(squirrel.Eq{"item_code": codes}).
		OrderBy("item_code", "seq").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "relations", key)
	}

	var rows []relationRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "relations", key)
	}

	rels := make([]domain.Relation, len(rows))
	for i, row := range rows {
		rels[i] = domain.Relation{ItemCode: row.ItemCode, CategoryID: row.CategoryID}
	}

	return rels, nil
}

// CreateBatch inserts rels with one multi-row statement. Rows are inserted
// in slice order, which is the order GetByItemCodes reads them back in.
// A missing item or category yields domain.ErrNotFound.
func (r *Repo) CreateBatch(ctx context.Context, rels []domain.Relation) error {
	if len(rels) == 0 {
		return nil
	}

	query := postgres.Builder.
		Insert("item_categories").
		Columns("item_code", "category_id")
	for _, rel := range rels {
		query = query.Values(rel.ItemCode, rel.CategoryID)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return postgres.MapError(err, "relations", batchKey(rels))
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "relations", batchKey(rels))
	}

	return nil
}

// DeleteBatch deletes exactly the given (item, category) pairs.
func (r *Repo) DeleteBatch(ctx context.Context, rels []domain.Relation) error {
	if len(rels) == 0 {
		return nil
	}

	pairs := make(squirrel.Or, len(rels))
	for i, rel := range rels {
		pairs[i] = squirrel.Eq{"item_code": rel.ItemCode, "category_id": rel.CategoryID}
	}

	sql, args, err := postgres.Builder.
		Delete("item_categories").
		Where(pairs).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "relations", batchKey(rels))
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "relations", batchKey(rels))
	}

	return nil
}

// DeleteByItemCodes deletes every relation of the given items.
func (r *Repo) DeleteByItemCodes(ctx context.Context, codes []string) error {
	if len(codes) == 0 {
		return nil
	}

	key := strings.Join(codes, ",")
	sql, args, err := postgres.Builder.
		Delete("item_categories").
		Where(squirrel.Eq{"item_code": codes}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "relations", key)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "relations", key)
	}

	return nil
}

func batchKey(rels []domain.Relation) string {
	if len(rels) == 1 {
		return fmt.Sprintf("(%s,%d)", rels[0].ItemCode, rels[0].CategoryID)
	}
	return fmt.Sprintf("%s+%d", rels[0].ItemCode, len(rels)-1)
}
