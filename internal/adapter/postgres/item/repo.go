// Package item implements the Item repository and the items table filter
// runner using PostgreSQL.
package item

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/catalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/catalog-backend/internal/domain"
)

var itemColumns = []string{"code", "name", "rating", "release_year", "status"}

// Repo provides item persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new item repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type itemRow struct {
	Code        string  `db:"code"`
	Name        string  `db:"name"`
	Rating      float64 `db:"rating"`
	ReleaseYear int     `db:"release_year"`
	Status      string  `db:"status"`
}

func (r itemRow) toDomain() domain.Item {
	return domain.Item{
		Code:        r.Code,
		Name:        r.Name,
		Rating:      r.Rating,
		ReleaseYear: r.ReleaseYear,
		Status:      domain.ItemStatus(r.Status),
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByCode returns the item with the given code.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByCode(ctx context.Context, code string) (*domain.Item, error) {
	sql, args, err := postgres.Builder.
		Select(itemColumns...).
		From("items").
		Where(squirrel.Eq{"code": code}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "item", code)
	}

	var row itemRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			err = pgx.ErrNoRows
		}
		return nil, postgres.MapError(err, "item", code)
	}

	item := row.toDomain()
	return &item, nil
}

// GetByCodes returns the items whose code is in codes, ordered by code.
// Missing codes are silently absent from the result.
func (r *Repo) GetByCodes(ctx context.Context, codes []string) ([]domain.Item, error) {
	if len(codes) == 0 {
		return []domain.Item{}, nil
	}

	query := postgres.Builder.
		Select(itemColumns...).
		From("items").
		Where(squirrel.Eq{"code": codes}).
		OrderBy("code")

	return r.selectItems(ctx, query, strings.Join(codes, ","))
}

// GetByName returns every item whose name equals name exactly, ordered by code.
func (r *Repo) GetByName(ctx context.Context, name string) ([]domain.Item, error) {
	query := postgres.Builder.
		Select(itemColumns...).
		From("items").
		Where(squirrel.Eq{"name": name}).
		OrderBy("code")

	return r.selectItems(ctx, query, name)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new item. Returns domain.ErrAlreadyExists when the code is taken.
func (r *Repo) Create(ctx context.Context, item domain.Item) error {
	sql, args, err := postgres.Builder.
		Insert("items").
		Columns(itemColumns...).
		Values(item.Code, item.Name, item.Rating, item.ReleaseYear, string(item.Status)).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "item", item.Code)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "item", item.Code)
	}

	return nil
}

// Update overwrites the mutable fields of the item identified by item.Code.
// Returns domain.ErrNotFound if no row was updated.
func (r *Repo) Update(ctx context.Context, item domain.Item) error {
	sql, args, err := postgres.Builder.
		Update("items").
		Set("name", item.Name).
		Set("rating", item.Rating).
		Set("release_year", item.ReleaseYear).
		Set("status", string(item.Status)).
		Where(squirrel.Eq{"code": item.Code}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "item", item.Code)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "item", item.Code)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "item", item.Code)
	}

	return nil
}

// DeleteByCodes deletes the items with the given codes and returns the
// number of deleted rows. Relations must be removed first.
func (r *Repo) DeleteByCodes(ctx context.Context, codes []string) (int64, error) {
	if len(codes) == 0 {
		return 0, nil
	}

	key := strings.Join(codes, ",")
	sql, args, err := postgres.Builder.
		Delete("items").
		Where(squirrel.Eq{"code": codes}).
		ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "items", key)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "items", key)
	}

	return tag.RowsAffected(), nil
}

func (r *Repo) selectItems(ctx context.Context, query squirrel.SelectBuilder, key string) ([]domain.Item, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "items", key)
	}

	var rows []itemRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "items", key)
	}

	items := make([]domain.Item, len(rows))
	for i, row := range rows {
		items[i] = row.toDomain()
	}

	return items, nil
}
