package item

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/catalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/catalog-backend/internal/domain"
)

// Both the count and the listing use the inner join shape, so items without
// any category never appear in the items table.
const tableJoin = "items i " +
	"JOIN item_categories ic ON ic.item_code = i.code " +
	"JOIN categories c ON c.id = ic.category_id"

// Membership is tested with EXISTS so that string_agg still sees every
// category of a matched item, not only the filtered ones.
const inCategoriesSQL = "EXISTS (SELECT 1 FROM item_categories f WHERE f.item_code = i.code AND f.category_id = ANY(?))"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// FilterRunner executes the items table count and listing queries.
type FilterRunner struct {
	db postgres.Querier
}

// NewFilterRunner creates a FilterRunner.
func NewFilterRunner(db postgres.Querier) *FilterRunner {
	return &FilterRunner{db: db}
}

type tableRow struct {
	Code        string  `db:"code"`
	Name        string  `db:"name"`
	Rating      float64 `db:"rating"`
	ReleaseYear int     `db:"release_year"`
	Status      string  `db:"status"`
	Categories  string  `db:"categories"`
}

// CountItems returns the number of distinct items matching every predicate.
func (f *FilterRunner) CountItems(ctx context.Context, preds []domain.Predicate) (int64, error) {
	query := postgres.Builder.
		Select("count(DISTINCT i.code)").
		From(tableJoin)

	query, err := applyPredicates(query, preds)
	if err != nil {
		return 0, postgres.MapError(err, "items", "count")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "items", "count")
	}

	var total int64
	if err := postgres.QuerierFromCtx(ctx, f.db).QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, postgres.MapError(err, "items", "count")
	}

	return total, nil
}

// ListItemRows returns one page of grouped item rows. Category names are
// joined with ", " in relation insertion order.
func (f *FilterRunner) ListItemRows(ctx context.Context, q domain.ItemQuery) ([]domain.ItemRow, error) {
	orderBy, err := orderClause(q.SortBy, q.Direction)
	if err != nil {
		return nil, postgres.MapError(err, "items", "list")
	}

	query := postgres.Builder.
		Select(
			"i.code", "i.name", "i.rating", "i.release_year", "i.status",
			"string_agg(c.name, ', ' ORDER BY ic.seq) AS categories",
		).
		From(tableJoin).
		GroupBy("i.code").
		OrderBy(orderBy).
		Limit(uint64(q.Limit)).
		Offset(uint64(q.Offset))

	query, err = applyPredicates(query, q.Predicates)
	if err != nil {
		return nil, postgres.MapError(err, "items", "list")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "items", "list")
	}

	var rows []tableRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, f.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "items", "list")
	}

	result := make([]domain.ItemRow, len(rows))
	for i, row := range rows {
		result[i] = domain.ItemRow{
			Code:        row.Code,
			Name:        row.Name,
			Rating:      row.Rating,
			ReleaseYear: row.ReleaseYear,
			Status:      domain.ItemStatus(row.Status),
			Categories:  row.Categories,
		}
	}

	return result, nil
}

func applyPredicates(query squirrel.SelectBuilder, preds []domain.Predicate) (squirrel.SelectBuilder, error) {
	for _, p := range preds {
		switch p := p.(type) {
		case domain.InCategories:
			query = query.Where(squirrel.Expr(inCategoriesSQL, p.IDs))
		case domain.NameContains:
			query = query.Where(squirrel.ILike{"i.name": containsPattern(p.Substring)})
		case domain.CodeContains:
			query = query.Where(squirrel.ILike{"i.code": containsPattern(p.Substring)})
		default:
			return query, fmt.Errorf("unsupported predicate %T", p)
		}
	}
	return query, nil
}

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func orderClause(key domain.SortKey, dir domain.SortDirection) (string, error) {
	var column string
	switch key {
	case domain.SortByName:
		column = "i.name"
	case domain.SortByRating:
		column = "i.rating"
	default:
		return "", fmt.Errorf("unsupported sort key %q", key)
	}

	switch dir {
	case domain.SortAsc, domain.SortDesc:
		return column + " " + string(dir), nil
	default:
		return "", fmt.Errorf("unsupported sort direction %q", dir)
	}
}
