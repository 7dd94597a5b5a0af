package catalog

import (
	"context"
	"slices"

	"github.com/heartmarshall/catalog-backend/internal/domain"
)

// syncCategories makes the stored relations of code equal to ids, in order.
// Current and requested ids are compared as ordered sequences: any
// difference, including a pure reordering, deletes every existing relation
// and inserts ids afresh. Equal sequences cause no writes.
// It must run inside the caller's transaction.
func (s *Service) syncCategories(ctx context.Context, code string, ids []int64) (changed bool, err error) {
	current, err := s.relations.GetByItemCodes(ctx, []string{code})
	if err != nil {
		return false, storeErr("get relations", err)
	}

	if slices.Equal(domain.CategoryIDs(current), ids) {
		return false, nil
	}

	if len(current) > 0 {
		if err := s.relations.DeleteBatch(ctx, current); err != nil {
			return false, storeErr("delete relations", err)
		}
	}

	if err := s.relations.CreateBatch(ctx, relationsFor(code, ids)); err != nil {
		return false, storeErr("create relations", err)
	}

	return true, nil
}

func relationsFor(code string, ids []int64) []domain.Relation {
	rels := make([]domain.Relation, len(ids))
	for i, id := range ids {
		rels[i] = domain.Relation{ItemCode: code, CategoryID: id}
	}
	return rels
}
