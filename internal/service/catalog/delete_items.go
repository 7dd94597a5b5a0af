package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/catalog-backend/internal/domain"
)

// DeleteItems deletes every listed item and its relations in one
// serializable transaction. If any code is unknown nothing is deleted and
// the error wraps domain.ErrNotFound. Duplicate codes are ignored.
func (s *Service) DeleteItems(ctx context.Context, input DeleteItemsInput) error {
	if err := input.Validate(s.cfg.MaxDeleteBatch); err != nil {
		return err
	}

	codes := input.uniqueCodes()

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		found, err := s.items.GetByCodes(txCtx, codes)
		if err != nil {
			return storeErr("get items", err)
		}
		if len(found) != len(codes) {
			return fmt.Errorf("items %s: %w", strings.Join(missingCodes(codes, found), ", "), domain.ErrNotFound)
		}

		if err := s.relations.DeleteByItemCodes(txCtx, codes); err != nil {
			return storeErr("delete relations", err)
		}

		if _, err := s.items.DeleteByCodes(txCtx, codes); err != nil {
			return storeErr("delete items", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "items deleted",
		slog.Int("count", len(codes)),
		slog.String("codes", strings.Join(codes, ",")),
	)

	return nil
}

func missingCodes(codes []string, found []domain.Item) []string {
	present := make(map[string]struct{}, len(found))
	for _, it := range found {
		present[it.Code] = struct{}{}
	}

	var missing []string
	for _, c := range codes {
		if _, ok := present[c]; !ok {
			missing = append(missing, c)
		}
	}
	return missing
}
