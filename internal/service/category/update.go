package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/datamarket-backend/internal/domain"
)

// Update changes the price and content reference of a category. Snapshots held
// by existing permissions and requests are not affected.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Category, error) {
	authority := domain.NormalizeAccount(input.Authority)

	var updated *domain.Category
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.loadOwned(txCtx, input.CategoryID, authority)
		if err != nil {
			return err
		}
		if err := input.Validate(); err != nil {
			return err
		}

		now := s.now()
		updated, err = s.categories.Update(txCtx, current.ID, domain.CategoryUpdateParams{
			PricePerDay: input.PricePerDay,
			ContentHash: input.ContentHash,
		}, now)
		if err != nil {
			return fmt.Errorf("update category: %w", err)
		}

		event := domain.NewEvent(domain.EventCategoryUpdated, now, map[string]any{
			"owner":         current.Owner.String(),
			"old_price":     current.PricePerDay,
			"price_per_day": updated.PricePerDay,
			"content_hash":  updated.ContentHash.String(),
		})
		event.CategoryID = current.ID
		return s.events.Append(txCtx, event)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "category updated",
		slog.Int64("category_id", updated.ID),
		slog.Int64("price_per_day", updated.PricePerDay),
	)

	return updated, nil
}
