package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/datamarket-backend/internal/domain"
)

// Register creates an active category owned by input.Owner and assigns it the
// next id.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.Category, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	owner := domain.NormalizeAccount(input.Owner)
	name := domain.NormalizeName(input.Name)

	var created *domain.Category
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.categories.Create(txCtx, &domain.Category{
			Owner:       owner,
			Name:        name,
			PricePerDay: input.PricePerDay,
			ContentHash: input.ContentHash,
			Active:      true,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			return fmt.Errorf("create category: %w", err)
		}

		event := domain.NewEvent(domain.EventCategoryRegistered, now, map[string]any{
			"owner":         owner.String(),
			"name":          name,
			"price_per_day": input.PricePerDay,
			"content_hash":  input.ContentHash.String(),
		})
		event.CategoryID = created.ID
		return s.events.Append(txCtx, event)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "category registered",
		slog.Int64("category_id", created.ID),
		slog.String("owner", owner.String()),
		slog.Int64("price_per_day", created.PricePerDay),
	)

	return created, nil
}
