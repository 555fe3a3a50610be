package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/datamarket-backend/internal/domain"
)

// Deactivate closes a category to new requests and grants. Existing
// permissions stay valid until their own expiry.
func (s *Service) Deactivate(ctx context.Context, categoryID int64, authority domain.Account) error {
	authority = domain.NormalizeAccount(authority)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.loadOwned(txCtx, categoryID, authority)
		if err != nil {
			return err
		}
		if !current.Active {
			return domain.ErrAlreadyInactive
		}

		now := s.now()
		if err := s.categories.Deactivate(txCtx, current.ID, now); err != nil {
			return fmt.Errorf("deactivate category: %w", err)
		}

		event := domain.NewEvent(domain.EventCategoryDeactivated, now, map[string]any{
			"owner": current.Owner.String(),
		})
		event.CategoryID = current.ID
		return s.events.Append(txCtx, event)
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "category deactivated", slog.Int64("category_id", categoryID))

	return nil
}
