package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/datamarket-backend/internal/domain"
)

// AddDelegate allows input.Delegate to grant permissions for the category.
// Delegates cannot revoke, update or deactivate.
func (s *Service) AddDelegate(ctx context.Context, input DelegateInput) error {
	return s.changeDelegate(ctx, input, domain.EventCategoryDelegateAdded)
}

// RemoveDelegate withdraws a delegation. Grants already made stay in place.
func (s *Service) RemoveDelegate(ctx context.Context, input DelegateInput) error {
	return s.changeDelegate(ctx, input, domain.EventCategoryDelegateRemoved)
}

// ListDelegates returns the delegates of a category.
func (s *Service) ListDelegates(ctx context.Context, categoryID int64) ([]domain.Account, error) {
	if _, err := s.categories.GetByID(ctx, categoryID); err != nil {
		return nil, err
	}
	return s.categories.ListDelegates(ctx, categoryID)
}

func (s *Service) changeDelegate(ctx context.Context, input DelegateInput, typ domain.EventType) error {
	if err := input.Validate(); err != nil {
		return err
	}
	authority := domain.NormalizeAccount(input.Authority)
	delegate := domain.NormalizeAccount(input.Delegate)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.loadOwned(txCtx, input.CategoryID, authority)
		if err != nil {
			return err
		}

		if typ == domain.EventCategoryDelegateAdded {
			err = s.categories.AddDelegate(txCtx, current.ID, delegate)
		} else {
			err = s.categories.RemoveDelegate(txCtx, current.ID, delegate)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", typ, err)
		}

		event := domain.NewEvent(typ, s.now(), map[string]any{
			"owner":    current.Owner.String(),
			"delegate": delegate.String(),
		})
		event.CategoryID = current.ID
		return s.events.Append(txCtx, event)
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, string(typ),
		slog.Int64("category_id", input.CategoryID),
		slog.String("delegate", delegate.String()),
	)

	return nil
}
