package permission

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/datamarket-backend/internal/domain"
)

// Grant gives input.Buyer access to the category for input.DurationDays,
// overwriting any earlier grant for the pair and restarting its clock.
// The authority must be the category owner or one of its delegates.
func (s *Service) Grant(ctx context.Context, input GrantInput) (*domain.Permission, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	buyer := domain.NormalizeAccount(input.Buyer)
	authority := domain.NormalizeAccount(input.Authority)

	var granted *domain.Permission
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.categories.GetByIDForUpdate(txCtx, input.CategoryID)
		if err != nil {
			return err
		}
		if err := s.authorizeGrant(txCtx, c, authority); err != nil {
			return err
		}
		if !c.Active {
			return domain.ErrCategoryInactive
		}

		now := s.now()
		granted = &domain.Permission{
			CategoryID:        c.ID,
			Buyer:             buyer,
			Granted:           true,
			GrantedAt:         now,
			ExpiresAt:         domain.ExpiryFor(now, input.DurationDays),
			TotalPaid:         input.PaidAmount,
			TotalDurationDays: input.DurationDays,
		}
		if err := s.permissions.Upsert(txCtx, granted); err != nil {
			return fmt.Errorf("upsert permission: %w", err)
		}

		event := domain.NewEvent(domain.EventPermissionGranted, now, map[string]any{
			"buyer":         buyer.String(),
			"granted_by":    authority.String(),
			"duration_days": input.DurationDays,
			"total_paid":    input.PaidAmount,
			"expires_at":    granted.ExpiresAt,
		})
		event.CategoryID = c.ID
		return s.events.Append(txCtx, event)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "permission granted",
		slog.Int64("category_id", granted.CategoryID),
		slog.String("buyer", buyer.String()),
		slog.Int64("duration_days", granted.TotalDurationDays),
		slog.Time("expires_at", granted.ExpiresAt),
	)

	return granted, nil
}

func (s *Service) authorizeGrant(ctx context.Context, c *domain.Category, authority domain.Account) error {
	if authority == "" {
		return domain.ErrUnauthorized
	}
	if c.Owner == authority {
		return nil
	}

	ok, err := s.categories.IsDelegate(ctx, c.ID, authority)
	if err != nil {
		return fmt.Errorf("check delegate: %w", err)
	}
	if !ok {
		return domain.ErrUnauthorized
	}
	return nil
}
