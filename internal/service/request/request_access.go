package request

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/datamarket-backend/internal/domain"
)

// RequestAccess escrows input.Payment and opens a REQUESTED request against
// the category's current owner. The price per day is snapshotted.
func (s *Service) RequestAccess(ctx context.Context, input RequestAccessInput) (*domain.AccessRequest, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	buyer := domain.NormalizeAccount(input.Buyer)

	var created *domain.AccessRequest
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.categories.GetByIDForUpdate(txCtx, input.CategoryID)
		if err != nil {
			return err
		}
		if !c.Active {
			return domain.ErrCategoryInactive
		}

		q, err := s.quote(txCtx, c, input.DurationDays)
		if err != nil {
			return err
		}
		if input.Payment != q.Total {
			return &domain.ValidationError{Errors: []domain.FieldError{{
				Field:   "payment",
				Message: fmt.Sprintf("expected exactly %d, got %d", q.Total, input.Payment),
				Err:     domain.ErrIncorrectPaymentAmount,
			}}}
		}

		now := s.now()
		created, err = s.requests.Create(txCtx, &domain.AccessRequest{
			Buyer:        buyer,
			Seller:       c.Owner,
			CategoryID:   c.ID,
			DurationDays: input.DurationDays,
			PricePerDay:  c.PricePerDay,
			Amount:       q.Total,
			Status:       domain.RequestStatusRequested,
			CreatedAt:    now,
		})
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}

		event := domain.NewEvent(domain.EventRequestCreated, now, map[string]any{
			"buyer":         buyer.String(),
			"seller":        c.Owner.String(),
			"duration_days": input.DurationDays,
			"amount":        q.Total,
		})
		event.CategoryID = c.ID
		event.RequestID = created.ID
		return s.events.Append(txCtx, event)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "access requested",
		slog.Int64("request_id", created.ID),
		slog.Int64("category_id", created.CategoryID),
		slog.String("buyer", buyer.String()),
		slog.Int64("amount", created.Amount),
	)

	return created, nil
}
