package permission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/datamarket-backend/internal/domain"
	"github.com/heartmarshall/datamarket-backend/internal/service/fee"
)

// Revoke withdraws buyer's grant and reports the pro-rated refund for the
// unused whole days. Only the category owner may revoke. The caller is
// responsible for moving the refund; Revoke only computes it.
func (s *Service) Revoke(ctx context.Context, categoryID int64, buyer, authority domain.Account) (int64, error) {
	buyer = domain.NormalizeAccount(buyer)
	authority = domain.NormalizeAccount(authority)

	var (
		refund  int64
		elapsed int64
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.categories.GetByIDForUpdate(txCtx, categoryID)
		if err != nil {
			return err
		}
		if authority == "" || c.Owner != authority {
			return domain.ErrUnauthorized
		}

		p, err := s.permissions.GetForUpdate(txCtx, categoryID, buyer)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrPermissionNotGranted
			}
			return fmt.Errorf("get permission: %w", err)
		}
		if !p.Granted {
			return domain.ErrPermissionNotGranted
		}

		now := s.now()
		elapsed = fee.ElapsedDays(p.GrantedAt, now, p.TotalDurationDays)
		refund, err = fee.ProRatedRefund(p.TotalPaid, p.TotalDurationDays, elapsed)
		if err != nil {
			return fmt.Errorf("pro-rated refund: %w", err)
		}

		if err := s.permissions.MarkRevoked(txCtx, categoryID, buyer); err != nil {
			return fmt.Errorf("mark revoked: %w", err)
		}

		event := domain.NewEvent(domain.EventPermissionRevoked, now, map[string]any{
			"buyer":        buyer.String(),
			"revoked_by":   authority.String(),
			"elapsed_days": elapsed,
			"refund":       refund,
		})
		event.CategoryID = categoryID
		return s.events.Append(txCtx, event)
	})
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "permission revoked",
		slog.Int64("category_id", categoryID),
		slog.String("buyer", buyer.String()),
		slog.Int64("elapsed_days", elapsed),
		slog.Int64("refund", refund),
	)

	return refund, nil
}
