package request

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/datamarket-backend/internal/domain"
)

// Reject declines a pending request and refunds the full escrow to the buyer.
// Only the seller may reject.
func (s *Service) Reject(ctx context.Context, requestID int64, authority domain.Account) (int64, error) {
	return s.refund(ctx, requestID, domain.NormalizeAccount(authority), domain.RequestStatusRejected)
}

// Cancel withdraws a pending request and refunds the full escrow to the buyer.
// Only the buyer may cancel.
func (s *Service) Cancel(ctx context.Context, requestID int64, authority domain.Account) (int64, error) {
	return s.refund(ctx, requestID, domain.NormalizeAccount(authority), domain.RequestStatusCancelled)
}

func (s *Service) refund(ctx context.Context, requestID int64, authority domain.Account, to domain.RequestStatus) (int64, error) {
	var amount int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		req, err := s.lockRequest(txCtx, requestID)
		if err != nil {
			return err
		}

		switch to {
		case domain.RequestStatusRejected:
			if authority == "" || req.Seller != authority {
				return domain.ErrUnauthorized
			}
		case domain.RequestStatusCancelled:
			if authority == "" || req.Buyer != authority {
				return domain.ErrNotBuyer
			}
		}
		if !req.IsPending() {
			return domain.ErrRequestNotPending
		}

		if err := s.send(txCtx, req.Buyer, req.Amount, domain.TransferReasonRefund, req.ID); err != nil {
			return fmt.Errorf("refund buyer: %w", err)
		}

		now := s.now()
		if err := s.requests.Resolve(txCtx, req.ID, to, now); err != nil {
			return err
		}

		typ := domain.EventRequestRejected
		if to == domain.RequestStatusCancelled {
			typ = domain.EventRequestCancelled
		}
		event := domain.NewEvent(typ, now, map[string]any{
			"buyer":  req.Buyer.String(),
			"seller": req.Seller.String(),
			"refund": req.Amount,
		})
		event.CategoryID = req.CategoryID
		event.RequestID = req.ID
		if err := s.events.Append(txCtx, event); err != nil {
			return err
		}

		amount = req.Amount
		return nil
	})
	if err != nil {
		if domain.IsRetryable(err) {
			s.log.WarnContext(ctx, "refund failed, request left pending",
				slog.Int64("request_id", requestID),
				slog.String("status", to.String()),
				slog.String("error", err.Error()),
			)
		}
		return 0, err
	}

	s.log.InfoContext(ctx, "request resolved",
		slog.Int64("request_id", requestID),
		slog.String("status", to.String()),
		slog.Int64("refund", amount),
	)

	return amount, nil
}
