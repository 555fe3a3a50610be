package request

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/datamarket-backend/internal/domain"
	"github.com/heartmarshall/datamarket-backend/internal/service/fee"
	"github.com/heartmarshall/datamarket-backend/internal/service/permission"
)

// Approve releases escrow to the seller and platform and grants the buyer
// access for the requested duration. The fee percentage is read at approval
// time, not at request time.
//
// Payouts, grant and status change commit together. On any failure the
// request stays REQUESTED and Approve may be retried.
func (s *Service) Approve(ctx context.Context, requestID int64, authority domain.Account) (*domain.Settlement, error) {
	authority = domain.NormalizeAccount(authority)

	var settlement *domain.Settlement
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		req, err := s.lockRequest(txCtx, requestID)
		if err != nil {
			return err
		}
		if authority == "" || req.Seller != authority {
			return domain.ErrUnauthorized
		}
		if !req.IsPending() {
			return domain.ErrRequestNotPending
		}

		pct, err := s.fees.Percent(txCtx)
		if err != nil {
			return err
		}
		ownerAmount, platformFee, err := fee.Split(req.Amount, pct)
		if err != nil {
			return fmt.Errorf("split escrow: %w", err)
		}

		if err := s.send(txCtx, req.Seller, ownerAmount, domain.TransferReasonOwnerPayout, req.ID); err != nil {
			return fmt.Errorf("owner payout: %w", err)
		}
		if err := s.send(txCtx, s.platformWallet, platformFee, domain.TransferReasonPlatformFee, req.ID); err != nil {
			return fmt.Errorf("platform fee: %w", err)
		}

		granted, err := s.permissions.Grant(txCtx, permission.GrantInput{
			CategoryID:   req.CategoryID,
			Buyer:        req.Buyer,
			DurationDays: req.DurationDays,
			Authority:    req.Seller,
			PaidAmount:   req.Amount,
		})
		if err != nil {
			return err
		}

		now := s.now()
		if err := s.requests.Resolve(txCtx, req.ID, domain.RequestStatusApproved, now); err != nil {
			return err
		}

		event := domain.NewEvent(domain.EventRequestApproved, now, map[string]any{
			"buyer":        req.Buyer.String(),
			"seller":       req.Seller.String(),
			"amount":       req.Amount,
			"owner_amount": ownerAmount,
			"platform_fee": platformFee,
			"fee_percent":  pct,
		})
		event.CategoryID = req.CategoryID
		event.RequestID = req.ID
		if err := s.events.Append(txCtx, event); err != nil {
			return err
		}

		settlement = &domain.Settlement{
			RequestID:   req.ID,
			OwnerAmount: ownerAmount,
			PlatformFee: platformFee,
			FeePercent:  pct,
			Permission:  granted,
		}
		return nil
	})
	if err != nil {
		if domain.IsRetryable(err) {
			s.log.WarnContext(ctx, "approve failed, request left pending",
				slog.Int64("request_id", requestID),
				slog.String("error", err.Error()),
			)
		}
		return nil, err
	}

	s.log.InfoContext(ctx, "request approved",
		slog.Int64("request_id", requestID),
		slog.Int64("owner_amount", settlement.OwnerAmount),
		slog.Int64("platform_fee", settlement.PlatformFee),
		slog.Int("fee_percent", int(settlement.FeePercent)),
	)

	return settlement, nil
}

// lockRequest locks the request row. Status is checked by the caller so that
// authorization failures take precedence over state conflicts.
func (s *Service) lockRequest(ctx context.Context, requestID int64) (*domain.AccessRequest, error) {
	return s.requests.GetByIDForUpdate(ctx, requestID)
}

// send skips zero-value transfers; a 0% fee produces no platform transfer.
func (s *Service) send(ctx context.Context, to domain.Account, amount int64, reason domain.TransferReason, requestID int64) error {
	if amount == 0 {
		return nil
	}
	return s.wallet.Send(ctx, domain.Transfer{
		To:        to,
		Amount:    amount,
		Reason:    reason,
		RequestID: requestID,
	})
}
