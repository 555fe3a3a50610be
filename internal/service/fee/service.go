package fee

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/datamarket-backend/internal/domain"
)

type settingsRepo interface {
	GetFeePercent(ctx context.Context) (uint8, error)
	SetFeePercent(ctx context.Context, percent uint8, updatedBy domain.Account) error
}

type eventLog interface {
	Append(ctx context.Context, event domain.Event) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service owns the live platform fee percentage.
type Service struct {
	settings settingsRepo
	events   eventLog
	tx       txManager
	clock    clockwork.Clock
	admin    domain.Account
	log      *slog.Logger
}

// NewService creates a fee schedule service. admin is the only account
// allowed to change the percentage.
func NewService(
	log *slog.Logger,
	settings settingsRepo,
	events eventLog,
	tx txManager,
	clock clockwork.Clock,
	admin domain.Account,
) *Service {
	return &Service{
		settings: settings,
		events:   events,
		tx:       tx,
		clock:    clock,
		admin:    domain.NormalizeAccount(admin),
		log:      log.With("service", "fee"),
	}
}

// Percent returns the fee percentage in effect right now.
func (s *Service) Percent(ctx context.Context) (uint8, error) {
	pct, err := s.settings.GetFeePercent(ctx)
	if err != nil {
		return 0, fmt.Errorf("get fee percent: %w", err)
	}
	return pct, nil
}

// SetPercent changes the fee percentage for future splits. Requests already in
// escrow are split at whatever percentage is live when they are approved.
func (s *Service) SetPercent(ctx context.Context, authority domain.Account, percent int) error {
	authority = domain.NormalizeAccount(authority)
	if authority == "" || authority != s.admin {
		return domain.ErrUnauthorized
	}
	if percent < 0 || percent > MaxPercent {
		return domain.NewValidationError("fee_percent", domain.ErrPercentageExceeded)
	}

	var previous uint8
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		previous, err = s.settings.GetFeePercent(txCtx)
		if err != nil {
			return fmt.Errorf("get fee percent: %w", err)
		}
		if err := s.settings.SetFeePercent(txCtx, uint8(percent), authority); err != nil {
			return fmt.Errorf("set fee percent: %w", err)
		}
		return s.events.Append(txCtx, domain.NewEvent(domain.EventFeeUpdated, s.clock.Now().UTC(), map[string]any{
			"previous_percent": previous,
			"percent":          percent,
			"updated_by":       authority.String(),
		}))
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "fee percent updated",
		slog.Int("previous", int(previous)),
		slog.Int("percent", percent),
		slog.String("updated_by", authority.String()),
	)

	return nil
}

// Quote prices a duration at the live fee percentage.
func (s *Service) Quote(ctx context.Context, pricePerDay, durationDays int64) (domain.Quote, error) {
	pct, err := s.Percent(ctx)
	if err != nil {
		return domain.Quote{}, err
	}
	return Quote(pricePerDay, durationDays, pct)
}
