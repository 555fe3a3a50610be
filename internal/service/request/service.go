// Package request implements the escrowed access-request lifecycle:
// REQUESTED -> APPROVED | REJECTED | CANCELLED, each terminal.
//
// Funds for a REQUESTED request are in engine custody. Resolution moves them
// to owner and platform (approve) or back to the buyer (reject, cancel) in the
// same transaction as the status change, so a failed transfer leaves the
// request pending and retriable.
package request

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/datamarket-backend/internal/domain"
	"github.com/heartmarshall/datamarket-backend/internal/service/permission"
)

type categoryRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Category, error)
}

type requestRepo interface {
	Create(ctx context.Context, r *domain.AccessRequest) (*domain.AccessRequest, error)
	GetByID(ctx context.Context, id int64) (*domain.AccessRequest, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.AccessRequest, error)
	Resolve(ctx context.Context, id int64, status domain.RequestStatus, resolvedAt time.Time) error
	ListByBuyer(ctx context.Context, buyer domain.Account, status *domain.RequestStatus) ([]*domain.AccessRequest, error)
	ListBySeller(ctx context.Context, seller domain.Account, status *domain.RequestStatus) ([]*domain.AccessRequest, error)
	EscrowBalance(ctx context.Context) (int64, error)
}

type feeSchedule interface {
	Percent(ctx context.Context) (uint8, error)
}

type permissionGranter interface {
	Grant(ctx context.Context, input permission.GrantInput) (*domain.Permission, error)
}

type wallet interface {
	Send(ctx context.Context, transfer domain.Transfer) error
}

type eventLog interface {
	Append(ctx context.Context, event domain.Event) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service runs the buyer/seller request lifecycle and holds escrow.
type Service struct {
	categories     categoryRepo
	requests       requestRepo
	fees           feeSchedule
	permissions    permissionGranter
	wallet         wallet
	events         eventLog
	tx             txManager
	clock          clockwork.Clock
	platformWallet domain.Account
	log            *slog.Logger
}

// NewService creates a new request ledger. Platform fees are paid to
// platformWallet.
func NewService(
	log *slog.Logger,
	categories categoryRepo,
	requests requestRepo,
	fees feeSchedule,
	permissions permissionGranter,
	wallet wallet,
	events eventLog,
	tx txManager,
	clock clockwork.Clock,
	platformWallet domain.Account,
) *Service {
	return &Service{
		categories:     categories,
		requests:       requests,
		fees:           fees,
		permissions:    permissions,
		wallet:         wallet,
		events:         events,
		tx:             tx,
		clock:          clock,
		platformWallet: domain.NormalizeAccount(platformWallet),
		log:            log.With("service", "request"),
	}
}

func (s *Service) now() time.Time {
	return s.clock.Now().UTC().Truncate(time.Microsecond)
}
