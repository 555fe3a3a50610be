// Package permission implements the time-bound access ledger. Expiry is
// evaluated lazily at read time; nothing sweeps expired grants.
package permission

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/datamarket-backend/internal/domain"
)

type categoryRepo interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Category, error)
	IsDelegate(ctx context.Context, categoryID int64, account domain.Account) (bool, error)
}

type permissionRepo interface {
	Get(ctx context.Context, categoryID int64, buyer domain.Account) (*domain.Permission, error)
	GetForUpdate(ctx context.Context, categoryID int64, buyer domain.Account) (*domain.Permission, error)
	Upsert(ctx context.Context, p *domain.Permission) error
	MarkRevoked(ctx context.Context, categoryID int64, buyer domain.Account) error
	ListByBuyer(ctx context.Context, buyer domain.Account) ([]*domain.Permission, error)
}

type eventLog interface {
	Append(ctx context.Context, event domain.Event) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service grants, checks and revokes access permissions.
type Service struct {
	categories  categoryRepo
	permissions permissionRepo
	events      eventLog
	tx          txManager
	clock       clockwork.Clock
	log         *slog.Logger
}

// NewService creates a new permission ledger.
func NewService(
	log *slog.Logger,
	categories categoryRepo,
	permissions permissionRepo,
	events eventLog,
	tx txManager,
	clock clockwork.Clock,
) *Service {
	return &Service{
		categories:  categories,
		permissions: permissions,
		events:      events,
		tx:          tx,
		clock:       clock,
		log:         log.With("service", "permission"),
	}
}

func (s *Service) now() time.Time {
	return s.clock.Now().UTC().Truncate(time.Microsecond)
}
