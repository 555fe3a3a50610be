// Package category implements the category registry: owners register priced
// data categories, update their price or content reference, deactivate them
// and designate delegates allowed to grant access on their behalf.
package category

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/datamarket-backend/internal/domain"
)

type categoryRepo interface {
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Category, error)
	Update(ctx context.Context, id int64, params domain.CategoryUpdateParams, updatedAt time.Time) (*domain.Category, error)
	Deactivate(ctx context.Context, id int64, updatedAt time.Time) error
	ListActive(ctx context.Context, afterID int64, limit int) ([]*domain.Category, error)
	ListByOwner(ctx context.Context, owner domain.Account) ([]*domain.Category, error)

	AddDelegate(ctx context.Context, categoryID int64, delegate domain.Account) error
	RemoveDelegate(ctx context.Context, categoryID int64, delegate domain.Account) error
	ListDelegates(ctx context.Context, categoryID int64) ([]domain.Account, error)
}

type eventLog interface {
	Append(ctx context.Context, event domain.Event) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// Service provides category registry operations.
type Service struct {
	categories categoryRepo
	events     eventLog
	tx         txManager
	clock      clockwork.Clock
	log        *slog.Logger
}

// NewService creates a new category registry.
func NewService(
	log *slog.Logger,
	categories categoryRepo,
	events eventLog,
	tx txManager,
	clock clockwork.Clock,
) *Service {
	return &Service{
		categories: categories,
		events:     events,
		tx:         tx,
		clock:      clock,
		log:        log.With("service", "category"),
	}
}

func (s *Service) now() time.Time {
	return s.clock.Now().UTC().Truncate(time.Microsecond)
}

// loadOwned locks the category for update and checks that authority owns it.
func (s *Service) loadOwned(ctx context.Context, categoryID int64, authority domain.Account) (*domain.Category, error) {
	c, err := s.categories.GetByIDForUpdate(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if authority == "" || c.Owner != authority {
		return nil, domain.ErrUnauthorized
	}
	return c, nil
}
