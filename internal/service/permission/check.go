package permission

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/datamarket-backend/internal/domain"
)

// Check reports whether buyer may access the category right now. Unknown
// categories and pairs are simply not permitted. Check never writes.
func (s *Service) Check(ctx context.Context, categoryID int64, buyer domain.Account) (bool, error) {
	buyer = domain.NormalizeAccount(buyer)
	if buyer == "" {
		return false, nil
	}

	p, err := s.permissions.Get(ctx, categoryID, buyer)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("get permission: %w", err)
	}

	return p.ActiveAt(s.clock.Now()), nil
}

// Get returns the stored record for the pair, including revoked or expired
// grants. Returns an error wrapping domain.ErrNotFound when none exists.
func (s *Service) Get(ctx context.Context, categoryID int64, buyer domain.Account) (*domain.Permission, error) {
	return s.permissions.Get(ctx, categoryID, domain.NormalizeAccount(buyer))
}

// ListByBuyer returns every permission record held by buyer.
func (s *Service) ListByBuyer(ctx context.Context, buyer domain.Account) ([]*domain.Permission, error) {
	buyer = domain.NormalizeAccount(buyer)
	if buyer == "" {
		return nil, domain.NewValidationError("buyer", domain.ErrInvalidBuyer)
	}
	return s.permissions.ListByBuyer(ctx, buyer)
}
