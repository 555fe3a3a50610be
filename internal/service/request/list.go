package request

import (
	"context"
	"fmt"

	"github.com/heartmarshall/datamarket-backend/internal/domain"
)

// Get returns a request by id.
func (s *Service) Get(ctx context.Context, requestID int64) (*domain.AccessRequest, error) {
	return s.requests.GetByID(ctx, requestID)
}

// ListByBuyer returns the buyer's requests, newest first, optionally filtered
// by status.
func (s *Service) ListByBuyer(ctx context.Context, buyer domain.Account, status *domain.RequestStatus) ([]*domain.AccessRequest, error) {
	buyer = domain.NormalizeAccount(buyer)
	if buyer == "" {
		return nil, domain.NewValidationError("buyer", domain.ErrInvalidBuyer)
	}
	if status != nil && !status.IsValid() {
		return nil, domain.NewValidationErrors([]domain.FieldError{{Field: "status", Message: "unknown status", Err: domain.ErrValidation}})
	}

	reqs, err := s.requests.ListByBuyer(ctx, buyer, status)
	if err != nil {
		return nil, fmt.Errorf("list requests by buyer: %w", err)
	}
	return reqs, nil
}

// ListBySeller returns requests addressed to the seller, newest first,
// optionally filtered by status.
func (s *Service) ListBySeller(ctx context.Context, seller domain.Account, status *domain.RequestStatus) ([]*domain.AccessRequest, error) {
	seller = domain.NormalizeAccount(seller)
	if seller == "" {
		return nil, domain.NewValidationError("seller", domain.ErrInvalidAccount)
	}
	if status != nil && !status.IsValid() {
		return nil, domain.NewValidationErrors([]domain.FieldError{{Field: "status", Message: "unknown status", Err: domain.ErrValidation}})
	}

	reqs, err := s.requests.ListBySeller(ctx, seller, status)
	if err != nil {
		return nil, fmt.Errorf("list requests by seller: %w", err)
	}
	return reqs, nil
}

// EscrowBalance returns the total amount held for REQUESTED requests.
func (s *Service) EscrowBalance(ctx context.Context) (int64, error) {
	total, err := s.requests.EscrowBalance(ctx)
	if err != nil {
		return 0, fmt.Errorf("escrow balance: %w", err)
	}
	return total, nil
}
