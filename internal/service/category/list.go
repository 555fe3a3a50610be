package category

import (
	"context"
	"fmt"

	"github.com/heartmarshall/datamarket-backend/internal/domain"
)

// Get returns a category by id, active or not.
func (s *Service) Get(ctx context.Context, categoryID int64) (*domain.Category, error) {
	return s.categories.GetByID(ctx, categoryID)
}

// ListActive returns one page of active categories in registration order.
// Passing the returned NextAfterID resumes the scan; zero means it is done.
func (s *Service) ListActive(ctx context.Context, input ListInput) (domain.CategoryPage, error) {
	input.normalize()

	// Fetch one extra row to learn whether another page exists.
	rows, err := s.categories.ListActive(ctx, input.AfterID, input.Limit+1)
	if err != nil {
		return domain.CategoryPage{}, fmt.Errorf("list active categories: %w", err)
	}

	page := domain.CategoryPage{Categories: rows}
	if len(rows) > input.Limit {
		page.Categories = rows[:input.Limit]
		page.NextAfterID = page.Categories[input.Limit-1].ID
	}
	return page, nil
}

// ListByOwner returns every category registered by owner in registration order.
func (s *Service) ListByOwner(ctx context.Context, owner domain.Account) ([]*domain.Category, error) {
	owner = domain.NormalizeAccount(owner)
	if owner == "" {
		return nil, domain.NewValidationError("owner", domain.ErrInvalidAccount)
	}

	categories, err := s.categories.ListByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list categories by owner: %w", err)
	}
	return categories, nil
}
