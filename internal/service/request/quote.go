package request

import (
	"context"

	"github.com/heartmarshall/datamarket-backend/internal/domain"
	"github.com/heartmarshall/datamarket-backend/internal/service/fee"
)

// Quote prices durationDays of access to a category at the live fee
// percentage. Inactive categories can still be quoted.
func (s *Service) Quote(ctx context.Context, categoryID, durationDays int64) (domain.Quote, error) {
	if fe := validateDuration(durationDays); fe != nil {
		return domain.Quote{}, domain.NewValidationErrors([]domain.FieldError{*fe})
	}

	c, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return domain.Quote{}, err
	}
	return s.quote(ctx, c, durationDays)
}

func (s *Service) quote(ctx context.Context, c *domain.Category, durationDays int64) (domain.Quote, error) {
	pct, err := s.fees.Percent(ctx)
	if err != nil {
		return domain.Quote{}, err
	}
	return fee.Quote(c.PricePerDay, durationDays, pct)
}
