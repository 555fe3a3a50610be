package permission

import (
	"github.com/heartmarshall/datamarket-backend/internal/domain"
)

// GrantInput holds the parameters for granting access.
// PaidAmount is recorded as TotalPaid and drives later refund math.
type GrantInput struct {
	CategoryID   int64
	Buyer        domain.Account
	DurationDays int64
	Authority    domain.Account
	PaidAmount   int64
}

// Validate checks all fields and collects all errors.
func (i GrantInput) Validate() error {
	var errs []domain.FieldError

	if i.DurationDays <= 0 {
		errs = append(errs, domain.FieldError{Field: "duration_days", Message: "must be positive", Err: domain.ErrZeroDuration})
	}
	if i.DurationDays > domain.MaxDurationDays {
		errs = append(errs, domain.FieldError{Field: "duration_days", Message: "max 36500 days", Err: domain.ErrDurationTooLong})
	}
	if i.Buyer.IsZero() {
		errs = append(errs, domain.FieldError{Field: "buyer", Message: "required", Err: domain.ErrInvalidBuyer})
	}
	if i.PaidAmount < 0 {
		errs = append(errs, domain.FieldError{Field: "paid_amount", Message: "must not be negative", Err: domain.ErrInvalidPrice})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
