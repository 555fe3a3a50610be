package request

import (
	"github.com/heartmarshall/datamarket-backend/internal/domain"
)

// RequestAccessInput holds the parameters of a buyer's escrowed request.
// Payment must equal the quoted total exactly.
type RequestAccessInput struct {
	Buyer        domain.Account
	CategoryID   int64
	DurationDays int64
	Payment      int64
}

// Validate checks all fields and collects all errors.
func (i RequestAccessInput) Validate() error {
	var errs []domain.FieldError

	if i.Buyer.IsZero() {
		errs = append(errs, domain.FieldError{Field: "buyer", Message: "required", Err: domain.ErrInvalidBuyer})
	}
	if err := validateDuration(i.DurationDays); err != nil {
		errs = append(errs, *err)
	}
	if i.Payment <= 0 {
		errs = append(errs, domain.FieldError{Field: "payment", Message: "must be positive", Err: domain.ErrIncorrectPaymentAmount})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateDuration(days int64) *domain.FieldError {
	if days <= 0 {
		return &domain.FieldError{Field: "duration_days", Message: "must be positive", Err: domain.ErrZeroDuration}
	}
	if days > domain.MaxDurationDays {
		return &domain.FieldError{Field: "duration_days", Message: "max 36500 days", Err: domain.ErrDurationTooLong}
	}
	return nil
}
