package category

import (
	"github.com/heartmarshall/datamarket-backend/internal/domain"
)

// RegisterInput holds the parameters for registering a category.
type RegisterInput struct {
	Owner       domain.Account
	Name        string
	PricePerDay int64
	ContentHash domain.ContentHash
}

// Validate checks all fields and collects all errors.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.Owner.IsZero() {
		errs = append(errs, domain.FieldError{Field: "owner", Message: "required", Err: domain.ErrInvalidAccount})
	}

	name := domain.NormalizeName(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required", Err: domain.ErrInvalidName})
	}
	if len([]rune(name)) > domain.MaxCategoryNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters", Err: domain.ErrInvalidName})
	}

	if i.PricePerDay <= 0 {
		errs = append(errs, domain.FieldError{Field: "price_per_day", Message: "must be positive", Err: domain.ErrInvalidPrice})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the parameters for updating a category.
type UpdateInput struct {
	CategoryID  int64
	Authority   domain.Account
	PricePerDay int64
	ContentHash domain.ContentHash
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	if i.PricePerDay <= 0 {
		return domain.NewValidationError("price_per_day", domain.ErrInvalidPrice)
	}
	return nil
}

// DelegateInput identifies a delegate of a category.
type DelegateInput struct {
	CategoryID int64
	Authority  domain.Account
	Delegate   domain.Account
}

// Validate checks all fields and collects all errors.
func (i DelegateInput) Validate() error {
	if i.Delegate.IsZero() {
		return domain.NewValidationError("delegate", domain.ErrInvalidAccount)
	}
	return nil
}

// ListInput pages through active categories in registration order.
// AfterID is the last id of the previous page; zero starts from the beginning.
type ListInput struct {
	AfterID int64
	Limit   int
}

func (i *ListInput) normalize() {
	if i.AfterID < 0 {
		i.AfterID = 0
	}
	if i.Limit <= 0 {
		i.Limit = DefaultPageSize
	}
	if i.Limit > MaxPageSize {
		i.Limit = MaxPageSize
	}
}
