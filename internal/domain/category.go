package domain

import "time"

// MaxCategoryNameLength bounds Category.Name in characters.
const MaxCategoryNameLength = 200

// Category is a priced data category registered by its owner.
// Categories are never deleted; deactivation is terminal for the id.
type Category struct {
	ID          int64
	Owner       Account
	Name        string
	PricePerDay int64
	ContentHash ContentHash
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CategoryUpdateParams holds the mutable fields of a category.
type CategoryUpdateParams struct {
	PricePerDay int64
	ContentHash ContentHash
}

// CategoryPage is one slice of a registration-ordered scan.
// NextAfterID is zero when the scan is exhausted.
type CategoryPage struct {
	Categories  []*Category
	NextAfterID int64
}
