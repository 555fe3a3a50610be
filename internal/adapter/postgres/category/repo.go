// Package category implements the category registry repository using
// PostgreSQL, including the category_delegates join table.
package category

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/datamarket-backend/internal/adapter/postgres"
	"github.com/heartmarshall/datamarket-backend/internal/domain"
)

var columns = []string{
	"id", "owner", "name", "price_per_day", "content_hash", "active", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// row mirrors the categories table for scanning.
type row struct {
	ID          int64     `db:"id"`
	Owner       string    `db:"owner"`
	Name        string    `db:"name"`
	PricePerDay int64     `db:"price_per_day"`
	ContentHash []byte    `db:"content_hash"`
	Active      bool      `db:"active"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r row) toDomain() (*domain.Category, error) {
	hash, err := domain.ContentHashFromBytes(r.ContentHash)
	if err != nil {
		return nil, fmt.Errorf("category %d: %w", r.ID, err)
	}
	return &domain.Category{
		ID:          r.ID,
		Owner:       domain.Account(r.Owner),
		Name:        r.Name,
		PricePerDay: r.PricePerDay,
		ContentHash: hash,
		Active:      r.Active,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}, nil
}

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new category repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a category by primary key.
// Returns domain.ErrCategoryNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate is GetByID with a row lock held until the surrounding
// transaction ends.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Category, error) {
	return r.get(ctx, id, true)
}

func (r *Repo) get(ctx context.Context, id int64, lock bool) (*domain.Category, error) {
	query := postgres.Builder().
		Select(columns...).
		From("categories").
		Where(squirrel.Eq{"id": id})
	if lock {
		query = query.Suffix("FOR UPDATE")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get category: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		return nil, postgres.MapError(err, "category", id, domain.ErrCategoryNotFound)
	}
	return dst.toDomain()
}

// ListActive returns up to limit active categories with id > afterID in
// registration order.
func (r *Repo) ListActive(ctx context.Context, afterID int64, limit int) ([]*domain.Category, error) {
	query := postgres.Builder().
		Select(columns...).
		From("categories").
		Where(squirrel.Eq{"active": true}).
		Where(squirrel.Gt{"id": afterID}).
		OrderBy("id ASC").
		Limit(uint64(limit))

	return r.list(ctx, query)
}

// ListByOwner returns every category registered by owner, active or not.
func (r *Repo) ListByOwner(ctx context.Context, owner domain.Account) ([]*domain.Category, error) {
	query := postgres.Builder().
		Select(columns...).
		From("categories").
		Where(squirrel.Eq{"owner": string(owner)}).
		OrderBy("id ASC")

	return r.list(ctx, query)
}

func (r *Repo) list(ctx context.Context, query squirrel.SelectBuilder) ([]*domain.Category, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list categories: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	result := make([]*domain.Category, 0, len(rows))
	for _, rw := range rows {
		c, err := rw.toDomain()
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a category and returns it with the assigned id.
func (r *Repo) Create(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	sql, args, err := postgres.Builder().
		Insert("categories").
		Columns("owner", "name", "price_per_day", "content_hash", "active", "created_at", "updated_at").
		Values(string(c.Owner), c.Name, c.PricePerDay, c.ContentHash[:], c.Active, c.CreatedAt, c.UpdatedAt).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create category: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		return nil, postgres.MapError(err, "category", c.Name, domain.ErrCategoryNotFound)
	}
	return dst.toDomain()
}

// Update replaces the mutable fields of a category.
func (r *Repo) Update(ctx context.Context, id int64, params domain.CategoryUpdateParams, updatedAt time.Time) (*domain.Category, error) {
	sql, args, err := postgres.Builder().
		Update("categories").
		Set("price_per_day", params.PricePerDay).
		Set("content_hash", params.ContentHash[:]).
		Set("updated_at", updatedAt).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update category: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		return nil, postgres.MapError(err, "category", id, domain.ErrCategoryNotFound)
	}
	return dst.toDomain()
}

// Deactivate clears the active flag.
func (r *Repo) Deactivate(ctx context.Context, id int64, updatedAt time.Time) error {
	sql, args, err := postgres.Builder().
		Update("categories").
		Set("active", false).
		Set("updated_at", updatedAt).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build deactivate category: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "category", id, domain.ErrCategoryNotFound)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("category %d: %w", id, domain.ErrCategoryNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Delegates (M2M)
// ---------------------------------------------------------------------------

// AddDelegate authorizes delegate to grant permissions on the category.
// Returns domain.ErrAlreadyExists when the pair is already present.
func (r *Repo) AddDelegate(ctx context.Context, categoryID int64, delegate domain.Account) error {
	sql, args, err := postgres.Builder().
		Insert("category_delegates").
		Columns("category_id", "delegate").
		Values(categoryID, string(delegate)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build add delegate: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "delegate", delegate, domain.ErrCategoryNotFound)
	}
	return nil
}

// RemoveDelegate returns domain.ErrNotFound when the pair does not exist.
func (r *Repo) RemoveDelegate(ctx context.Context, categoryID int64, delegate domain.Account) error {
	sql, args, err := postgres.Builder().
		Delete("category_delegates").
		Where(squirrel.Eq{"category_id": categoryID, "delegate": string(delegate)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build remove delegate: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("remove delegate %s: %w", delegate, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delegate %s: %w", delegate, domain.ErrNotFound)
	}
	return nil
}

// ListDelegates returns the delegates of a category sorted by account.
func (r *Repo) ListDelegates(ctx context.Context, categoryID int64) ([]domain.Account, error) {
	sql, args, err := postgres.Builder().
		Select("delegate").
		From("category_delegates").
		Where(squirrel.Eq{"category_id": categoryID}).
		OrderBy("delegate ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list delegates: %w", err)
	}

	var delegates []string
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &delegates, sql, args...); err != nil {
		return nil, fmt.Errorf("list delegates: %w", err)
	}

	result := make([]domain.Account, len(delegates))
	for i, d := range delegates {
		result[i] = domain.Account(d)
	}
	return result, nil
}

// IsDelegate reports whether account is a delegate of the category.
func (r *Repo) IsDelegate(ctx context.Context, categoryID int64, account domain.Account) (bool, error) {
	sql, args, err := postgres.Builder().
		Select("1").
		Prefix("SELECT EXISTS (").
		From("category_delegates").
		Where(squirrel.Eq{"category_id": categoryID, "delegate": string(account)}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build is delegate: %w", err)
	}

	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("is delegate: %w", err)
	}
	return exists, nil
}
