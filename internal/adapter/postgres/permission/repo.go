// Package permission implements the permission ledger repository using
// PostgreSQL. Rows are keyed by (category_id, buyer) and never deleted;
// revocation clears the granted flag.
package permission

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/datamarket-backend/internal/adapter/postgres"
	"github.com/heartmarshall/datamarket-backend/internal/domain"
)

var columns = []string{
	"category_id", "buyer", "granted", "granted_at", "expires_at", "total_paid", "total_duration_days",
}

type row struct {
	CategoryID        int64     `db:"category_id"`
	Buyer             string    `db:"buyer"`
	Granted           bool      `db:"granted"`
	GrantedAt         time.Time `db:"granted_at"`
	ExpiresAt         time.Time `db:"expires_at"`
	TotalPaid         int64     `db:"total_paid"`
	TotalDurationDays int64     `db:"total_duration_days"`
}

func (r row) toDomain() *domain.Permission {
	return &domain.Permission{
		CategoryID:        r.CategoryID,
		Buyer:             domain.Account(r.Buyer),
		Granted:           r.Granted,
		GrantedAt:         r.GrantedAt,
		ExpiresAt:         r.ExpiresAt,
		TotalPaid:         r.TotalPaid,
		TotalDurationDays: r.TotalDurationDays,
	}
}

// Repo provides permission persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new permission repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Get returns the permission record for (categoryID, buyer).
// Returns domain.ErrNotFound if none was ever granted.
func (r *Repo) Get(ctx context.Context, categoryID int64, buyer domain.Account) (*domain.Permission, error) {
	return r.get(ctx, categoryID, buyer, false)
}

// GetForUpdate is Get with a row lock.
func (r *Repo) GetForUpdate(ctx context.Context, categoryID int64, buyer domain.Account) (*domain.Permission, error) {
	return r.get(ctx, categoryID, buyer, true)
}

func (r *Repo) get(ctx context.Context, categoryID int64, buyer domain.Account, lock bool) (*domain.Permission, error) {
	query := postgres.Builder().
		Select(columns...).
		From("permissions").
		Where(squirrel.Eq{"category_id": categoryID, "buyer": string(buyer)})
	if lock {
		query = query.Suffix("FOR UPDATE")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get permission: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		return nil, postgres.MapError(err, "permission", fmt.Sprintf("%d/%s", categoryID, buyer), domain.ErrNotFound)
	}
	return dst.toDomain(), nil
}

// Upsert writes the full permission record, replacing any previous one.
func (r *Repo) Upsert(ctx context.Context, p *domain.Permission) error {
	sql, args, err := postgres.Builder().
		Insert("permissions").
		Columns(columns...).
		Values(p.CategoryID, string(p.Buyer), p.Granted, p.GrantedAt, p.ExpiresAt, p.TotalPaid, p.TotalDurationDays).
		Suffix(`ON CONFLICT (category_id, buyer) DO UPDATE SET
			granted = EXCLUDED.granted,
			granted_at = EXCLUDED.granted_at,
			expires_at = EXCLUDED.expires_at,
			total_paid = EXCLUDED.total_paid,
			total_duration_days = EXCLUDED.total_duration_days`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert permission: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "permission", fmt.Sprintf("%d/%s", p.CategoryID, p.Buyer), domain.ErrCategoryNotFound)
	}
	return nil
}

// MarkRevoked clears the granted flag, keeping the payment history.
func (r *Repo) MarkRevoked(ctx context.Context, categoryID int64, buyer domain.Account) error {
	sql, args, err := postgres.Builder().
		Update("permissions").
		Set("granted", false).
		Where(squirrel.Eq{"category_id": categoryID, "buyer": string(buyer)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build revoke permission: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("revoke permission: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("permission %d/%s: %w", categoryID, buyer, domain.ErrNotFound)
	}
	return nil
}

// ListByBuyer returns every permission record of a buyer ordered by category.
func (r *Repo) ListByBuyer(ctx context.Context, buyer domain.Account) ([]*domain.Permission, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From("permissions").
		Where(squirrel.Eq{"buyer": string(buyer)}).
		OrderBy("category_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list permissions: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}

	result := make([]*domain.Permission, len(rows))
	for i, rw := range rows {
		result[i] = rw.toDomain()
	}
	return result, nil
}
