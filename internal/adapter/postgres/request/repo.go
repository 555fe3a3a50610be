// Package request implements the escrowed access request repository using
// PostgreSQL.
package request

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
	"id", "buyer", "seller", "category_id", "duration_days", "price_per_day", "amount", "status", "created_at", "resolved_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

type row struct {
	ID           int64      `db:"id"`
	Buyer        string     `db:"buyer"`
	Seller       string     `db:"seller"`
	CategoryID   int64      `db:"category_id"`
	DurationDays int64      `db:"duration_days"`
	PricePerDay  int64      `db:"price_per_day"`
	Amount       int64      `db:"amount"`
	Status       string     `db:"status"`
	CreatedAt    time.Time  `db:"created_at"`
	ResolvedAt   *time.Time `db:"resolved_at"`
}

func (r row) toDomain() *domain.AccessRequest {
	return &domain.AccessRequest{
		ID:           r.ID,
		Buyer:        domain.Account(r.Buyer),
		Seller:       domain.Account(r.Seller),
		CategoryID:   r.CategoryID,
		DurationDays: r.DurationDays,
		PricePerDay:  r.PricePerDay,
		Amount:       r.Amount,
		Status:       domain.RequestStatus(r.Status),
		CreatedAt:    r.CreatedAt,
		ResolvedAt:   r.ResolvedAt,
	}
}

// Repo provides access request persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new access request repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a pending request and returns it with the assigned id.
func (r *Repo) Create(ctx context.Context, req *domain.AccessRequest) (*domain.AccessRequest, error) {
	sql, args, err := postgres.Builder().
		Insert("access_requests").
		Columns("buyer", "seller", "category_id", "duration_days", "price_per_day", "amount", "status", "created_at").
		Values(string(req.Buyer), string(req.Seller), req.CategoryID, req.DurationDays, req.PricePerDay,
			req.Amount, string(domain.RequestStatusRequested), req.CreatedAt).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create request: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		return nil, postgres.MapError(err, "request for category", req.CategoryID, domain.ErrCategoryNotFound)
	}
	return dst.toDomain(), nil
}

// GetByID returns domain.ErrRequestNotFound if the request does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.AccessRequest, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate is GetByID with a row lock.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.AccessRequest, error) {
	return r.get(ctx, id, true)
}

func (r *Repo) get(ctx context.Context, id int64, lock bool) (*domain.AccessRequest, error) {
	query := postgres.Builder().
		Select(columns...).
		From("access_requests").
		Where(squirrel.Eq{"id": id})
	if lock {
		query = query.Suffix("FOR UPDATE")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get request: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		return nil, postgres.MapError(err, "request", id, domain.ErrRequestNotFound)
	}
	return dst.toDomain(), nil
}

// Resolve moves a pending request to a terminal status. The update is
// conditional on status = 'REQUESTED', so a request resolves exactly once.
func (r *Repo) Resolve(ctx context.Context, id int64, status domain.RequestStatus, resolvedAt time.Time) error {
	sql, args, err := postgres.Builder().
		Update("access_requests").
		Set("status", string(status)).
		Set("resolved_at", resolvedAt).
		Where(squirrel.Eq{"id": id, "status": string(domain.RequestStatusRequested)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build resolve request: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "request", id, domain.ErrRequestNotFound)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	if _, err := r.get(ctx, id, false); err != nil {
		return err
	}
	return fmt.Errorf("request %d: %w", id, domain.ErrRequestNotPending)
}

// ListByBuyer returns a buyer's requests, newest first, optionally filtered
// by status.
func (r *Repo) ListByBuyer(ctx context.Context, buyer domain.Account, status *domain.RequestStatus) ([]*domain.AccessRequest, error) {
	return r.list(ctx, squirrel.Eq{"buyer": string(buyer)}, status)
}

// ListBySeller returns a seller's requests, newest first, optionally
// filtered by status.
func (r *Repo) ListBySeller(ctx context.Context, seller domain.Account, status *domain.RequestStatus) ([]*domain.AccessRequest, error) {
	return r.list(ctx, squirrel.Eq{"seller": string(seller)}, status)
}

func (r *Repo) list(ctx context.Context, where squirrel.Eq, status *domain.RequestStatus) ([]*domain.AccessRequest, error) {
	query := postgres.Builder().
		Select(columns...).
		From("access_requests").
		Where(where).
		OrderBy("id DESC")
	if status != nil {
		query = query.Where(squirrel.Eq{"status": string(*status)})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list requests: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}

	result := make([]*domain.AccessRequest, len(rows))
	for i, rw := range rows {
		result[i] = rw.toDomain()
	}
	return result, nil
}

// EscrowBalance returns the sum of amounts held by pending requests.
func (r *Repo) EscrowBalance(ctx context.Context) (int64, error) {
	sql, args, err := postgres.Builder().
		Select("COALESCE(SUM(amount), 0)::BIGINT").
		From("access_requests").
		Where(squirrel.Eq{"status": string(domain.RequestStatusRequested)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build escrow balance: %w", err)
	}

	var total int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, postgres.MapError(err, "escrow", "balance", domain.ErrNotFound)
	}
	return total, nil
}
