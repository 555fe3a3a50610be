package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/datamarket-backend/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting
// test data. Tests share one database, so accounts must not collide.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedCategory inserts an active category owned by owner, priced at 100 per
// day, and returns it as stored.
func SeedCategory(t *testing.T, pool *pgxpool.Pool, owner domain.Account) domain.Category {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.Category{
		Owner:       owner,
		Name:        "category " + UniqueSuffix(),
		PricePerDay: 100,
		ContentHash: domain.HashContent([]byte(owner)),
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO categories (owner, name, price_per_day, content_hash, active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		string(c.Owner), c.Name, c.PricePerDay, c.ContentHash[:], c.Active, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory: %v", err)
	}

	return c
}

// SeedRequest inserts a REQUESTED access request for buyer against cat,
// priced at the category's current price.
func SeedRequest(t *testing.T, pool *pgxpool.Pool, cat domain.Category, buyer domain.Account, days int64) domain.AccessRequest {
	t.Helper()
	ctx := context.Background()

	r := domain.AccessRequest{
		Buyer:        buyer,
		Seller:       cat.Owner,
		CategoryID:   cat.ID,
		DurationDays: days,
		PricePerDay:  cat.PricePerDay,
		Amount:       cat.PricePerDay * days,
		Status:       domain.RequestStatusRequested,
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO access_requests (buyer, seller, category_id, duration_days, price_per_day, amount, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		string(r.Buyer), string(r.Seller), r.CategoryID, r.DurationDays, r.PricePerDay, r.Amount, string(r.Status), r.CreatedAt,
	).Scan(&r.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedRequest: %v", err)
	}

	return r
}

// SeedFeePercent stores the platform fee percentage, replacing any value.
func SeedFeePercent(t *testing.T, pool *pgxpool.Pool, percent uint8) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO platform_settings (id, fee_percent) VALUES (1, $1)
		 ON CONFLICT (id) DO UPDATE SET fee_percent = EXCLUDED.fee_percent`,
		int16(percent),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFeePercent: %v", err)
	}
}
