// Package settings stores the single-row platform settings (fee percent).
package settings

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/datamarket-backend/internal/adapter/postgres"
	"github.com/heartmarshall/datamarket-backend/internal/domain"
)

const settingsID = 1

// Repo provides platform settings persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new settings repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetFeePercent returns domain.ErrNotFound until a value has been stored.
func (r *Repo) GetFeePercent(ctx context.Context) (uint8, error) {
	sql, args, err := postgres.Builder().
		Select("fee_percent").
		From("platform_settings").
		Where(squirrel.Eq{"id": settingsID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build get fee percent: %w", err)
	}

	var pct int16
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&pct); err != nil {
		return 0, postgres.MapError(err, "platform settings", settingsID, domain.ErrNotFound)
	}
	return uint8(pct), nil
}

// SetFeePercent stores the fee percent, creating the row when missing.
func (r *Repo) SetFeePercent(ctx context.Context, percent uint8, updatedBy domain.Account) error {
	sql, args, err := postgres.Builder().
		Insert("platform_settings").
		Columns("id", "fee_percent", "updated_by").
		Values(settingsID, int16(percent), string(updatedBy)).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			fee_percent = EXCLUDED.fee_percent,
			updated_by = EXCLUDED.updated_by,
			updated_at = now()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build set fee percent: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "platform settings", settingsID, domain.ErrNotFound)
	}
	return nil
}

// EnsureFeePercent stores percent unless a value already exists.
func (r *Repo) EnsureFeePercent(ctx context.Context, percent uint8) error {
	sql, args, err := postgres.Builder().
		Insert("platform_settings").
		Columns("id", "fee_percent").
		Values(settingsID, int16(percent)).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build ensure fee percent: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "platform settings", settingsID, domain.ErrNotFound)
	}
	return nil
}
