// Package wallet implements the internal account ledger that receives
// payouts, platform fees and refunds. An account that opted out of incoming
// transfers makes Send fail with domain.ErrTransferFailed, which rolls back
// the surrounding transaction.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/datamarket-backend/internal/adapter/postgres"
	"github.com/heartmarshall/datamarket-backend/internal/domain"
)

// Credits the account (creating it on first use) only when it accepts
// transfers, and records the transfer in the same statement. Zero rows
// affected means the account refused.
const sendSQL = `
WITH credited AS (
    INSERT INTO accounts (account, balance)
    VALUES ($1, $2)
    ON CONFLICT (account) DO UPDATE
        SET balance = accounts.balance + EXCLUDED.balance,
            updated_at = now()
        WHERE accounts.accepts_transfers
    RETURNING account
)
INSERT INTO transfers (id, account, amount, reason, request_id)
SELECT $3, account, $2, $4, $5 FROM credited`

type transferRow struct {
	Account   string    `db:"account"`
	Amount    int64     `db:"amount"`
	Reason    string    `db:"reason"`
	RequestID *int64    `db:"request_id"`
	CreatedAt time.Time `db:"created_at"`
}

// Repo provides the account ledger backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new wallet repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Send credits t.Amount to t.To.
func (r *Repo) Send(ctx context.Context, t domain.Transfer) error {
	if t.Amount <= 0 {
		return fmt.Errorf("transfer to %s: %w", t.To, domain.ErrInvalidPrice)
	}

	var requestID *int64
	if t.RequestID != 0 {
		requestID = &t.RequestID
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sendSQL,
		string(t.To), t.Amount, uuid.New(), string(t.Reason), requestID)
	if err != nil {
		return postgres.MapError(err, "transfer to", t.To, domain.ErrNotFound)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transfer to %s: %w", t.To, domain.ErrTransferFailed)
	}
	return nil
}

// SetAcceptsTransfers opts an account in or out of incoming transfers.
func (r *Repo) SetAcceptsTransfers(ctx context.Context, account domain.Account, accepts bool) error {
	sql, args, err := postgres.Builder().
		Insert("accounts").
		Columns("account", "accepts_transfers").
		Values(string(account), accepts).
		Suffix(`ON CONFLICT (account) DO UPDATE SET
			accepts_transfers = EXCLUDED.accepts_transfers,
			updated_at = now()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build set accepts transfers: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("set accepts transfers %s: %w", account, err)
	}
	return nil
}

// Balance returns the credited total of an account; unknown accounts hold 0.
func (r *Repo) Balance(ctx context.Context, account domain.Account) (int64, error) {
	sql, args, err := postgres.Builder().
		Select("balance").
		From("accounts").
		Where(squirrel.Eq{"account": string(account)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build balance: %w", err)
	}

	var balance int64
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("balance %s: %w", account, err)
	}
	return balance, nil
}

// Transfers returns every transfer made to an account in insertion order,
// including transfers made earlier in the same transaction.
func (r *Repo) Transfers(ctx context.Context, account domain.Account) ([]domain.Transfer, error) {
	sql, args, err := postgres.Builder().
		Select("account", "amount", "reason", "request_id", "created_at").
		From("transfers").
		Where(squirrel.Eq{"account": string(account)}).
		OrderBy("seq ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list transfers: %w", err)
	}

	var rows []transferRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}

	result := make([]domain.Transfer, len(rows))
	for i, rw := range rows {
		result[i] = domain.Transfer{
			To:     domain.Account(rw.Account),
			Amount: rw.Amount,
			Reason: domain.TransferReason(rw.Reason),
		}
		if rw.RequestID != nil {
			result[i].RequestID = *rw.RequestID
		}
	}
	return result, nil
}
