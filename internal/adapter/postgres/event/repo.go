// Package event implements the transactional outbox. Events are appended in
// the same transaction as the mutation they describe and read back in
// sequence order by consumers.
package event

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/datamarket-backend/internal/adapter/postgres"
	"github.com/heartmarshall/datamarket-backend/internal/domain"
)

type row struct {
	Seq        int64     `db:"seq"`
	ID         uuid.UUID `db:"id"`
	Type       string    `db:"type"`
	CategoryID *int64    `db:"category_id"`
	RequestID  *int64    `db:"request_id"`
	Payload    []byte    `db:"payload"`
	CreatedAt  time.Time `db:"created_at"`
}

// Repo provides the event outbox backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new event repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// outboxLockKey is the advisory lock held from an append until its
// transaction ends.
const outboxLockKey int64 = 0x6f7574626f78

// Append inserts an event. The sequence number is assigned by the database
// after taking the outbox lock, so seq order equals commit order and a
// reader paging by seq never skips a row that commits late. Call it inside
// RunInTx; outside a transaction the lock is released immediately.
func (r *Repo) Append(ctx context.Context, e domain.Event) error {
	payload, err := json.Marshal(e.Payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", e.Type, err)
	}
	if e.Payload == nil {
		payload = []byte("{}")
	}

	sql, args, err := postgres.Builder().
		Insert("events").
		Columns("id", "type", "category_id", "request_id", "payload", "created_at").
		Values(e.ID, string(e.Type), nullableID(e.CategoryID), nullableID(e.RequestID), payload, e.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build append event: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	if _, err := q.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", outboxLockKey); err != nil {
		return fmt.Errorf("lock outbox: %w", err)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "event", e.ID, domain.ErrNotFound)
	}
	return nil
}

// ListSince returns up to limit events with seq > afterSeq in commit order.
// Only committed events are visible, and none can later appear below the
// highest seq returned.
func (r *Repo) ListSince(ctx context.Context, afterSeq int64, limit int) ([]domain.Event, error) {
	sql, args, err := postgres.Builder().
		Select("seq", "id", "type", "category_id", "request_id", "payload", "created_at").
		From("events").
		Where(squirrel.Gt{"seq": afterSeq}).
		OrderBy("seq ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list events: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	result := make([]domain.Event, len(rows))
	for i, rw := range rows {
		e := domain.Event{
			ID:        rw.ID,
			Seq:       rw.Seq,
			Type:      domain.EventType(rw.Type),
			CreatedAt: rw.CreatedAt,
		}
		if rw.CategoryID != nil {
			e.CategoryID = *rw.CategoryID
		}
		if rw.RequestID != nil {
			e.RequestID = *rw.RequestID
		}
		// UseNumber keeps int64 amounts exact.
		dec := json.NewDecoder(bytes.NewReader(rw.Payload))
		dec.UseNumber()
		if err := dec.Decode(&e.Payload); err != nil {
			return nil, fmt.Errorf("unmarshal event %d payload: %w", rw.Seq, err)
		}
		result[i] = e
	}
	return result, nil
}

func nullableID(id int64) *int64 {
	if id == 0 {
		return nil
	}
	return &id
}
