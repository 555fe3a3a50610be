package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event is a notification appended to the outbox in the same transaction as
// the mutation it describes. Seq is assigned by the store in commit order.
type Event struct {
	ID         uuid.UUID
	Seq        int64
	Type       EventType
	CategoryID int64
	RequestID  int64
	Payload    map[string]any
	CreatedAt  time.Time
}

// NewEvent builds an event with a fresh ID. Seq is left for the store.
func NewEvent(typ EventType, at time.Time, payload map[string]any) Event {
	return Event{
		ID:        uuid.New(),
		Type:      typ,
		Payload:   payload,
		CreatedAt: at,
	}
}
