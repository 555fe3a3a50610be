package memory

import (
	"context"
	"maps"

	"github.com/heartmarshall/datamarket-backend/internal/domain"
)

// EventLog is the in-memory outbox.
type EventLog struct {
	s *Store
}

func (l *EventLog) Append(ctx context.Context, event domain.Event) error {
	return l.s.write(ctx, func(st *state) error {
		st.lastEventSeq++
		event.Seq = st.lastEventSeq
		event.Payload = maps.Clone(event.Payload)
		st.events = append(st.events, event)
		return nil
	})
}

// ListSince returns up to limit events with Seq > afterSeq in commit order.
func (l *EventLog) ListSince(ctx context.Context, afterSeq int64, limit int) ([]domain.Event, error) {
	result := []domain.Event{}
	err := l.s.read(ctx, func(st *state) error {
		for _, e := range st.events {
			if e.Seq <= afterSeq {
				continue
			}
			if len(result) >= limit {
				break
			}
			result = append(result, e)
		}
		return nil
	})
	return result, err
}
