// Package memory implements every repository and the transaction manager in
// process memory. It mirrors the PostgreSQL adapter closely enough that the
// services cannot tell them apart, and backs the service tests and the
// "memory" storage backend.
package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/heartmarshall/datamarket-backend/internal/domain"
)

type permKey struct {
	categoryID int64
	buyer      domain.Account
}

type account struct {
	balance          int64
	acceptsTransfers bool
}

// state is everything the store holds. A transaction works on the live state
// and restores a clone taken at begin if the callback fails.
type state struct {
	lastCategoryID int64
	categories     map[int64]domain.Category
	delegates      map[int64]map[domain.Account]struct{}

	permissions map[permKey]domain.Permission

	lastRequestID int64
	requests      map[int64]domain.AccessRequest

	feeSet       bool
	feePercent   uint8
	feeUpdatedBy domain.Account

	accounts  map[domain.Account]account
	transfers []domain.Transfer

	lastEventSeq int64
	events       []domain.Event
}

func newState() *state {
	return &state{
		categories:  make(map[int64]domain.Category),
		delegates:   make(map[int64]map[domain.Account]struct{}),
		permissions: make(map[permKey]domain.Permission),
		requests:    make(map[int64]domain.AccessRequest),
		accounts:    make(map[domain.Account]account),
	}
}

func (st *state) clone() *state {
	c := *st
	c.categories = maps.Clone(st.categories)
	c.delegates = make(map[int64]map[domain.Account]struct{}, len(st.delegates))
	for id, set := range st.delegates {
		c.delegates[id] = maps.Clone(set)
	}
	c.permissions = maps.Clone(st.permissions)
	c.requests = maps.Clone(st.requests)
	c.accounts = maps.Clone(st.accounts)
	c.transfers = append([]domain.Transfer(nil), st.transfers...)
	c.events = append([]domain.Event(nil), st.events...)
	return &c
}

// Store is the in-memory backing store. The zero value is not usable; call New.
type Store struct {
	mu sync.RWMutex
	st *state
}

// New creates an empty store.
func New() *Store {
	return &Store{st: newState()}
}

type txCtxKey struct{}

func inTx(ctx context.Context) bool {
	_, ok := ctx.Value(txCtxKey{}).(struct{})
	return ok
}

// RunInTx runs fn while holding the store's write lock. If fn returns an error
// or panics, every change made inside fn is discarded. Nested calls join the
// outer transaction.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	defer func() {
		if r := recover(); r != nil {
			s.st = snapshot
			panic(r)
		}
	}()

	if err := fn(context.WithValue(ctx, txCtxKey{}, struct{}{})); err != nil {
		s.st = snapshot
		return err
	}
	return nil
}

// read runs fn under the read lock, or directly inside a transaction.
func (s *Store) read(ctx context.Context, fn func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if inTx(ctx) {
		return fn(s.st)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.st)
}

// write runs fn under the write lock, or directly inside a transaction.
// Outside a transaction fn is its own unit: it must validate before mutating.
func (s *Store) write(ctx context.Context, fn func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if inTx(ctx) {
		return fn(s.st)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.st)
}

// Ping always succeeds; it satisfies the health check interface.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Categories returns the category repository.
func (s *Store) Categories() *CategoryRepo { return &CategoryRepo{s: s} }

// Permissions returns the permission repository.
func (s *Store) Permissions() *PermissionRepo { return &PermissionRepo{s: s} }

// Requests returns the access request repository.
func (s *Store) Requests() *RequestRepo { return &RequestRepo{s: s} }

// Settings returns the platform settings repository.
func (s *Store) Settings() *SettingsRepo { return &SettingsRepo{s: s} }

// Wallet returns the transfer primitive.
func (s *Store) Wallet() *Wallet { return &Wallet{s: s} }

// Events returns the event outbox.
func (s *Store) Events() *EventLog { return &EventLog{s: s} }
