// Package memory is a storage adapter that keeps every table in process memory.
// It satisfies the same ports as the postgres adapter and is used by tests and
// by local runs with STORAGE=memory.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"shareit/domain"
)

type txKey struct{}

type tables struct {
	users    map[int64]domain.User
	items    map[int64]domain.Item
	bookings map[int64]domain.Booking
	comments map[int64]domain.Comment
	requests map[int64]domain.ItemRequest
	seq      int64
}

func (t *tables) clone() *tables {
	return &tables{
		users:    maps.Clone(t.users),
		items:    maps.Clone(t.items),
		bookings: maps.Clone(t.bookings),
		comments: maps.Clone(t.comments),
		requests: maps.Clone(t.requests),
		seq:      t.seq,
	}
}

func (t *tables) nextID() int64 {
	t.seq++
	return t.seq
}

// Store serializes transactions on a single mutex. A failed read-write
// transaction restores the tables as they were when it began.
type Store struct {
	mu sync.Mutex
	t  *tables
}

func NewStore() *Store {
	return &Store{
		t: &tables{
			users:    map[int64]domain.User{},
			items:    map[int64]domain.Item{},
			bookings: map[int64]domain.Booking{},
			comments: map[int64]domain.Comment{},
			requests: map[int64]domain.ItemRequest{},
		},
	}
}

func (s *Store) Close() error { return nil }

func (s *Store) inTx(ctx context.Context) bool {
	owner, _ := ctx.Value(txKey{}).(*Store)
	return owner == s
}

func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.t.clone()
	if err := fn(context.WithValue(ctx, txKey{}, s)); err != nil {
		s.t = snapshot
		return err
	}
	return nil
}

func (s *Store) RunInReadOnlyTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(context.WithValue(ctx, txKey{}, s))
}

// lock takes the store mutex for calls made outside a transaction.
func (s *Store) lock(ctx context.Context) func() {
	if s.inTx(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func sortedValues[T any](m map[int64]T, cmp func(a, b T) int) []T {
	rows := make([]T, 0, len(m))
	for _, v := range m {
		rows = append(rows, v)
	}
	slices.SortFunc(rows, cmp)
	return rows
}

func window[T any](rows []T, limit, offset int) []T {
	if offset >= len(rows) {
		return []T{}
	}
	rows = rows[offset:]
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return rows
}

func idSet(ids []int64) map[int64]struct{} {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
