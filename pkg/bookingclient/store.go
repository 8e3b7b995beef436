package bookingclient

import "context"

// Store ties a gateway to its cache and applies exactly one
// reconciliation per resolved call: list replaced, item appended, item
// replaced in place, item removed, or selected item set. Never partial
// merges, never optimistic rollback — nothing lands in the cache
// before the server acknowledges it.
//
// Every operation, deletes included, runs through the same
// pending/success/error tri-state so callers always see in-flight and
// failure state for mutations.
type Store[T any] struct {
	gateway *Gateway[T]
	cache   *Cache[T]
	keyOf   func(T) string
}

func NewStore[T any](gateway *Gateway[T], keyOf func(T) string) *Store[T] {
	return &Store[T]{
		gateway: gateway,
		cache:   NewCache[T](),
		keyOf:   keyOf,
	}
}

func (s *Store[T]) Cache() *Cache[T] { return s.cache }

// FetchAll replaces both the visible and shadow snapshots wholesale.
func (s *Store[T]) FetchAll(ctx context.Context) ([]T, error) {
	s.cache.beginOp()
	items, err := s.gateway.List(ctx)
	if err != nil {
		s.cache.failOp(err.Error())
		return nil, err
	}
	s.cache.finishList(items)
	return items, nil
}

// Get sets the selected item for detail views; the list snapshots are
// untouched.
func (s *Store[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	s.cache.beginOp()
	item, err := s.gateway.Get(ctx, id)
	if err != nil {
		s.cache.failOp(err.Error())
		return zero, err
	}
	s.cache.finishSelect(item)
	return item, nil
}

// Create appends the server-returned item on success; on failure
// nothing is appended and the message lands in the error slot.
func (s *Store[T]) Create(ctx context.Context, payload T) (T, error) {
	var zero T
	s.cache.beginOp()
	item, err := s.gateway.Create(ctx, payload)
	if err != nil {
		s.cache.failOp(err.Error())
		return zero, err
	}
	s.cache.finishAppend(item)
	return item, nil
}

// Update replaces the cached element whose key matches the payload's,
// using the server-returned value (the server may normalize fields).
// A key absent from the cache no-ops silently.
func (s *Store[T]) Update(ctx context.Context, payload T) (T, error) {
	var zero T
	key := s.keyOf(payload)

	s.cache.beginOp()
	item, err := s.gateway.Update(ctx, key, payload)
	if err != nil {
		s.cache.failOp(err.Error())
		return zero, err
	}
	s.cache.finishReplace(s.keyOf(item), item, s.keyOf)
	return item, nil
}

// Delete removes the element by id on success; it cannot reappear
// without a subsequent FetchAll.
func (s *Store[T]) Delete(ctx context.Context, id string) error {
	s.cache.beginOp()
	removed, err := s.gateway.Delete(ctx, id)
	if err != nil {
		s.cache.failOp(err.Error())
		return err
	}
	s.cache.finishRemove(removed, s.keyOf)
	return nil
}
