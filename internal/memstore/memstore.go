// Package memstore is a process-local, append-only entity store that hands out
// sequential integer identifiers.
package memstore

import (
	"context"
	"slices"
	"sync"
)

// Store keeps entities in insertion order. Identifiers come from a monotonic
// counter owned by the store, so they never depend on the slice length or on
// the last element.
type Store[T any] struct {
	mu     sync.Mutex
	lastID int
	items  []T
}

func New[T any]() *Store[T] {
	return &Store[T]{}
}

// Append assigns the next identifier, lets build stamp it onto the entity and
// stores the result. Assignment and append happen under one lock.
func (s *Store[T]) Append(ctx context.Context, build func(id int) T) (T, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	item := build(s.lastID)
	s.items = append(s.items, item)

	return item, nil
}

// All returns a copy of the stored entities in insertion order.
func (s *Store[T]) All(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.items), nil
}
