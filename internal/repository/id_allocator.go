package repository

import (
	"context"
	"sync"

	"github.com/spec-kit/delivery-ops/internal/domain"
)

// IDAllocator hands out primary keys at create time.
type IDAllocator interface {
	Next(ctx context.Context, kind domain.EntityKind) (int64, error)
}

// SequenceAllocator is one monotonically increasing counter shared by every
// entity kind, so ids are unique across the whole store.
type SequenceAllocator struct {
	mu   sync.Mutex
	next int64
}

// NewSequenceAllocator returns an allocator whose first id is start.
func NewSequenceAllocator(start int64) *SequenceAllocator {
	if start < 1 {
		start = 1
	}
	return &SequenceAllocator{next: start}
}

// Next returns the next id regardless of kind.
func (a *SequenceAllocator) Next(_ context.Context, _ domain.EntityKind) (int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	id := a.next
	a.next++
	return id, nil
}

// PerKindAllocator keeps an independent counter for each entity kind.
type PerKindAllocator struct {
	mu    sync.Mutex
	start int64
	next  map[domain.EntityKind]int64
}

// NewPerKindAllocator returns an allocator where each kind starts at start.
func NewPerKindAllocator(start int64) *PerKindAllocator {
	if start < 1 {
		start = 1
	}
	return &PerKindAllocator{start: start, next: make(map[domain.EntityKind]int64)}
}

// Next returns the next id for kind.
func (a *PerKindAllocator) Next(_ context.Context, kind domain.EntityKind) (int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	id, ok := a.next[kind]
	if !ok {
		id = a.start
	}
	a.next[kind] = id + 1
	return id, nil
}
