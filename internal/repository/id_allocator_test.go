package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/spec-kit/delivery-ops/internal/domain"
)

func TestSequenceAllocator(t *testing.T) {
	tests := []struct {
		name  string
		start int64
		kinds []domain.EntityKind
		want  []int64
	}{
		{"starts at one", 1, []domain.EntityKind{domain.KindBranch, domain.KindAgent}, []int64{1, 2}},
		{"after seed", 10, []domain.EntityKind{domain.KindBranch, domain.KindAgent, domain.KindCustomer}, []int64{10, 11, 12}},
		{"non-positive start clamps", 0, []domain.EntityKind{domain.KindUser}, []int64{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewSequenceAllocator(tt.start)
			for i, kind := range tt.kinds {
				id, err := a.Next(context.Background(), kind)
				if err != nil {
					t.Fatalf("Next: %v", err)
				}
				if id != tt.want[i] {
					t.Fatalf("call %d: expected %d got %d", i, tt.want[i], id)
				}
			}
		})
	}
}

func TestPerKindAllocator(t *testing.T) {
	a := NewPerKindAllocator(5)
	ctx := context.Background()
	b1, _ := a.Next(ctx, domain.KindBranch)
	b2, _ := a.Next(ctx, domain.KindBranch)
	a1, _ := a.Next(ctx, domain.KindAgent)
	if b1 != 5 || b2 != 6 || a1 != 5 {
		t.Fatalf("unexpected ids %d %d %d", b1, b2, a1)
	}
}

func TestSequenceAllocatorConcurrentUse(t *testing.T) {
	a := NewSequenceAllocator(1)
	const workers, perWorker = 8, 100

	var mu sync.Mutex
	seen := make(map[int64]bool, workers*perWorker)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id, _ := a.Next(context.Background(), domain.KindDelivery)
				mu.Lock()
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if len(seen) != workers*perWorker {
		t.Fatalf("expected %d distinct ids, got %d", workers*perWorker, len(seen))
	}
}
