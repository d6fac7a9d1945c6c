package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/spec-kit/delivery-ops/internal/events"
)

type recorder struct {
	mu  sync.Mutex
	ids []int64
}

func (r *recorder) handle(_ context.Context, event events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = append(r.ids, event.EntityID)
	return nil
}

func (r *recorder) snapshot() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int64(nil), r.ids...)
}

func TestWorkerDeliversQueuedEventsInOrder(t *testing.T) {
	inner := events.NewInMemoryDispatcher()
	w := NewNotificationWorker(inner, nil, 8)
	rec := &recorder{}
	w.Subscribe(events.EventDeliveryCreated, rec.handle)

	for id := int64(1); id <= 3; id++ {
		if err := w.Publish(context.Background(), events.Event{Type: events.EventDeliveryCreated, EntityID: id}); err != nil {
			t.Fatalf("publish: %v", err)
		}
	}
	if got := len(rec.snapshot()); got != 0 {
		t.Fatalf("expected no delivery before Run, got %d", got)
	}

	stopped := StartNotificationWorker(context.Background(), w, nil)
	w.Close()
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatalf("worker did not stop")
	}

	got := rec.snapshot()
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("unexpected deliveries %v", got)
	}
}

func TestWorkerDropsWhenQueueFull(t *testing.T) {
	w := NewNotificationWorker(events.NewInMemoryDispatcher(), nil, 1)
	ctx := context.Background()

	_ = w.Publish(ctx, events.Event{Type: events.EventStaffHired, EntityID: 1})
	_ = w.Publish(ctx, events.Event{Type: events.EventStaffHired, EntityID: 2})

	if got := w.Pending(); got != 1 {
		t.Fatalf("expected 1 pending event, got %d", got)
	}
}

func TestWorkerIgnoresPublishAfterClose(t *testing.T) {
	w := NewNotificationWorker(events.NewInMemoryDispatcher(), nil, 4)
	w.Close()
	w.Close()

	if err := w.Publish(context.Background(), events.Event{Type: events.EventStaffHired, EntityID: 1}); err != nil {
		t.Fatalf("publish after close: %v", err)
	}
	if got := w.Pending(); got != 0 {
		t.Fatalf("expected nothing queued after close, got %d", got)
	}
}

func TestWorkerKeepsRunningAfterHandlerError(t *testing.T) {
	inner := events.NewInMemoryDispatcher()
	w := NewNotificationWorker(inner, nil, 4)
	rec := &recorder{}
	w.Subscribe(events.EventAgentStatusChanged, func(context.Context, events.Event) error {
		return errors.New("webhook down")
	})
	w.Subscribe(events.EventAgentStatusChanged, rec.handle)

	_ = w.Publish(context.Background(), events.Event{Type: events.EventAgentStatusChanged, EntityID: 7})
	_ = w.Publish(context.Background(), events.Event{Type: events.EventAgentStatusChanged, EntityID: 8})

	stopped := StartNotificationWorker(context.Background(), w, nil)
	w.Close()
	<-stopped

	if got := rec.snapshot(); len(got) != 2 {
		t.Fatalf("expected both events delivered, got %v", got)
	}
}
