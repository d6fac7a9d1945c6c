package events

import (
	"context"
	"errors"
	"testing"
)

func TestPublishRunsAllHandlers(t *testing.T) {
	d := NewInMemoryDispatcher()
	var calls int
	d.Subscribe(EventDeliveryCreated, func(context.Context, Event) error {
		calls++
		return errors.New("boom")
	})
	d.Subscribe(EventDeliveryCreated, func(context.Context, Event) error {
		calls++
		return nil
	})
	d.Subscribe(EventStaffHired, func(context.Context, Event) error {
		t.Fatal("unrelated handler invoked")
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventDeliveryCreated})
	if calls != 2 {
		t.Fatalf("expected 2 handler calls, got %d", calls)
	}
	if err == nil {
		t.Fatal("expected joined handler error")
	}
}
