package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/spec-kit/delivery-ops/internal/events"
	"github.com/spec-kit/delivery-ops/internal/repository"
	apperrors "github.com/spec-kit/delivery-ops/pkg/util/errorutil"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type recordedEvents struct {
	events []events.Event
}

func (r *recordedEvents) ofType(t events.EventType) []events.Event {
	var out []events.Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// newTestDeps builds dependencies over a fresh store. seeded loads the sample data.
func newTestDeps(t *testing.T, seeded bool) (Dependencies, *repository.MemoryStore, *recordedEvents) {
	t.Helper()
	clock := func() time.Time { return testNow }
	start := int64(1)
	if seeded {
		start = repository.SeedFirstFreeID
	}
	store := repository.NewMemoryStore(repository.NewSequenceAllocator(start), repository.WithClock(clock))
	if seeded {
		repository.SeedSampleData(store)
	}

	rec := &recordedEvents{}
	dispatcher := events.NewInMemoryDispatcher()
	for _, et := range []events.EventType{
		events.EventDeliveryCreated,
		events.EventDeliveryStatusChanged,
		events.EventAgentStatusChanged,
		events.EventLeaveRequestReviewed,
		events.EventStaffHired,
	} {
		dispatcher.Subscribe(et, func(_ context.Context, e events.Event) error {
			rec.events = append(rec.events, e)
			return nil
		})
	}
	return Dependencies{Store: store, Dispatcher: dispatcher, Clock: clock}, store, rec
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected DomainError with status %d, got %v", status, err)
	}
	if domainErr.HTTPStatus != status {
		t.Fatalf("expected status %d, got %d (%s)", status, domainErr.HTTPStatus, domainErr.Code)
	}
}

func requireNotFound(t *testing.T, err error) {
	t.Helper()
	requireStatus(t, err, http.StatusNotFound)
}
