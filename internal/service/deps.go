package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/delivery-ops/internal/domain"
	"github.com/spec-kit/delivery-ops/internal/events"
	"github.com/spec-kit/delivery-ops/internal/repository"
)

// Dependencies bundles what every service needs.
type Dependencies struct {
	Store      repository.Store
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	Clock      func() time.Time
}

func (d Dependencies) withDefaults() Dependencies {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Clock == nil {
		d.Clock = time.Now
	}
	return d
}

// publisher emits domain events; a nil dispatcher drops them.
type publisher struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	clock      func() time.Time
}

func newPublisher(d Dependencies) publisher {
	return publisher{dispatcher: d.Dispatcher, logger: d.Logger, clock: d.Clock}
}

func (p publisher) publish(ctx context.Context, eventType events.EventType, kind domain.EntityKind, id int64, payload interface{}) {
	if p.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Kind:      kind,
		EntityID:  id,
		Timestamp: p.clock(),
		Payload:   payload,
	}
	if err := p.dispatcher.Publish(ctx, event); err != nil {
		p.logger.Warn("event handler failed",
			zap.String("event_type", string(eventType)),
			zap.Int64("entity_id", id),
			zap.Error(err))
	}
}
