package worker

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/delivery-ops/internal/events"
	"github.com/spec-kit/delivery-ops/internal/service"
)

const defaultQueueSize = 256

// NotificationWorker moves event delivery off the request path. Services
// publish into a bounded queue; Run forwards each event to the wrapped
// dispatcher. A full queue drops the event with a warning.
type NotificationWorker struct {
	inner  events.Dispatcher
	logger *zap.Logger
	queue  chan events.Event

	done      chan struct{}
	closeOnce sync.Once
}

// NewNotificationWorker wraps inner with a queue of the given size.
func NewNotificationWorker(inner events.Dispatcher, logger *zap.Logger, queueSize int) *NotificationWorker {
	if logger == nil {
		logger = zap.NewNop()
	}
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	return &NotificationWorker{
		inner:  inner,
		logger: logger,
		queue:  make(chan events.Event, queueSize),
		done:   make(chan struct{}),
	}
}

// StartNotificationWorker registers notification handlers on the wrapped
// dispatcher and starts draining the queue until ctx ends or Close is called.
func StartNotificationWorker(ctx context.Context, w *NotificationWorker, notificationService *service.NotificationService) <-chan struct{} {
	if notificationService != nil {
		notificationService.RegisterHandlers()
	}
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		w.Run(ctx)
	}()
	return stopped
}

// Publish enqueues the event. It never blocks the caller.
func (w *NotificationWorker) Publish(_ context.Context, event events.Event) error {
	select {
	case <-w.done:
		w.logger.Warn("notification worker closed, event dropped",
			zap.String("event_type", string(event.Type)),
			zap.Int64("entity_id", event.EntityID))
		return nil
	default:
	}

	select {
	case w.queue <- event:
	default:
		w.logger.Warn("notification queue full, event dropped",
			zap.String("event_type", string(event.Type)),
			zap.Int64("entity_id", event.EntityID))
	}
	return nil
}

// Subscribe registers the handler on the wrapped dispatcher.
func (w *NotificationWorker) Subscribe(eventType events.EventType, handler events.EventHandler) {
	w.inner.Subscribe(eventType, handler)
}

// Run delivers queued events until ctx is cancelled or Close is called.
// After Close, events already queued are still delivered.
func (w *NotificationWorker) Run(ctx context.Context) {
	for {
		select {
		case event := <-w.queue:
			w.deliver(ctx, event)
		case <-w.done:
			w.drain(ctx)
			return
		case <-ctx.Done():
			return
		}
	}
}

// Close stops accepting events. Safe to call more than once.
func (w *NotificationWorker) Close() {
	w.closeOnce.Do(func() { close(w.done) })
}

// Pending reports the number of queued events.
func (w *NotificationWorker) Pending() int {
	return len(w.queue)
}

func (w *NotificationWorker) drain(ctx context.Context) {
	for {
		select {
		case event := <-w.queue:
			w.deliver(ctx, event)
		default:
			return
		}
	}
}

func (w *NotificationWorker) deliver(ctx context.Context, event events.Event) {
	if err := w.inner.Publish(ctx, event); err != nil {
		w.logger.Error("notification handler failed",
			zap.String("event_type", string(event.Type)),
			zap.Int64("entity_id", event.EntityID),
			zap.Error(err))
	}
}
