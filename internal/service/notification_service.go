package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/delivery-ops/internal/config"
	"github.com/spec-kit/delivery-ops/internal/events"
)

// NotificationService turns domain events into outbound notifications.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventDeliveryCreated, n.handleDeliveryCreated)
	n.dispatcher.Subscribe(events.EventDeliveryStatusChanged, n.handleDeliveryStatusChanged)
	n.dispatcher.Subscribe(events.EventAgentStatusChanged, n.handleAgentStatusChanged)
	n.dispatcher.Subscribe(events.EventLeaveRequestReviewed, n.handleLeaveRequestReviewed)
	n.dispatcher.Subscribe(events.EventStaffHired, n.handleStaffHired)
}

func (n *NotificationService) handleDeliveryCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("DeliveryCreated", zap.Int64("delivery_id", event.EntityID), zap.Any("payload", event.Payload))
	n.sendSMSNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleDeliveryStatusChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("DeliveryStatusChanged", zap.Int64("delivery_id", event.EntityID), zap.Any("payload", event.Payload))
	n.sendSMSNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleAgentStatusChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("AgentStatusChanged", zap.Int64("agent_id", event.EntityID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleLeaveRequestReviewed(ctx context.Context, event events.Event) error {
	n.logger.Info("LeaveRequestReviewed", zap.Int64("leave_request_id", event.EntityID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleStaffHired(ctx context.Context, event events.Event) error {
	n.logger.Info("StaffHired", zap.Int64("staff_id", event.EntityID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("kind", string(event.Kind)),
		zap.Int64("entity_id", event.EntityID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendSMSNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.SMSSender) == "" {
		return
	}
	n.logger.Debug("sendSMSNotificationStub",
		zap.String("sender", n.cfg.SMSSender),
		zap.Int64("entity_id", event.EntityID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("kind", string(event.Kind)),
		zap.Int64("entity_id", event.EntityID),
		zap.String("event_type", string(event.Type)))
}
