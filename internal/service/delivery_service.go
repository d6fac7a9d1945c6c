package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/delivery-ops/internal/domain"
	"github.com/spec-kit/delivery-ops/internal/events"
	"github.com/spec-kit/delivery-ops/internal/repository"
	apperrors "github.com/spec-kit/delivery-ops/pkg/util/errorutil"
)

// DeliveryService manages deliveries.
type DeliveryService struct {
	deliveries repository.DeliveryStore
	events     publisher
	logger     *zap.Logger
	clock      func() time.Time
}

// NewDeliveryService constructs the service.
func NewDeliveryService(deps Dependencies) *DeliveryService {
	deps = deps.withDefaults()
	return &DeliveryService{
		deliveries: deps.Store,
		events:     newPublisher(deps),
		logger:     deps.Logger,
		clock:      deps.Clock,
	}
}

// List returns every delivery.
func (s *DeliveryService) List(ctx context.Context) ([]domain.Delivery, error) {
	return s.deliveries.ListDeliveries(ctx)
}

// Get fetches a delivery by id.
func (s *DeliveryService) Get(ctx context.Context, id int64) (*domain.Delivery, error) {
	delivery, ok, err := s.deliveries.GetDelivery(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if !ok {
		return nil, apperrors.NewNotFound("delivery", map[string]any{"id": id})
	}
	return &delivery, nil
}

// SearchByInvoice looks a delivery up by invoice number, ignoring case and
// surrounding whitespace in the query.
func (s *DeliveryService) SearchByInvoice(ctx context.Context, query string) (*domain.Delivery, error) {
	invoice := strings.ToUpper(strings.TrimSpace(query))
	if invoice == "" {
		return nil, apperrors.NewValidationError("invoice number required", nil)
	}
	delivery, ok, err := s.deliveries.GetDeliveryByInvoice(ctx, invoice)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if !ok {
		return nil, apperrors.NewNotFound("delivery", map[string]any{"invoice_number": invoice})
	}
	return &delivery, nil
}

// Create books a delivery. Duplicate invoice numbers are logged, not rejected.
func (s *DeliveryService) Create(ctx context.Context, delivery domain.Delivery) (*domain.Delivery, error) {
	existing, ok, err := s.deliveries.GetDeliveryByInvoice(ctx, delivery.InvoiceNumber)
	switch {
	case err != nil:
		s.logger.Warn("duplicate invoice check failed",
			zap.String("invoice_number", delivery.InvoiceNumber),
			zap.Error(err))
	case ok:
		s.logger.Warn("duplicate invoice number",
			zap.String("invoice_number", delivery.InvoiceNumber),
			zap.Int64("existing_id", existing.ID))
	}
	created, err := s.deliveries.CreateDelivery(ctx, delivery)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	s.events.publish(ctx, events.EventDeliveryCreated, domain.KindDelivery, created.ID, events.DeliveryCreatedPayload{
		InvoiceNumber: created.InvoiceNumber,
		CustomerID:    created.CustomerID,
		AgentID:       created.AgentID,
		DeliveryType:  created.DeliveryType,
		PaymentMethod: created.PaymentMethod,
		Status:        created.Status,
	})
	return &created, nil
}

// Update merges patch onto the delivery. Moving to completed without an
// explicit completed_at stamps the current time.
func (s *DeliveryService) Update(ctx context.Context, id int64, patch domain.DeliveryPatch) (*domain.Delivery, error) {
	before, updated, err := s.deliveries.ModifyDelivery(ctx, id, func(current domain.Delivery) domain.DeliveryPatch {
		if patch.Status != nil && *patch.Status == domain.DeliveryStatusCompleted &&
			patch.CompletedAt == nil && current.CompletedAt == nil {
			now := s.clock()
			patch.CompletedAt = &now
		}
		return patch
	})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NewNotFound("delivery", map[string]any{"id": id})
	}
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if updated.Status != before.Status {
		s.events.publish(ctx, events.EventDeliveryStatusChanged, domain.KindDelivery, id, events.DeliveryStatusChangedPayload{
			InvoiceNumber: updated.InvoiceNumber,
			CustomerID:    updated.CustomerID,
			OldStatus:     before.Status,
			NewStatus:     updated.Status,
		})
	}
	return &updated, nil
}

// Delete removes a delivery.
func (s *DeliveryService) Delete(ctx context.Context, id int64) error {
	removed, err := s.deliveries.DeleteDelivery(ctx, id)
	if err != nil {
		return apperrors.MapError(err)
	}
	if !removed {
		return apperrors.NewNotFound("delivery", map[string]any{"id": id})
	}
	return nil
}
