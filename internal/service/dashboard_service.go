package service

import (
	"context"
	"fmt"

	"github.com/spec-kit/delivery-ops/internal/domain"
	"github.com/spec-kit/delivery-ops/internal/repository"
	apperrors "github.com/spec-kit/delivery-ops/pkg/util/errorutil"
)

// DashboardService derives the console's headline counters.
type DashboardService struct {
	agents     repository.AgentStore
	deliveries repository.DeliveryStore
}

// NewDashboardService constructs the service.
func NewDashboardService(deps Dependencies) *DashboardService {
	return &DashboardService{agents: deps.Store, deliveries: deps.Store}
}

// Metrics counts non-offline agents against active-flagged agents and
// deliveries per status.
func (s *DashboardService) Metrics(ctx context.Context) (*domain.DashboardMetrics, error) {
	agents, err := s.agents.ListAgents(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	deliveries, err := s.deliveries.ListDeliveries(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	var online, active int
	for _, a := range agents {
		if a.Status != domain.AgentStatusOffline {
			online++
		}
		if a.IsActive {
			active++
		}
	}

	metrics := &domain.DashboardMetrics{ActiveAgents: fmt.Sprintf("%d/%d", online, active)}
	for _, d := range deliveries {
		switch d.Status {
		case domain.DeliveryStatusPending:
			metrics.PendingDeliveries++
		case domain.DeliveryStatusActive:
			metrics.ActiveDeliveries++
		case domain.DeliveryStatusOverdue:
			metrics.OverdueDeliveries++
		}
	}
	return metrics, nil
}
