package service

import (
	"context"
	"testing"

	"github.com/spec-kit/delivery-ops/internal/domain"
)

func TestDashboardMetricsScenario(t *testing.T) {
	ctx := context.Background()
	deps, store, _ := newTestDeps(t, false)

	for _, status := range []domain.AgentStatus{domain.AgentStatusBusy, domain.AgentStatusAvailable, domain.AgentStatusOffline} {
		if _, err := store.CreateAgent(ctx, domain.Agent{Name: string(status), Status: status, IsActive: true}); err != nil {
			t.Fatalf("CreateAgent: %v", err)
		}
	}
	for i, status := range []domain.DeliveryStatus{
		domain.DeliveryStatusPending, domain.DeliveryStatusActive, domain.DeliveryStatusActive, domain.DeliveryStatusOverdue,
	} {
		if _, err := store.CreateDelivery(ctx, domain.Delivery{InvoiceNumber: string(rune('A' + i)), Status: status}); err != nil {
			t.Fatalf("CreateDelivery: %v", err)
		}
	}

	metrics, err := NewDashboardService(deps).Metrics(ctx)
	if err != nil {
		t.Fatalf("Metrics: %v", err)
	}
	want := domain.DashboardMetrics{ActiveAgents: "2/3", PendingDeliveries: 1, ActiveDeliveries: 2, OverdueDeliveries: 1}
	if *metrics != want {
		t.Fatalf("expected %+v got %+v", want, *metrics)
	}
}

func TestDashboardMetricsCountsInactiveAgentsSeparately(t *testing.T) {
	ctx := context.Background()
	deps, store, _ := newTestDeps(t, false)

	_, _ = store.CreateAgent(ctx, domain.Agent{Status: domain.AgentStatusAvailable, IsActive: false})
	_, _ = store.CreateAgent(ctx, domain.Agent{Status: domain.AgentStatusOffline, IsActive: true})

	metrics, err := NewDashboardService(deps).Metrics(ctx)
	if err != nil {
		t.Fatalf("Metrics: %v", err)
	}
	if metrics.ActiveAgents != "1/1" {
		t.Fatalf("expected 1/1, got %s", metrics.ActiveAgents)
	}
}

func TestDashboardMetricsOnSampleData(t *testing.T) {
	deps, _, _ := newTestDeps(t, true)
	metrics, err := NewDashboardService(deps).Metrics(context.Background())
	if err != nil {
		t.Fatalf("Metrics: %v", err)
	}
	want := domain.DashboardMetrics{ActiveAgents: "2/3", PendingDeliveries: 1, ActiveDeliveries: 1, OverdueDeliveries: 1}
	if *metrics != want {
		t.Fatalf("expected %+v got %+v", want, *metrics)
	}
}
