package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/spec-kit/delivery-ops/internal/domain"
)

func TestReportSummaryOnSampleData(t *testing.T) {
	ctx := context.Background()
	deps, _, _ := newTestDeps(t, true)
	svc := NewReportService(deps)

	completed := domain.DeliveryStatusCompleted
	if _, err := NewDeliveryService(deps).Update(ctx, 2, domain.DeliveryPatch{Status: &completed}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	summary, err := svc.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if summary.DeliveriesByStatus[domain.DeliveryStatusCompleted] != 1 || summary.DeliveriesByStatus[domain.DeliveryStatusCancelled] != 0 {
		t.Fatalf("unexpected status counts %+v", summary.DeliveriesByStatus)
	}
	if got := summary.RevenueByPaymentStatus[domain.PaymentStatusPending]; !got.Equal(decimal.NewFromInt(2050)) {
		t.Fatalf("expected pending revenue 2050, got %s", got)
	}
	if !summary.ActivePayroll.Equal(decimal.NewFromInt(105000)) {
		t.Fatalf("expected payroll 105000, got %s", summary.ActivePayroll)
	}

	top := summary.Agents[0]
	if top.AgentID != 2 || top.Completed != 1 || !top.Collected.Equal(decimal.NewFromInt(350)) {
		t.Fatalf("unexpected top agent %+v", top)
	}
}

func TestExportDeliveriesWorkbook(t *testing.T) {
	deps, _, _ := newTestDeps(t, true)
	content, err := NewReportService(deps).ExportDeliveries(context.Background())
	if err != nil {
		t.Fatalf("ExportDeliveries: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(reportSheet)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header + 3 rows, got %d", len(rows))
	}
	if rows[0][0] != "Invoice" {
		t.Fatalf("unexpected header %v", rows[0])
	}
	if rows[1][0] != "KIM-001234" || rows[1][1] != "Sarah Muthoni" || rows[1][2] != "John Kamau" {
		t.Fatalf("unexpected first row %v", rows[1])
	}
	if rows[3][2] != "Unassigned" {
		t.Fatalf("expected unassigned agent, got %q", rows[3][2])
	}
}
