package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/spec-kit/delivery-ops/internal/domain"
	"github.com/spec-kit/delivery-ops/internal/repository"
	apperrors "github.com/spec-kit/delivery-ops/pkg/util/errorutil"
)

const reportSheet = "Sheet1"

var deliveryExportHeaders = []string{
	"Invoice", "Customer", "Agent", "Type", "Status",
	"Payment Method", "Payment Status", "Total", "Address", "Created At",
}

// ReportService builds the reports page aggregates and spreadsheet exports.
type ReportService struct {
	store repository.Store
}

// NewReportService constructs the service.
func NewReportService(deps Dependencies) *ReportService {
	return &ReportService{store: deps.Store}
}

// Summary aggregates delivery status counts, revenue per payment status,
// completed work per agent, and the monthly basic pay of active staff.
func (s *ReportService) Summary(ctx context.Context) (*domain.ReportSummary, error) {
	deliveries, err := s.store.ListDeliveries(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	agents, err := s.store.ListAgents(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	staff, err := s.store.ListStaff(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	summary := &domain.ReportSummary{
		DeliveriesByStatus:     make(map[domain.DeliveryStatus]int, len(domain.DeliveryStatuses)),
		RevenueByPaymentStatus: make(map[domain.PaymentStatus]decimal.Decimal),
		Agents:                 make([]domain.AgentPerformance, 0, len(agents)),
		ActivePayroll:          decimal.Zero,
	}
	for _, status := range domain.DeliveryStatuses {
		summary.DeliveriesByStatus[status] = 0
	}

	perAgent := make(map[int64]*domain.AgentPerformance, len(agents))
	for _, a := range agents {
		summary.Agents = append(summary.Agents, domain.AgentPerformance{AgentID: a.ID, Name: a.Name, Collected: decimal.Zero})
	}
	for i := range summary.Agents {
		perAgent[summary.Agents[i].AgentID] = &summary.Agents[i]
	}

	for _, d := range deliveries {
		summary.DeliveriesByStatus[d.Status]++
		summary.RevenueByPaymentStatus[d.PaymentStatus] = summary.RevenueByPaymentStatus[d.PaymentStatus].Add(d.TotalAmount)
		if d.AgentID == nil || d.Status != domain.DeliveryStatusCompleted {
			continue
		}
		perf, ok := perAgent[*d.AgentID]
		if !ok {
			continue
		}
		perf.Completed++
		if d.PaymentStatus == domain.PaymentStatusPaid {
			perf.Collected = perf.Collected.Add(d.TotalAmount)
		}
	}
	sort.SliceStable(summary.Agents, func(i, j int) bool {
		return summary.Agents[i].Completed > summary.Agents[j].Completed
	})

	for _, m := range staff {
		if m.IsActive && m.BasicPay != nil {
			summary.ActivePayroll = summary.ActivePayroll.Add(*m.BasicPay)
		}
	}
	return summary, nil
}

// ExportDeliveries renders every delivery into an xlsx workbook, resolving
// customer and agent names.
func (s *ReportService) ExportDeliveries(ctx context.Context) ([]byte, error) {
	deliveries, err := s.store.ListDeliveries(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	customers, err := s.store.ListCustomers(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	agents, err := s.store.ListAgents(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	customerNames := make(map[int64]string, len(customers))
	for _, c := range customers {
		customerNames[c.ID] = c.Name
	}
	agentNames := make(map[int64]string, len(agents))
	for _, a := range agents {
		agentNames[a.ID] = a.Name
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, h := range deliveryExportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, apperrors.NewInternalError(err)
		}
		if err := f.SetCellValue(reportSheet, cell, h); err != nil {
			return nil, apperrors.NewInternalError(err)
		}
	}

	for i, d := range deliveries {
		customer, ok := customerNames[d.CustomerID]
		if !ok {
			customer = "Unknown"
		}
		agent := "Unassigned"
		if d.AgentID != nil {
			if name, ok := agentNames[*d.AgentID]; ok {
				agent = name
			}
		}
		row := []any{
			d.InvoiceNumber,
			customer,
			agent,
			string(d.DeliveryType),
			string(d.Status),
			string(d.PaymentMethod),
			string(d.PaymentStatus),
			d.TotalAmount.InexactFloat64(),
			d.DeliveryAddress,
			d.CreatedAt.Format("2006-01-02 15:04"),
		}
		if err := f.SetSheetRow(reportSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return nil, apperrors.NewInternalError(err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return buf.Bytes(), nil
}
