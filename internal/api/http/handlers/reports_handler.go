package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/delivery-ops/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportsHandler exposes the dashboard counters and the reports page.
type ReportsHandler struct {
	dashboard *service.DashboardService
	reports   *service.ReportService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(dashboard *service.DashboardService, reports *service.ReportService) *ReportsHandler {
	return &ReportsHandler{dashboard: dashboard, reports: reports}
}

// Metrics GET /api/dashboard/metrics.
func (h *ReportsHandler) Metrics(c *fiber.Ctx) error {
	metrics, err := h.dashboard.Metrics(c.UserContext())
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, metrics)
}

// Summary GET /api/reports/summary.
func (h *ReportsHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.reports.Summary(c.UserContext())
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, summary)
}

// ExportDeliveries GET /api/reports/deliveries.xlsx.
func (h *ReportsHandler) ExportDeliveries(c *fiber.Ctx) error {
	content, err := h.reports.ExportDeliveries(c.UserContext())
	if err != nil {
		return err
	}
	filename := fmt.Sprintf("deliveries-%s.xlsx", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
	return c.Status(http.StatusOK).Send(content)
}
