package domain

import "github.com/shopspring/decimal"

// AgentPerformance summarizes completed work for one agent.
type AgentPerformance struct {
	AgentID   int64           `json:"agent_id"`
	Name      string          `json:"name"`
	Completed int             `json:"completed"`
	Collected decimal.Decimal `json:"collected"`
}

// ReportSummary aggregates deliveries, agents, and payroll for the reports page.
type ReportSummary struct {
	DeliveriesByStatus     map[DeliveryStatus]int            `json:"deliveries_by_status"`
	RevenueByPaymentStatus map[PaymentStatus]decimal.Decimal `json:"revenue_by_payment_status"`
	Agents                 []AgentPerformance                `json:"agents"`
	ActivePayroll          decimal.Decimal                   `json:"active_payroll"`
}
