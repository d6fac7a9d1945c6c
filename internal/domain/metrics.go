package domain

// DashboardMetrics is the headline counters shown on the console home page.
type DashboardMetrics struct {
	ActiveAgents      string `json:"active_agents"`
	PendingDeliveries int    `json:"pending_deliveries"`
	ActiveDeliveries  int    `json:"active_deliveries"`
	OverdueDeliveries int    `json:"overdue_deliveries"`
}
