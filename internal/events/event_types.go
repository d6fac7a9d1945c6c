package events

import (
	"time"

	"github.com/spec-kit/delivery-ops/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventDeliveryCreated       EventType = "delivery_created"
	EventDeliveryStatusChanged EventType = "delivery_status_changed"
	EventAgentStatusChanged    EventType = "agent_status_changed"
	EventLeaveRequestReviewed  EventType = "leave_request_reviewed"
	EventStaffHired            EventType = "staff_hired"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string            `json:"id"`
	Type      EventType         `json:"type"`
	Kind      domain.EntityKind `json:"kind"`
	EntityID  int64             `json:"entity_id"`
	Timestamp time.Time         `json:"timestamp"`
	Payload   interface{}       `json:"payload"`
}

// DeliveryCreatedPayload payload.
type DeliveryCreatedPayload struct {
	InvoiceNumber string                `json:"invoice_number"`
	CustomerID    int64                 `json:"customer_id"`
	AgentID       *int64                `json:"agent_id,omitempty"`
	DeliveryType  domain.DeliveryType   `json:"delivery_type"`
	PaymentMethod domain.PaymentMethod  `json:"payment_method"`
	Status        domain.DeliveryStatus `json:"status"`
}

// DeliveryStatusChangedPayload payload.
type DeliveryStatusChangedPayload struct {
	InvoiceNumber string                `json:"invoice_number"`
	CustomerID    int64                 `json:"customer_id"`
	OldStatus     domain.DeliveryStatus `json:"old_status"`
	NewStatus     domain.DeliveryStatus `json:"new_status"`
}

// AgentStatusChangedPayload payload.
type AgentStatusChangedPayload struct {
	Name      string             `json:"name"`
	OldStatus domain.AgentStatus `json:"old_status"`
	NewStatus domain.AgentStatus `json:"new_status"`
}

// LeaveRequestReviewedPayload payload.
type LeaveRequestReviewedPayload struct {
	StaffID    int64              `json:"staff_id"`
	Status     domain.LeaveStatus `json:"status"`
	ApprovedBy *int64             `json:"approved_by,omitempty"`
}

// StaffHiredPayload payload.
type StaffHiredPayload struct {
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	BranchID *int64 `json:"branch_id,omitempty"`
}
