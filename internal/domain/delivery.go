package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeliveryType is how the order reaches the customer.
type DeliveryType string

const (
	DeliveryTypeDoor       DeliveryType = "door"
	DeliveryTypeWalkIn     DeliveryType = "walkin"
	DeliveryTypeInternal   DeliveryType = "internal"
	DeliveryTypeOutsourced DeliveryType = "outsourced"
)

// DeliveryStatus is the delivery lifecycle position. The store accepts any transition.
type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "pending"
	DeliveryStatusActive    DeliveryStatus = "active"
	DeliveryStatusCompleted DeliveryStatus = "completed"
	DeliveryStatusOverdue   DeliveryStatus = "overdue"
	DeliveryStatusCancelled DeliveryStatus = "cancelled"
)

// DeliveryStatuses lists statuses in display order.
var DeliveryStatuses = []DeliveryStatus{
	DeliveryStatusPending,
	DeliveryStatusActive,
	DeliveryStatusCompleted,
	DeliveryStatusOverdue,
	DeliveryStatusCancelled,
}

// PaymentMethod is how the customer pays.
type PaymentMethod string

const (
	PaymentMethodCashOnDelivery PaymentMethod = "cod"
	PaymentMethodMobileMoney    PaymentMethod = "mpesa"
	PaymentMethodPrePaid        PaymentMethod = "paid"
)

// PaymentStatus tracks collection of the delivery amount.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// LineItem is one ordered product.
type LineItem struct {
	Name     string          `json:"name" validate:"required"`
	Quantity int             `json:"quantity" validate:"gte=1"`
	Price    decimal.Decimal `json:"price" validate:"gte=0"`
}

// Delivery is a customer order routed to an agent.
type Delivery struct {
	ID              int64           `json:"id"`
	InvoiceNumber   string          `json:"invoice_number"`
	CustomerID      int64           `json:"customer_id"`
	AgentID         *int64          `json:"agent_id"`
	DeliveryType    DeliveryType    `json:"delivery_type"`
	Status          DeliveryStatus  `json:"status"`
	Items           []LineItem      `json:"items"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	PaymentMethod   PaymentMethod   `json:"payment_method"`
	PaymentStatus   PaymentStatus   `json:"payment_status"`
	DeliveryAddress string          `json:"delivery_address"`
	EstimatedTime   *int            `json:"estimated_time"`
	ActualTime      *int            `json:"actual_time"`
	PhotoProof      *string         `json:"photo_proof"`
	Notes           *string         `json:"notes"`
	BranchID        *int64          `json:"branch_id"`
	CreatedAt       time.Time       `json:"created_at"`
	CompletedAt     *time.Time      `json:"completed_at"`
}

// Clone returns a copy that shares no pointers or slices with d.
func (d Delivery) Clone() Delivery {
	d.AgentID = clonePtr(d.AgentID)
	d.Items = cloneItems(d.Items)
	d.EstimatedTime = clonePtr(d.EstimatedTime)
	d.ActualTime = clonePtr(d.ActualTime)
	d.PhotoProof = clonePtr(d.PhotoProof)
	d.Notes = clonePtr(d.Notes)
	d.BranchID = clonePtr(d.BranchID)
	d.CompletedAt = clonePtr(d.CompletedAt)
	return d
}

// DeliveryPatch carries the fields of a partial delivery update.
type DeliveryPatch struct {
	InvoiceNumber   *string          `json:"invoice_number" validate:"omitempty,min=1"`
	CustomerID      *int64           `json:"customer_id"`
	AgentID         *int64           `json:"agent_id"`
	DeliveryType    *DeliveryType    `json:"delivery_type" validate:"omitempty,oneof=door walkin internal outsourced"`
	Status          *DeliveryStatus  `json:"status" validate:"omitempty,oneof=pending active completed overdue cancelled"`
	Items           []LineItem       `json:"items" validate:"omitempty,dive"`
	TotalAmount     *decimal.Decimal `json:"total_amount" validate:"omitempty,gte=0"`
	PaymentMethod   *PaymentMethod   `json:"payment_method" validate:"omitempty,oneof=cod mpesa paid"`
	PaymentStatus   *PaymentStatus   `json:"payment_status" validate:"omitempty,oneof=pending paid failed"`
	DeliveryAddress *string          `json:"delivery_address" validate:"omitempty,min=1"`
	EstimatedTime   *int             `json:"estimated_time" validate:"omitempty,gte=0"`
	ActualTime      *int             `json:"actual_time" validate:"omitempty,gte=0"`
	PhotoProof      *string          `json:"photo_proof"`
	Notes           *string          `json:"notes"`
	BranchID        *int64           `json:"branch_id"`
	CompletedAt     *time.Time       `json:"completed_at"`
}

// Apply merges the non-nil fields of p onto d. A nil Items slice leaves items unchanged.
func (p DeliveryPatch) Apply(d *Delivery) {
	setIf(&d.InvoiceNumber, p.InvoiceNumber)
	setIf(&d.CustomerID, p.CustomerID)
	setPtrIf(&d.AgentID, p.AgentID)
	setIf(&d.DeliveryType, p.DeliveryType)
	setIf(&d.Status, p.Status)
	if p.Items != nil {
		d.Items = cloneItems(p.Items)
	}
	setIf(&d.TotalAmount, p.TotalAmount)
	setIf(&d.PaymentMethod, p.PaymentMethod)
	setIf(&d.PaymentStatus, p.PaymentStatus)
	setIf(&d.DeliveryAddress, p.DeliveryAddress)
	setPtrIf(&d.EstimatedTime, p.EstimatedTime)
	setPtrIf(&d.ActualTime, p.ActualTime)
	setPtrIf(&d.PhotoProof, p.PhotoProof)
	setPtrIf(&d.Notes, p.Notes)
	setPtrIf(&d.BranchID, p.BranchID)
	setPtrIf(&d.CompletedAt, p.CompletedAt)
}

func cloneItems(items []LineItem) []LineItem {
	if items == nil {
		return nil
	}
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}
