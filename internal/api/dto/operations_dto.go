package dto

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/spec-kit/delivery-ops/internal/domain"
)

// BranchCreateRequest payload for a new branch.
type BranchCreateRequest struct {
	Name     string  `json:"name" validate:"required"`
	Address  string  `json:"address" validate:"required"`
	Phone    *string `json:"phone" validate:"omitempty,phone"`
	IsActive *bool   `json:"is_active"`
}

// ToDomain converts the request into a branch.
func (r BranchCreateRequest) ToDomain() domain.Branch {
	return domain.Branch{
		Name:     strings.TrimSpace(r.Name),
		Address:  r.Address,
		Phone:    r.Phone,
		IsActive: boolOr(r.IsActive, true),
	}
}

// AgentCreateRequest payload for onboarding an agent.
type AgentCreateRequest struct {
	Name           string               `json:"name" validate:"required"`
	Phone          string               `json:"phone" validate:"required,phone"`
	AgentType      domain.AgentType     `json:"agent_type" validate:"required,oneof=rider cbd_walkin"`
	AgentCategory  domain.AgentCategory `json:"agent_category" validate:"required,oneof=internal outsourced"`
	Status         *domain.AgentStatus  `json:"status" validate:"omitempty,oneof=available busy offline"`
	TasksCompleted int                  `json:"tasks_completed" validate:"gte=0"`
	Rating         *decimal.Decimal     `json:"rating" validate:"omitempty,gte=0,lte=5"`
	CurrentLat     *decimal.Decimal     `json:"current_lat" validate:"omitempty,gte=-90,lte=90"`
	CurrentLng     *decimal.Decimal     `json:"current_lng" validate:"omitempty,gte=-180,lte=180"`
	BranchID       *int64               `json:"branch_id"`
	IsActive       *bool                `json:"is_active"`
}

// ToDomain converts the request into an agent, available and active by default.
func (r AgentCreateRequest) ToDomain() domain.Agent {
	agent := domain.Agent{
		Name:           strings.TrimSpace(r.Name),
		Phone:          r.Phone,
		AgentType:      r.AgentType,
		AgentCategory:  r.AgentCategory,
		Status:         domain.AgentStatusAvailable,
		TasksCompleted: r.TasksCompleted,
		Rating:         decimal.Zero,
		CurrentLat:     r.CurrentLat,
		CurrentLng:     r.CurrentLng,
		BranchID:       r.BranchID,
		IsActive:       boolOr(r.IsActive, true),
	}
	if r.Status != nil {
		agent.Status = *r.Status
	}
	if r.Rating != nil {
		agent.Rating = *r.Rating
	}
	return agent
}

// CustomerCreateRequest payload for registering a customer.
type CustomerCreateRequest struct {
	Name    string  `json:"name" validate:"required"`
	Phone   string  `json:"phone" validate:"required,phone"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Address *string `json:"address"`
}

// ToDomain converts the request into a customer.
func (r CustomerCreateRequest) ToDomain() domain.Customer {
	return domain.Customer{
		Name:    strings.TrimSpace(r.Name),
		Phone:   r.Phone,
		Email:   r.Email,
		Address: r.Address,
	}
}

// DeliveryCreateRequest payload for booking a delivery.
type DeliveryCreateRequest struct {
	InvoiceNumber   string                 `json:"invoice_number" validate:"required"`
	CustomerID      int64                  `json:"customer_id" validate:"required,gt=0"`
	AgentID         *int64                 `json:"agent_id"`
	DeliveryType    domain.DeliveryType    `json:"delivery_type" validate:"required,oneof=door walkin internal outsourced"`
	Status          *domain.DeliveryStatus `json:"status" validate:"omitempty,oneof=pending active completed overdue cancelled"`
	Items           []domain.LineItem      `json:"items" validate:"required,min=1,dive"`
	TotalAmount     decimal.Decimal        `json:"total_amount" validate:"gte=0"`
	PaymentMethod   domain.PaymentMethod   `json:"payment_method" validate:"required,oneof=cod mpesa paid"`
	PaymentStatus   *domain.PaymentStatus  `json:"payment_status" validate:"omitempty,oneof=pending paid failed"`
	DeliveryAddress string                 `json:"delivery_address" validate:"required"`
	EstimatedTime   *int                   `json:"estimated_time" validate:"omitempty,gte=0"`
	ActualTime      *int                   `json:"actual_time" validate:"omitempty,gte=0"`
	PhotoProof      *string                `json:"photo_proof"`
	Notes           *string                `json:"notes"`
	BranchID        *int64                 `json:"branch_id"`
}

// ToDomain converts the request into a delivery, pending with payment pending by default.
func (r DeliveryCreateRequest) ToDomain() domain.Delivery {
	delivery := domain.Delivery{
		InvoiceNumber:   strings.TrimSpace(r.InvoiceNumber),
		CustomerID:      r.CustomerID,
		AgentID:         r.AgentID,
		DeliveryType:    r.DeliveryType,
		Status:          domain.DeliveryStatusPending,
		Items:           r.Items,
		TotalAmount:     r.TotalAmount,
		PaymentMethod:   r.PaymentMethod,
		PaymentStatus:   domain.PaymentStatusPending,
		DeliveryAddress: r.DeliveryAddress,
		EstimatedTime:   r.EstimatedTime,
		ActualTime:      r.ActualTime,
		PhotoProof:      r.PhotoProof,
		Notes:           r.Notes,
		BranchID:        r.BranchID,
	}
	if r.Status != nil {
		delivery.Status = *r.Status
	}
	if r.PaymentStatus != nil {
		delivery.PaymentStatus = *r.PaymentStatus
	}
	return delivery
}
