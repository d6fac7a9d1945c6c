package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AgentType distinguishes motorbike riders from on-foot CBD agents.
type AgentType string

const (
	AgentTypeRider     AgentType = "rider"
	AgentTypeCBDWalkIn AgentType = "cbd_walkin"
)

// AgentCategory tells whether the agent is employed or contracted.
type AgentCategory string

const (
	AgentCategoryInternal   AgentCategory = "internal"
	AgentCategoryOutsourced AgentCategory = "outsourced"
)

// AgentStatus is the agent's current availability.
type AgentStatus string

const (
	AgentStatusAvailable AgentStatus = "available"
	AgentStatusBusy      AgentStatus = "busy"
	AgentStatusOffline   AgentStatus = "offline"
)

// Agent performs deliveries.
type Agent struct {
	ID             int64            `json:"id"`
	Name           string           `json:"name"`
	Phone          string           `json:"phone"`
	AgentType      AgentType        `json:"agent_type"`
	AgentCategory  AgentCategory    `json:"agent_category"`
	Status         AgentStatus      `json:"status"`
	TasksCompleted int              `json:"tasks_completed"`
	Rating         decimal.Decimal  `json:"rating"`
	CurrentLat     *decimal.Decimal `json:"current_lat"`
	CurrentLng     *decimal.Decimal `json:"current_lng"`
	BranchID       *int64           `json:"branch_id"`
	IsActive       bool             `json:"is_active"`
	CreatedAt      time.Time        `json:"created_at"`
}

// Clone returns a copy that shares no pointers with a.
func (a Agent) Clone() Agent {
	a.CurrentLat = clonePtr(a.CurrentLat)
	a.CurrentLng = clonePtr(a.CurrentLng)
	a.BranchID = clonePtr(a.BranchID)
	return a
}

// AgentPatch carries the fields of a partial agent update. Nil means unchanged.
type AgentPatch struct {
	Name           *string          `json:"name" validate:"omitempty,min=1"`
	Phone          *string          `json:"phone" validate:"omitempty,phone"`
	AgentType      *AgentType       `json:"agent_type" validate:"omitempty,oneof=rider cbd_walkin"`
	AgentCategory  *AgentCategory   `json:"agent_category" validate:"omitempty,oneof=internal outsourced"`
	Status         *AgentStatus     `json:"status" validate:"omitempty,oneof=available busy offline"`
	TasksCompleted *int             `json:"tasks_completed" validate:"omitempty,gte=0"`
	Rating         *decimal.Decimal `json:"rating" validate:"omitempty,gte=0,lte=5"`
	CurrentLat     *decimal.Decimal `json:"current_lat" validate:"omitempty,gte=-90,lte=90"`
	CurrentLng     *decimal.Decimal `json:"current_lng" validate:"omitempty,gte=-180,lte=180"`
	BranchID       *int64           `json:"branch_id"`
	IsActive       *bool            `json:"is_active"`
}

// Apply merges the non-nil fields of p onto a.
func (p AgentPatch) Apply(a *Agent) {
	setIf(&a.Name, p.Name)
	setIf(&a.Phone, p.Phone)
	setIf(&a.AgentType, p.AgentType)
	setIf(&a.AgentCategory, p.AgentCategory)
	setIf(&a.Status, p.Status)
	setIf(&a.TasksCompleted, p.TasksCompleted)
	setIf(&a.Rating, p.Rating)
	setPtrIf(&a.CurrentLat, p.CurrentLat)
	setPtrIf(&a.CurrentLng, p.CurrentLng)
	setPtrIf(&a.BranchID, p.BranchID)
	setIf(&a.IsActive, p.IsActive)
}
