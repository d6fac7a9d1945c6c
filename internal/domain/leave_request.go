package domain

import "time"

// LeaveType enumerates leave categories.
type LeaveType string

const (
	LeaveTypeAnnual    LeaveType = "annual"
	LeaveTypeSick      LeaveType = "sick"
	LeaveTypeMaternity LeaveType = "maternity"
	LeaveTypeEmergency LeaveType = "emergency"
)

// LeaveStatus is the review state of a leave request.
type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

// LeaveRequest is a staff member's request for time off.
type LeaveRequest struct {
	ID          int64       `json:"id"`
	StaffID     int64       `json:"staff_id"`
	LeaveType   LeaveType   `json:"leave_type"`
	StartDate   time.Time   `json:"start_date"`
	EndDate     time.Time   `json:"end_date"`
	Days        int         `json:"days"`
	Reason      string      `json:"reason"`
	Status      LeaveStatus `json:"status"`
	ApprovedBy  *int64      `json:"approved_by"`
	RequestedAt time.Time   `json:"requested_at"`
	ReviewedAt  *time.Time  `json:"reviewed_at"`
}

// Clone returns a copy that shares no pointers with l.
func (l LeaveRequest) Clone() LeaveRequest {
	l.ApprovedBy = clonePtr(l.ApprovedBy)
	l.ReviewedAt = clonePtr(l.ReviewedAt)
	return l
}

// LeaveRequestPatch carries the fields of a partial leave request update.
type LeaveRequestPatch struct {
	StaffID    *int64       `json:"staff_id"`
	LeaveType  *LeaveType   `json:"leave_type" validate:"omitempty,oneof=annual sick maternity emergency"`
	StartDate  *time.Time   `json:"start_date"`
	EndDate    *time.Time   `json:"end_date"`
	Days       *int         `json:"days" validate:"omitempty,gte=1"`
	Reason     *string      `json:"reason" validate:"omitempty,min=1"`
	Status     *LeaveStatus `json:"status" validate:"omitempty,oneof=pending approved rejected"`
	ApprovedBy *int64       `json:"approved_by"`
	ReviewedAt *time.Time   `json:"reviewed_at"`
}

// Apply merges the non-nil fields of p onto l.
func (p LeaveRequestPatch) Apply(l *LeaveRequest) {
	setIf(&l.StaffID, p.StaffID)
	setIf(&l.LeaveType, p.LeaveType)
	setIf(&l.StartDate, p.StartDate)
	setIf(&l.EndDate, p.EndDate)
	setIf(&l.Days, p.Days)
	setIf(&l.Reason, p.Reason)
	setIf(&l.Status, p.Status)
	setPtrIf(&l.ApprovedBy, p.ApprovedBy)
	setPtrIf(&l.ReviewedAt, p.ReviewedAt)
}
