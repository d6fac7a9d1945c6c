package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spec-kit/delivery-ops/internal/domain"
)

// StaffCreateRequest payload for hiring a staff member.
type StaffCreateRequest struct {
	FullName          string           `json:"full_name" validate:"required"`
	IDNumber          string           `json:"id_number" validate:"required"`
	Phone             string           `json:"phone" validate:"required,phone"`
	Email             *string          `json:"email" validate:"omitempty,email"`
	Role              string           `json:"role" validate:"required"`
	Department        *string          `json:"department"`
	BranchID          *int64           `json:"branch_id"`
	NextOfKinName     *string          `json:"next_of_kin_name"`
	NextOfKinPhone    *string          `json:"next_of_kin_phone" validate:"omitempty,phone"`
	NextOfKinAddress  *string          `json:"next_of_kin_address"`
	BasicPay          *decimal.Decimal `json:"basic_pay" validate:"omitempty,gte=0"`
	MaritalStatus     *string          `json:"marital_status"`
	Dependents        int              `json:"dependents" validate:"gte=0"`
	MedicalConditions *string          `json:"medical_conditions"`
	CurrentAddress    *string          `json:"current_address"`
	IsActive          *bool            `json:"is_active"`
}

// ToDomain converts the request into a staff record. Staff are active unless told otherwise.
func (r StaffCreateRequest) ToDomain() domain.Staff {
	return domain.Staff{
		FullName:          strings.TrimSpace(r.FullName),
		IDNumber:          strings.TrimSpace(r.IDNumber),
		Phone:             r.Phone,
		Email:             r.Email,
		Role:              r.Role,
		Department:        r.Department,
		BranchID:          r.BranchID,
		NextOfKinName:     r.NextOfKinName,
		NextOfKinPhone:    r.NextOfKinPhone,
		NextOfKinAddress:  r.NextOfKinAddress,
		BasicPay:          r.BasicPay,
		MaritalStatus:     r.MaritalStatus,
		Dependents:        r.Dependents,
		MedicalConditions: r.MedicalConditions,
		CurrentAddress:    r.CurrentAddress,
		IsActive:          boolOr(r.IsActive, true),
	}
}

// LeaveRequestCreateRequest payload for filing leave.
type LeaveRequestCreateRequest struct {
	StaffID   int64            `json:"staff_id" validate:"required,gt=0"`
	LeaveType domain.LeaveType `json:"leave_type" validate:"required,oneof=annual sick maternity emergency"`
	StartDate time.Time        `json:"start_date" validate:"required"`
	EndDate   time.Time        `json:"end_date" validate:"required,gtefield=StartDate"`
	Days      int              `json:"days" validate:"required,gte=1"`
	Reason    string           `json:"reason" validate:"required"`
}

// ToDomain converts the request into a pending leave request.
func (r LeaveRequestCreateRequest) ToDomain() domain.LeaveRequest {
	return domain.LeaveRequest{
		StaffID:   r.StaffID,
		LeaveType: r.LeaveType,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Days:      r.Days,
		Reason:    r.Reason,
		Status:    domain.LeaveStatusPending,
	}
}

// AttendanceCreateRequest payload for a clock-in record.
type AttendanceCreateRequest struct {
	StaffID    int64            `json:"staff_id" validate:"required,gt=0"`
	Date       time.Time        `json:"date" validate:"required"`
	ClockIn    *time.Time       `json:"clock_in"`
	ClockOut   *time.Time       `json:"clock_out"`
	ClockInLat *decimal.Decimal `json:"clock_in_lat" validate:"omitempty,gte=-90,lte=90"`
	ClockInLng *decimal.Decimal `json:"clock_in_lng" validate:"omitempty,gte=-180,lte=180"`
	IsLate     bool             `json:"is_late"`
	Notes      *string          `json:"notes"`
}

// ToDomain converts the request into an attendance record.
func (r AttendanceCreateRequest) ToDomain() domain.Attendance {
	return domain.Attendance{
		StaffID:    r.StaffID,
		Date:       r.Date,
		ClockIn:    r.ClockIn,
		ClockOut:   r.ClockOut,
		ClockInLat: r.ClockInLat,
		ClockInLng: r.ClockInLng,
		IsLate:     r.IsLate,
		Notes:      r.Notes,
	}
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
