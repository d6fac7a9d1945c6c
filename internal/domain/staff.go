package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Staff is an employee record kept by HR.
type Staff struct {
	ID                int64            `json:"id"`
	FullName          string           `json:"full_name"`
	IDNumber          string           `json:"id_number"`
	Phone             string           `json:"phone"`
	Email             *string          `json:"email"`
	Role              string           `json:"role"`
	Department        *string          `json:"department"`
	BranchID          *int64           `json:"branch_id"`
	NextOfKinName     *string          `json:"next_of_kin_name"`
	NextOfKinPhone    *string          `json:"next_of_kin_phone"`
	NextOfKinAddress  *string          `json:"next_of_kin_address"`
	BasicPay          *decimal.Decimal `json:"basic_pay"`
	MaritalStatus     *string          `json:"marital_status"`
	Dependents        int              `json:"dependents"`
	MedicalConditions *string          `json:"medical_conditions"`
	CurrentAddress    *string          `json:"current_address"`
	IsActive          bool             `json:"is_active"`
	HiredAt           time.Time        `json:"hired_at"`
}

// Clone returns a copy that shares no pointers with s.
func (s Staff) Clone() Staff {
	s.Email = clonePtr(s.Email)
	s.Department = clonePtr(s.Department)
	s.BranchID = clonePtr(s.BranchID)
	s.NextOfKinName = clonePtr(s.NextOfKinName)
	s.NextOfKinPhone = clonePtr(s.NextOfKinPhone)
	s.NextOfKinAddress = clonePtr(s.NextOfKinAddress)
	s.BasicPay = clonePtr(s.BasicPay)
	s.MaritalStatus = clonePtr(s.MaritalStatus)
	s.MedicalConditions = clonePtr(s.MedicalConditions)
	s.CurrentAddress = clonePtr(s.CurrentAddress)
	return s
}

// StaffPatch carries the fields of a partial staff update.
type StaffPatch struct {
	FullName          *string          `json:"full_name" validate:"omitempty,min=1"`
	IDNumber          *string          `json:"id_number" validate:"omitempty,min=1"`
	Phone             *string          `json:"phone" validate:"omitempty,phone"`
	Email             *string          `json:"email" validate:"omitempty,email"`
	Role              *string          `json:"role" validate:"omitempty,min=1"`
	Department        *string          `json:"department"`
	BranchID          *int64           `json:"branch_id"`
	NextOfKinName     *string          `json:"next_of_kin_name"`
	NextOfKinPhone    *string          `json:"next_of_kin_phone" validate:"omitempty,phone"`
	NextOfKinAddress  *string          `json:"next_of_kin_address"`
	BasicPay          *decimal.Decimal `json:"basic_pay" validate:"omitempty,gte=0"`
	MaritalStatus     *string          `json:"marital_status"`
	Dependents        *int             `json:"dependents" validate:"omitempty,gte=0"`
	MedicalConditions *string          `json:"medical_conditions"`
	CurrentAddress    *string          `json:"current_address"`
	IsActive          *bool            `json:"is_active"`
}

// Apply merges the non-nil fields of p onto s.
func (p StaffPatch) Apply(s *Staff) {
	setIf(&s.FullName, p.FullName)
	setIf(&s.IDNumber, p.IDNumber)
	setIf(&s.Phone, p.Phone)
	setPtrIf(&s.Email, p.Email)
	setIf(&s.Role, p.Role)
	setPtrIf(&s.Department, p.Department)
	setPtrIf(&s.BranchID, p.BranchID)
	setPtrIf(&s.NextOfKinName, p.NextOfKinName)
	setPtrIf(&s.NextOfKinPhone, p.NextOfKinPhone)
	setPtrIf(&s.NextOfKinAddress, p.NextOfKinAddress)
	setPtrIf(&s.BasicPay, p.BasicPay)
	setPtrIf(&s.MaritalStatus, p.MaritalStatus)
	setIf(&s.Dependents, p.Dependents)
	setPtrIf(&s.MedicalConditions, p.MedicalConditions)
	setPtrIf(&s.CurrentAddress, p.CurrentAddress)
	setIf(&s.IsActive, p.IsActive)
}
