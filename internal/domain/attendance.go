package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Attendance is one staff member's clock record for a day.
type Attendance struct {
	ID          int64            `json:"id"`
	StaffID     int64            `json:"staff_id"`
	Date        time.Time        `json:"date"`
	ClockIn     *time.Time       `json:"clock_in"`
	ClockOut    *time.Time       `json:"clock_out"`
	ClockInLat  *decimal.Decimal `json:"clock_in_lat"`
	ClockInLng  *decimal.Decimal `json:"clock_in_lng"`
	ClockOutLat *decimal.Decimal `json:"clock_out_lat"`
	ClockOutLng *decimal.Decimal `json:"clock_out_lng"`
	IsLate      bool             `json:"is_late"`
	Notes       *string          `json:"notes"`
}

// Clone returns a copy that shares no pointers with a.
func (a Attendance) Clone() Attendance {
	a.ClockIn = clonePtr(a.ClockIn)
	a.ClockOut = clonePtr(a.ClockOut)
	a.ClockInLat = clonePtr(a.ClockInLat)
	a.ClockInLng = clonePtr(a.ClockInLng)
	a.ClockOutLat = clonePtr(a.ClockOutLat)
	a.ClockOutLng = clonePtr(a.ClockOutLng)
	a.Notes = clonePtr(a.Notes)
	return a
}

// AttendancePatch carries the fields of a partial attendance update.
type AttendancePatch struct {
	ClockIn     *time.Time       `json:"clock_in"`
	ClockOut    *time.Time       `json:"clock_out"`
	ClockInLat  *decimal.Decimal `json:"clock_in_lat" validate:"omitempty,gte=-90,lte=90"`
	ClockInLng  *decimal.Decimal `json:"clock_in_lng" validate:"omitempty,gte=-180,lte=180"`
	ClockOutLat *decimal.Decimal `json:"clock_out_lat" validate:"omitempty,gte=-90,lte=90"`
	ClockOutLng *decimal.Decimal `json:"clock_out_lng" validate:"omitempty,gte=-180,lte=180"`
	IsLate      *bool            `json:"is_late"`
	Notes       *string          `json:"notes"`
}

// Apply merges the non-nil fields of p onto a.
func (p AttendancePatch) Apply(a *Attendance) {
	setPtrIf(&a.ClockIn, p.ClockIn)
	setPtrIf(&a.ClockOut, p.ClockOut)
	setPtrIf(&a.ClockInLat, p.ClockInLat)
	setPtrIf(&a.ClockInLng, p.ClockInLng)
	setPtrIf(&a.ClockOutLat, p.ClockOutLat)
	setPtrIf(&a.ClockOutLng, p.ClockOutLng)
	setIf(&a.IsLate, p.IsLate)
	setPtrIf(&a.Notes, p.Notes)
}
