package service

import (
	"context"

	"github.com/spec-kit/delivery-ops/internal/domain"
	"github.com/spec-kit/delivery-ops/internal/repository"
	apperrors "github.com/spec-kit/delivery-ops/pkg/util/errorutil"
)

// AttendanceService manages clock-in records.
type AttendanceService struct {
	attendance repository.AttendanceStore
}

// NewAttendanceService constructs the service.
func NewAttendanceService(deps Dependencies) *AttendanceService {
	return &AttendanceService{attendance: deps.Store}
}

// List returns attendance records, restricted to one staff member when staffID is set.
func (s *AttendanceService) List(ctx context.Context, staffID *int64) ([]domain.Attendance, error) {
	if staffID != nil {
		return s.attendance.ListAttendanceByStaff(ctx, *staffID)
	}
	return s.attendance.ListAttendance(ctx)
}

// Get fetches an attendance record.
func (s *AttendanceService) Get(ctx context.Context, id int64) (*domain.Attendance, error) {
	record, ok, err := s.attendance.GetAttendance(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if !ok {
		return nil, apperrors.NewNotFound("attendance record", map[string]any{"id": id})
	}
	return &record, nil
}

// Create records attendance.
func (s *AttendanceService) Create(ctx context.Context, record domain.Attendance) (*domain.Attendance, error) {
	created, err := s.attendance.CreateAttendance(ctx, record)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return &created, nil
}

// Update merges patch onto the record, typically to clock out.
func (s *AttendanceService) Update(ctx context.Context, id int64, patch domain.AttendancePatch) (*domain.Attendance, error) {
	updated, err := s.attendance.UpdateAttendance(ctx, id, patch)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return &updated, nil
}
