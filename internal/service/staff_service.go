package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/delivery-ops/internal/domain"
	"github.com/spec-kit/delivery-ops/internal/events"
	"github.com/spec-kit/delivery-ops/internal/repository"
	apperrors "github.com/spec-kit/delivery-ops/pkg/util/errorutil"
)

// StaffService manages HR staff records.
type StaffService struct {
	staff  repository.StaffStore
	events publisher
	logger *zap.Logger
}

// NewStaffService constructs the service.
func NewStaffService(deps Dependencies) *StaffService {
	deps = deps.withDefaults()
	return &StaffService{staff: deps.Store, events: newPublisher(deps), logger: deps.Logger}
}

// List returns every staff member.
func (s *StaffService) List(ctx context.Context) ([]domain.Staff, error) {
	return s.staff.ListStaff(ctx)
}

// Get fetches a staff member.
func (s *StaffService) Get(ctx context.Context, id int64) (*domain.Staff, error) {
	member, ok, err := s.staff.GetStaff(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if !ok {
		return nil, apperrors.NewNotFound("staff member", map[string]any{"id": id})
	}
	return &member, nil
}

// Create hires a staff member. A repeated id number is logged, not rejected.
func (s *StaffService) Create(ctx context.Context, member domain.Staff) (*domain.Staff, error) {
	existing, err := s.staff.ListStaff(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	for _, m := range existing {
		if m.IDNumber == member.IDNumber {
			s.logger.Warn("duplicate staff id number",
				zap.String("id_number", member.IDNumber),
				zap.Int64("existing_id", m.ID))
			break
		}
	}
	created, err := s.staff.CreateStaff(ctx, member)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	s.events.publish(ctx, events.EventStaffHired, domain.KindStaff, created.ID, events.StaffHiredPayload{
		FullName: created.FullName,
		Role:     created.Role,
		BranchID: created.BranchID,
	})
	return &created, nil
}

// Update merges patch onto the staff member.
func (s *StaffService) Update(ctx context.Context, id int64, patch domain.StaffPatch) (*domain.Staff, error) {
	updated, err := s.staff.UpdateStaff(ctx, id, patch)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return &updated, nil
}
