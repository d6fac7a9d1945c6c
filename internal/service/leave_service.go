package service

import (
	"context"
	"errors"
	"time"

	"github.com/spec-kit/delivery-ops/internal/domain"
	"github.com/spec-kit/delivery-ops/internal/events"
	"github.com/spec-kit/delivery-ops/internal/repository"
	apperrors "github.com/spec-kit/delivery-ops/pkg/util/errorutil"
)

// LeaveService manages leave requests.
type LeaveService struct {
	leaves repository.LeaveRequestStore
	events publisher
	clock  func() time.Time
}

// NewLeaveService constructs the service.
func NewLeaveService(deps Dependencies) *LeaveService {
	deps = deps.withDefaults()
	return &LeaveService{leaves: deps.Store, events: newPublisher(deps), clock: deps.Clock}
}

// List returns every leave request.
func (s *LeaveService) List(ctx context.Context) ([]domain.LeaveRequest, error) {
	return s.leaves.ListLeaveRequests(ctx)
}

// Get fetches a leave request.
func (s *LeaveService) Get(ctx context.Context, id int64) (*domain.LeaveRequest, error) {
	leave, ok, err := s.leaves.GetLeaveRequest(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if !ok {
		return nil, apperrors.NewNotFound("leave request", map[string]any{"id": id})
	}
	return &leave, nil
}

// Create files a leave request.
func (s *LeaveService) Create(ctx context.Context, leave domain.LeaveRequest) (*domain.LeaveRequest, error) {
	if leave.Status == "" {
		leave.Status = domain.LeaveStatusPending
	}
	created, err := s.leaves.CreateLeaveRequest(ctx, leave)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return &created, nil
}

// Update merges patch onto the request. A move to approved or rejected
// without an explicit reviewed_at stamps the current time.
func (s *LeaveService) Update(ctx context.Context, id int64, patch domain.LeaveRequestPatch) (*domain.LeaveRequest, error) {
	reviewed := false
	_, updated, err := s.leaves.ModifyLeaveRequest(ctx, id, func(current domain.LeaveRequest) domain.LeaveRequestPatch {
		reviewed = patch.Status != nil && *patch.Status != domain.LeaveStatusPending && *patch.Status != current.Status
		if reviewed && patch.ReviewedAt == nil {
			now := s.clock()
			patch.ReviewedAt = &now
		}
		return patch
	})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NewNotFound("leave request", map[string]any{"id": id})
	}
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if reviewed {
		s.events.publish(ctx, events.EventLeaveRequestReviewed, domain.KindLeaveRequest, id, events.LeaveRequestReviewedPayload{
			StaffID:    updated.StaffID,
			Status:     updated.Status,
			ApprovedBy: updated.ApprovedBy,
		})
	}
	return &updated, nil
}
