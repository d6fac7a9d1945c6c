package service

import (
	"context"

	"github.com/spec-kit/delivery-ops/internal/domain"
	"github.com/spec-kit/delivery-ops/internal/repository"
	apperrors "github.com/spec-kit/delivery-ops/pkg/util/errorutil"
)

// BranchService manages branches.
type BranchService struct {
	branches repository.BranchStore
}

// NewBranchService constructs the service.
func NewBranchService(deps Dependencies) *BranchService {
	return &BranchService{branches: deps.Store}
}

// List returns every branch.
func (s *BranchService) List(ctx context.Context) ([]domain.Branch, error) {
	return s.branches.ListBranches(ctx)
}

// Get fetches a branch.
func (s *BranchService) Get(ctx context.Context, id int64) (*domain.Branch, error) {
	branch, ok, err := s.branches.GetBranch(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if !ok {
		return nil, apperrors.NewNotFound("branch", map[string]any{"id": id})
	}
	return &branch, nil
}

// Create stores a new branch.
func (s *BranchService) Create(ctx context.Context, branch domain.Branch) (*domain.Branch, error) {
	created, err := s.branches.CreateBranch(ctx, branch)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return &created, nil
}
