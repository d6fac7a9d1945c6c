package service

import (
	"context"
	"errors"

	"github.com/spec-kit/delivery-ops/internal/domain"
	"github.com/spec-kit/delivery-ops/internal/events"
	"github.com/spec-kit/delivery-ops/internal/repository"
	apperrors "github.com/spec-kit/delivery-ops/pkg/util/errorutil"
)

// AgentService manages delivery agents.
type AgentService struct {
	agents repository.AgentStore
	events publisher
}

// NewAgentService constructs the service.
func NewAgentService(deps Dependencies) *AgentService {
	deps = deps.withDefaults()
	return &AgentService{agents: deps.Store, events: newPublisher(deps)}
}

// List returns every agent.
func (s *AgentService) List(ctx context.Context) ([]domain.Agent, error) {
	return s.agents.ListAgents(ctx)
}

// Get fetches an agent.
func (s *AgentService) Get(ctx context.Context, id int64) (*domain.Agent, error) {
	agent, ok, err := s.agents.GetAgent(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if !ok {
		return nil, apperrors.NewNotFound("agent", map[string]any{"id": id})
	}
	return &agent, nil
}

// Create onboards an agent.
func (s *AgentService) Create(ctx context.Context, agent domain.Agent) (*domain.Agent, error) {
	created, err := s.agents.CreateAgent(ctx, agent)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return &created, nil
}

// Update merges patch onto the agent and announces status changes.
func (s *AgentService) Update(ctx context.Context, id int64, patch domain.AgentPatch) (*domain.Agent, error) {
	before, updated, err := s.agents.ModifyAgent(ctx, id, func(domain.Agent) domain.AgentPatch { return patch })
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NewNotFound("agent", map[string]any{"id": id})
	}
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if updated.Status != before.Status {
		s.events.publish(ctx, events.EventAgentStatusChanged, domain.KindAgent, id, events.AgentStatusChangedPayload{
			Name:      updated.Name,
			OldStatus: before.Status,
			NewStatus: updated.Status,
		})
	}
	return &updated, nil
}

// Delete removes an agent. Deliveries that reference it keep the dangling id.
func (s *AgentService) Delete(ctx context.Context, id int64) error {
	removed, err := s.agents.DeleteAgent(ctx, id)
	if err != nil {
		return apperrors.MapError(err)
	}
	if !removed {
		return apperrors.NewNotFound("agent", map[string]any{"id": id})
	}
	return nil
}
