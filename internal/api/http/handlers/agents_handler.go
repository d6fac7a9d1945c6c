package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/delivery-ops/internal/api/dto"
	"github.com/spec-kit/delivery-ops/internal/domain"
	"github.com/spec-kit/delivery-ops/internal/service"
)

// AgentsHandler exposes delivery agent endpoints.
type AgentsHandler struct {
	service   *service.AgentService
	validator *dto.Validator
}

// NewAgentsHandler constructs handler.
func NewAgentsHandler(agentService *service.AgentService, validator *dto.Validator) *AgentsHandler {
	return &AgentsHandler{service: agentService, validator: validator}
}

// List GET /api/agents.
func (h *AgentsHandler) List(c *fiber.Ctx) error {
	agents, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, agents)
}

// Get GET /api/agents/:id.
func (h *AgentsHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	agent, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, agent)
}

// Create POST /api/agents.
func (h *AgentsHandler) Create(c *fiber.Ctx) error {
	var req dto.AgentCreateRequest
	if err := bind(c, h.validator, &req); err != nil {
		return err
	}
	agent, err := h.service.Create(c.UserContext(), req.ToDomain())
	if err != nil {
		return err
	}
	return data(c, http.StatusCreated, agent)
}

// Update PUT /api/agents/:id.
func (h *AgentsHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var patch domain.AgentPatch
	if err := bind(c, h.validator, &patch); err != nil {
		return err
	}
	agent, err := h.service.Update(c.UserContext(), id, patch)
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, agent)
}

// Delete DELETE /api/agents/:id.
func (h *AgentsHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return data(c, http.StatusOK, fiber.Map{"message": "agent deleted"})
}
