package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/delivery-ops/internal/api/dto"
	"github.com/spec-kit/delivery-ops/internal/service"
)

// BranchesHandler exposes branch endpoints.
type BranchesHandler struct {
	service   *service.BranchService
	validator *dto.Validator
}

// NewBranchesHandler constructs handler.
func NewBranchesHandler(branchService *service.BranchService, validator *dto.Validator) *BranchesHandler {
	return &BranchesHandler{service: branchService, validator: validator}
}

// List GET /api/branches.
func (h *BranchesHandler) List(c *fiber.Ctx) error {
	branches, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, branches)
}

// Get GET /api/branches/:id.
func (h *BranchesHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	branch, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, branch)
}

// Create POST /api/branches.
func (h *BranchesHandler) Create(c *fiber.Ctx) error {
	var req dto.BranchCreateRequest
	if err := bind(c, h.validator, &req); err != nil {
		return err
	}
	branch, err := h.service.Create(c.UserContext(), req.ToDomain())
	if err != nil {
		return err
	}
	return data(c, http.StatusCreated, branch)
}
