package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/delivery-ops/internal/api/dto"
	"github.com/spec-kit/delivery-ops/internal/domain"
	"github.com/spec-kit/delivery-ops/internal/service"
)

// DeliveriesHandler exposes delivery endpoints.
type DeliveriesHandler struct {
	service   *service.DeliveryService
	validator *dto.Validator
}

// NewDeliveriesHandler constructs handler.
func NewDeliveriesHandler(deliveryService *service.DeliveryService, validator *dto.Validator) *DeliveriesHandler {
	return &DeliveriesHandler{service: deliveryService, validator: validator}
}

// List GET /api/deliveries.
func (h *DeliveriesHandler) List(c *fiber.Ctx) error {
	deliveries, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, deliveries)
}

// Get GET /api/deliveries/:id.
func (h *DeliveriesHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	delivery, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, delivery)
}

// Search GET /api/deliveries/search/:query.
func (h *DeliveriesHandler) Search(c *fiber.Ctx) error {
	delivery, err := h.service.SearchByInvoice(c.UserContext(), c.Params("query"))
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, delivery)
}

// Create POST /api/deliveries.
func (h *DeliveriesHandler) Create(c *fiber.Ctx) error {
	var req dto.DeliveryCreateRequest
	if err := bind(c, h.validator, &req); err != nil {
		return err
	}
	delivery, err := h.service.Create(c.UserContext(), req.ToDomain())
	if err != nil {
		return err
	}
	return data(c, http.StatusCreated, delivery)
}

// Update PUT /api/deliveries/:id.
func (h *DeliveriesHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var patch domain.DeliveryPatch
	if err := bind(c, h.validator, &patch); err != nil {
		return err
	}
	delivery, err := h.service.Update(c.UserContext(), id, patch)
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, delivery)
}

// Delete DELETE /api/deliveries/:id.
func (h *DeliveriesHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return data(c, http.StatusOK, fiber.Map{"message": "delivery deleted"})
}
