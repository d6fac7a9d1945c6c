package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/delivery-ops/internal/api/dto"
	"github.com/spec-kit/delivery-ops/internal/service"
)

// CustomersHandler exposes customer endpoints.
type CustomersHandler struct {
	service   *service.CustomerService
	validator *dto.Validator
}

// NewCustomersHandler constructs handler.
func NewCustomersHandler(customerService *service.CustomerService, validator *dto.Validator) *CustomersHandler {
	return &CustomersHandler{service: customerService, validator: validator}
}

// List GET /api/customers.
func (h *CustomersHandler) List(c *fiber.Ctx) error {
	customers, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, customers)
}

// Get GET /api/customers/:id.
func (h *CustomersHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	customer, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, customer)
}

// Create POST /api/customers.
func (h *CustomersHandler) Create(c *fiber.Ctx) error {
	var req dto.CustomerCreateRequest
	if err := bind(c, h.validator, &req); err != nil {
		return err
	}
	customer, err := h.service.Create(c.UserContext(), req.ToDomain())
	if err != nil {
		return err
	}
	return data(c, http.StatusCreated, customer)
}
