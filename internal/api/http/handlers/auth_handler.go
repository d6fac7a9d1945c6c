package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/delivery-ops/internal/api/dto"
	"github.com/spec-kit/delivery-ops/internal/auth"
	"github.com/spec-kit/delivery-ops/internal/service"
	apperrors "github.com/spec-kit/delivery-ops/pkg/util/errorutil"
)

// AuthHandler exposes console user registration and login.
type AuthHandler struct {
	auth      *service.AuthService
	validator *dto.Validator
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, validator *dto.Validator) *AuthHandler {
	return &AuthHandler{auth: authService, validator: validator}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.UserRegisterRequest
	if err := bind(c, h.validator, &req); err != nil {
		return err
	}

	user, token, exp, err := h.auth.Register(c.UserContext(), req.Username, req.Password, req.BranchID)
	if err != nil {
		return err
	}

	return data(c, http.StatusCreated, fiber.Map{
		"user": user,
		"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.UserLoginRequest
	if err := bind(c, h.validator, &req); err != nil {
		return err
	}

	user, token, exp, err := h.auth.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return data(c, http.StatusOK, fiber.Map{
		"user": user,
		"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
	})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	user, err := h.auth.Me(c.UserContext(), principal.ID)
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, user)
}
