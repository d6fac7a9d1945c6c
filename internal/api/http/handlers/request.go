package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/delivery-ops/internal/api/dto"
	apperrors "github.com/spec-kit/delivery-ops/pkg/util/errorutil"
)

// bind parses the JSON body into dst and validates it.
func bind(c *fiber.Ctx, v *dto.Validator, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return apperrors.NewInvalidPayload("invalid payload")
	}
	return v.Struct(dst)
}

// idParam reads a positive integer path parameter.
func idParam(c *fiber.Ctx, key string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(key), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid id", map[string]any{key: c.Params(key)})
	}
	return id, nil
}

// optionalIDQuery reads an optional positive integer query parameter.
func optionalIDQuery(c *fiber.Ctx, key string) (*int64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, apperrors.NewValidationError("invalid query parameter", map[string]any{key: raw})
	}
	return &id, nil
}

func data(c *fiber.Ctx, status int, payload any) error {
	return c.Status(status).JSON(fiber.Map{"data": payload})
}
