package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/delivery-ops/internal/repository"
)

func TestToDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{"domain error passes through", NewConflict("taken", nil), "CONFLICT", http.StatusConflict},
		{"wrapped store miss", fmt.Errorf("agent 9: %w", repository.ErrNotFound), "NOT_FOUND", http.StatusNotFound},
		{"pgx no rows", pgx.ErrNoRows, "NOT_FOUND", http.StatusNotFound},
		{"fiber not found", fiber.ErrNotFound, "NOT_FOUND", http.StatusNotFound},
		{"fiber bad request", fiber.NewError(http.StatusBadRequest, "bad"), "BAD_REQUEST", http.StatusBadRequest},
		{"fiber method not allowed", fiber.ErrMethodNotAllowed, "METHOD_NOT_ALLOWED", http.StatusMethodNotAllowed},
		{"unknown", errors.New("boom"), "INTERNAL_ERROR", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToDomainError(tt.err)
			if got.Code != tt.wantCode || got.HTTPStatus != tt.wantStatus {
				t.Fatalf("expected %s/%d, got %s/%d", tt.wantCode, tt.wantStatus, got.Code, got.HTTPStatus)
			}
		})
	}
}

func TestInternalErrorHidesCause(t *testing.T) {
	got := ToDomainError(errors.New("pq: password authentication failed"))
	if got.Message != "internal server error" {
		t.Fatalf("cause leaked into message: %q", got.Message)
	}
}

func TestFromValidation(t *testing.T) {
	type payload struct {
		Name  string `validate:"required"`
		Count int    `validate:"gte=1"`
	}
	err := validator.New().Struct(payload{})
	got := ToDomainError(FromValidation("invalid", err))

	if got.Code != "VALIDATION_FAILED" || got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("unexpected error %+v", got)
	}
	if got.Details["payload.Name"] != "required" || got.Details["payload.Count"] != "gte" {
		t.Fatalf("unexpected details %+v", got.Details)
	}
}
