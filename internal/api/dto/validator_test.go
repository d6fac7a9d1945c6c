package dto

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/spec-kit/delivery-ops/internal/domain"
	apperrors "github.com/spec-kit/delivery-ops/pkg/util/errorutil"
)

func validAgentRequest() AgentCreateRequest {
	return AgentCreateRequest{
		Name:          "Kevin Otieno",
		Phone:         "0712345678",
		AgentType:     domain.AgentTypeRider,
		AgentCategory: domain.AgentCategoryInternal,
	}
}

func TestValidPhone(t *testing.T) {
	tests := []struct {
		number string
		want   bool
	}{
		{"0712345678", true},
		{"+254712345678", true},
		{"+254 712 345 678", true},
		{"12", false},
		{"not a phone", false},
	}
	for _, tt := range tests {
		if got := ValidPhone(tt.number, "KE"); got != tt.want {
			t.Fatalf("ValidPhone(%q) = %v, want %v", tt.number, got, tt.want)
		}
	}
}

func TestValidatorAcceptsValidAgent(t *testing.T) {
	v := NewValidator("KE")
	if err := v.Struct(validAgentRequest()); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestValidatorReportsFieldTags(t *testing.T) {
	v := NewValidator("KE")
	rating := decimal.RequireFromString("7.5")

	tests := []struct {
		name   string
		mutate func(*AgentCreateRequest)
		field  string
		tag    string
	}{
		{"missing name", func(r *AgentCreateRequest) { r.Name = "" }, "AgentCreateRequest.name", "required"},
		{"bad phone", func(r *AgentCreateRequest) { r.Phone = "123" }, "AgentCreateRequest.phone", "phone"},
		{"bad type", func(r *AgentCreateRequest) { r.AgentType = "drone" }, "AgentCreateRequest.agent_type", "oneof"},
		{"rating above five", func(r *AgentCreateRequest) { r.Rating = &rating }, "AgentCreateRequest.rating", "lte"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validAgentRequest()
			tt.mutate(&req)
			err := v.Struct(req)
			var domainErr *apperrors.DomainError
			if !errors.As(err, &domainErr) {
				t.Fatalf("expected DomainError, got %v", err)
			}
			if domainErr.Details[tt.field] != tt.tag {
				t.Fatalf("expected %s=%s, got %+v", tt.field, tt.tag, domainErr.Details)
			}
		})
	}
}

func TestDeliveryRequestValidation(t *testing.T) {
	v := NewValidator("KE")
	req := DeliveryCreateRequest{
		InvoiceNumber:   "KIM-003000",
		CustomerID:      1,
		DeliveryType:    domain.DeliveryTypeDoor,
		Items:           []domain.LineItem{{Name: "Cocoa", Quantity: 0, Price: decimal.NewFromInt(10)}},
		TotalAmount:     decimal.NewFromInt(-1),
		PaymentMethod:   domain.PaymentMethodCashOnDelivery,
		DeliveryAddress: "Kilimani",
	}
	err := v.Struct(req)
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected DomainError, got %v", err)
	}
	if domainErr.Details["DeliveryCreateRequest.items[0].quantity"] != "gte" {
		t.Fatalf("expected item quantity failure, got %+v", domainErr.Details)
	}
	if domainErr.Details["DeliveryCreateRequest.total_amount"] != "gte" {
		t.Fatalf("expected total amount failure, got %+v", domainErr.Details)
	}
}

func TestToDomainDefaults(t *testing.T) {
	agent := validAgentRequest().ToDomain()
	if agent.Status != domain.AgentStatusAvailable || !agent.IsActive || !agent.Rating.IsZero() {
		t.Fatalf("unexpected agent defaults %+v", agent)
	}

	delivery := DeliveryCreateRequest{InvoiceNumber: " KIM-1 "}.ToDomain()
	if delivery.Status != domain.DeliveryStatusPending || delivery.PaymentStatus != domain.PaymentStatusPending {
		t.Fatalf("unexpected delivery defaults %+v", delivery)
	}
	if delivery.InvoiceNumber != "KIM-1" {
		t.Fatalf("invoice not trimmed: %q", delivery.InvoiceNumber)
	}

	inactive := false
	branch := BranchCreateRequest{Name: "Depot", Address: "Mombasa Road", IsActive: &inactive}.ToDomain()
	if branch.IsActive {
		t.Fatal("explicit is_active=false ignored")
	}
}
