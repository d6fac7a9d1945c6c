package service

import (
	"context"

	"github.com/spec-kit/delivery-ops/internal/domain"
	"github.com/spec-kit/delivery-ops/internal/repository"
	apperrors "github.com/spec-kit/delivery-ops/pkg/util/errorutil"
)

// CustomerService manages customers.
type CustomerService struct {
	customers repository.CustomerStore
}

// NewCustomerService constructs the service.
func NewCustomerService(deps Dependencies) *CustomerService {
	return &CustomerService{customers: deps.Store}
}

// List returns every customer.
func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.customers.ListCustomers(ctx)
}

// Get fetches a customer.
func (s *CustomerService) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	customer, ok, err := s.customers.GetCustomer(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if !ok {
		return nil, apperrors.NewNotFound("customer", map[string]any{"id": id})
	}
	return &customer, nil
}

// Create registers a customer.
func (s *CustomerService) Create(ctx context.Context, customer domain.Customer) (*domain.Customer, error) {
	created, err := s.customers.CreateCustomer(ctx, customer)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return &created, nil
}
