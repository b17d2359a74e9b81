package services

import (
	"context"
	"fmt"

	"prodorder/internal/models"
	"prodorder/internal/repositories"
)

type CustomerServiceInterface interface {
	CreateCustomer(ctx context.Context, customer *models.Customer) error
	ListCustomers(ctx context.Context) ([]*models.Customer, error)
}

type customerService struct {
	customerRepo repositories.CustomerRepository
}

// NewCustomerService creates a new customer service instance
func NewCustomerService(customerRepo repositories.CustomerRepository) CustomerServiceInterface {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	id, err := s.customerRepo.Create(ctx, customer)
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	customer.ID = id
	return nil
}

func (s *customerService) ListCustomers(ctx context.Context) ([]*models.Customer, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if customers == nil {
		customers = []*models.Customer{}
	}
	return customers, nil
}
