package services

import (
	"context"
	"errors"
	"fmt"

	"prodorder/internal/models"
	"prodorder/internal/repositories"
)

var (
	ErrCustomerNotFound = errors.New("customer does not exist")
	ErrProductNotFound  = errors.New("product does not exist")
	ErrOrderNotFound    = errors.New("order not found")
)

type OrderServiceInterface interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	ListOrders(ctx context.Context) ([]*models.OrderWithDetails, error)
	UpdateOrderStatus(ctx context.Context, id int64, status string) error
}

type orderService struct {
	orderRepo    repositories.OrderRepository
	customerRepo repositories.CustomerRepository
	productRepo  repositories.ProductRepository
	numbers      *OrderNumberGenerator
}

// NewOrderService creates a new order service instance
func NewOrderService(orderRepo repositories.OrderRepository, customerRepo repositories.CustomerRepository, productRepo repositories.ProductRepository) OrderServiceInterface {
	return &orderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		numbers:      NewOrderNumberGenerator(),
	}
}

// CreateOrder assigns the order number, order date and pending status, checks
// the referenced customer and product exist, and inserts the order. The id and
// order number are filled in on the passed order.
func (s *orderService) CreateOrder(ctx context.Context, order *models.Order) error {
	exists, err := s.customerRepo.Exists(ctx, order.CustomerID)
	if err != nil {
		return fmt.Errorf("failed to check customer: %w", err)
	}
	if !exists {
		return ErrCustomerNotFound
	}

	exists, err = s.productRepo.Exists(ctx, order.ProductID)
	if err != nil {
		return fmt.Errorf("failed to check product: %w", err)
	}
	if !exists {
		return ErrProductNotFound
	}

	order.OrderNumber = s.numbers.Next()
	order.OrderDate = models.NewDate(s.numbers.now())
	order.Status = models.StatusPending

	id, err := s.orderRepo.Create(ctx, order)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	order.ID = id
	return nil
}

func (s *orderService) ListOrders(ctx context.Context) ([]*models.OrderWithDetails, error) {
	orders, err := s.orderRepo.ListWithDetails(ctx)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []*models.OrderWithDetails{}
	}
	return orders, nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, id int64, status string) error {
	updated, err := s.orderRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if !updated {
		return ErrOrderNotFound
	}
	return nil
}
