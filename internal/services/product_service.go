package services

import (
	"context"
	"errors"
	"fmt"

	"prodorder/internal/models"
	"prodorder/internal/repositories"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrDuplicateProductCode = errors.New("product code already exists")

type ProductServiceInterface interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	ListProducts(ctx context.Context) ([]*models.Product, error)
}

type productService struct {
	productRepo repositories.ProductRepository
}

// NewProductService creates a new product service instance
func NewProductService(productRepo repositories.ProductRepository) ProductServiceInterface {
	return &productService{productRepo: productRepo}
}

// CreateProduct inserts the product and fills in its assigned id. A duplicate
// code is reported as ErrDuplicateProductCode rather than a raw driver error.
func (s *productService) CreateProduct(ctx context.Context, product *models.Product) error {
	id, err := s.productRepo.Create(ctx, product)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrDuplicateProductCode
		}
		return fmt.Errorf("failed to create product: %w", err)
	}
	product.ID = id
	return nil
}

func (s *productService) ListProducts(ctx context.Context) ([]*models.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []*models.Product{}
	}
	return products, nil
}
