package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"prodorder/internal/models"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateProduct_Success(t *testing.T) {
	productRepo := new(MockProductRepository)
	svc := NewProductService(productRepo)

	productRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Product")).Return(int64(7), nil)

	product := &models.Product{Code: "P200", Name: "Steel Hinge", Spec: "304 stainless", Unit: "pcs", Price: 3.25}
	err := svc.CreateProduct(context.Background(), product)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), product.ID)
	productRepo.AssertExpectations(t)
}

func TestCreateProduct_DuplicateCode(t *testing.T) {
	productRepo := new(MockProductRepository)
	svc := NewProductService(productRepo)

	pgErr := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "products_code_key"}
	productRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Product")).Return(int64(0), fmt.Errorf("insert: %w", pgErr))

	product := &models.Product{Code: "P001", Name: "Phone Case", Price: 15.50}
	err := svc.CreateProduct(context.Background(), product)

	assert.ErrorIs(t, err, ErrDuplicateProductCode)
	assert.Zero(t, product.ID)
}

func TestCreateProduct_OtherErrorPassedThrough(t *testing.T) {
	productRepo := new(MockProductRepository)
	svc := NewProductService(productRepo)

	repoErr := errors.New("connection reset")
	productRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Product")).Return(int64(0), repoErr)

	product := &models.Product{Code: "P300", Name: "Gasket", Price: 0.80}
	err := svc.CreateProduct(context.Background(), product)

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrDuplicateProductCode)
	assert.ErrorIs(t, err, repoErr)
}

func TestListProducts_EmptyIsNotNil(t *testing.T) {
	productRepo := new(MockProductRepository)
	svc := NewProductService(productRepo)

	productRepo.On("List", mock.Anything).Return(nil, nil)

	products, err := svc.ListProducts(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}
