package repositories

import (
	"context"
	"errors"
	"testing"

	"prodorder/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ProductRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    ProductRepository
	context context.Context
}

func (suite *ProductRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewProductRepo(mock)
	suite.context = context.Background()
}

func (suite *ProductRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestProductRepoTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepoTestSuite))
}

func (suite *ProductRepoTestSuite) TestCreate_Success() {
	product := &models.Product{
		Code:  "P100",
		Name:  "Aluminum Bracket",
		Spec:  "Anodized 6061",
		Unit:  "pcs",
		Price: 12.75,
	}

	suite.mock.ExpectQuery(`INSERT INTO products`).
		WithArgs(product.Code, product.Name, product.Spec, product.Unit, product.Price).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(5)))

	id, err := suite.repo.Create(suite.context, product)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(5), id)
}

func (suite *ProductRepoTestSuite) TestCreate_DuplicateCode() {
	product := &models.Product{
		Code:  "P001",
		Name:  "Phone Case",
		Spec:  "ABS plastic",
		Unit:  "pcs",
		Price: 15.50,
	}

	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "products_code_key"}
	suite.mock.ExpectQuery(`INSERT INTO products`).
		WithArgs(product.Code, product.Name, product.Spec, product.Unit, product.Price).
		WillReturnError(pgErr)

	id, err := suite.repo.Create(suite.context, product)
	assert.Error(suite.T(), err)
	assert.Zero(suite.T(), id)

	var returned *pgconn.PgError
	assert.True(suite.T(), errors.As(err, &returned))
	assert.Equal(suite.T(), "23505", returned.Code)
}

func (suite *ProductRepoTestSuite) TestList_OrderedByCode() {
	rows := pgxmock.NewRows([]string{"id", "code", "name", "spec", "unit", "price"}).
		AddRow(int64(1), "P001", "Phone Case", "ABS plastic", "pcs", 15.50).
		AddRow(int64(3), "P002", "Data Cable", "1.5m Type-C", "pcs", 8.90)

	suite.mock.ExpectQuery(`SELECT id, code, name, spec, unit, price\s+FROM products\s+ORDER BY code`).
		WillReturnRows(rows)

	products, err := suite.repo.List(suite.context)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), products, 2)
	assert.Equal(suite.T(), "P001", products[0].Code)
	assert.Equal(suite.T(), "P002", products[1].Code)
	assert.Equal(suite.T(), 8.90, products[1].Price)
}

func (suite *ProductRepoTestSuite) TestList_Empty() {
	suite.mock.ExpectQuery(`FROM products`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "code", "name", "spec", "unit", "price"}))

	products, err := suite.repo.List(suite.context)
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), products)
}

func (suite *ProductRepoTestSuite) TestExists() {
	suite.mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(int64(9)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := suite.repo.Exists(suite.context, 9)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), exists)
}

func (suite *ProductRepoTestSuite) TestExists_Missing() {
	suite.mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(int64(404)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := suite.repo.Exists(suite.context, 404)
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), exists)
}
