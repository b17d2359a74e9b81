package repositories

import (
	"context"

	"prodorder/internal/models"
)

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) (int64, error)
	List(ctx context.Context) ([]*models.Product, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type productRepo struct {
	db Database
}

func NewProductRepo(db Database) ProductRepository {
	return &productRepo{db: db}
}

// Create inserts a product and returns its assigned id. A duplicate code
// surfaces as a unique-violation error from the driver.
func (r *productRepo) Create(ctx context.Context, product *models.Product) (int64, error) {
	query := `
		INSERT INTO products (code, name, spec, unit, price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRow(ctx, query, product.Code, product.Name, product.Spec, product.Unit, product.Price).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *productRepo) List(ctx context.Context) ([]*models.Product, error) {
	query := `
		SELECT id, code, name, spec, unit, price
		FROM products
		ORDER BY code
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		product := &models.Product{}
		if err := rows.Scan(&product.ID, &product.Code, &product.Name, &product.Spec, &product.Unit, &product.Price); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

func (r *productRepo) Exists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
