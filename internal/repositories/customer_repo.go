package repositories

import (
	"context"

	"prodorder/internal/models"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) (int64, error)
	List(ctx context.Context) ([]*models.Customer, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type customerRepo struct {
	db Database
}

func NewCustomerRepo(db Database) CustomerRepository {
	return &customerRepo{db: db}
}

func (r *customerRepo) Create(ctx context.Context, customer *models.Customer) (int64, error) {
	query := `
		INSERT INTO customers (name, contact, address)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRow(ctx, query, customer.Name, customer.Contact, customer.Address).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *customerRepo) List(ctx context.Context) ([]*models.Customer, error) {
	query := `
		SELECT id, name, contact, address
		FROM customers
		ORDER BY name
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*models.Customer
	for rows.Next() {
		customer := &models.Customer{}
		if err := rows.Scan(&customer.ID, &customer.Name, &customer.Contact, &customer.Address); err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	return customers, rows.Err()
}

func (r *customerRepo) Exists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM customers WHERE id = $1)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
