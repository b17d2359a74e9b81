package repositories

import (
	"context"
	"time"

	"prodorder/internal/models"
)

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) (int64, error)
	ListWithDetails(ctx context.Context) ([]*models.OrderWithDetails, error)
	UpdateStatus(ctx context.Context, id int64, status string) (bool, error)
}

type orderRepo struct {
	db Database
}

func NewOrderRepo(db Database) OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Create(ctx context.Context, order *models.Order) (int64, error) {
	query := `
		INSERT INTO orders (order_number, customer_id, product_id, quantity, order_date, delivery_date, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	var delivery any
	if order.DeliveryDate != nil {
		delivery = order.DeliveryDate.Time
	}
	var id int64
	err := r.db.QueryRow(ctx, query,
		order.OrderNumber, order.CustomerID, order.ProductID, order.Quantity,
		order.OrderDate.Time, delivery, order.Status, order.Notes,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// ListWithDetails returns every order joined with its customer and product,
// most recent first. Orders sharing a date come back newest insert first.
func (r *orderRepo) ListWithDetails(ctx context.Context) ([]*models.OrderWithDetails, error) {
	query := `
		SELECT o.id, o.order_number, o.customer_id, o.product_id, o.quantity,
		       o.order_date, o.delivery_date, o.status, o.notes,
		       c.name AS customer_name, p.name AS product_name, p.code AS product_code
		FROM orders o
		LEFT JOIN customers c ON o.customer_id = c.id
		LEFT JOIN products p ON o.product_id = p.id
		ORDER BY o.order_date DESC, o.id DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.OrderWithDetails
	for rows.Next() {
		order := &models.OrderWithDetails{}
		var orderDate time.Time
		var deliveryDate *time.Time
		if err := rows.Scan(
			&order.ID, &order.OrderNumber, &order.CustomerID, &order.ProductID, &order.Quantity,
			&orderDate, &deliveryDate, &order.Status, &order.Notes,
			&order.CustomerName, &order.ProductName, &order.ProductCode,
		); err != nil {
			return nil, err
		}
		order.OrderDate = models.NewDate(orderDate)
		if deliveryDate != nil {
			d := models.NewDate(*deliveryDate)
			order.DeliveryDate = &d
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

// UpdateStatus overwrites an order's status. The returned bool reports whether
// a row with that id existed.
func (r *orderRepo) UpdateStatus(ctx context.Context, id int64, status string) (bool, error) {
	query := `UPDATE orders SET status = $1 WHERE id = $2`
	tag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
