package repositories

import (
	"context"
	"time"

	"prodorder/internal/models"
)

type StatsRepository interface {
	OrderCounts(ctx context.Context) (*models.OrderStats, error)
	RecentOrders(ctx context.Context, limit int) ([]*models.RecentOrder, error)
}

type statsRepo struct {
	db Database
}

func NewStatsRepo(db Database) StatsRepository {
	return &statsRepo{db: db}
}

// OrderCounts aggregates order counts by status in one read.
func (r *statsRepo) OrderCounts(ctx context.Context) (*models.OrderStats, error) {
	query := `
		SELECT COUNT(*) AS total_orders,
		       COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0) AS pending_orders,
		       COALESCE(SUM(CASE WHEN status = 'in_production' THEN 1 ELSE 0 END), 0) AS production_orders,
		       COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0) AS completed_orders
		FROM orders
	`
	stats := &models.OrderStats{}
	err := r.db.QueryRow(ctx, query).Scan(&stats.TotalOrders, &stats.PendingOrders, &stats.ProductionOrders, &stats.CompletedOrders)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *statsRepo) RecentOrders(ctx context.Context, limit int) ([]*models.RecentOrder, error) {
	query := `
		SELECT o.order_number, c.name AS customer_name, p.name AS product_name,
		       o.quantity, o.order_date, o.status
		FROM orders o
		LEFT JOIN customers c ON o.customer_id = c.id
		LEFT JOIN products p ON o.product_id = p.id
		ORDER BY o.order_date DESC, o.id DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.RecentOrder
	for rows.Next() {
		order := &models.RecentOrder{}
		var orderDate time.Time
		if err := rows.Scan(&order.OrderNumber, &order.CustomerName, &order.ProductName, &order.Quantity, &orderDate, &order.Status); err != nil {
			return nil, err
		}
		order.OrderDate = models.NewDate(orderDate)
		orders = append(orders, order)
	}
	return orders, rows.Err()
}
