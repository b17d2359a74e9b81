package models

// OrderStats holds the per-status order counts for the statistics summary.
type OrderStats struct {
	TotalOrders      int `json:"total_orders" db:"total_orders"`
	PendingOrders    int `json:"pending_orders" db:"pending_orders"`
	ProductionOrders int `json:"production_orders" db:"production_orders"`
	CompletedOrders  int `json:"completed_orders" db:"completed_orders"`
}

// RecentOrder is the trimmed order row shown in the statistics summary.
type RecentOrder struct {
	OrderNumber  string `json:"order_number" db:"order_number"`
	CustomerName string `json:"customer_name" db:"customer_name"`
	ProductName  string `json:"product_name" db:"product_name"`
	Quantity     int    `json:"quantity" db:"quantity"`
	OrderDate    Date   `json:"order_date" db:"order_date"`
	Status       string `json:"status" db:"status"`
}

// StatsSummary is the composite /api/stats response.
type StatsSummary struct {
	Stats        OrderStats     `json:"stats"`
	RecentOrders []*RecentOrder `json:"recent_orders"`
}
