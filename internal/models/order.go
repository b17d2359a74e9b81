package models

// Order statuses the statistics summary aggregates on. The status column itself
// is free-form so new workflow stages can be introduced without a migration.
const (
	StatusPending      = "pending"
	StatusInProduction = "in_production"
	StatusCompleted    = "completed"
)

type Order struct {
	ID           int64  `json:"id" db:"id"`
	OrderNumber  string `json:"order_number" db:"order_number"`
	CustomerID   int64  `json:"customer_id" db:"customer_id"`
	ProductID    int64  `json:"product_id" db:"product_id"`
	Quantity     int    `json:"quantity" db:"quantity"`
	OrderDate    Date   `json:"order_date" db:"order_date"`
	DeliveryDate *Date  `json:"delivery_date" db:"delivery_date"`
	Status       string `json:"status" db:"status"`
	Notes        string `json:"notes" db:"notes"`
}

// OrderWithDetails is an order joined with the customer and product it
// references, as returned by the listing endpoint.
type OrderWithDetails struct {
	Order
	CustomerName string `json:"customer_name" db:"customer_name"`
	ProductName  string `json:"product_name" db:"product_name"`
	ProductCode  string `json:"product_code" db:"product_code"`
}
