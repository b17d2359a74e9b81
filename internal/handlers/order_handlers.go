package handlers

import (
	"errors"
	"net/http"
	"time"

	"prodorder/internal/common"
	"prodorder/internal/models"
	"prodorder/internal/services"

	"github.com/labstack/echo/v4"
)

// OrderHandlers handles HTTP requests for orders
type OrderHandlers struct {
	orderService services.OrderServiceInterface
}

// NewOrderHandlers creates a new order handlers instance
func NewOrderHandlers(orderService services.OrderServiceInterface) *OrderHandlers {
	return &OrderHandlers{orderService: orderService}
}

// ListOrders handles GET /api/orders
func (h *OrderHandlers) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.orderService.ListOrders(ctx)
	if err != nil {
		return common.SendServerError(c, "Failed to retrieve orders: "+err.Error())
	}

	return c.JSON(http.StatusOK, orders)
}

// CreateOrder handles POST /api/orders
func (h *OrderHandlers) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		CustomerID   int64   `json:"customer_id"`
		ProductID    int64   `json:"product_id"`
		Quantity     int     `json:"quantity"`
		DeliveryDate *string `json:"delivery_date"`
		Notes        *string `json:"notes"`
	}

	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	if req.CustomerID <= 0 {
		return common.SendValidationError(c, "customer_id", "customer_id is required")
	}
	if req.ProductID <= 0 {
		return common.SendValidationError(c, "product_id", "product_id is required")
	}
	if err := common.ValidatePositiveInteger(req.Quantity, "quantity", 1000000); err != nil {
		return common.SendValidationError(c, "quantity", err.Error())
	}

	order := &models.Order{
		CustomerID: req.CustomerID,
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
		Notes:      common.SafeString(req.Notes),
	}

	if delivery := common.SafeString(req.DeliveryDate); delivery != "" {
		if err := common.ValidateDateFormat(delivery, "delivery_date"); err != nil {
			return common.SendValidationError(c, "delivery_date", err.Error())
		}
		deliveryDate, _ := time.Parse("2006-01-02", delivery)
		d := models.NewDate(deliveryDate)
		order.DeliveryDate = &d
	}

	if err := h.orderService.CreateOrder(ctx, order); err != nil {
		switch {
		case errors.Is(err, services.ErrCustomerNotFound):
			return common.SendValidationError(c, "customer_id", err.Error())
		case errors.Is(err, services.ErrProductNotFound):
			return common.SendValidationError(c, "product_id", err.Error())
		default:
			return common.SendServerError(c, "Failed to create order: "+err.Error())
		}
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success":      true,
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
	})
}

// UpdateOrderStatus handles PUT /api/orders/:id/status
func (h *OrderHandlers) UpdateOrderStatus(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ParseID(c.Param("id"), "order id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if err := common.ValidateRequiredString(req.Status, "status"); err != nil {
		return common.SendValidationError(c, "status", err.Error())
	}

	if err := h.orderService.UpdateOrderStatus(ctx, id, req.Status); err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			return common.SendNotFoundError(c, "Order")
		}
		return common.SendServerError(c, "Failed to update order status: "+err.Error())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
	})
}
