package handlers

import (
	"net/http"

	"prodorder/internal/common"
	"prodorder/internal/models"
	"prodorder/internal/services"

	"github.com/labstack/echo/v4"
)

// CustomerHandlers handles HTTP requests for customers
type CustomerHandlers struct {
	customerService services.CustomerServiceInterface
}

// NewCustomerHandlers creates a new customer handlers instance
func NewCustomerHandlers(customerService services.CustomerServiceInterface) *CustomerHandlers {
	return &CustomerHandlers{customerService: customerService}
}

// ListCustomers handles GET /api/customers
func (h *CustomerHandlers) ListCustomers(c echo.Context) error {
	ctx := c.Request().Context()

	customers, err := h.customerService.ListCustomers(ctx)
	if err != nil {
		return common.SendServerError(c, "Failed to retrieve customers: "+err.Error())
	}

	return c.JSON(http.StatusOK, customers)
}

// CreateCustomer handles POST /api/customers
func (h *CustomerHandlers) CreateCustomer(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Name    string `json:"name"`
		Contact string `json:"contact"`
		Address string `json:"address"`
	}

	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	if err := common.ValidateRequiredString(req.Name, "name"); err != nil {
		return common.SendValidationError(c, "name", err.Error())
	}

	customer := &models.Customer{
		Name:    req.Name,
		Contact: req.Contact,
		Address: req.Address,
	}

	if err := h.customerService.CreateCustomer(ctx, customer); err != nil {
		return common.SendServerError(c, "Failed to create customer: "+err.Error())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success":     true,
		"customer_id": customer.ID,
	})
}
