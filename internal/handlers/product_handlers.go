package handlers

import (
	"errors"
	"net/http"

	"prodorder/internal/common"
	"prodorder/internal/models"
	"prodorder/internal/services"

	"github.com/labstack/echo/v4"
)

// ProductHandlers handles HTTP requests for products
type ProductHandlers struct {
	productService services.ProductServiceInterface
}

// NewProductHandlers creates a new product handlers instance
func NewProductHandlers(productService services.ProductServiceInterface) *ProductHandlers {
	return &ProductHandlers{productService: productService}
}

// ListProducts handles GET /api/products
func (h *ProductHandlers) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()

	products, err := h.productService.ListProducts(ctx)
	if err != nil {
		return common.SendServerError(c, "Failed to retrieve products: "+err.Error())
	}

	return c.JSON(http.StatusOK, products)
}

// CreateProduct handles POST /api/products
func (h *ProductHandlers) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Code  string  `json:"code"`
		Name  string  `json:"name"`
		Spec  string  `json:"spec"`
		Unit  string  `json:"unit"`
		Price float64 `json:"price"`
	}

	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	if err := common.ValidateRequiredString(req.Code, "code"); err != nil {
		return common.SendValidationError(c, "code", err.Error())
	}
	if err := common.ValidateRequiredString(req.Name, "name"); err != nil {
		return common.SendValidationError(c, "name", err.Error())
	}
	if err := common.ValidatePositiveFloat(req.Price, "price", 1000000.0); err != nil {
		return common.SendValidationError(c, "price", err.Error())
	}

	product := &models.Product{
		Code:  req.Code,
		Name:  req.Name,
		Spec:  req.Spec,
		Unit:  req.Unit,
		Price: req.Price,
	}

	if err := h.productService.CreateProduct(ctx, product); err != nil {
		if errors.Is(err, services.ErrDuplicateProductCode) {
			return common.SendConflictError(c, "Product code already exists")
		}
		return common.SendServerError(c, "Failed to create product: "+err.Error())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success":    true,
		"product_id": product.ID,
	})
}
