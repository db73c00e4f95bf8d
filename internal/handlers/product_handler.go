package handlers

import (
	"github.com/gofiber/fiber/v2"

	"katalog/internal/apperrors"
	"katalog/internal/services"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes with the Fiber app. The
// total-stock route must come before the :id routes or Fiber would capture
// "total-stock" as an id.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/product")
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Get("/total-stock", h.HandleGetTotalStock)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Get("/:id/users", h.HandleGetUsersByProduct)
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var in services.CreateProductInput
	if err := c.BodyParser(&in); err != nil {
		return apperrors.Invalid("Invalid request body.")
	}
	product, err := h.service.CreateProduct(in)
	if err != nil {
		return err
	}
	return dataResponse(c, fiber.StatusCreated, product, "Product created successfully")
}

// HandleUpdateProduct applies a partial update to an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var in services.UpdateProductInput
	if err := c.BodyParser(&in); err != nil {
		return apperrors.Invalid("Invalid request body.")
	}
	product, err := h.service.UpdateProduct(c.Params("id"), in)
	if err != nil {
		return err
	}
	return dataResponse(c, fiber.StatusOK, product, "Product updated successfully")
}

// HandleGetProductByID retrieves a single product.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	product, err := h.service.GetProductByID(c.Params("id"))
	if err != nil {
		return err
	}
	return dataResponse(c, fiber.StatusOK, product, "Product retrieved successfully")
}

// HandleGetUsersByProduct retrieves the distinct users who ordered the
// product.
func (h *ProductHandler) HandleGetUsersByProduct(c *fiber.Ctx) error {
	users, err := h.service.GetUsersByProduct(c.Params("id"))
	if err != nil {
		return err
	}
	return dataResponse(c, fiber.StatusOK, users, "Users who bought this product retrieved successfully")
}

// HandleGetTotalStock returns the stock total across all products. This
// endpoint uses totalStockQuantity instead of the data envelope.
func (h *ProductHandler) HandleGetTotalStock(c *fiber.Ctx) error {
	total, err := h.service.TotalStock()
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"totalStockQuantity": total,
		"message":            "Total stock quantity retrieved successfully",
	})
}
