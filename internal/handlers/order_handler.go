package handlers

import (
	"github.com/gofiber/fiber/v2"

	"katalog/internal/apperrors"
	"katalog/internal/services"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app. The recent
// route must come before the :id routes or Fiber would capture "recent" as
// an id.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/order")
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Get("/recent", h.HandleGetRecentOrders)
	orderRoutes.Put("/:id", h.HandleUpdateOrder)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
}

// HandleCreateOrder creates a new order, reserving product stock.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var in services.CreateOrderInput
	if err := c.BodyParser(&in); err != nil {
		return apperrors.Invalid("Invalid request body.")
	}
	order, err := h.service.CreateOrder(in)
	if err != nil {
		return err
	}
	return dataResponse(c, fiber.StatusCreated, order, "Order created successfully")
}

// HandleUpdateOrder changes an order's quantity.
func (h *OrderHandler) HandleUpdateOrder(c *fiber.Ctx) error {
	var in services.UpdateOrderInput
	if err := c.BodyParser(&in); err != nil {
		return apperrors.Invalid("Invalid request body.")
	}
	order, err := h.service.UpdateOrder(c.Params("id"), in)
	if err != nil {
		return err
	}
	return dataResponse(c, fiber.StatusOK, order, "Order updated successfully")
}

// HandleGetOrderByID retrieves a single order.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	order, err := h.service.GetOrderByID(c.Params("id"))
	if err != nil {
		return err
	}
	return dataResponse(c, fiber.StatusOK, order, "Order retrieved successfully")
}

// HandleGetRecentOrders retrieves the orders of the last seven days, each
// expanded with its user and product.
func (h *OrderHandler) HandleGetRecentOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetRecentOrders()
	if err != nil {
		return err
	}
	return dataResponse(c, fiber.StatusOK, orders, "Recent orders retrieved successfully")
}
