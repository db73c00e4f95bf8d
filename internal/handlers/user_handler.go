package handlers

import (
	"github.com/gofiber/fiber/v2"

	"katalog/internal/apperrors"
	"katalog/internal/services"
)

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	service *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/user")
	userRoutes.Post("/", h.HandleCreateUser)
	userRoutes.Put("/:id", h.HandleUpdateUser)
	userRoutes.Get("/:id", h.HandleGetUserByID)
	userRoutes.Get("/:id/orders", h.HandleGetUserOrders)
}

// HandleCreateUser creates a new user.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var in services.CreateUserInput
	if err := c.BodyParser(&in); err != nil {
		return apperrors.Invalid("Invalid request body.")
	}
	user, err := h.service.CreateUser(in)
	if err != nil {
		return err
	}
	return dataResponse(c, fiber.StatusCreated, user, "User created successfully")
}

// HandleUpdateUser applies a partial update to an existing user.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	var in services.UpdateUserInput
	if err := c.BodyParser(&in); err != nil {
		return apperrors.Invalid("Invalid request body.")
	}
	user, err := h.service.UpdateUser(c.Params("id"), in)
	if err != nil {
		return err
	}
	return dataResponse(c, fiber.StatusOK, user, "User updated successfully")
}

// HandleGetUserByID retrieves a single user.
func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	user, err := h.service.GetUserByID(c.Params("id"))
	if err != nil {
		return err
	}
	return dataResponse(c, fiber.StatusOK, user, "User retrieved successfully")
}

// HandleGetUserOrders retrieves the user's orders, each with its product.
func (h *UserHandler) HandleGetUserOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetUserOrders(c.Params("id"))
	if err != nil {
		return err
	}
	return dataResponse(c, fiber.StatusOK, orders, "User orders retrieved successfully")
}
