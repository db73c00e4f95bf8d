package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"katalog/internal/apperrors"
)

// dataResponse is the envelope every successful endpoint returns.
func dataResponse(c *fiber.Ctx, status int, data interface{}, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"data":    data,
		"message": message,
	})
}

// NewErrorHandler returns the centralized Fiber error handler. The HTTP
// status travels on the error itself; anything unclassified is a 500. The
// errorStack field carries the full error chain in development and is empty
// otherwise.
func NewErrorHandler(env string) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := err.Error()

		var appErr *apperrors.Error
		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &appErr):
			status = appErr.Status
			message = appErr.Message
		case errors.As(err, &fiberErr):
			status = fiberErr.Code
			message = fiberErr.Message
		}

		stack := ""
		if env == "development" {
			stack = err.Error()
		}
		return c.Status(status).JSON(fiber.Map{
			"message":    message,
			"errorStack": stack,
		})
	}
}
