// Package response writes the uniform JSON envelopes returned by the API.
package response

import (
	"github.com/J-Castrillon/InventoryManagement/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	StatusSuccess = "Success"
	StatusError   = "Error"
)

// Success writes {"status":"Success", key: data}.
func Success(c *fiber.Ctx, code int, key string, data any) error {
	return c.Status(code).JSON(fiber.Map{
		"status": StatusSuccess,
		key:      data,
	})
}

// Message writes {"status":"Success","message": message}.
func Message(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"status":  StatusSuccess,
		"message": message,
	})
}

// Error writes {"status":"Error","message": message}.
func Error(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"status":  StatusError,
		"message": message,
	})
}

// Invalid writes 400 {"status":"Error","errors": violations}.
func Invalid(c *fiber.Ctx, violations []validation.Violation) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"status": StatusError,
		"errors": violations,
	})
}
