package utils

import "github.com/gofiber/fiber/v2"

// ErrorResponse sends the API's error shape: {"error": message}.
func ErrorResponse(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"error": message,
	})
}

// MessageResponse sends a confirmation payload: {"message": message}.
func MessageResponse(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"message": message,
	})
}
