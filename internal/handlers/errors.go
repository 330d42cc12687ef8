package handlers

import (
	. "crm/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errorResponse maps domain errors to status codes. Validation and
// not-found are client-facing with distinguishable statuses; anything
// else is a storage fault surfaced generically, details stay in the logs.
func errorResponse(c *fiber.Ctx, err error) error {
	switch {
	case IsValidation(err):
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": err.Error()})
	case IsNotFound(err):
		return c.Status(fiber.StatusNotFound).
			JSON(fiber.Map{"message": "error", "error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "error", "error": "internal server error"})
	}
}
