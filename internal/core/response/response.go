package response

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// RayID returns the request id set by the requestid middleware, if any.
func RayID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}

// Error writes an ErrorResponse with the given status.
func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{
		Message: message,
		RayID:   RayID(c),
	})
}

// BadRequest writes a 400 ErrorResponse.
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// NotFound writes a 404 ErrorResponse.
func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

// Internal writes a 500 ErrorResponse with a generic message.
func Internal(c *fiber.Ctx) error {
	return Error(c, fiber.StatusInternalServerError, "internal server error")
}
