package utils

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse sends the standard error body: {"error": "<message>"}.
func ErrorResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

// InternalErrorResponse logs the underlying error server-side and sends an
// opaque 500 body. Raw error text never reaches the client.
func InternalErrorResponse(c *fiber.Ctx, operation string, err error) error {
	log.Printf("Error in %s: %v", operation, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "internal server error",
	})
}

// MessageResponse sends {"message": ...} plus any extra fields.
func MessageResponse(c *fiber.Ctx, status int, message string, extra fiber.Map) error {
	body := fiber.Map{"message": message}
	for k, v := range extra {
		body[k] = v
	}
	return c.Status(status).JSON(body)
}

// DataResponse sends a payload with a status code.
func DataResponse(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(data)
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Error string `json:"error"`
}

// MessageResponseStruct defines the schema for mutation responses
type MessageResponseStruct struct {
	Message string `json:"message"`
}
