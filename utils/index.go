package utils

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// Response helpers follow the wire contract of the existing clients:
// {"success": bool, "message": ..., "data": ...}.

// SuccessResponse merges success:true into the payload.
func SuccessResponse(c *fiber.Ctx, status int, payload fiber.Map) error {
	body := fiber.Map{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	return c.Status(status).JSON(body)
}

// ErrorResponse returns a failure body. The underlying error goes to the
// server log only; clients never see datastore error text.
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	if err != nil {
		log.Printf("%s %s -> %d %s: %v", c.Method(), c.Path(), status, message, err)
	}
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
