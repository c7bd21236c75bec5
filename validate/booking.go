package validate

import (
	"bioskop_tiket/model"
	"bioskop_tiket/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateBooking parses and validates POST /api/bookings. The seat selection
// itself is normalized later by the booking store; this only rejects bodies
// with missing required fields.
func CreateBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateBookingInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest,
				"Missing required fields: showtime_id, customer_name, customer_email, seat_numbers, total_amount", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest,
				"Missing required fields: showtime_id, customer_name, customer_email, seat_numbers, total_amount", err)
		}
		c.Locals("input", input)
		return c.Next()
	}
}

func ConfirmPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ConfirmPaymentInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Booking reference is required", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Booking reference is required", err)
		}
		c.Locals("input", input)
		return c.Next()
	}
}

// ScanTicket validates the scanner payload. Note the scan wire contract uses
// valid/message, not success/message.
func ScanTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ScanTicketInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"valid":   false,
				"message": "QR data is required",
			})
		}
		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"valid":   false,
				"message": "QR data is required",
			})
		}
		c.Locals("input", input)
		return c.Next()
	}
}

func BundleOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.BundleOrderInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest,
				"Missing required fields: order_reference, bundle_name, customer_name, customer_phone, customer_email", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest,
				"Missing required fields: order_reference, bundle_name, customer_name, customer_phone, customer_email", err)
		}
		c.Locals("input", input)
		return c.Next()
	}
}
