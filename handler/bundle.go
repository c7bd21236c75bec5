package handler

import (
	"errors"

	"bioskop_tiket/booking"
	"bioskop_tiket/model"
	"bioskop_tiket/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateBundleOrder records a bundle purchase. The client generates the order
// reference; the server still assigns a verification code for pickup.
func CreateBundleOrder(c *fiber.Ctx) error {
	input := c.Locals("input").(model.BundleOrderInput)

	b, err := store.CreateBundleOrder(booking.BundleInput{
		OrderReference:    input.OrderReference,
		BundleID:          input.BundleID,
		BundleName:        input.BundleName,
		BundleDescription: input.BundleDescription,
		BundlePrice:       input.BundlePrice,
		OriginalPrice:     input.OriginalPrice,
		Savings:           input.Savings,
		Quantity:          input.Quantity,
		TotalPrice:        input.TotalPrice,
		CustomerName:      input.CustomerName,
		CustomerPhone:     input.CustomerPhone,
		CustomerEmail:     input.CustomerEmail,
	})
	if err != nil {
		if errors.Is(err, booking.ErrDuplicateReference) {
			return utils.ErrorResponse(c, fiber.StatusConflict, "Order reference sudah digunakan", nil)
		}
		if booking.IsValidation(err) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create bundle order", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"message":        "Bundle order created successfully",
		"orderId":        b.ID,
		"orderReference": b.BookingReference,
		"data":           b,
	})
}

// ConfirmBundlePayment marks a bundle order as paid, pending back-office
// verification of the proof.
func ConfirmBundlePayment(c *fiber.Ctx) error {
	var input struct {
		OrderReference string `json:"order_reference"`
	}
	if err := c.BodyParser(&input); err != nil || input.OrderReference == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Order reference is required", err)
	}

	b, err := store.ConfirmBundlePayment(input.OrderReference)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Bundle order not found", nil)
		case errors.Is(err, booking.ErrInvalidState):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Bundle order tidak dapat dikonfirmasi", nil)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to confirm bundle payment", err)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Bundle payment confirmed successfully",
		"data":    b,
	})
}

// GetBundleOrders lists every bundle order, newest first.
func GetBundleOrders(c *fiber.Ctx) error {
	orders, err := store.ListBundleOrders()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error fetching bundle orders", err)
	}

	items := make([]fiber.Map, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		items = append(items, fiber.Map{
			"id":                 o.ID,
			"booking_reference":  o.BookingReference,
			"bundle_name":        o.BundleName,
			"bundle_description": o.BundleDescription,
			"quantity":           o.Quantity,
			"total_amount":       o.TotalAmount,
			"original_price":     o.OriginalPrice,
			"savings":            o.Savings,
			"customer_name":      o.CustomerName,
			"customer_phone":     o.CustomerPhone,
			"customer_email":     o.CustomerEmail,
			"status":             o.Status,
			"payment_proof":      o.PaymentProof,
			"payment_status":     o.PaymentStatus,
			"payment_date":       o.PaymentDate,
			"order_date":         o.BookingDate,
		})
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"count": len(items),
		"data":  items,
	})
}
