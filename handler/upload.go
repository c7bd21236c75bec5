package handler

import (
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"bioskop_tiket/booking"
	"bioskop_tiket/constants"
	"bioskop_tiket/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// savePaymentProof validates and stores an uploaded proof file under the
// uploads directory and returns the generated filename.
func savePaymentProof(c *fiber.Ctx, file *multipart.FileHeader) (string, error) {
	if file.Size > constants.UPLOAD_MAX_SIZE {
		return "", &booking.ValidationError{Message: "File terlalu besar (maksimal 5MB)"}
	}
	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") && contentType != "application/pdf" {
		return "", &booking.ValidationError{Message: "Only images and PDF files are allowed!"}
	}

	if err := os.MkdirAll(constants.UPLOAD_DIR, 0o755); err != nil {
		return "", err
	}
	filename := "payment-" + uuid.New().String() + strings.ToLower(filepath.Ext(file.Filename))
	if err := c.SaveFile(file, filepath.Join(constants.UPLOAD_DIR, filename)); err != nil {
		return "", err
	}
	return filename, nil
}

// UploadPayment attaches a payment proof file to a regular booking.
func UploadPayment(c *fiber.Ctx) error {
	file, err := c.FormFile("payment_proof")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "No file uploaded", err)
	}
	reference := c.FormValue("booking_reference")
	if reference == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Booking reference is required", nil)
	}

	filename, err := savePaymentProof(c, file)
	if err != nil {
		if booking.IsValidation(err) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to store file", err)
	}

	if err := store.AttachPaymentProof(reference, filename); err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Booking not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save payment proof", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message":          "Payment proof uploaded successfully",
		"fileName":         filename,
		"filePath":         "/uploads/payments/" + filename,
		"originalName":     file.Filename,
		"bookingReference": reference,
	})
}

// BundleUploadPayment attaches a payment proof file to a bundle order.
func BundleUploadPayment(c *fiber.Ctx) error {
	file, err := c.FormFile("payment_proof")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "No file uploaded", err)
	}
	reference := c.FormValue("order_reference")
	if reference == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Order reference is required", nil)
	}

	filename, err := savePaymentProof(c, file)
	if err != nil {
		if booking.IsValidation(err) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to store file", err)
	}

	if err := store.AttachBundlePaymentProof(reference, filename); err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Bundle order not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save payment proof", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message":        "Bundle payment proof uploaded successfully",
		"fileName":       filename,
		"filePath":       "/uploads/payments/" + filename,
		"originalName":   file.Filename,
		"orderReference": reference,
	})
}

// GetUploadedPayments lists every booking with a payment proof attached, for
// the back-office verification screen.
func GetUploadedPayments(c *fiber.Ctx) error {
	bookings, err := store.ListUploadedPayments()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error fetching uploaded payments", err)
	}

	items := make([]fiber.Map, 0, len(bookings))
	for i := range bookings {
		b := &bookings[i]
		items = append(items, fiber.Map{
			"id":                b.ID,
			"booking_reference": b.BookingReference,
			"customer_name":     b.CustomerName,
			"customer_email":    b.CustomerEmail,
			"customer_phone":    b.CustomerPhone,
			"movie_title":       b.MovieTitle,
			"total_amount":      b.TotalAmount,
			"order_type":        b.OrderType,
			"status":            b.Status,
			"payment_proof":     b.PaymentProof,
			"payment_status":    b.PaymentStatus,
			"payment_date":      b.PaymentDate,
			"booking_date":      b.BookingDate,
		})
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"count": len(items),
		"data":  items,
	})
}
