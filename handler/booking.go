package handler

import (
	"errors"
	"log"
	"strconv"
	"time"

	"bioskop_tiket/booking"
	"bioskop_tiket/helper"
	"bioskop_tiket/model"
	"bioskop_tiket/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jinzhu/copier"
)

// bookingResponse is the booking shape returned to clients. SeatNumbers is
// untyped because the endpoints disagree: creation and confirmation return
// the seat array, the admin listing returns a joined display string.
type bookingResponse struct {
	ID               uint       `json:"id"`
	ShowtimeID       uint       `json:"showtime_id"`
	MovieTitle       string     `json:"movie_title"`
	CustomerName     string     `json:"customer_name"`
	CustomerEmail    string     `json:"customer_email"`
	CustomerPhone    *string    `json:"customer_phone"`
	SeatNumbers      any        `json:"seat_numbers"`
	TotalAmount      float64    `json:"total_amount"`
	BookingReference string     `json:"booking_reference"`
	VerificationCode string     `json:"verification_code"`
	Status           string     `json:"status"`
	IsVerified       bool       `json:"is_verified"`
	VerifiedAt       *time.Time `json:"verified_at"`
	PaymentProof     *string    `json:"payment_proof"`
	QRCodeData       *string    `json:"qr_code_data"`
	OrderType        string     `json:"order_type"`
	BookingDate      time.Time  `json:"booking_date"`
}

func toBookingResponse(b *model.Booking, seatNumbers any) bookingResponse {
	var resp bookingResponse
	if err := copier.Copy(&resp, b); err != nil {
		log.Printf("booking response mapping for %s: %v", b.BookingReference, err)
	}
	resp.SeatNumbers = seatNumbers
	return resp
}

// GetOccupiedSeats returns the seats no longer selectable for a showtime:
// the union over all confirmed bookings. Pending bookings hold nothing.
func GetOccupiedSeats(c *fiber.Ctx) error {
	showtimeParam := c.Query("showtime_id")
	movieTitle := c.Query("movie_title")
	if showtimeParam == "" || movieTitle == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Showtime ID and Movie Title are required", nil)
	}
	showtimeID, err := strconv.ParseUint(showtimeParam, 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Showtime ID and Movie Title are required", err)
	}

	seats, err := store.OccupiedSeats(uint(showtimeID), movieTitle)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Server error", err)
	}
	if seats == nil {
		seats = []string{}
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"data": seats})
}

// CreateBooking creates a pending booking. Seats are only reserved once the
// payment is confirmed.
func CreateBooking(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateBookingInput)

	seats := booking.NormalizeSeatInput(input.SeatNumbers)
	if len(seats) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Pilih minimal 1 kursi sebelum melakukan booking", nil)
	}

	draft := booking.CreateInput{
		ShowtimeID:    input.ShowtimeID,
		MovieTitle:    input.MovieTitle,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,
		Seats:         seats,
		TotalAmount:   input.TotalAmount,
	}

	b, err := store.Create(draft)
	if errors.Is(err, booking.ErrDuplicateReference) {
		// Reference collisions are vanishingly rare; one fresh draft settles it.
		b, err = store.Create(draft)
	}
	if err != nil {
		if booking.IsValidation(err) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create booking", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"message": "Booking created successfully",
		"data": fiber.Map{
			"id":                b.ID,
			"booking_reference": b.BookingReference,
			"verification_code": b.VerificationCode,
			"customer_name":     b.CustomerName,
			"customer_email":    b.CustomerEmail,
			"customer_phone":    b.CustomerPhone,
			"total_amount":      b.TotalAmount,
			"seat_numbers":      booking.DecodeSeats(b.SeatNumbers),
			"status":            b.Status,
			"booking_date":      b.BookingDate,
			"movie_title":       b.MovieTitle,
			"showtime_id":       b.ShowtimeID,
		},
	})
}

// ConfirmPayment flips a pending booking to confirmed and hands back the
// e-ticket QR payload. The same e-ticket goes out by email when SMTP is
// configured.
func ConfirmPayment(c *fiber.Ctx) error {
	input := c.Locals("input").(model.ConfirmPaymentInput)

	b, err := store.ConfirmPayment(input.BookingReference)
	if err != nil {
		var conflict *booking.SeatConflictError
		switch {
		case errors.Is(err, booking.ErrNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Booking tidak ditemukan", nil)
		case errors.Is(err, booking.ErrAlreadyConfirmed):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Booking sudah dikonfirmasi sebelumnya", nil)
		case errors.As(err, &conflict):
			return utils.ErrorResponse(c, fiber.StatusConflict,
				"Kursi "+booking.JoinSeats(conflict.Seats)+" sudah dipesan oleh booking lain", nil)
		case errors.Is(err, booking.ErrInvalidState):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Booking tidak dapat dikonfirmasi (status bukan pending)", nil)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Konfirmasi pembayaran gagal", err)
		}
	}

	seats := booking.DecodeSeats(b.SeatNumbers)
	if b.QRCodeData != nil {
		go utils.SendTicketEmail(b.CustomerEmail, utils.TicketEmailData{
			CustomerName:     b.CustomerName,
			MovieTitle:       b.MovieTitle,
			Seats:            booking.JoinSeats(seats),
			BookingReference: b.BookingReference,
			VerificationCode: b.VerificationCode,
			TotalAmount:      b.TotalAmount,
		}, *b.QRCodeData)
	}

	data := toBookingResponse(b, seats)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Pembayaran berhasil dikonfirmasi! Tiket Anda sudah aktif.",
		"data":    data,
	})
}

// ScanTicket verifies a gate scan. Invalid scans are normal results with
// valid=false, not errors.
func ScanTicket(c *fiber.Ctx) error {
	input := c.Locals("input").(model.ScanTicketInput)

	ticket, err := booking.ParseQRPayload(input.QRData)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"valid":   false,
			"message": "Invalid QR code format",
		})
	}

	result, err := store.ScanTicket(ticket.BookingReference, ticket.VerificationCode)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"valid":   false,
			"message": "Scan error",
		})
	}

	if !result.Valid {
		switch result.Reason {
		case booking.ScanAlreadyUsed:
			return c.JSON(fiber.Map{
				"valid":   false,
				"message": "Tiket sudah digunakan sebelumnya",
				"used_at": result.UsedAt,
			})
		case booking.ScanCodeMismatch:
			return c.JSON(fiber.Map{
				"valid":   false,
				"message": "Kode verifikasi tidak sesuai",
			})
		default:
			return c.JSON(fiber.Map{
				"valid":   false,
				"message": "Tiket tidak valid atau tidak ditemukan",
			})
		}
	}

	b := result.Booking
	return c.JSON(fiber.Map{
		"valid":   true,
		"message": "Tiket valid - Silakan masuk",
		"ticket_info": fiber.Map{
			"movie":             b.MovieTitle,
			"booking_reference": b.BookingReference,
			"showtime_id":       b.ShowtimeID,
			"seats":             result.Seats,
			"customer":          b.CustomerName,
			"total_paid":        b.TotalAmount,
			"status":            "VERIFIED",
			"verification_code": b.VerificationCode,
		},
	})
}

// GetBookings lists every booking for the admin panel. seat_numbers comes
// back as a display string here ("L3, L4"), unlike the other endpoints.
func GetBookings(c *fiber.Ctx) error {
	bookings, err := store.ListAll()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error fetching bookings", err)
	}

	items := make([]bookingResponse, 0, len(bookings))
	for i := range bookings {
		seats := booking.DecodeSeats(bookings[i].SeatNumbers)
		items = append(items, toBookingResponse(&bookings[i], booking.JoinSeats(seats)))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"data": items})
}

// Legacy showtime labels the ticket list shows next to each booking.
var showtimeLabels = map[uint]string{
	1: "18:00 - Studio 1",
	2: "20:30 - Studio 1",
	3: "21:00 - Studio 2",
	4: "10:00 - Studio 1",
	5: "13:00 - Studio 2",
	6: "16:00 - Studio 1",
	7: "19:00 - Studio 2",
}

var statusText = map[string][2]string{
	string(booking.StatusPending):   {"Pending Payment", "pending"},
	string(booking.StatusConfirmed): {"Confirmed", "confirmed"},
	string(booking.StatusCancelled): {"Cancelled", "cancelled"},
}

// GetMyBookings lists the caller's tickets, matched by name or email. The
// identity comes from the username query param, the username header, or the
// session token, in that order.
func GetMyBookings(c *fiber.Ctx) error {
	username := c.Query("username")
	if username == "" {
		username = c.Get("username")
	}
	if username == "" {
		if token, ok := c.Locals("user").(*jwt.Token); ok {
			username = helper.UsernameFromToken(token)
		}
	}
	if username == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Username is required",
			"data":    []any{},
		})
	}

	bookings, err := store.ListByCustomer(username)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Server error", err)
	}

	var confirmed, pending, cancelled int
	items := make([]fiber.Map, 0, len(bookings))
	for i := range bookings {
		b := &bookings[i]
		switch booking.Status(b.Status) {
		case booking.StatusConfirmed:
			confirmed++
		case booking.StatusPending:
			pending++
		case booking.StatusCancelled:
			cancelled++
		}

		showtime, ok := showtimeLabels[b.ShowtimeID]
		if !ok {
			showtime = "Showtime " + strconv.FormatUint(uint64(b.ShowtimeID), 10)
		}
		text, ok := statusText[b.Status]
		if !ok {
			text = [2]string{b.Status, "unknown"}
		}

		items = append(items, fiber.Map{
			"id":                     b.ID,
			"booking_reference":      b.BookingReference,
			"verification_code":      b.VerificationCode,
			"movie_title":            b.MovieTitle,
			"seat_numbers":           booking.DecodeSeats(b.SeatNumbers),
			"showtime_id":            b.ShowtimeID,
			"showtime":               showtime,
			"total_amount":           b.TotalAmount,
			"customer_name":          b.CustomerName,
			"customer_email":         b.CustomerEmail,
			"customer_phone":         b.CustomerPhone,
			"status":                 b.Status,
			"status_text":            text[0],
			"status_class":           text[1],
			"booking_date":           b.BookingDate,
			"is_verified":            b.IsVerified,
			"verified_at":            b.VerifiedAt,
			"qr_code_data":           b.QRCodeData,
			"formatted_booking_date": utils.FormatBookingDate(b.BookingDate),
		})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"data": items,
		"summary": fiber.Map{
			"total":     len(items),
			"confirmed": confirmed,
			"pending":   pending,
			"cancelled": cancelled,
		},
	})
}
