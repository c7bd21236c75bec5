package handler

import (
	"testing"
	"time"

	"bioskop_tiket/model"

	"github.com/stretchr/testify/assert"
)

func TestToBookingResponse(t *testing.T) {
	phone := "081234567890"
	qr := `{"type":"CINEMA_TICKET"}`
	bookedAt := time.Date(2024, 6, 10, 19, 30, 0, 0, time.UTC)
	b := &model.Booking{
		ID:               42,
		ShowtimeID:       3,
		MovieTitle:       "The Batman",
		CustomerName:     "Budi",
		CustomerEmail:    "budi@example.com",
		CustomerPhone:    &phone,
		SeatNumbers:      `["L3","L4"]`,
		TotalAmount:      100000,
		BookingReference: "BK1718013337123X7QJ2",
		VerificationCode: "482913",
		Status:           "confirmed",
		QRCodeData:       &qr,
		OrderType:        "regular",
		BookingDate:      bookedAt,
	}

	resp := toBookingResponse(b, []string{"L3", "L4"})

	assert.Equal(t, uint(42), resp.ID)
	assert.Equal(t, uint(3), resp.ShowtimeID)
	assert.Equal(t, "The Batman", resp.MovieTitle)
	assert.Equal(t, "Budi", resp.CustomerName)
	assert.Equal(t, "budi@example.com", resp.CustomerEmail)
	assert.Equal(t, &phone, resp.CustomerPhone)
	assert.Equal(t, float64(100000), resp.TotalAmount)
	assert.Equal(t, "BK1718013337123X7QJ2", resp.BookingReference)
	assert.Equal(t, "482913", resp.VerificationCode)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, &qr, resp.QRCodeData)
	assert.Equal(t, bookedAt, resp.BookingDate)

	// The seat column is replaced with whatever shape the endpoint wants.
	assert.Equal(t, []string{"L3", "L4"}, resp.SeatNumbers)

	joined := toBookingResponse(b, "L3, L4")
	assert.Equal(t, "L3, L4", joined.SeatNumbers)
}
