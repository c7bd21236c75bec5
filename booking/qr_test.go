package booking

import (
	"encoding/json"
	"testing"
	"time"

	"bioskop_tiket/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBooking() *model.Booking {
	return &model.Booking{
		ID:               42,
		ShowtimeID:       3,
		MovieTitle:       "The Batman",
		CustomerName:     "Budi",
		CustomerEmail:    "budi@example.com",
		SeatNumbers:      `["L3","L4"]`,
		TotalAmount:      100000,
		BookingReference: "BK1718013337123X7QJ2",
		VerificationCode: "482913",
		Status:           string(StatusConfirmed),
	}
}

func TestBuildQRPayload(t *testing.T) {
	b := sampleBooking()
	payload := BuildQRPayload(b, []string{"L3", "L4"})

	var ticket QRTicket
	require.NoError(t, json.Unmarshal([]byte(payload), &ticket))
	assert.Equal(t, "CINEMA_TICKET", ticket.Type)
	assert.Equal(t, b.BookingReference, ticket.BookingReference)
	assert.Equal(t, b.VerificationCode, ticket.VerificationCode)
	assert.Equal(t, b.MovieTitle, ticket.Movie)
	assert.Equal(t, []string{"L3", "L4"}, ticket.Seats)
	assert.Equal(t, b.ShowtimeID, ticket.ShowtimeID)
	assert.Equal(t, b.TotalAmount, ticket.TotalPaid)

	_, err := time.Parse(time.RFC3339, ticket.Timestamp)
	assert.NoError(t, err)
}

func TestParseQRPayloadRoundTrip(t *testing.T) {
	b := sampleBooking()
	payload := BuildQRPayload(b, []string{"L3", "L4"})

	ticket, err := ParseQRPayload(payload)
	require.NoError(t, err)
	assert.Equal(t, b.BookingReference, ticket.BookingReference)
	assert.Equal(t, b.VerificationCode, ticket.VerificationCode)
}

func TestParseQRPayloadRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "not json", "{}", `{"verification_code":"123456"}`} {
		_, err := ParseQRPayload(raw)
		assert.True(t, IsValidation(err), "raw=%q", raw)
	}
}
