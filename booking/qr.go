package booking

import (
	"encoding/json"
	"time"

	"bioskop_tiket/model"
)

// QRTicket is the payload encoded into the e-ticket QR code. The gate scanner
// posts it back verbatim as qr_data, so field names are part of the wire
// contract.
type QRTicket struct {
	Type             string   `json:"type"`
	BookingReference string   `json:"booking_reference"`
	VerificationCode string   `json:"verification_code"`
	Movie            string   `json:"movie"`
	Seats            []string `json:"seats"`
	ShowtimeID       uint     `json:"showtime_id"`
	TotalPaid        float64  `json:"total_paid"`
	Timestamp        string   `json:"timestamp"`
}

const qrTicketType = "CINEMA_TICKET"

// BuildQRPayload renders the QR JSON for a confirmed booking.
func BuildQRPayload(b *model.Booking, seats []string) string {
	payload, _ := json.Marshal(QRTicket{
		Type:             qrTicketType,
		BookingReference: b.BookingReference,
		VerificationCode: b.VerificationCode,
		Movie:            b.MovieTitle,
		Seats:            seats,
		ShowtimeID:       b.ShowtimeID,
		TotalPaid:        b.TotalAmount,
		Timestamp:        time.Now().UTC().Format(time.RFC3339),
	})
	return string(payload)
}

// ParseQRPayload decodes scanner input. Only the reference and code matter
// for verification; the rest of the payload is display data.
func ParseQRPayload(raw string) (*QRTicket, error) {
	var ticket QRTicket
	if err := json.Unmarshal([]byte(raw), &ticket); err != nil {
		return nil, &ValidationError{Message: "Invalid QR code format"}
	}
	if ticket.BookingReference == "" {
		return nil, &ValidationError{Message: "Invalid QR code format"}
	}
	return &ticket, nil
}
