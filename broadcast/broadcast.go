package broadcast

import "time"

// Seat statuses and actions pushed to live seat-map clients.
const (
	SeatBooked   = "booked"
	SeatOccupied = "occupied"

	ActionBookingConfirmed = "booking_confirmed"
	ActionTicketValidated  = "ticket_validated"
)

// SeatUpdate is one seat-state change inside a broadcast message.
type SeatUpdate struct {
	SeatNumber       string    `json:"seat_number"`
	Status           string    `json:"status"`
	BookingReference string    `json:"booking_reference"`
	Action           string    `json:"action"`
	Timestamp        time.Time `json:"timestamp"`
}

// Message is the envelope published per showtime.
type Message struct {
	ShowtimeID uint         `json:"showtime_id"`
	Updates    []SeatUpdate `json:"updates"`
}

// Broadcaster pushes seat-state changes to whoever is watching a showtime's
// seat map. The booking store calls it after every seat-affecting transition;
// delivery is best effort and never fails the transition.
type Broadcaster interface {
	Notify(showtimeID uint, updates []SeatUpdate)
}

// Updates builds one SeatUpdate per seat with a shared status and action.
func Updates(seats []string, status, reference, action string) []SeatUpdate {
	now := time.Now().UTC()
	out := make([]SeatUpdate, 0, len(seats))
	for _, seat := range seats {
		out = append(out, SeatUpdate{
			SeatNumber:       seat,
			Status:           status,
			BookingReference: reference,
			Action:           action,
			Timestamp:        now,
		})
	}
	return out
}
