package broadcast

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdatesBuilder(t *testing.T) {
	updates := Updates([]string{"L3", "L4"}, SeatBooked, "BK123", ActionBookingConfirmed)

	require.Len(t, updates, 2)
	assert.Equal(t, "L3", updates[0].SeatNumber)
	assert.Equal(t, "L4", updates[1].SeatNumber)
	for _, u := range updates {
		assert.Equal(t, SeatBooked, u.Status)
		assert.Equal(t, "BK123", u.BookingReference)
		assert.Equal(t, ActionBookingConfirmed, u.Action)
		assert.False(t, u.Timestamp.IsZero())
	}
	assert.Empty(t, Updates(nil, SeatOccupied, "BK123", ActionTicketValidated))
}

func TestMessageWireFormat(t *testing.T) {
	msg := Message{
		ShowtimeID: 3,
		Updates:    Updates([]string{"L3"}, SeatOccupied, "BK123", ActionTicketValidated),
	}
	payload, err := json.Marshal(msg)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, float64(3), decoded["showtime_id"])

	updates := decoded["updates"].([]any)
	require.Len(t, updates, 1)
	first := updates[0].(map[string]any)
	assert.Equal(t, "L3", first["seat_number"])
	assert.Equal(t, "occupied", first["status"])
	assert.Equal(t, "BK123", first["booking_reference"])
	assert.Equal(t, "ticket_validated", first["action"])
}

func TestChannelName(t *testing.T) {
	assert.Equal(t, "seats:7", Channel(7))
}

func TestNoopImplementsBroadcaster(t *testing.T) {
	var b Broadcaster = Noop{}
	assert.NotPanics(t, func() {
		b.Notify(1, Updates([]string{"L3"}, SeatBooked, "BK123", ActionBookingConfirmed))
	})
}
