package handler

import (
	"context"
	"log"
	"strconv"

	"bioskop_tiket/broadcast"

	"github.com/gofiber/contrib/websocket"
)

// SeatWebsocket streams live seat updates for one showtime. Each connection
// subscribes to the showtime's redis channel and relays the published
// payloads verbatim; the client never sends anything meaningful, so inbound
// reads only serve to detect the disconnect.
func SeatWebsocket(c *websocket.Conn) {
	defer c.Close()

	id64, err := strconv.ParseUint(c.Params("showtimeId"), 10, 32)
	if err != nil {
		return
	}
	showtimeID := uint(id64)

	if rdb == nil {
		// No redis configured: hold the connection open so clients do not
		// hammer the reconnect path, but nothing will arrive.
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubsub := rdb.Subscribe(ctx, broadcast.Channel(showtimeID))
	defer pubsub.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ch := pubsub.Channel()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if err := c.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				log.Printf("ws: write to showtime %d client: %v", showtimeID, err)
				return
			}
		case <-done:
			return
		}
	}
}
