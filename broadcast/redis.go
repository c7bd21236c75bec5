package broadcast

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

// RedisBroadcaster publishes seat updates to a per-showtime redis channel.
// The websocket handler subscribes to the same channel and fans messages out
// to connected browsers, so updates reach clients on every instance.
type RedisBroadcaster struct {
	client *redis.Client
}

func NewRedisBroadcaster(client *redis.Client) *RedisBroadcaster {
	return &RedisBroadcaster{client: client}
}

// Channel returns the pub/sub channel name for a showtime.
func Channel(showtimeID uint) string {
	return fmt.Sprintf("seats:%d", showtimeID)
}

func (b *RedisBroadcaster) Notify(showtimeID uint, updates []SeatUpdate) {
	if len(updates) == 0 {
		return
	}
	payload, err := json.Marshal(Message{ShowtimeID: showtimeID, Updates: updates})
	if err != nil {
		log.Printf("broadcast: marshal failed for showtime %d: %v", showtimeID, err)
		return
	}
	if err := b.client.Publish(context.Background(), Channel(showtimeID), payload).Err(); err != nil {
		log.Printf("broadcast: publish failed for showtime %d: %v", showtimeID, err)
	}
}
