package handler

import (
	"bioskop_tiket/booking"

	"github.com/redis/go-redis/v9"
)

var (
	store *booking.Store
	rdb   *redis.Client
)

// Init wires the handlers to the booking store and, when configured, the
// redis client backing the live seat feed. Called once from main.
func Init(s *booking.Store, redisClient *redis.Client) {
	store = s
	rdb = redisClient
}
