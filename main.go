package main

import (
	"log"

	"bioskop_tiket/booking"
	"bioskop_tiket/broadcast"
	"bioskop_tiket/config"
	"bioskop_tiket/database"
	"bioskop_tiket/handler"
	"bioskop_tiket/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/redis/go-redis/v9"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})
	app.Use(cors.New())

	database.ConnectDB()

	var notifier broadcast.Broadcaster = broadcast.Noop{}
	var rdb *redis.Client
	if addr := config.Config("REDIS_ADDR"); addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: config.Config("REDIS_PASSWORD"),
		})
		notifier = broadcast.NewRedisBroadcaster(rdb)
	} else {
		log.Println("REDIS_ADDR not set, live seat updates disabled")
	}

	store := booking.NewStore(database.DB, notifier)
	handler.Init(store, rdb)

	router.SetupRoutes(app)
	app.Static("/uploads", "./public/uploads")

	log.Fatal(app.Listen(":" + config.ConfigDefault("PORT", "5000")))
}
