package router

import (
	"bioskop_tiket/handler"
	"bioskop_tiket/middleware"
	"bioskop_tiket/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())

	api.Get("/health", handler.Health)
	api.Get("/movies", handler.GetMovies)

	auth := api.Group("/auth")
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Post("/register", validate.Register(), handler.Register)

	bookings := api.Group("/bookings")
	bookings.Get("/occupied-seats", handler.GetOccupiedSeats)
	bookings.Get("/my-bookings", middleware.OptionalJWT(), handler.GetMyBookings)
	bookings.Get("/uploaded-payments", middleware.Protected(), handler.GetUploadedPayments)
	bookings.Get("/bundle-orders", middleware.Protected(), handler.GetBundleOrders)
	bookings.Get("/seats/:showtimeId", websocket.New(handler.SeatWebsocket))

	bookings.Post("/confirm-payment", validate.ConfirmPayment(), handler.ConfirmPayment)
	bookings.Post("/scan-ticket", validate.ScanTicket(), handler.ScanTicket)
	bookings.Post("/upload-payment", handler.UploadPayment)
	bookings.Post("/bundle-order", validate.BundleOrder(), handler.CreateBundleOrder)
	bookings.Post("/bundle-order/upload-payment", handler.BundleUploadPayment)
	bookings.Post("/bundle-order/confirm-payment", handler.ConfirmBundlePayment)

	bookings.Get("/", handler.GetBookings)
	bookings.Post("/", validate.CreateBooking(), handler.CreateBooking)
}
