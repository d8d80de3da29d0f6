package router

import (
	"cinema_storefront/handler"
	"cinema_storefront/middleware"
	"cinema_storefront/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Post("/register", validate.Register(), handler.Register)
	auth.Post("/logout", middleware.OptionalSession(), handler.Logout)
	auth.Get("/me", middleware.Protected(), handler.Me)

	movie := v1.Group("/movie", logger.New())
	movie.Get("/", handler.GetMovies)
	movie.Get("/search", handler.SearchMovies)
	movie.Get("/popular", handler.GetPopularMovies)
	movie.Get("/recommended", middleware.OptionalSession(), handler.GetRecommendedMovies)
	movie.Get("/:movieId/showtimes", handler.GetMovieShowtimes)
	movie.Get("/:slug", handler.GetMovieBySlug)

	showtime := v1.Group("/showtime", logger.New())
	showtime.Get("/:id/seats", handler.GetShowtimeSeats)

	theater := v1.Group("/theater", logger.New())
	theater.Get("/", handler.GetTheaters)

	promotions := v1.Group("/promotions", logger.New())
	promotions.Get("/", handler.GetPromotions)
	promotions.Get("/:code", handler.GetPromotionByCode)

	wallet := v1.Group("/wallet", logger.New())
	wallet.Get("/balance", middleware.Protected(), handler.GetBalance)
	wallet.Post("/topup", middleware.Protected(), validate.TopUp(), handler.TopUp)

	booking := v1.Group("/booking", logger.New())
	booking.Post("/confirm", middleware.Protected(), validate.ConfirmBooking(), handler.ConfirmBooking)
	booking.Get("/", middleware.Protected(), handler.GetMyBookings)

	payment := v1.Group("/payment", logger.New())
	payment.Post("/", middleware.Protected(), validate.CreatePayment(), handler.CreatePayment)
	payment.Get("/:txnRef/status", middleware.Protected(), handler.GetPaymentStatus)

	// cổng thanh toán gọi về, không qua session
	app.Get("/vnpay/return", handler.VNPayCallback)
	app.Post("/vnpay/ipn", handler.VNPayIPN)

	app.Get("/ws/showtime/:id", websocket.New(handler.WebSocketConnection))
}
