package main

import (
	"context"
	"log"
	"time"

	"cinema_storefront/config"
	"cinema_storefront/database"
	"cinema_storefront/gateway"
	"cinema_storefront/helper"
	"cinema_storefront/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		AppName: "cinema_storefront",
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigDefault("FRONTEND_URL", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectRedis()
	helper.SetRemote(gateway.NewClient())

	// nạp catalog trước khi nhận request, lỗi thì scheduler sẽ thử lại
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := helper.RefreshCatalog(ctx); err != nil {
		log.Printf("initial catalog load failed: %v", err)
	}
	cancel()

	helper.StartCatalogScheduler()
	defer helper.StopCatalogScheduler()
	helper.StartPaymentSweeper()
	defer helper.StopPaymentSweeper()

	router.SetupRoutes(app)

	log.Fatal(app.Listen(":" + config.ConfigDefault("PORT", "8002")))
}
