package main

import (
	"log"
	"uplearn/config"
	"uplearn/database"
	authRoutes "uplearn/routers/authRoutes"
	categoryRoutes "uplearn/routers/categoryRoutes"
	courseRoutes "uplearn/routers/courseRoutes"
	paymentRoutes "uplearn/routers/paymentRoutes"
	profileRoutes "uplearn/routers/profileRoutes"
	ratingRoutes "uplearn/routers/ratingRoutes"
	"uplearn/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded media from the public folder
	app.Static("/uploads", "./public/uploads")

	authRoutes.SetupAuthRoutes(app)
	profileRoutes.SetupProfileRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	categoryRoutes.SetupCategoryRoutes(app)
	ratingRoutes.SetupRatingRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)

	// Account deletion sweep
	utils.InitializeDeleteScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
