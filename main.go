package main

import (
	"log"

	"learnhub/config"
	quizControllers "learnhub/controllers/quiz"
	"learnhub/database"
	"learnhub/quiz"
	authRoutes "learnhub/routers/authRoutes"
	classRoutes "learnhub/routers/classRoutes"
	courseRoutes "learnhub/routers/courseRoutes"
	quizRoutes "learnhub/routers/quizRoutes"
	userRoutes "learnhub/routers/userRoutes"
	"learnhub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	catalog := quiz.DefaultCatalog()
	sessions := quiz.NewSessionManager()
	quizControllers.Setup(catalog, sessions)

	utils.StartSchedulers(sessions)

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

	authRoutes.SetupAuthRoutes(app)
	quizRoutes.SetupQuizRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	userRoutes.SetupUserRoutes(app)
	classRoutes.SetupClassRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
