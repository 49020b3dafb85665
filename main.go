package main

import (
	"log"
	"time"

	"sero-backend/config"
	"sero-backend/handlers"
	"sero-backend/models"
	"sero-backend/routes"
	"sero-backend/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.User{},
		&models.Quiz{},
		&models.Question{},
		&models.Option{},
		&models.QuizAttempt{},
		&models.AttemptAnswer{},
		&models.UserChronotype{},
		&models.EnergyCurvePoint{},
		&models.FocusWindow{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed the built-in chronotype assessment on first boot
	if err := services.SeedDefaultQuiz(db); err != nil {
		log.Fatal("Failed to seed default quiz:", err)
	}

	// Initialize Redis
	redisClient := config.InitRedis(cfg)

	// Initialize services
	authService := services.NewAuthService(db, cfg.JWTSecret)
	quizService := services.NewQuizService(db, redisClient)
	chronotypeService := services.NewChronotypeService(db)

	// Initialize WebSocket hub
	hub := services.NewHub()
	go hub.Run()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	quizHandler := handlers.NewQuizHandler(quizService, hub)
	chronotypeHandler := handlers.NewChronotypeHandler(chronotypeService, hub)
	userHandler := handlers.NewUserHandler(chronotypeService)

	// Setup Gin router
	router := gin.Default()

	// Add CORS middleware
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(router, authHandler, quizHandler, chronotypeHandler, userHandler, hub, authService, cfg.JWTSecret)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
