package routes

import (
	"log"
	"net/http"
	"strconv"

	"sero-backend/handlers"
	"sero-backend/middleware"
	"sero-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

func SetupRoutes(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	quizHandler *handlers.QuizHandler,
	chronotypeHandler *handlers.ChronotypeHandler,
	userHandler *handlers.UserHandler,
	hub *services.Hub,
	authService *services.AuthService,
	jwtSecret string,
) {
	// API routes
	api := router.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Active quiz definition is public; taking it requires an account.
		api.GET("/quiz", quizHandler.GetActiveQuiz)

		// Protected routes
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware(jwtSecret))
		{
			// User profile
			protected.GET("/auth/profile", authHandler.GetProfile)

			// Quiz routes
			quiz := protected.Group("/quiz")
			{
				quiz.POST("/submit", quizHandler.SubmitQuiz)
				quiz.GET("/results", quizHandler.GetResults)
				quiz.GET("/chronotype", chronotypeHandler.GetMine)
			}

			// Chronotype record routes
			chronotypes := protected.Group("/chronotype")
			{
				chronotypes.POST("", chronotypeHandler.Create)
				chronotypes.GET("/:id", chronotypeHandler.Get)
				chronotypes.PUT("/:id", chronotypeHandler.Update)
				chronotypes.DELETE("/:id", chronotypeHandler.Delete)
			}

			// Derived time-series routes
			user := protected.Group("/user/chronotype/:id")
			{
				user.GET("/energy-curve", userHandler.GetEnergyCurve)
				user.GET("/focus-windows", userHandler.GetFocusWindows)
				user.PUT("/energy-curve/:hour", chronotypeHandler.RecordEnergyFeedback)
			}
		}
	}

	// WebSocket endpoint for chronotype/energy update pushes
	router.GET("/ws/chronotype/:userID", func(c *gin.Context) {
		userIDStr := c.Param("userID")

		userID64, err := strconv.ParseUint(userIDStr, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}
		userID := uint(userID64)

		// The connection must belong to an existing account. Token auth for
		// websockets is delegated to the token query parameter.
		token := c.Query("token")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing token"})
			return
		}
		tokenUserID, err := authService.ValidateToken(token)
		if err != nil || tokenUserID != userID {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token for user"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("WebSocket upgrade failed for user %d: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
			return
		}

		log.Printf("WebSocket connection established for user %d", userID)
		hub.RegisterClient(conn, userID)
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
