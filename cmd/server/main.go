package main

import (
	"fmt"
	"log"
	"net/http"

	"odishaconnect/backend/internal/auth"
	"odishaconnect/backend/internal/cache"
	"odishaconnect/backend/internal/config"
	"odishaconnect/backend/internal/database"
	"odishaconnect/backend/internal/handler"
	"odishaconnect/backend/internal/hub"
	"odishaconnect/backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	// Swagger imports
	_ "odishaconnect/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Odisha Connect API
// @version         1.0
// @description     This is the API for the Odisha Connect service.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	logger, err := newLogger(config.AppConfig.Debug)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	cache.Connect(config.AppConfig.RedisAddr, config.AppConfig.RedisPassword, config.AppConfig.RedisDB)

	hub.AttachLogger(hub.GlobalHub, logger,
		hub.EventConnectionRequested,
		hub.EventConnectionAccepted,
		hub.EventMessageSent,
		hub.EventMeetupJoined,
		hub.EventUserBlocked,
	)

	if !config.AppConfig.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.Logger(logger))
	router.Use(gin.Recovery())
	router.Use(middleware.RateLimit(rate.Limit(config.AppConfig.RateLimitRPS), config.AppConfig.RateLimitBurst))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", handler.RegisterUser)
			authRoutes.POST("/login", handler.LoginUser)
		}

		// Reference data routes (public)
		referenceRoutes := apiV1.Group("/reference")
		{
			referenceRoutes.GET("/districts", handler.GetDistricts)
			referenceRoutes.GET("/interests", handler.GetInterests)
			referenceRoutes.GET("/safety-tips", handler.GetSafetyTips)
			referenceRoutes.GET("/emergency-contacts", handler.GetEmergencyContacts)
		}

		// User routes (protected)
		userRoutes := apiV1.Group("/users")
		userRoutes.Use(auth.AuthMiddleware())
		{
			userRoutes.GET("", handler.SearchUsers) // Must be before /:id
			userRoutes.GET("/discover", handler.DiscoverUsers)
			userRoutes.GET("/me", handler.GetMe)
			userRoutes.PUT("/me", handler.UpdateProfile)
			userRoutes.PUT("/me/online", handler.UpdateOnlineStatus)
			userRoutes.GET("/:id", handler.GetUserByID)
		}

		// Connection routes (protected)
		connectionRoutes := apiV1.Group("/connections")
		connectionRoutes.Use(auth.AuthMiddleware())
		{
			connectionRoutes.POST("", handler.SendConnectionRequest)
			connectionRoutes.GET("", handler.GetMyConnections)
			connectionRoutes.PUT("/:id/respond", handler.RespondToConnection)
			connectionRoutes.POST("/block", handler.BlockUser)
		}

		// Message routes (protected)
		messageRoutes := apiV1.Group("/messages")
		messageRoutes.Use(auth.AuthMiddleware())
		{
			messageRoutes.POST("", handler.SendMessage)
			messageRoutes.GET("/unread", handler.GetUnreadCount)
			messageRoutes.GET("/conversations", handler.GetConversationsList)
			messageRoutes.GET("/conversation/:userID", handler.GetConversation)
			messageRoutes.POST("/conversation/:userID/read", handler.MarkConversationRead)
		}

		// Meetup routes
		meetupRoutes := apiV1.Group("/meetups")
		{
			meetupRoutes.GET("", auth.OptionalAuthMiddleware(), handler.GetUpcomingMeetups)

			protected := meetupRoutes.Group("")
			protected.Use(auth.AuthMiddleware())
			{
				protected.POST("", handler.CreateMeetup)
				protected.GET("/mine", handler.GetMyMeetups)
				protected.GET("/:id", handler.GetMeetupDetails)
				protected.POST("/:id/join", handler.JoinMeetup)
				protected.POST("/:id/leave", handler.LeaveMeetup)
			}
		}

		// Safety routes (protected)
		safetyRoutes := apiV1.Group("/safety")
		safetyRoutes.Use(auth.AuthMiddleware())
		{
			safetyRoutes.POST("/report", handler.ReportUser)
			safetyRoutes.POST("/verification", handler.SubmitVerification)
			safetyRoutes.GET("/verification", handler.GetVerificationStatus)
		}

		// Admin routes (protected by auth and admin check)
		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(auth.AuthMiddleware(), auth.AdminMiddleware())
		{
			adminRoutes.GET("/reports", handler.ListReports)
			adminRoutes.PUT("/reports/:id", handler.ReviewReport)
			adminRoutes.PUT("/verifications/:id", handler.ReviewVerification)
		}
	}

	fmt.Println("Server is running on " + config.AppConfig.ListenAddr)
	fmt.Println("Swagger UI is available at http://localhost:8080/swagger/index.html")
	log.Fatal(router.Run(config.AppConfig.ListenAddr))
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
