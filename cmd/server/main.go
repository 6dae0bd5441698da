package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/petlink/petlink-api/internal/config"
	"github.com/petlink/petlink-api/internal/database"
	"github.com/petlink/petlink-api/internal/handlers"
	"github.com/petlink/petlink-api/internal/middleware"
	"github.com/petlink/petlink-api/internal/repository"
	"github.com/petlink/petlink-api/internal/security"
	"github.com/petlink/petlink-api/internal/services"
	"github.com/petlink/petlink-api/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load(context.Background())
	if err != nil {
		bootLog := logger.New(logger.Options{})
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.GinMode != "release",
		Output: os.Stdout,
	})

	gin.SetMode(cfg.GinMode)

	// Connect to database and run migrations
	if err := database.Connect(cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := database.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}
	db := database.GetDB()

	// Token manager built from injected configuration
	tokens, err := security.NewTokenManager(
		cfg.JWTSecret,
		cfg.JWTAlgorithm,
		time.Duration(cfg.TokenExpireMinutes)*time.Minute,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create token manager")
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewCareOrderRepository(db)
	proposalRepo := repository.NewProposalRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, tokens)
	userService := services.NewUserService(userRepo)
	orderService := services.NewCareOrderService(orderRepo)
	proposalService := services.NewProposalService(proposalRepo)
	chatService := services.NewChatService(messageRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	orderHandler := handlers.NewCareOrderHandler(orderService)
	proposalHandler := handlers.NewProposalHandler(proposalService)
	chatHandler := handlers.NewChatHandler(chatService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	requireAuth := middleware.RequireAuth(authService)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": cfg.AppName + " API is running",
		})
	})

	// Auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", requireAuth, authHandler.GetCurrentUser)
	}

	// User routes (registration is public)
	users := r.Group("/users")
	{
		users.POST("", userHandler.Register)
		users.GET("/:id", requireAuth, userHandler.GetUser)
		users.PATCH("/:id", requireAuth, userHandler.UpdateUser)
		users.DELETE("/:id", requireAuth, userHandler.DeleteUser)
		users.POST("/:id/rating", requireAuth, userHandler.RateUser)
	}

	// Care order routes
	orders := r.Group("/care_orders")
	orders.Use(requireAuth)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PATCH("/:id", orderHandler.UpdateOrder)
		orders.DELETE("/:id", orderHandler.DeleteOrder)
	}

	// Proposal routes
	proposals := r.Group("/proposals")
	proposals.Use(requireAuth)
	{
		proposals.POST("", proposalHandler.CreateProposal)
		proposals.GET("", proposalHandler.ListProposals)
		proposals.GET("/:id", proposalHandler.GetProposal)
		proposals.PATCH("/:id", proposalHandler.UpdateProposal)
		proposals.DELETE("/:id", proposalHandler.DeleteProposal)
	}

	// Chat routes
	messages := r.Group("/messages")
	messages.Use(requireAuth)
	{
		messages.POST("", chatHandler.CreateMessage)
		messages.GET("", chatHandler.ListMessages)
		messages.GET("/:id", chatHandler.GetMessage)
		messages.DELETE("", chatHandler.DeleteMessagesByOrder)
		messages.DELETE("/:id", chatHandler.DeleteMessage)
	}

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
