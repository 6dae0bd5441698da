package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/petlink/petlink-api/internal/middleware"
	"github.com/petlink/petlink-api/internal/models"
	"github.com/petlink/petlink-api/internal/repository"
	"github.com/petlink/petlink-api/internal/security"
	"github.com/petlink/petlink-api/internal/services"
)

// setupTestRouter wires the full stack against an in-memory database,
// mirroring the route table of cmd/server.
func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.CareOrder{},
		&models.Proposal{},
		&models.Message{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	tokens, err := security.NewTokenManager("test-secret", "HS256", time.Minute)
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewCareOrderRepository(db)
	proposalRepo := repository.NewProposalRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	authService := services.NewAuthService(userRepo, tokens)
	userService := services.NewUserService(userRepo)
	orderService := services.NewCareOrderService(orderRepo)
	proposalService := services.NewProposalService(proposalRepo)
	chatService := services.NewChatService(messageRepo)

	authHandler := NewAuthHandler(authService)
	userHandler := NewUserHandler(userService)
	orderHandler := NewCareOrderHandler(orderService)
	proposalHandler := NewProposalHandler(proposalService)
	chatHandler := NewChatHandler(chatService)

	r := gin.New()
	requireAuth := middleware.RequireAuth(authService)

	auth := r.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", requireAuth, authHandler.GetCurrentUser)
	}

	users := r.Group("/users")
	{
		users.POST("", userHandler.Register)
		users.GET("/:id", requireAuth, userHandler.GetUser)
		users.PATCH("/:id", requireAuth, userHandler.UpdateUser)
		users.DELETE("/:id", requireAuth, userHandler.DeleteUser)
		users.POST("/:id/rating", requireAuth, userHandler.RateUser)
	}

	orders := r.Group("/care_orders")
	orders.Use(requireAuth)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PATCH("/:id", orderHandler.UpdateOrder)
		orders.DELETE("/:id", orderHandler.DeleteOrder)
	}

	proposals := r.Group("/proposals")
	proposals.Use(requireAuth)
	{
		proposals.POST("", proposalHandler.CreateProposal)
		proposals.GET("", proposalHandler.ListProposals)
		proposals.GET("/:id", proposalHandler.GetProposal)
		proposals.PATCH("/:id", proposalHandler.UpdateProposal)
		proposals.DELETE("/:id", proposalHandler.DeleteProposal)
	}

	messages := r.Group("/messages")
	messages.Use(requireAuth)
	{
		messages.POST("", chatHandler.CreateMessage)
		messages.GET("", chatHandler.ListMessages)
		messages.GET("/:id", chatHandler.GetMessage)
		messages.DELETE("", chatHandler.DeleteMessagesByOrder)
		messages.DELETE("/:id", chatHandler.DeleteMessage)
	}

	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest))
}

// registerAndLogin creates a user through the public endpoint and returns
// the user's ID plus a bearer token.
func registerAndLogin(t *testing.T, r *gin.Engine, username string, role models.UserRole) (uint64, string) {
	t.Helper()

	w := doRequest(t, r, http.MethodPost, "/users", "", gin.H{
		"username": username,
		"email":    username + "@example.com",
		"password": "supersecret",
		"role":     string(role),
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID uint64 `json:"id"`
	}
	decodeJSON(t, w, &created)

	w = doRequest(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"username": username,
		"password": "supersecret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var tokenResp TokenResponse
	decodeJSON(t, w, &tokenResp)
	require.NotEmpty(t, tokenResp.AccessToken)

	return created.ID, tokenResp.AccessToken
}
