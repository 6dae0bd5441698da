package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/petlink/petlink-api/internal/models"
	"github.com/petlink/petlink-api/internal/repository"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

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

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string, role models.UserRole) *models.User {
	t.Helper()

	userService := NewUserService(repository.NewUserRepository(db))
	user, err := userService.Register(RegisterInput{
		Username: username,
		Email:    username + "@example.com",
		Password: "supersecret",
		Role:     role,
	})
	require.NoError(t, err)
	return user
}

func createTestOrder(t *testing.T, db *gorm.DB, ownerID uint64, status models.OrderStatus, start, end time.Time) *models.CareOrder {
	t.Helper()

	orderService := NewCareOrderService(repository.NewCareOrderRepository(db))
	order, err := orderService.Create(ownerID, CreateCareOrderInput{
		Title:     "Watch my cat",
		StartDate: start,
		EndDate:   end,
		Status:    status,
	})
	require.NoError(t, err)
	return order
}

func datePtr(t time.Time) *time.Time {
	return &t
}
