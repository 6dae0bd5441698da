package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/petlink/petlink-api/internal/models"
	"github.com/petlink/petlink-api/internal/repository"
	"github.com/petlink/petlink-api/internal/utils"
)

func TestChatService_CreateAndList(t *testing.T) {
	db := setupTestDB(t)
	chatService := NewChatService(repository.NewMessageRepository(db))

	owner := createTestUser(t, db, "owner", models.RoleOwner)
	sitter := createTestUser(t, db, "sitter", models.RolePetsitter)
	order := createTestOrder(t, db, owner.ID, models.OrderStatusOpen, day1, day2)

	first, err := chatService.Create(owner.ID, CreateMessageInput{
		OrderID: order.ID,
		Content: "Hi, are you available?",
	})
	require.NoError(t, err)
	require.Equal(t, owner.ID, first.SenderID)
	require.Equal(t, "owner", first.Sender.Username)

	second, err := chatService.Create(sitter.ID, CreateMessageInput{
		OrderID: order.ID,
		Content: "Yes, happy to help!",
	})
	require.NoError(t, err)

	messages, err := chatService.ListByOrder(order.ID, defaultPage())
	require.NoError(t, err)
	require.Len(t, messages, 2)
	// Oldest first
	require.Equal(t, first.ID, messages[0].ID)
	require.Equal(t, second.ID, messages[1].ID)
}

func TestChatService_Create_ValidatesContent(t *testing.T) {
	db := setupTestDB(t)
	chatService := NewChatService(repository.NewMessageRepository(db))

	_, err := chatService.Create(1, CreateMessageInput{OrderID: 1, Content: ""})
	require.ErrorIs(t, err, ErrInvalidContent)

	_, err = chatService.Create(1, CreateMessageInput{OrderID: 1, Content: strings.Repeat("a", 1001)})
	require.ErrorIs(t, err, ErrInvalidContent)
}

// The length bound counts characters, not bytes. A 600-character Cyrillic
// message is 1200 bytes and must still be accepted.
func TestChatService_Create_MultibyteContent(t *testing.T) {
	db := setupTestDB(t)
	chatService := NewChatService(repository.NewMessageRepository(db))

	owner := createTestUser(t, db, "owner", models.RoleOwner)
	order := createTestOrder(t, db, owner.ID, models.OrderStatusOpen, day1, day2)

	message, err := chatService.Create(owner.ID, CreateMessageInput{
		OrderID: order.ID,
		Content: strings.Repeat("ж", 600),
	})
	require.NoError(t, err)
	require.Equal(t, 600, len([]rune(message.Content)))

	// 1001 characters is over the bound regardless of byte width
	_, err = chatService.Create(owner.ID, CreateMessageInput{
		OrderID: order.ID,
		Content: strings.Repeat("ж", 1001),
	})
	require.ErrorIs(t, err, ErrInvalidContent)
}

func TestChatService_Delete_SenderOnlyConflation(t *testing.T) {
	db := setupTestDB(t)
	chatService := NewChatService(repository.NewMessageRepository(db))

	owner := createTestUser(t, db, "owner", models.RoleOwner)
	sitter := createTestUser(t, db, "sitter", models.RolePetsitter)
	order := createTestOrder(t, db, owner.ID, models.OrderStatusOpen, day1, day2)

	message, err := chatService.Create(owner.ID, CreateMessageInput{
		OrderID: order.ID,
		Content: "mine",
	})
	require.NoError(t, err)

	// A foreign sender gets the same answer as a missing message
	require.ErrorIs(t, chatService.Delete(message.ID, sitter.ID), ErrMessageNotFound)
	require.ErrorIs(t, chatService.Delete(99999, owner.ID), ErrMessageNotFound)

	// The message survived the foreign delete attempt
	_, err = chatService.Get(message.ID)
	require.NoError(t, err)

	require.NoError(t, chatService.Delete(message.ID, owner.ID))
	_, err = chatService.Get(message.ID)
	require.ErrorIs(t, err, ErrMessageNotFound)
}

func TestChatService_DeleteByOrder(t *testing.T) {
	db := setupTestDB(t)
	chatService := NewChatService(repository.NewMessageRepository(db))

	owner := createTestUser(t, db, "owner", models.RoleOwner)
	orderA := createTestOrder(t, db, owner.ID, models.OrderStatusOpen, day1, day2)
	orderB := createTestOrder(t, db, owner.ID, models.OrderStatusOpen, day3, day4)

	for i := 0; i < 3; i++ {
		_, err := chatService.Create(owner.ID, CreateMessageInput{OrderID: orderA.ID, Content: "a"})
		require.NoError(t, err)
	}
	kept, err := chatService.Create(owner.ID, CreateMessageInput{OrderID: orderB.ID, Content: "b"})
	require.NoError(t, err)

	require.NoError(t, chatService.DeleteByOrder(orderA.ID))

	messages, err := chatService.ListByOrder(orderA.ID, defaultPage())
	require.NoError(t, err)
	require.Empty(t, messages)

	// Messages of other orders are untouched
	messages, err = chatService.ListByOrder(orderB.ID, defaultPage())
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.Equal(t, kept.ID, messages[0].ID)
}

func TestChatService_ListByOrder_Pagination(t *testing.T) {
	db := setupTestDB(t)
	chatService := NewChatService(repository.NewMessageRepository(db))

	owner := createTestUser(t, db, "owner", models.RoleOwner)
	order := createTestOrder(t, db, owner.ID, models.OrderStatusOpen, day1, day2)

	var ids []uint64
	for i := 0; i < 5; i++ {
		m, err := chatService.Create(owner.ID, CreateMessageInput{OrderID: order.ID, Content: "hello"})
		require.NoError(t, err)
		ids = append(ids, m.ID)
	}

	window, err := chatService.ListByOrder(order.ID, utils.PaginationParams{Skip: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, window, 2)
	require.Equal(t, ids[2], window[0].ID)
	require.Equal(t, ids[3], window[1].ID)
}
