package services

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/petlink/petlink-api/internal/models"
	"github.com/petlink/petlink-api/internal/repository"
	"github.com/petlink/petlink-api/internal/utils"
)

const maxMessageLength = 1000

var (
	// ErrMessageNotFound covers both a missing message and a message owned by
	// someone else; the two cases are deliberately indistinguishable.
	ErrMessageNotFound = errors.New("message not found")
	ErrInvalidContent  = errors.New("message content must be between 1 and 1000 characters")
)

// ChatService handles chat messages scoped to care orders.
type ChatService struct {
	messageRepo repository.MessageRepository
}

// NewChatService creates a new ChatService.
func NewChatService(messageRepo repository.MessageRepository) *ChatService {
	return &ChatService{
		messageRepo: messageRepo,
	}
}

// CreateMessageInput represents input for creating a message. The sender is
// always the authenticated requester, never taken from the payload.
type CreateMessageInput struct {
	OrderID uint64
	Content string
}

// Create persists a new message from the sender. The length bound counts
// characters, not bytes, so multibyte content is not penalized.
func (s *ChatService) Create(senderID uint64, input CreateMessageInput) (*models.Message, error) {
	if n := utf8.RuneCountInString(input.Content); n == 0 || n > maxMessageLength {
		return nil, ErrInvalidContent
	}

	message := &models.Message{
		SenderID: senderID,
		OrderID:  input.OrderID,
		Content:  input.Content,
	}

	if err := s.messageRepo.Create(message); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	return s.messageRepo.FindByID(message.ID)
}

// Get retrieves a message by ID.
func (s *ChatService) Get(id uint64) (*models.Message, error) {
	message, err := s.messageRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, fmt.Errorf("failed to find message: %w", err)
	}
	return message, nil
}

// ListByOrder returns the messages of a care order, oldest first. Reads are
// not restricted to participants.
func (s *ChatService) ListByOrder(orderID uint64, params utils.PaginationParams) ([]models.Message, error) {
	messages, err := s.messageRepo.ListByOrder(orderID, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

// DeleteByOrder removes every message under a care order. Called before order
// deletion to satisfy referential constraints.
func (s *ChatService) DeleteByOrder(orderID uint64) error {
	if err := s.messageRepo.DeleteByOrder(orderID); err != nil {
		return fmt.Errorf("failed to delete messages: %w", err)
	}
	return nil
}

// Delete removes a single message if it belongs to the requester. A single
// predicate-filtered delete is used instead of fetch-then-check so a foreign
// message and a missing one produce the same result.
func (s *ChatService) Delete(id, requesterID uint64) error {
	rows, err := s.messageRepo.DeleteBySender(id, requesterID)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	if rows == 0 {
		return ErrMessageNotFound
	}
	return nil
}
